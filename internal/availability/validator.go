package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// ValidateNewBooking проверяет, можно ли создать запись на start.
//
// start должен быть в часовом поясе барбершопа: проверяется локальный час.
// Ёмкость считается по точному совпадению момента начала (с точностью до минуты),
// записи в 10:00 и 10:15 друг другу не мешают.
func ValidateNewBooking(start time.Time, durationMinutes int, existing []*domain.Appointment) error {
	if durationMinutes <= 0 {
		return ErrInvalidDuration
	}

	if h := start.Hour(); h < domain.BusinessOpenHour || h >= domain.BusinessCloseHour {
		return ErrOutOfHours
	}

	if CountAtInstant(start, existing) >= domain.MaxBookingsPerSlot {
		return ErrCapacityExceeded
	}

	return nil
}

// CountAtInstant считает неотмененные записи, начинающиеся ровно в момент t
func CountAtInstant(t time.Time, existing []*domain.Appointment) int {
	target := t.Truncate(time.Minute)

	count := 0
	for _, b := range existing {
		if b == nil || !b.OccupiesSlot() {
			continue
		}
		if b.StartTime.Truncate(time.Minute).Equal(target) {
			count++
		}
	}
	return count
}

package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// candidateSlots возвращает все слоты дня 09:00..17:30 с шагом 30 минут
func candidateSlots() []types.TimeString {
	first := domain.BusinessOpenHour * 60
	last := domain.LastSlotHour*60 + domain.LastSlotMinute

	slots := make([]types.TimeString, 0, (last-first)/domain.SlotStepMinutes+1)
	for m := first; m <= last; m += domain.SlotStepMinutes {
		slot, err := types.NewTimeStringFromClock(m/60, m%60)
		if err != nil {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// GenerateSlots возвращает свободные слоты на день в порядке возрастания.
//
// day задает дату и часовой пояс барбершопа. Записи, начинающиеся в другой день,
// и отмененные записи игнорируются. Для сегодняшнего дня отбрасываются слоты,
// начало которых строго раньше now.
//
// Окно кандидата всегда 30 минут, независимо от длительности выбранной услуги.
// Слот исключается, если его начало попадает в [b, bEnd) или конец в (b, bEnd]
// какой-либо записи. Слот, целиком накрывающий более короткую запись, не исключается.
func GenerateSlots(day time.Time, bookings []*domain.Appointment, now time.Time) []types.TimeString {
	loc := day.Location()
	isToday := domain.SameDay(day, now.In(loc))

	occupied := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if b == nil || !b.OccupiesSlot() || !b.IsOnDate(day) {
			continue
		}
		occupied = append(occupied, AppointmentInterval(b))
	}

	slotLength := time.Duration(domain.SlotStepMinutes) * time.Minute
	result := make([]types.TimeString, 0)

	for _, slot := range candidateSlots() {
		window := NewInterval(slot.On(day), slotLength)

		if isToday && window.Start.Before(now) {
			continue
		}
		if conflicts(window, occupied) {
			continue
		}
		result = append(result, slot)
	}

	return result
}

// IsSlotAvailable проверяет, что время входит в список свободных слотов дня
func IsSlotAvailable(slot types.TimeString, day time.Time, bookings []*domain.Appointment, now time.Time) bool {
	for _, s := range GenerateSlots(day, bookings, now) {
		if s == slot {
			return true
		}
	}
	return false
}

func conflicts(window Interval, occupied []Interval) bool {
	for _, o := range occupied {
		if o.Contains(window.Start) || o.ContainsEnd(window.End) {
			return true
		}
	}
	return false
}

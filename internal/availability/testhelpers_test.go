package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

var brt = time.FixedZone("BRT", -3*60*60)

// 2026-10-20 - вторник
func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 20, hour, minute, 0, 0, brt)
}

func booking(start time.Time, duration int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.New(),
		ClientName:      "Cliente",
		StartTime:       start,
		DurationMinutes: duration,
		Status:          status,
	}
}

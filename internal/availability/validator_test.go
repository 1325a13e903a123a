package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

func TestValidateNewBooking_Capacity(t *testing.T) {
	existing := []*domain.Appointment{
		booking(at(14, 0), 30, domain.StatusScheduled),
		booking(at(14, 0), 30, domain.StatusCompleted),
	}

	assert.ErrorIs(t, ValidateNewBooking(at(14, 0), 30, existing), ErrCapacityExceeded)
	// совпадение только по точному моменту: 14:15 проходит, хотя окна пересекаются
	assert.NoError(t, ValidateNewBooking(at(14, 15), 30, existing))
}

func TestValidateNewBooking_SingleBookingLeavesRoom(t *testing.T) {
	existing := []*domain.Appointment{booking(at(14, 0), 30, domain.StatusScheduled)}

	assert.NoError(t, ValidateNewBooking(at(14, 0), 30, existing))
}

func TestValidateNewBooking_CanceledDoNotCount(t *testing.T) {
	existing := []*domain.Appointment{
		booking(at(14, 0), 30, domain.StatusCanceled),
		booking(at(14, 0), 30, domain.StatusCanceled),
		booking(at(14, 0), 30, domain.StatusScheduled),
	}

	assert.NoError(t, ValidateNewBooking(at(14, 0), 30, existing))
}

func TestValidateNewBooking_NoShowCounts(t *testing.T) {
	existing := []*domain.Appointment{
		booking(at(14, 0), 30, domain.StatusNoShow),
		booking(at(14, 0), 30, domain.StatusScheduled),
	}

	assert.ErrorIs(t, ValidateNewBooking(at(14, 0), 30, existing), ErrCapacityExceeded)
}

func TestValidateNewBooking_BusinessHours(t *testing.T) {
	tests := []struct {
		name    string
		hour    int
		minute  int
		wantErr error
	}{
		{name: "08:45", hour: 8, minute: 45, wantErr: ErrOutOfHours},
		{name: "18:00", hour: 18, minute: 0, wantErr: ErrOutOfHours},
		{name: "09:00", hour: 9, minute: 0},
		{name: "17:59", hour: 17, minute: 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewBooking(at(tt.hour, tt.minute), 30, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateNewBooking_InvalidDuration(t *testing.T) {
	assert.ErrorIs(t, ValidateNewBooking(at(10, 0), 0, nil), ErrInvalidDuration)
	assert.ErrorIs(t, ValidateNewBooking(at(10, 0), -30, nil), ErrInvalidDuration)
	// длительность проверяется раньше рабочих часов
	assert.ErrorIs(t, ValidateNewBooking(at(7, 0), 0, nil), ErrInvalidDuration)
}

func TestCountAtInstant_IgnoresSeconds(t *testing.T) {
	existing := []*domain.Appointment{booking(at(10, 0).Add(30*time.Second), 30, domain.StatusScheduled)}

	assert.Equal(t, 1, CountAtInstant(at(10, 0), existing))
	assert.Equal(t, 0, CountAtInstant(at(10, 1), existing))
}

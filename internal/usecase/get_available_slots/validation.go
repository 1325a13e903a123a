package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil || req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date time.Time, now time.Time) error {
	if domain.IsDateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}

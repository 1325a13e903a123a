package create_public_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

const minPhoneDigits = 8

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.EmployeeID != nil && *req.EmployeeID == uuid.Nil {
		return fmt.Errorf("%w: employeeId is invalid", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(domain.DigitsOnly(req.Phone)) < minPhoneDigits {
		return fmt.Errorf("%w: phone must have at least %d digits", ErrInvalidInput, minPhoneDigits)
	}

	return nil
}

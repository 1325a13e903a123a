package create_appointment

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	return nil
}

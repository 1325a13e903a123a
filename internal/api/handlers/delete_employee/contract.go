package delete_employee

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/service/employees/models"
)

type EmployeeService interface {
	Delete(ctx context.Context, id uuid.UUID, req *models.DeleteEmployeeRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

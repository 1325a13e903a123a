package catalog

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListActive(ctx context.Context) ([]*domain.Service, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package employees

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PasswordVerifier проверка пароля администратора
type PasswordVerifier interface {
	Verify(password string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

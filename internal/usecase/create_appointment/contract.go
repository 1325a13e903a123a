package create_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	UpdatePhone(ctx context.Context, id uuid.UUID, phone string) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики записей
type Metrics interface {
	BookingCreated(channel string)
	BookingRejected(channel, reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/usecase/sweep_no_shows"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	List(ctx context.Context, includeDeleted bool) ([]*domain.Client, error)
}

// NoShowSweeper перевод опоздавших записей в NO_SHOW
type NoShowSweeper interface {
	Execute(ctx context.Context) (*sweep_no_shows.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package notifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdminNotification, error)
	List(ctx context.Context, unreadOnly bool) ([]*domain.AdminNotification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

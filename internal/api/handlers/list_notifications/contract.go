package list_notifications

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/notifications/models"
)

type NotificationService interface {
	ListUnread(ctx context.Context) (*models.NotificationListResponse, error)
	ListAll(ctx context.Context) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

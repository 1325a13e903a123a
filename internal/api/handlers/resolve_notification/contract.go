package resolve_notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/service/notifications/models"
)

type NotificationService interface {
	Resolve(ctx context.Context, id uuid.UUID, req *models.ResolveRequest) (*models.ResolveResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_deletion_logs

import (
	"context"

	"github.com/m04kA/SMC-BarberService/internal/service/deletionlogs/models"
)

type DeletionLogService interface {
	List(ctx context.Context) (*models.DeletionLogListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

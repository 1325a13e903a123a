package get_client_stats

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/service/clients/models"
)

type ClientService interface {
	GetStats(ctx context.Context, id uuid.UUID) (*models.ClientStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

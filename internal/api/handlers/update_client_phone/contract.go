package update_client_phone

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/service/clients/models"
)

type ClientService interface {
	UpdatePhone(ctx context.Context, id uuid.UUID, req *models.UpdatePhoneRequest) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

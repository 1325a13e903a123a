package update_client_phone

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/clients"
	"github.com/m04kA/SMC-BarberService/internal/service/clients/models"
)

const (
	msgInvalidClientID    = "ID do cliente inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidPhone       = "telefone inválido"
	msgNotFound           = "cliente não encontrado"
	msgPhoneTaken         = "este telefone já está cadastrado para outro cliente"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/clients/{id}/phone
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /clients/{id}/phone - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req models.UpdatePhoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /clients/{id}/phone - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.UpdatePhone(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("PATCH /clients/{id}/phone - Client not found: client_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, clients.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, clients.ErrPhoneTaken):
			h.logger.Warn("PATCH /clients/{id}/phone - Phone already registered: client_id=%s", id)
			handlers.RespondConflict(w, msgPhoneTaken)

		default:
			h.logger.Error("PATCH /clients/{id}/phone - Failed to update phone: client_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /clients/{id}/phone - Phone updated successfully: client_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, client)
}

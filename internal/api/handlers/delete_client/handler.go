package delete_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/clients"
)

const (
	msgInvalidClientID = "ID do cliente inválido"
	msgNotFound        = "cliente não encontrado"
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

// Handle DELETE /api/v1/clients/{id}
// Клиент только помечается удаленным: история записей сохраняется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	if err := h.service.SoftDelete(r.Context(), id); err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			h.logger.Warn("DELETE /clients/{id} - Client not found: client_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /clients/{id} - Failed to delete client: client_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /clients/{id} - Client deleted successfully: client_id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

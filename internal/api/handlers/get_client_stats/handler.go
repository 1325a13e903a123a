package get_client_stats

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

// Handle GET /api/v1/clients/{id}/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("GET /clients/{id}/stats - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	stats, err := h.service.GetStats(r.Context(), id)
	if err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			h.logger.Warn("GET /clients/{id}/stats - Client not found: client_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /clients/{id}/stats - Failed to get stats: client_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{id}/stats - Stats retrieved successfully: client_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, stats)
}

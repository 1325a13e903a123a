package list_clients

import (
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
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

// Handle GET /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients - Clients retrieved successfully: count=%d", len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, result)
}

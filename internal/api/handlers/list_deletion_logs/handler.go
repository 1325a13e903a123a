package list_deletion_logs

import (
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
)

type Handler struct {
	service DeletionLogService
	logger  Logger
}

func NewHandler(service DeletionLogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/deletion-logs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /deletion-logs - Failed to list deletion logs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /deletion-logs - Deletion logs retrieved successfully: count=%d", len(result.Logs))
	handlers.RespondJSON(w, http.StatusOK, result)
}

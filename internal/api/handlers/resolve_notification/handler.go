package resolve_notification

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications/models"
)

const (
	msgInvalidNotificationID = "ID da notificação inválido"
	msgInvalidRequestBody    = "corpo da requisição inválido"
	msgNotFound              = "notificação não encontrada"
	msgAlreadyResolved       = "notificação já foi resolvida"
	msgClientNotFound        = "o cliente desta notificação não existe mais"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/notifications/{id}/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("POST /notifications/{id}/resolve - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	var req models.ResolveRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications/{id}/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Resolve(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("POST /notifications/{id}/resolve - Notification not found: notification_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, notifications.ErrAlreadyResolved):
			h.logger.Warn("POST /notifications/{id}/resolve - Already resolved: notification_id=%s", id)
			handlers.RespondConflict(w, msgAlreadyResolved)

		case errors.Is(err, notifications.ErrClientNotFound):
			h.logger.Warn("POST /notifications/{id}/resolve - Client gone: notification_id=%s", id)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("POST /notifications/{id}/resolve - Failed to resolve: notification_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notifications/{id}/resolve - Notification resolved: notification_id=%s, accepted=%t, renamed=%t",
		id, result.Accepted, result.ClientRenamed)
	handlers.RespondJSON(w, http.StatusOK, result)
}

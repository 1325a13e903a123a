package list_notifications

import (
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications/models"
)

const msgInvalidUnread = "parâmetro unread inválido"

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

// Handle GET /api/v1/notifications?unread=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	unreadOnly, err := handlers.QueryBool(r, "unread")
	if err != nil {
		h.logger.Warn("GET /notifications - Invalid unread flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnread)
		return
	}

	var result *models.NotificationListResponse
	if unreadOnly {
		result, err = h.service.ListUnread(r.Context())
	} else {
		result, err = h.service.ListAll(r.Context())
	}
	if err != nil {
		h.logger.Error("GET /notifications - Failed to list notifications: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /notifications - Notifications retrieved successfully: count=%d, unread=%d",
		len(result.Notifications), result.Unread)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// ResolveRequest решение администратора по уведомлению
type ResolveRequest struct {
	Accept bool `json:"accept"` // для DUPLICATE_CLIENT_NAME - переименовать клиента в newName
}

// NotificationResponse уведомление панели администратора
type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	Type      string                  `json:"type"`
	Data      domain.NotificationData `json:"data"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"createdAt"`
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Unread        int                    `json:"unread"`
}

// ResolveResponse результат обработки уведомления
type ResolveResponse struct {
	ID            uuid.UUID `json:"id"`
	Accepted      bool      `json:"accepted"`
	ClientRenamed bool      `json:"clientRenamed"`
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.AdminNotification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Data:      n.Data,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(notifications []*domain.AdminNotification) *NotificationListResponse {
	resp := &NotificationListResponse{Notifications: make([]NotificationResponse, 0, len(notifications))}
	for _, n := range notifications {
		if !n.Read {
			resp.Unread++
		}
		if notificationResp := FromDomainNotification(n); notificationResp != nil {
			resp.Notifications = append(resp.Notifications, *notificationResp)
		}
	}
	return resp
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the kind of admin notification
type NotificationType string

const (
	NotificationDuplicateClientName NotificationType = "DUPLICATE_CLIENT_NAME"
	NotificationNewAppointment      NotificationType = "NEW_APPOINTMENT"
)

// ParseNotificationType converts a raw string into a known notification type
func ParseNotificationType(s string) (NotificationType, error) {
	switch t := NotificationType(s); t {
	case NotificationDuplicateClientName, NotificationNewAppointment:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNotificationType, s)
	}
}

// NotificationData payload of an admin notification (stored as JSONB)
type NotificationData struct {
	ClientID      uuid.UUID  `json:"clientId"`
	OldName       string     `json:"oldName,omitempty"`
	NewName       string     `json:"newName,omitempty"`
	AppointmentID *uuid.UUID `json:"appointmentId,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	ClientName    string     `json:"clientName,omitempty"`
	ServiceName   string     `json:"serviceName,omitempty"`
	Timestamp     *time.Time `json:"timestamp,omitempty"`
	EmployeeName  string     `json:"employeeName,omitempty"`
}

// AdminNotification represents an entry of the admin inbox
type AdminNotification struct {
	ID        uuid.UUID
	Type      NotificationType
	Data      NotificationData
	Read      bool
	CreatedAt time.Time
}

// IsNameConflict returns true for duplicate client name notifications
func (n *AdminNotification) IsNameConflict() bool {
	return n.Type == NotificationDuplicateClientName
}

// DeletionLog records the removal of an already performed appointment
type DeletionLog struct {
	ID                 uuid.UUID
	UserEmail          string
	AppointmentDetails AppointmentSnapshot
	Reason             string
	DeletedAt          time.Time
}

// AppointmentSnapshot JSON-снимок удаленной записи
type AppointmentSnapshot struct {
	ID            uuid.UUID  `json:"id"`
	ClientID      *uuid.UUID `json:"clientId,omitempty"`
	ClientName    string     `json:"clientName"`
	EmployeeName  string     `json:"employeeName"`
	ServiceName   string     `json:"serviceName"`
	Timestamp     time.Time  `json:"timestamp"`
	Price         float64    `json:"price"`
	IsPaid        bool       `json:"isPaid"`
	PaymentMethod *string    `json:"paymentMethod,omitempty"`
	Status        string     `json:"status"`
}

// NewAppointmentSnapshot builds a snapshot for the deletion log
func NewAppointmentSnapshot(a *Appointment) AppointmentSnapshot {
	snapshot := AppointmentSnapshot{
		ID:           a.ID,
		ClientID:     a.ClientID,
		ClientName:   a.ClientName,
		EmployeeName: a.EmployeeName,
		ServiceName:  a.ServiceName,
		Timestamp:    a.StartTime,
		Price:        a.Price,
		IsPaid:       a.IsPaid,
		Status:       string(a.Status),
	}
	if a.PaymentMethod != nil {
		method := string(*a.PaymentMethod)
		snapshot.PaymentMethod = &method
	}
	return snapshot
}

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// DeletionLogResponse запись журнала удалений
type DeletionLogResponse struct {
	ID                 uuid.UUID                  `json:"id"`
	UserEmail          string                     `json:"userEmail"`
	AppointmentDetails domain.AppointmentSnapshot `json:"appointmentDetails"`
	Reason             string                     `json:"reason"`
	DeletedAt          time.Time                  `json:"deletedAt"`
}

// DeletionLogListResponse ответ со списком удалений
type DeletionLogListResponse struct {
	Logs []DeletionLogResponse `json:"logs"`
}

// FromDomainDeletionLogList конвертирует список domain моделей в DTO
func FromDomainDeletionLogList(logs []*domain.DeletionLog) *DeletionLogListResponse {
	resp := &DeletionLogListResponse{Logs: make([]DeletionLogResponse, 0, len(logs))}
	for _, l := range logs {
		if l == nil {
			continue
		}
		resp.Logs = append(resp.Logs, DeletionLogResponse{
			ID:                 l.ID,
			UserEmail:          l.UserEmail,
			AppointmentDetails: l.AppointmentDetails,
			Reason:             l.Reason,
			DeletedAt:          l.DeletedAt,
		})
	}
	return resp
}

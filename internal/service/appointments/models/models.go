package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модели

// UpdateCheckpointRequest запрос на закрытие (checkout) записи
type UpdateCheckpointRequest struct {
	Price         *float64          `json:"price"`
	IsPaid        bool              `json:"isPaid"`
	Status        string            `json:"status"`                  // COMPLETED или NO_SHOW
	PaymentMethod *string           `json:"paymentMethod,omitempty"` // по умолчанию Pix
	StartTime     *types.TimeString `json:"startTime,omitempty"`     // новое время в тот же день
	ServiceName   *string           `json:"serviceName,omitempty"`
	EmployeeName  *string           `json:"employeeName,omitempty"`
}

// DeleteRequest запрос на удаление записи
type DeleteRequest struct {
	Password string `json:"password,omitempty"` // обязателен для выполненных записей
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	ClientID        *uuid.UUID `json:"clientId,omitempty"`
	ClientName      string     `json:"clientName"`
	CustomerName    *string    `json:"customerName,omitempty"`
	CustomerPhone   *string    `json:"customerPhone,omitempty"`
	EmployeeName    string     `json:"employeeName"`
	ServiceName     string     `json:"serviceName"`
	Date            string     `json:"date"`      // "2026-10-20"
	StartTime       string     `json:"startTime"` // "14:00"
	Timestamp       time.Time  `json:"timestamp"`
	DurationMinutes int        `json:"durationMinutes"`
	Price           float64    `json:"price"`
	IsPaid          bool       `json:"isPaid"`
	PaymentMethod   *string    `json:"paymentMethod,omitempty"`
	Status          string     `json:"status"`
	Notes           *string    `json:"notes,omitempty"`
	IsLate          bool       `json:"isLate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OverlapWarning предупреждение о пересечении двух записей в агенде
type OverlapWarning struct {
	FirstID          uuid.UUID `json:"firstId"`
	FirstClientName  string    `json:"firstClientName"`
	FirstStartTime   string    `json:"firstStartTime"`
	SecondID         uuid.UUID `json:"secondId"`
	SecondClientName string    `json:"secondClientName"`
	SecondStartTime  string    `json:"secondStartTime"`
}

// AgendaResponse записи одного дня с предупреждениями о пересечениях
type AgendaResponse struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
	Overlaps     []OverlapWarning      `json:"overlaps"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO.
// Дата и время приводятся к локации loc, now нужен для признака опоздания.
func FromDomainAppointment(a *domain.Appointment, loc *time.Location, now time.Time) *AppointmentResponse {
	if a == nil {
		return nil
	}

	local := a.StartTime.In(loc)
	resp := &AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		ClientName:      a.ClientName,
		CustomerName:    a.CustomerName,
		CustomerPhone:   a.CustomerPhone,
		EmployeeName:    a.EmployeeName,
		ServiceName:     a.ServiceName,
		Date:            local.Format(domain.DateFormat),
		StartTime:       types.NewTimeString(local).String(),
		Timestamp:       local,
		DurationMinutes: int(a.Duration() / time.Minute),
		Price:           a.Price,
		IsPaid:          a.IsPaid,
		Status:          string(a.Status),
		Notes:           a.Notes,
		IsLate:          a.IsLate(now),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.PaymentMethod != nil {
		method := string(*a.PaymentMethod)
		resp.PaymentMethod = &method
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, loc *time.Location, now time.Time) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		if resp := FromDomainAppointment(a, loc, now); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

// FromOverlaps конвертирует найденные пересечения в предупреждения
func FromOverlaps(overlaps []availability.Overlap, loc *time.Location) []OverlapWarning {
	result := make([]OverlapWarning, 0, len(overlaps))
	for _, o := range overlaps {
		result = append(result, OverlapWarning{
			FirstID:          o.First.ID,
			FirstClientName:  o.First.ClientName,
			FirstStartTime:   types.NewTimeString(o.First.StartTime.In(loc)).String(),
			SecondID:         o.Second.ID,
			SecondClientName: o.Second.ClientName,
			SecondStartTime:  types.NewTimeString(o.Second.StartTime.In(loc)).String(),
		})
	}
	return result
}

// ToCheckpointStatus конвертирует строку в итоговый статус checkout с валидацией
func ToCheckpointStatus(status string) (domain.AppointmentStatus, error) {
	parsed, err := domain.ParseAppointmentStatus(status)
	if err != nil {
		return "", err
	}
	if parsed != domain.StatusCompleted && parsed != domain.StatusNoShow {
		return "", domain.ErrUnknownStatus
	}
	return parsed, nil
}

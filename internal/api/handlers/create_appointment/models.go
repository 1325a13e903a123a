package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	createAppointment "github.com/m04kA/SMC-BarberService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientName   string  `json:"clientName"`
	Date         string  `json:"date"`      // "2026-10-20"
	StartTime    string  `json:"startTime"` // "14:00"
	ServiceName  string  `json:"serviceName"`
	EmployeeName string  `json:"employeeName"`
	Phone        *string `json:"phone,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	ClientID        uuid.UUID `json:"clientId"`
	ClientCreated   bool      `json:"clientCreated"`
	ClientName      string    `json:"clientName"`
	EmployeeName    string    `json:"employeeName"`
	ServiceName     string    `json:"serviceName"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	CreatedAt       string    `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(loc *time.Location) (*createAppointment.Request, error) {
	date, err := handlers.ParseDate(r.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	return &createAppointment.Request{
		ClientName:   r.ClientName,
		StartTime:    startTime.On(date),
		ServiceName:  r.ServiceName,
		EmployeeName: r.EmployeeName,
		Phone:        r.Phone,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response, loc *time.Location) *AppointmentResponse {
	start := resp.StartTime.In(loc)
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ClientCreated:   resp.ClientCreated,
		ClientName:      resp.ClientName,
		EmployeeName:    resp.EmployeeName,
		ServiceName:     resp.ServiceName,
		Date:            start.Format(domain.DateFormat),
		StartTime:       types.NewTimeString(start).String(),
		DurationMinutes: resp.DurationMinutes,
		Price:           resp.Price,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

package create_public_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	createPublicBooking "github.com/m04kA/SMC-BarberService/internal/usecase/create_public_booking"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// CreatePublicBookingRequest HTTP request model
type CreatePublicBookingRequest struct {
	ServiceID    string  `json:"serviceId"`
	EmployeeID   *string `json:"employeeId,omitempty"`
	Date         string  `json:"date"`      // "2026-10-20"
	StartTime    string  `json:"startTime"` // "14:00"
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	ClientID        uuid.UUID `json:"clientId"`
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
func (r *CreatePublicBookingRequest) ToUseCaseRequest(loc *time.Location) (*createPublicBooking.Request, error) {
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("serviceId: %w", err)
	}

	var employeeID *uuid.UUID
	if r.EmployeeID != nil && *r.EmployeeID != "" {
		parsed, err := uuid.Parse(*r.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("employeeId: %w", err)
		}
		employeeID = &parsed
	}

	date, err := handlers.ParseDate(r.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	return &createPublicBooking.Request{
		ServiceID:    serviceID,
		EmployeeID:   employeeID,
		Date:         date,
		StartTime:    startTime,
		CustomerName: r.CustomerName,
		Phone:        r.Phone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Расхождение имени с карточкой клиента клиенту не показывается.
func FromUseCaseResponse(resp *createPublicBooking.Response, loc *time.Location) *BookingResponse {
	start := resp.StartTime.In(loc)
	return &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
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

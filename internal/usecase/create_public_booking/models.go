package create_public_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

const channel = "public"

// Request модель запроса публичной записи
type Request struct {
	ServiceID    uuid.UUID
	EmployeeID   *uuid.UUID       // если не указан, назначается случайный активный сотрудник
	Date         time.Time        // дата в часовом поясе барбершопа
	StartTime    types.TimeString // HH:MM
	CustomerName string
	Phone        string
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	ClientName      string
	EmployeeName    string
	ServiceName     string
	StartTime       time.Time
	DurationMinutes int
	Price           float64
	Status          string
	NameConflict    bool // имя расходится с уже зарегистрированным клиентом
	CreatedAt       time.Time
}

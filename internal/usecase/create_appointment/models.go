package create_appointment

import (
	"time"

	"github.com/google/uuid"
)

const channel = "admin"

// Request модель запроса на создание записи администратором
type Request struct {
	ClientName   string
	StartTime    time.Time
	ServiceName  string
	EmployeeName string  // пусто - "A definir"
	Phone        *string // заполняет телефон клиента, если его ещё нет
	Notes        *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	ClientCreated   bool
	ClientName      string
	EmployeeName    string
	ServiceName     string
	StartTime       time.Time
	DurationMinutes int
	Price           float64
	Status          string
	CreatedAt       time.Time
}

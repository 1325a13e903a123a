package get_dashboard

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Request модель запроса панели; нулевая дата означает сегодня
type Request struct {
	Date time.Time
}

// Response модель ответа панели администратора
type Response struct {
	Date          time.Time
	Stats         domain.DashboardStats
	Appointments  []*domain.Appointment // записи дня после проверки неявок
	NameConflicts []availability.NameMismatch
	NoShowsMarked int
}

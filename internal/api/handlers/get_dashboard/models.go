package get_dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	appointmentModels "github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
	getDashboard "github.com/m04kA/SMC-BarberService/internal/usecase/get_dashboard"
)

// StatsResponse показатели дня
type StatsResponse struct {
	TotalRevenue          float64            `json:"totalRevenue"`
	TotalAppointments     int                `json:"totalAppointments"`
	CompletedAppointments int                `json:"completedAppointments"`
	PendingPayment        float64            `json:"pendingPayment"`
	RevenueByEmployee     map[string]float64 `json:"revenueByEmployee"`
}

// NameConflictResponse запись с расхождением имени
type NameConflictResponse struct {
	AppointmentID uuid.UUID `json:"appointmentId"`
	ClientID      uuid.UUID `json:"clientId"`
	BookedName    string    `json:"bookedName"`
	ClientName    string    `json:"clientName"`
}

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Date          string                                  `json:"date"`
	Stats         StatsResponse                           `json:"stats"`
	Appointments  []appointmentModels.AppointmentResponse `json:"appointments"`
	NameConflicts []NameConflictResponse                  `json:"nameConflicts"`
	NoShowsMarked int                                     `json:"noShowsMarked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboard.Response, loc *time.Location, now time.Time) *DashboardResponse {
	byEmployee := resp.Stats.RevenueByEmployee
	if byEmployee == nil {
		byEmployee = map[string]float64{}
	}

	conflicts := make([]NameConflictResponse, 0, len(resp.NameConflicts))
	for _, c := range resp.NameConflicts {
		conflicts = append(conflicts, NameConflictResponse{
			AppointmentID: c.AppointmentID,
			ClientID:      c.ClientID,
			BookedName:    c.BookedName,
			ClientName:    c.ClientName,
		})
	}

	return &DashboardResponse{
		Date: resp.Date.In(loc).Format(domain.DateFormat),
		Stats: StatsResponse{
			TotalRevenue:          resp.Stats.TotalRevenue,
			TotalAppointments:     resp.Stats.TotalAppointments,
			CompletedAppointments: resp.Stats.CompletedAppointments,
			PendingPayment:        resp.Stats.PendingPayment,
			RevenueByEmployee:     byEmployee,
		},
		Appointments:  appointmentModels.FromDomainAppointmentList(resp.Appointments, loc, now),
		NameConflicts: conflicts,
		NoShowsMarked: resp.NoShowsMarked,
	}
}

package get_dashboard

import "github.com/m04kA/SMC-BarberService/internal/domain"

// calculateStats считает показатели дня.
// Отмененные записи не учитываются; неоплаченные неявки не попадают в ожидаемую оплату.
func calculateStats(appointments []*domain.Appointment) domain.DashboardStats {
	stats := domain.DashboardStats{RevenueByEmployee: map[string]float64{}}

	for _, a := range appointments {
		if a.IsCanceled() {
			continue
		}

		stats.TotalAppointments++
		if a.Status == domain.StatusCompleted {
			stats.CompletedAppointments++
		}

		switch {
		case a.IsPaid:
			stats.TotalRevenue += a.Price
			employee := a.EmployeeName
			if employee == "" {
				employee = domain.UnknownEmployee
			}
			stats.RevenueByEmployee[employee] += a.Price
		case a.Status != domain.StatusNoShow:
			stats.PendingPayment += a.Price
		}
	}

	return stats
}

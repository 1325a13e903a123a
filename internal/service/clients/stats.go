package clients

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// calculateStats считает посещаемость и траты клиента.
// Траты учитывают оплаченные записи текущего месяца и года в локации now.
func calculateStats(appointments []*domain.Appointment, now time.Time) domain.ClientStats {
	stats := domain.ClientStats{History: make([]*domain.Appointment, 0, len(appointments))}
	year, month, _ := now.Date()

	for _, a := range appointments {
		switch a.Status {
		case domain.StatusCompleted:
			stats.CompletedCount++
		case domain.StatusNoShow:
			stats.NoShowCount++
		}

		if a.IsPaid {
			y, m, _ := a.StartTime.In(now.Location()).Date()
			if y == year {
				stats.SpentYear += a.Price
				if m == month {
					stats.SpentMonth += a.Price
				}
			}
		}

		stats.History = append(stats.History, a)
	}

	sort.SliceStable(stats.History, func(i, j int) bool {
		return stats.History[i].StartTime.After(stats.History[j].StartTime)
	})

	return stats
}

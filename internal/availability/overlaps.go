package availability

import (
	"sort"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Overlap пара записей, реальные интервалы которых пересекаются
type Overlap struct {
	First  *domain.Appointment
	Second *domain.Appointment
}

// FindOverlaps возвращает пары неотмененных записей дня с пересекающимися
// интервалами [start, start+duration). Результат только информационный,
// прием записей он не ограничивает.
func FindOverlaps(day []*domain.Appointment) []Overlap {
	active := make([]*domain.Appointment, 0, len(day))
	for _, a := range day {
		if a != nil && a.OccupiesSlot() {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].StartTime.Before(active[j].StartTime)
	})

	result := make([]Overlap, 0)
	for i := range active {
		current := AppointmentInterval(active[i])
		for j := i + 1; j < len(active); j++ {
			next := AppointmentInterval(active[j])
			if !next.Start.Before(current.End) {
				break
			}
			if current.Overlaps(next) {
				result = append(result, Overlap{First: active[i], Second: active[j]})
			}
		}
	}
	return result
}

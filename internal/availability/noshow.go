package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// SweepNoShows переводит в NO_SHOW запланированные записи, опоздавшие больше чем на 15 минут.
//
// Входной срез не изменяется: возвращается новый снимок и ID измененных записей.
// Повторный вызов на результате ничего не меняет.
func SweepNoShows(appointments []*domain.Appointment, now time.Time) ([]*domain.Appointment, []uuid.UUID) {
	result := make([]*domain.Appointment, 0, len(appointments))
	changed := make([]uuid.UUID, 0)

	for _, a := range appointments {
		if a == nil {
			continue
		}
		copied := *a
		if copied.IsLate(now) {
			copied.MarkNoShow()
			changed = append(changed, copied.ID)
		}
		result = append(result, &copied)
	}

	return result, changed
}

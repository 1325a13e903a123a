package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Interval полуинтервал времени [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал длительностью d, начиная со start
func NewInterval(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

// AppointmentInterval возвращает занятый записью интервал
func AppointmentInterval(a *domain.Appointment) Interval {
	return NewInterval(a.StartTime, a.Duration())
}

// Contains проверяет Start <= t < End
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// ContainsEnd проверяет Start < t <= End.
// Используется для конца другого интервала: конец, совпадающий со Start, пересечением не считается.
func (i Interval) ContainsEnd(t time.Time) bool {
	return t.After(i.Start) && !t.After(i.End)
}

// Overlaps проверяет пересечение двух полуинтервалов.
// Соприкасающиеся интервалы не пересекаются.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Duration возвращает длину интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

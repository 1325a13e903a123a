package domain

import "time"

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay возвращает полночь дня t в его локации
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayRange возвращает полуинтервал [начало дня, начало следующего дня)
func DayRange(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	return StartOfDay(date).Before(StartOfDay(now.In(date.Location())))
}

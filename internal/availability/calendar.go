package availability

import "time"

// IsPublicBookingDay возвращает true для дней самозаписи: со вторника по субботу
func IsPublicBookingDay(date time.Time) bool {
	switch date.Weekday() {
	case time.Sunday, time.Monday:
		return false
	default:
		return true
	}
}

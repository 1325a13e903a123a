package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPublicBookingDay(t *testing.T) {
	// 2026-10-18 - воскресенье
	sunday := time.Date(2026, 10, 18, 0, 0, 0, 0, brt)

	want := map[time.Weekday]bool{
		time.Sunday:    false,
		time.Monday:    false,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
		time.Saturday:  true,
	}

	for i := 0; i < 7; i++ {
		day := sunday.AddDate(0, 0, i)
		assert.Equal(t, want[day.Weekday()], IsPublicBookingDay(day), day.Weekday().String())
	}
}

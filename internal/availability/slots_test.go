package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

func TestGenerateSlots_EmptyFutureDay(t *testing.T) {
	day := at(0, 0)
	now := day.AddDate(0, 0, -3)

	slots := GenerateSlots(day, nil, now)

	require.Len(t, slots, 18)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("17:30"), slots[17])
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))
	}
}

func TestGenerateSlots_TodaySkipsPast(t *testing.T) {
	day := at(0, 0)
	now := at(13, 10).Add(25 * time.Second)

	slots := GenerateSlots(day, nil, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("13:30"), slots[0])
	current := types.NewTimeString(now.Truncate(time.Minute))
	for _, s := range slots {
		assert.False(t, s.IsBefore(current), "slot %s is in the past", s)
	}
}

func TestGenerateSlots_TodayExactSlotStart(t *testing.T) {
	day := at(0, 0)

	slots := GenerateSlots(day, nil, at(13, 0))

	assert.Equal(t, types.TimeString("13:00"), slots[0])
}

func TestGenerateSlots_AfterLastSlot(t *testing.T) {
	day := at(0, 0)

	assert.Empty(t, GenerateSlots(day, nil, at(17, 45)))
}

func TestGenerateSlots_PastDay(t *testing.T) {
	day := at(0, 0)

	// вчерашний день не является "сегодня", фильтрация прошлых дат на стороне вызывающего
	assert.Len(t, GenerateSlots(day.AddDate(0, 0, -1), nil, at(12, 0)), 18)
}

func TestGenerateSlots_ExcludesOccupied(t *testing.T) {
	day := at(0, 0)
	now := day.AddDate(0, 0, -1)
	bookings := []*domain.Appointment{booking(at(10, 0), 30, domain.StatusScheduled)}

	slots := GenerateSlots(day, bookings, now)

	assert.NotContains(t, slots, types.TimeString("10:00"))
	assert.Contains(t, slots, types.TimeString("09:30"))
	assert.Contains(t, slots, types.TimeString("10:30"))
	assert.Len(t, slots, 17)
}

func TestGenerateSlots_LongBooking(t *testing.T) {
	day := at(0, 0)
	now := day.AddDate(0, 0, -1)
	bookings := []*domain.Appointment{booking(at(10, 0), 60, domain.StatusCompleted)}

	slots := GenerateSlots(day, bookings, now)

	assert.NotContains(t, slots, types.TimeString("10:00"))
	assert.NotContains(t, slots, types.TimeString("10:30"))
	assert.Contains(t, slots, types.TimeString("11:00"))
}

func TestGenerateSlots_OffGridBooking(t *testing.T) {
	day := at(0, 0)
	now := day.AddDate(0, 0, -1)
	// [10:15, 10:45) задевает окна 10:00 (конец) и 10:30 (начало)
	bookings := []*domain.Appointment{booking(at(10, 15), 30, domain.StatusScheduled)}

	slots := GenerateSlots(day, bookings, now)

	assert.NotContains(t, slots, types.TimeString("10:00"))
	assert.NotContains(t, slots, types.TimeString("10:30"))
	assert.Contains(t, slots, types.TimeString("11:00"))
}

func TestGenerateSlots_ShortBookingInsideWindowIsNotDetected(t *testing.T) {
	day := at(0, 0)
	now := day.AddDate(0, 0, -1)
	// [10:10, 10:20) строго внутри окна [10:00, 10:30): ни начало, ни конец окна не попадают
	bookings := []*domain.Appointment{booking(at(10, 10), 10, domain.StatusScheduled)}

	slots := GenerateSlots(day, bookings, now)

	assert.Contains(t, slots, types.TimeString("10:00"))
	assert.Len(t, slots, 18)
}

func TestGenerateSlots_IgnoresCanceledAndOtherDays(t *testing.T) {
	day := at(0, 0)
	now := day.AddDate(0, 0, -1)
	bookings := []*domain.Appointment{
		booking(at(10, 0), 30, domain.StatusCanceled),
		booking(at(11, 0).AddDate(0, 0, 1), 30, domain.StatusScheduled),
	}

	assert.Len(t, GenerateSlots(day, bookings, now), 18)
}

func TestGenerateSlots_NoShowStillOccupies(t *testing.T) {
	day := at(0, 0)
	now := day.AddDate(0, 0, -1)
	bookings := []*domain.Appointment{booking(at(15, 0), 30, domain.StatusNoShow)}

	assert.NotContains(t, GenerateSlots(day, bookings, now), types.TimeString("15:00"))
}

func TestGenerateSlots_BookingInUTC(t *testing.T) {
	day := at(0, 0)
	now := day.AddDate(0, 0, -1)
	// 13:00 UTC = 10:00 BRT
	bookings := []*domain.Appointment{
		booking(time.Date(2026, 10, 20, 13, 0, 0, 0, time.UTC), 30, domain.StatusScheduled),
	}

	assert.NotContains(t, GenerateSlots(day, bookings, now), types.TimeString("10:00"))
}

func TestIsSlotAvailable(t *testing.T) {
	day := at(0, 0)
	now := day.AddDate(0, 0, -1)
	bookings := []*domain.Appointment{booking(at(10, 0), 30, domain.StatusScheduled)}

	assert.False(t, IsSlotAvailable("10:00", day, bookings, now))
	assert.True(t, IsSlotAvailable("10:30", day, bookings, now))
	assert.False(t, IsSlotAvailable("10:15", day, bookings, now))
}

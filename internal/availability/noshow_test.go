package availability

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

func TestSweepNoShows(t *testing.T) {
	now := at(12, 0)
	pix := domain.PaymentPix

	late := booking(now.Add(-20*time.Minute), 30, domain.StatusScheduled)
	late.IsPaid = true
	late.PaymentMethod = &pix
	recent := booking(now.Add(-10*time.Minute), 30, domain.StatusScheduled)
	completed := booking(now.Add(-2*time.Hour), 30, domain.StatusCompleted)
	canceled := booking(now.Add(-2*time.Hour), 30, domain.StatusCanceled)

	input := []*domain.Appointment{late, recent, completed, canceled}
	swept, changed := SweepNoShows(input, now)

	require.Len(t, swept, 4)
	assert.Equal(t, []uuid.UUID{late.ID}, changed)

	assert.Equal(t, domain.StatusNoShow, swept[0].Status)
	assert.False(t, swept[0].IsPaid)
	assert.Nil(t, swept[0].PaymentMethod)
	assert.Equal(t, domain.StatusScheduled, swept[1].Status)
	assert.Equal(t, domain.StatusCompleted, swept[2].Status)
	assert.Equal(t, domain.StatusCanceled, swept[3].Status)

	// исходный снимок не меняется
	assert.Equal(t, domain.StatusScheduled, late.Status)
	assert.True(t, late.IsPaid)
}

func TestSweepNoShows_Idempotent(t *testing.T) {
	now := at(12, 0)
	input := []*domain.Appointment{
		booking(now.Add(-20*time.Minute), 30, domain.StatusScheduled),
		booking(now.Add(-10*time.Minute), 30, domain.StatusScheduled),
	}

	once, _ := SweepNoShows(input, now)
	twice, changed := SweepNoShows(once, now)

	assert.Empty(t, changed)
	require.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, *once[i], *twice[i])
	}
}

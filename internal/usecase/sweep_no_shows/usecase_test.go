package sweep_no_shows

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

var now = time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return now }

// fakeAppointments хранит записи в памяти и применяет фильтр как репозиторий
type fakeAppointments struct {
	items   map[uuid.UUID]*domain.Appointment
	filter  domain.AppointmentsFilter
	markErr error
}

func (f *fakeAppointments) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.filter = filter
	result := make([]*domain.Appointment, 0)
	for _, a := range f.items {
		if a.Status != domain.StatusScheduled {
			continue
		}
		if filter.StartedBefore != nil && !a.StartTime.Before(*filter.StartedBefore) {
			continue
		}
		copied := *a
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeAppointments) MarkNoShow(_ context.Context, ids []uuid.UUID) (int64, error) {
	if f.markErr != nil {
		return 0, f.markErr
	}
	var n int64
	for _, id := range ids {
		if a, ok := f.items[id]; ok && a.Status == domain.StatusScheduled {
			a.MarkNoShow()
			n++
		}
	}
	return n, nil
}

type fakeTx struct{ calls int }

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMetrics struct{ marked int }

func (f *fakeMetrics) NoShowsMarked(n int) { f.marked += n }

func newRepo(appointments ...*domain.Appointment) *fakeAppointments {
	repo := &fakeAppointments{items: map[uuid.UUID]*domain.Appointment{}}
	for _, a := range appointments {
		repo.items[a.ID] = a
	}
	return repo
}

func scheduled(start time.Time) *domain.Appointment {
	return &domain.Appointment{ID: uuid.New(), StartTime: start, DurationMinutes: 30, Status: domain.StatusScheduled}
}

func TestExecute(t *testing.T) {
	late := scheduled(now.Add(-20 * time.Minute))
	recent := scheduled(now.Add(-10 * time.Minute))
	repo := newRepo(late, recent)
	tx := &fakeTx{}
	metrics := &fakeMetrics{}

	uc := NewUseCase(repo, tx, metrics, logger.NewNop())
	uc.timeProvider = fixedClock{}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Marked)
	assert.Equal(t, []uuid.UUID{late.ID}, resp.IDs)
	assert.Equal(t, domain.StatusNoShow, repo.items[late.ID].Status)
	assert.Equal(t, domain.StatusScheduled, repo.items[recent.ID].Status)
	assert.Equal(t, 1, metrics.marked)
	require.NotNil(t, repo.filter.StartedBefore)
	assert.Equal(t, now.Add(-15*time.Minute), *repo.filter.StartedBefore)

	// второй запуск ничего не меняет
	resp, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.Marked)
	assert.Empty(t, resp.IDs)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, domain.StatusNoShow, repo.items[late.ID].Status)
}

func TestExecute_MarkError(t *testing.T) {
	repo := newRepo(scheduled(now.Add(-time.Hour)))
	repo.markErr = errors.New("deadlock detected")

	uc := NewUseCase(repo, &fakeTx{}, &fakeMetrics{}, logger.NewNop())
	uc.timeProvider = fixedClock{}

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

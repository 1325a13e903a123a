package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sweepNoShows "github.com/m04kA/SMC-BarberService/internal/usecase/sweep_no_shows"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeSweeper struct {
	calls atomic.Int32
	err   error
}

func (f *fakeSweeper) Execute(ctx context.Context) (*sweepNoShows.Response, error) {
	f.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("sweep must run with a deadline")
	}
	if f.err != nil {
		return nil, f.err
	}
	return &sweepNoShows.Response{CheckedAt: time.Now(), Marked: 2}, nil
}

func TestNewNoShowJob_InvalidSchedule(t *testing.T) {
	_, err := NewNoShowJob("every five minutes", &fakeSweeper{}, time.UTC, logger.NewNop())
	assert.Error(t, err)
}

func TestNoShowJob_Run(t *testing.T) {
	sweeper := &fakeSweeper{}
	job, err := NewNoShowJob("*/5 * * * *", sweeper, time.UTC, logger.NewNop())
	require.NoError(t, err)

	job.Run()
	assert.Equal(t, int32(1), sweeper.calls.Load())

	// ошибка прогона только логируется
	sweeper.err = errors.New("db down")
	job.Run()
	assert.Equal(t, int32(2), sweeper.calls.Load())
}

func TestNoShowJob_StartStop(t *testing.T) {
	job, err := NewNoShowJob("@every 1h", &fakeSweeper{}, time.UTC, logger.NewNop())
	require.NoError(t, err)

	job.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, job.Stop(ctx))
}

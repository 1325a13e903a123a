package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	sweepNoShows "github.com/m04kA/SMC-BarberService/internal/usecase/sweep_no_shows"
)

// runTimeout ограничение на один прогон проверки неявок
const runTimeout = 30 * time.Second

// Sweeper перевод опоздавших записей в NO_SHOW
type Sweeper interface {
	Execute(ctx context.Context) (*sweepNoShows.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NoShowJob периодическая проверка неявок по cron-расписанию.
// Пропускает запуск, если предыдущий прогон ещё не закончился.
type NoShowJob struct {
	cron    *cron.Cron
	sweeper Sweeper
	logger  Logger
}

// NewNoShowJob создает задачу; расписание в стандартном 5-польном формате cron
func NewNoShowJob(schedule string, sweeper Sweeper, location *time.Location, logger Logger) (*NoShowJob, error) {
	job := &NoShowJob{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		sweeper: sweeper,
		logger:  logger,
	}

	if _, err := job.cron.AddFunc(schedule, job.Run); err != nil {
		return nil, fmt.Errorf("invalid no-show schedule %q: %w", schedule, err)
	}

	return job, nil
}

// Start запускает планировщик в фоне
func (j *NoShowJob) Start() {
	j.cron.Start()
	j.logger.Info("NoShowJob: scheduler started")
}

// Stop останавливает планировщик и ждет завершения текущего прогона
func (j *NoShowJob) Stop(ctx context.Context) error {
	done := j.cron.Stop()
	select {
	case <-done.Done():
		j.logger.Info("NoShowJob: scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("no-show scheduler stop: %w", ctx.Err())
	}
}

// Run выполняет один прогон проверки
func (j *NoShowJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	resp, err := j.sweeper.Execute(ctx)
	if err != nil {
		j.logger.Error("NoShowJob: sweep failed: %v", err)
		return
	}
	if resp.Marked > 0 {
		j.logger.Info("NoShowJob: marked %d appointments as no-show", resp.Marked)
	}
}

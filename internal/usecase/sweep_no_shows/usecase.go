package sweep_no_shows

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// UseCase use case перевода опоздавших записей в NO_SHOW
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute находит SCHEDULED записи старше допуска и сохраняет их как NO_SHOW.
// Повторный запуск ничего не меняет.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	cutoff := now.Add(-domain.NoShowTolerance)

	candidates, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		Statuses:      []domain.AppointmentStatus{domain.StatusScheduled},
		StartedBefore: &cutoff,
	})
	if err != nil {
		uc.logger.Error("SweepNoShows: failed to get scheduled appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	_, changed := availability.SweepNoShows(candidates, now)
	if len(changed) == 0 {
		return &Response{CheckedAt: now, IDs: []uuid.UUID{}}, nil
	}

	var marked int64
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		n, err := uc.appointmentRepo.MarkNoShow(txCtx, changed)
		if err != nil {
			return err
		}
		marked = n
		return nil
	})
	if err != nil {
		uc.logger.Error("SweepNoShows: failed to mark %d appointments: %v", len(changed), err)
		return nil, fmt.Errorf("%w: failed to mark no-shows: %v", ErrInternal, err)
	}

	uc.metrics.NoShowsMarked(int(marked))
	uc.logger.Info("SweepNoShows: marked %d of %d late appointments as no-show", marked, len(changed))

	return &Response{CheckedAt: now, Marked: int(marked), IDs: changed}, nil
}

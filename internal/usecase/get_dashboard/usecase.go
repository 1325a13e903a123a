package get_dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// UseCase use case панели администратора
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	sweeper         NoShowSweeper
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	sweeper NoShowSweeper,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		sweeper:         sweeper,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает показатели дня и текущие расхождения имен.
// Проверка неявок выполняется до подсчета: иначе опоздавшая запись попала бы в ожидаемую оплату.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := uc.timeProvider.Now()
	if req != nil && !req.Date.IsZero() {
		date = req.Date
	}
	date = domain.StartOfDay(date.In(uc.location))

	uc.logger.Info("GetDashboard: date=%s", date.Format(domain.DateFormat))

	// 1. Неявки
	sweep, err := uc.sweeper.Execute(ctx)
	if err != nil {
		uc.logger.Error("GetDashboard: no-show sweep failed: %v", err)
		return nil, fmt.Errorf("%w: no-show sweep: %v", ErrInternal, err)
	}

	// 2. Записи дня (с отмененными, чтобы показать их в списке)
	filter := domain.DayFilter(date)
	filter.IncludeCanceled = true
	appointments, err := uc.appointmentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Клиенты (включая удаленных: у старых записей должна остаться ссылка)
	clients, err := uc.clientRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get clients: %v", err)
		return nil, fmt.Errorf("%w: failed to get clients: %v", ErrInternal, err)
	}

	stats := calculateStats(appointments)
	conflicts := availability.DetectNameMismatches(appointments, clients)

	if len(conflicts) > 0 {
		uc.logger.Warn("GetDashboard: %d name conflicts on %s", len(conflicts), date.Format(domain.DateFormat))
	}

	return &Response{
		Date:          date,
		Stats:         stats,
		Appointments:  appointments,
		NameConflicts: conflicts,
		NoShowsMarked: sweep.Marked,
	}, nil
}

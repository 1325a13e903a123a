package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// UseCase use case для получения свободных слотов публичной записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.StartOfDay(req.Date.In(uc.location))
	now := uc.timeProvider.Now().In(uc.location)

	uc.logger.Info("GetAvailableSlots: date=%s", date.Format(domain.DateFormat))

	// 2. Прошедшие даты не показываем
	if err := validateDate(date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Выходные дни (воскресенье, понедельник)
	if !availability.IsPublicBookingDay(date) {
		uc.logger.Info("GetAvailableSlots: closed on %s", date.Format(domain.DateFormat))
		return &Response{Date: date, Open: false, Slots: []types.TimeString{}}, nil
	}

	// 4. Записи дня (без отмененных)
	bookings, err := uc.appointmentRepo.List(ctx, domain.DayFilter(date))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Генерация слотов
	slots := availability.GenerateSlots(date, bookings, now)

	uc.logger.Info("GetAvailableSlots: %d free slots on %s (%d appointments)",
		len(slots), date.Format(domain.DateFormat), len(bookings))

	return &Response{Date: date, Open: true, Slots: slots}, nil
}

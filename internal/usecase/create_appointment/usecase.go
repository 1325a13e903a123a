package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	clientRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/client"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

// UseCase use case создания записи администратором
type UseCase struct {
	appointmentRepo AppointmentRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	metrics         Metrics
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		metrics:         metrics,
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Длительность всегда 30 минут, цена 0: итоговая цена выставляется на чекпоинте.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	name := strings.TrimSpace(req.ClientName)
	start := req.StartTime.In(uc.location).Truncate(time.Minute)
	employeeName := strings.TrimSpace(req.EmployeeName)
	if employeeName == "" {
		employeeName = domain.UnassignedEmployee
	}

	uc.logger.Info("CreateAppointment: client=%q, start=%s, service=%q, employee=%q",
		name, start.Format(time.RFC3339), req.ServiceName, employeeName)

	var (
		result        *domain.Appointment
		client        *domain.Client
		clientCreated bool
	)

	// 2. Проверка и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.appointmentRepo.List(txCtx, domain.DayFilter(start))
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if err := availability.ValidateNewBooking(start, domain.DefaultDurationMinutes, bookings); err != nil {
			uc.logger.Warn("CreateAppointment: booking rejected: %v", err)
			switch {
			case errors.Is(err, availability.ErrOutOfHours):
				uc.metrics.BookingRejected(channel, "out_of_hours")
				return ErrOutOfHours
			case errors.Is(err, availability.ErrCapacityExceeded):
				uc.metrics.BookingRejected(channel, "capacity_exceeded")
				return ErrCapacityExceeded
			default:
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
		}

		client, clientCreated, err = uc.resolveClient(txCtx, name, req.Phone)
		if err != nil {
			return err
		}

		appointment := &domain.Appointment{
			ClientID:        ptr.Ptr(client.ID),
			ClientName:      name,
			EmployeeName:    employeeName,
			ServiceName:     strings.TrimSpace(req.ServiceName),
			StartTime:       start,
			DurationMinutes: domain.DefaultDurationMinutes,
			Price:           0,
			IsPaid:          false,
			Status:          domain.StatusScheduled,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingCreated(channel)
	uc.logger.Info("CreateAppointment: created appointment id=%s for client id=%s", result.ID, client.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        client.ID,
		ClientCreated:   clientCreated,
		ClientName:      result.ClientName,
		EmployeeName:    result.EmployeeName,
		ServiceName:     result.ServiceName,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Price:           result.Price,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
	}, nil
}

// resolveClient ищет клиента по имени без учета регистра или создает нового.
// Телефон дописывается найденному клиенту, только если у него телефона ещё нет.
func (uc *UseCase) resolveClient(ctx context.Context, name string, phone *string) (*domain.Client, bool, error) {
	phoneValue := strings.TrimSpace(ptr.Deref(phone))

	client, err := uc.clientRepo.FindByName(ctx, name)
	switch {
	case err == nil:
		if phoneValue != "" && !client.HasPhone() {
			if err := uc.clientRepo.UpdatePhone(ctx, client.ID, phoneValue); err != nil {
				return nil, false, uc.clientError("update phone", err)
			}
			client.Phone = phoneValue
		}
		return client, false, nil
	case errors.Is(err, clientRepo.ErrClientNotFound):
		created, err := uc.clientRepo.Create(ctx, &domain.Client{Name: name, Phone: phoneValue})
		if err != nil {
			return nil, false, uc.clientError("create client", err)
		}
		uc.logger.Info("CreateAppointment: created client id=%s", created.ID)
		return created, true, nil
	default:
		return nil, false, uc.clientError("find client", err)
	}
}

func (uc *UseCase) clientError(op string, err error) error {
	if errors.Is(err, clientRepo.ErrDuplicatePhone) {
		uc.logger.Warn("CreateAppointment: %s: phone already registered", op)
		return ErrPhoneTaken
	}
	uc.logger.Error("CreateAppointment: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}

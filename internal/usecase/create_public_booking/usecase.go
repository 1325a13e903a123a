package create_public_booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/client"
	employeeRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

// UseCase use case публичной самозаписи
type UseCase struct {
	appointmentRepo  AppointmentRepository
	clientRepo       ClientRepository
	serviceRepo      ServiceRepository
	employeeRepo     EmployeeRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	metrics          Metrics
	location         *time.Location
	timeProvider     TimeProvider
	randIntN         func(n int) int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	clientRepo ClientRepository,
	serviceRepo ServiceRepository,
	employeeRepo EmployeeRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		clientRepo:       clientRepo,
		serviceRepo:      serviceRepo,
		employeeRepo:     employeeRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		metrics:          metrics,
		location:         location,
		timeProvider:     &RealTimeProvider{},
		randIntN:         rand.IntN,
		logger:           logger,
	}
}

// Execute выполняет use case публичной записи.
//
// Клиент ищется по телефону до транзакции: конфликт уникальности в PostgreSQL
// прерывает транзакцию, а повторный поиск должен выполниться.
// Проверка слота и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePublicBooking: validation failed: %v", err)
		return nil, err
	}

	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.Phone)
	date := domain.StartOfDay(req.Date.In(uc.location))
	now := uc.timeProvider.Now().In(uc.location)
	start := req.StartTime.On(date)

	uc.logger.Info("CreatePublicBooking: service=%s, date=%s, time=%s",
		req.ServiceID, date.Format(domain.DateFormat), req.StartTime)

	// 2. Услуга
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreatePublicBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreatePublicBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("CreatePublicBooking: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Выбранный сотрудник
	var employee *domain.Employee
	if req.EmployeeID != nil {
		employee, err = uc.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
				uc.logger.Warn("CreatePublicBooking: employee id=%s not found", *req.EmployeeID)
				return nil, ErrEmployeeNotFound
			}
			uc.logger.Error("CreatePublicBooking: failed to get employee id=%s: %v", *req.EmployeeID, err)
			return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
		}
		if !employee.Active {
			uc.logger.Warn("CreatePublicBooking: employee id=%s is inactive", *req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
	}

	// 4. Дата
	if domain.IsDateInPast(date, now) {
		uc.reject("invalid_date")
		return nil, ErrInvalidDate
	}
	if !availability.IsPublicBookingDay(date) {
		uc.logger.Warn("CreatePublicBooking: closed on %s", date.Format(domain.DateFormat))
		uc.reject("day_closed")
		return nil, ErrDayClosed
	}

	// 5. Предварительная проверка слота (до создания клиента)
	bookings, err := uc.appointmentRepo.List(ctx, domain.DayFilter(date))
	if err != nil {
		uc.logger.Error("CreatePublicBooking: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	if err := uc.checkSlot(req, date, start, now, service.DurationMinutes, bookings); err != nil {
		return nil, err
	}

	// 6. Клиент по телефону
	client, err := uc.resolveClient(ctx, name, phone)
	if err != nil {
		return nil, err
	}
	nameConflict := !domain.NamesMatch(client.Name, name)

	// 7. Сотрудник: выбранный, случайный активный или "A definir"
	employeeName, err := uc.pickEmployee(ctx, employee)
	if err != nil {
		return nil, err
	}

	var result *domain.Appointment

	// 8. Повторная проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		bookings, err := uc.appointmentRepo.List(txCtx, domain.DayFilter(date))
		if err != nil {
			uc.logger.Error("CreatePublicBooking: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
		if err := uc.checkSlot(req, date, start, now, service.DurationMinutes, bookings); err != nil {
			return err
		}

		appointment := &domain.Appointment{
			ClientID:        ptr.Ptr(client.ID),
			ClientName:      name,
			CustomerName:    ptr.Ptr(name),
			CustomerPhone:   ptr.Ptr(phone),
			EmployeeName:    employeeName,
			ServiceName:     service.Name,
			StartTime:       start,
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,
			IsPaid:          false,
			Status:          domain.StatusScheduled,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreatePublicBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		if nameConflict {
			uc.logger.Warn("CreatePublicBooking: name conflict for client id=%s: %q vs %q",
				client.ID, client.Name, name)
			if err := uc.notify(txCtx, domain.NotificationDuplicateClientName, domain.NotificationData{
				ClientID:      client.ID,
				OldName:       client.Name,
				NewName:       name,
				AppointmentID: ptr.Ptr(created.ID),
				Phone:         phone,
			}); err != nil {
				return err
			}
		}

		if err := uc.notify(txCtx, domain.NotificationNewAppointment, domain.NotificationData{
			ClientID:      client.ID,
			AppointmentID: ptr.Ptr(created.ID),
			ClientName:    name,
			ServiceName:   service.Name,
			Timestamp:     ptr.Ptr(created.StartTime),
			EmployeeName:  employeeName,
			Phone:         phone,
		}); err != nil {
			return err
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingCreated(channel)
	uc.logger.Info("CreatePublicBooking: created appointment id=%s at %s for client id=%s",
		result.ID, result.StartTime.Format(time.RFC3339), client.ID)

	return &Response{
		ID:              result.ID,
		ClientID:        client.ID,
		ClientName:      result.ClientName,
		EmployeeName:    result.EmployeeName,
		ServiceName:     result.ServiceName,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Price:           result.Price,
		Status:          string(result.Status),
		NameConflict:    nameConflict,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// checkSlot проверяет, что время входит в свободные слоты и проходит валидатор записи
func (uc *UseCase) checkSlot(
	req *Request,
	date, start, now time.Time,
	durationMinutes int,
	bookings []*domain.Appointment,
) error {
	if !availability.IsSlotAvailable(req.StartTime, date, bookings, now) {
		uc.logger.Warn("CreatePublicBooking: slot %s %s not available", date.Format(domain.DateFormat), req.StartTime)
		uc.reject("slot_not_available")
		return ErrSlotNotAvailable
	}

	if err := availability.ValidateNewBooking(start, durationMinutes, bookings); err != nil {
		uc.logger.Warn("CreatePublicBooking: booking rejected: %v", err)
		switch {
		case errors.Is(err, availability.ErrOutOfHours):
			uc.reject("out_of_hours")
			return ErrOutOfHours
		case errors.Is(err, availability.ErrCapacityExceeded):
			uc.reject("capacity_exceeded")
			return ErrCapacityExceeded
		default:
			uc.reject("invalid_duration")
			return fmt.Errorf("%w: service duration: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// resolveClient находит клиента по телефону (как введен или только цифры) или создает нового.
// При гонке на уникальности телефона выполняется один повторный поиск.
func (uc *UseCase) resolveClient(ctx context.Context, name, phone string) (*domain.Client, error) {
	digits := domain.DigitsOnly(phone)

	client, err := uc.clientRepo.FindByPhone(ctx, phone, digits)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		uc.logger.Error("CreatePublicBooking: failed to find client by phone: %v", err)
		return nil, fmt.Errorf("%w: failed to find client: %v", ErrInternal, err)
	}

	client, err = uc.clientRepo.Create(ctx, &domain.Client{Name: name, Phone: phone})
	if err == nil {
		uc.logger.Info("CreatePublicBooking: created client id=%s", client.ID)
		return client, nil
	}
	if !errors.Is(err, clientRepo.ErrDuplicatePhone) {
		uc.logger.Error("CreatePublicBooking: failed to create client: %v", err)
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}

	uc.logger.Warn("CreatePublicBooking: phone registered concurrently, retrying lookup")
	client, err = uc.clientRepo.FindByPhone(ctx, phone, digits)
	if err != nil {
		uc.logger.Error("CreatePublicBooking: client lookup retry failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrClientResolution, err)
	}

	return client, nil
}

func (uc *UseCase) pickEmployee(ctx context.Context, selected *domain.Employee) (string, error) {
	if selected != nil {
		return selected.Name, nil
	}

	employees, err := uc.employeeRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("CreatePublicBooking: failed to list employees: %v", err)
		return "", fmt.Errorf("%w: failed to list employees: %v", ErrInternal, err)
	}
	if len(employees) == 0 {
		return domain.UnassignedEmployee, nil
	}

	return employees[uc.randIntN(len(employees))].Name, nil
}

func (uc *UseCase) notify(ctx context.Context, nType domain.NotificationType, data domain.NotificationData) error {
	if _, err := uc.notificationRepo.Create(ctx, &domain.AdminNotification{Type: nType, Data: data}); err != nil {
		uc.logger.Error("CreatePublicBooking: failed to create %s notification: %v", nType, err)
		return fmt.Errorf("%w: failed to create notification: %v", ErrInternal, err)
	}
	return nil
}

func (uc *UseCase) reject(reason string) {
	uc.metrics.BookingRejected(channel, reason)
}

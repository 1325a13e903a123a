package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/infra/auth"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
)

// DeletionReason причина, записываемая в журнал при удалении выполненной записи
const DeletionReason = "Exclusão manual de agendamento realizado"

// Service сервис для работы с записями агенды
type Service struct {
	appointmentRepo  AppointmentRepository
	deletionLogRepo  DeletionLogRepository
	txManager        TransactionManager
	passwordVerifier PasswordVerifier
	adminEmail       string
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	deletionLogRepo DeletionLogRepository,
	txManager TransactionManager,
	passwordVerifier PasswordVerifier,
	adminEmail string,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:  appointmentRepo,
		deletionLogRepo:  deletionLogRepo,
		txManager:        txManager,
		passwordVerifier: passwordVerifier,
		adminEmail:       adminEmail,
		location:         location,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// GetAgenda получает записи одного дня (включая отмененные) по времени начала
// и предупреждения о пересечении реальных интервалов
func (s *Service) GetAgenda(ctx context.Context, date time.Time) (*models.AgendaResponse, error) {
	day := date.In(s.location)
	dayStr := day.Format(domain.DateFormat)
	s.logger.Info("GetAgenda: fetching agenda for date=%s", dayStr)

	filter := domain.DayFilter(day)
	filter.IncludeCanceled = true

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("GetAgenda: repository error for date=%s: %v", dayStr, err)
		return nil, fmt.Errorf("%w: GetAgenda - repository error: %v", ErrInternal, err)
	}

	overlaps := availability.FindOverlaps(appointments)
	if len(overlaps) > 0 {
		s.logger.Warn("GetAgenda: %d overlapping pairs on date=%s", len(overlaps), dayStr)
	}

	s.logger.Info("GetAgenda: successfully fetched %d appointments for date=%s", len(appointments), dayStr)
	return &models.AgendaResponse{
		Date:         dayStr,
		Appointments: models.FromDomainAppointmentList(appointments, s.location, s.timeProvider.Now()),
		Overlaps:     models.FromOverlaps(overlaps, s.location),
	}, nil
}

// UpdateCheckpoint закрывает запись: цена, итоговый статус, оплата.
// Неявка всегда без оплаты; оплаченная запись получает способ оплаты (по умолчанию Pix).
// Можно сменить время в пределах того же дня, услугу и сотрудника.
func (s *Service) UpdateCheckpoint(ctx context.Context, id uuid.UUID, req *models.UpdateCheckpointRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateCheckpoint: updating appointment id=%s, status=%s, paid=%t", id, req.Status, req.IsPaid)

	if req.Price == nil || *req.Price < 0 {
		s.logger.Warn("UpdateCheckpoint: invalid price for appointment id=%s", id)
		return nil, ErrInvalidPrice
	}

	status, err := models.ToCheckpointStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateCheckpoint: invalid status=%s for appointment id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	var method *domain.PaymentMethod
	if req.PaymentMethod != nil {
		parsed, err := domain.ParsePaymentMethod(*req.PaymentMethod)
		if err != nil {
			s.logger.Warn("UpdateCheckpoint: invalid payment method=%s for appointment id=%s", *req.PaymentMethod, id)
			return nil, fmt.Errorf("%w: invalid payment method", ErrInvalidInput)
		}
		method = &parsed
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			s.logger.Warn("UpdateCheckpoint: invalid start time for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: invalid start time", ErrInvalidInput)
		}
	}

	serviceName, err := optionalName(req.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("%w: service name is empty", ErrInvalidInput)
	}
	employeeName, err := optionalName(req.EmployeeName)
	if err != nil {
		return nil, fmt.Errorf("%w: employee name is empty", ErrInvalidInput)
	}

	var updated *domain.Appointment
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		a, err := s.getAppointment(ctx, "UpdateCheckpoint", id)
		if err != nil {
			return err
		}

		a.Price = *req.Price
		switch {
		case status == domain.StatusNoShow:
			a.MarkNoShow()
		case req.IsPaid:
			a.Status = domain.StatusCompleted
			if err := a.MarkPaid(method); err != nil {
				return err
			}
		default:
			a.Status = domain.StatusCompleted
			a.MarkUnpaid()
		}

		if req.StartTime != nil {
			a.StartTime = req.StartTime.On(a.StartTime.In(s.location))
		}
		if serviceName != "" {
			a.ServiceName = serviceName
		}
		if employeeName != "" {
			a.EmployeeName = employeeName
		}

		updated, err = s.save(ctx, "UpdateCheckpoint", a)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateCheckpoint: successfully updated appointment id=%s to status=%s", id, updated.Status)
	return models.FromDomainAppointment(updated, s.location, s.timeProvider.Now()), nil
}

// TogglePayment переключает признак оплаты.
// Оплата переводит запись в COMPLETED; неявку отметить оплаченной нельзя.
func (s *Service) TogglePayment(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("TogglePayment: toggling payment of appointment id=%s", id)

	var updated *domain.Appointment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		a, err := s.getAppointment(ctx, "TogglePayment", id)
		if err != nil {
			return err
		}

		if a.IsPaid {
			a.MarkUnpaid()
		} else if err := a.MarkPaid(nil); err != nil {
			s.logger.Warn("TogglePayment: appointment id=%s is a no-show", id)
			return ErrNoShowCannotBePaid
		}

		updated, err = s.save(ctx, "TogglePayment", a)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("TogglePayment: appointment id=%s paid=%t", id, updated.IsPaid)
	return models.FromDomainAppointment(updated, s.location, s.timeProvider.Now()), nil
}

// Cancel отменяет запись. Отменить можно только SCHEDULED.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	var updated *domain.Appointment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		a, err := s.getAppointment(ctx, "Cancel", id)
		if err != nil {
			return err
		}

		if !a.CanBeCanceled() {
			s.logger.Warn("Cancel: appointment id=%s cannot be canceled, status=%s", id, a.Status)
			return ErrCannotCancel
		}
		a.Status = domain.StatusCanceled

		updated, err = s.save(ctx, "Cancel", a)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully canceled appointment id=%s", id)
	return models.FromDomainAppointment(updated, s.location, s.timeProvider.Now()), nil
}

// Delete удаляет запись.
// Выполненная запись удаляется только с паролем администратора и попадает в журнал удалений
// в той же транзакции.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, req *models.DeleteRequest) error {
	s.logger.Info("Delete: deleting appointment id=%s", id)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		a, err := s.getAppointment(ctx, "Delete", id)
		if err != nil {
			return err
		}

		if a.RequiresPasswordToDelete() {
			if err := s.verifyPassword(req.Password); err != nil {
				s.logger.Warn("Delete: password check failed for appointment id=%s: %v", id, err)
				return err
			}

			entry := &domain.DeletionLog{
				UserEmail:          s.adminEmail,
				AppointmentDetails: domain.NewAppointmentSnapshot(a),
				Reason:             DeletionReason,
			}
			if _, err := s.deletionLogRepo.Create(ctx, entry); err != nil {
				s.logger.Error("Delete: failed to write deletion log for appointment id=%s: %v", id, err)
				return fmt.Errorf("%w: Delete - deletion log error: %v", ErrInternal, err)
			}
		}

		if err := s.appointmentRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}

// Вспомогательные методы

func (s *Service) getAppointment(ctx context.Context, op string, id uuid.UUID) (*domain.Appointment, error) {
	a, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return a, nil
}

func (s *Service) save(ctx context.Context, op string, a *domain.Appointment) (*domain.Appointment, error) {
	updated, err := s.appointmentRepo.Update(ctx, a)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: failed to update appointment id=%s: %v", op, a.ID, err)
		return nil, fmt.Errorf("%w: %s - update error: %v", ErrInternal, op, err)
	}
	return updated, nil
}

func (s *Service) verifyPassword(password string) error {
	err := s.passwordVerifier.Verify(password)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, auth.ErrPasswordRequired):
		return ErrPasswordRequired
	case errors.Is(err, auth.ErrInvalidPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("%w: verify password: %v", ErrInternal, err)
	}
}

// optionalName возвращает обрезанное имя; пустое переданное имя считается ошибкой
func optionalName(name *string) (string, error) {
	if name == nil {
		return "", nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return "", ErrInvalidInput
	}
	return trimmed, nil
}

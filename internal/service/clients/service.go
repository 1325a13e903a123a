package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	clientRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/client"
	"github.com/m04kA/SMC-BarberService/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// List возвращает активных клиентов по имени
func (s *Service) List(ctx context.Context) (*models.ClientListResponse, error) {
	clients, err := s.clientRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// Create создает клиента. Имя обязательно, телефон уникален среди активных клиентов.
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.logger.Warn("Create: empty client name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	s.logger.Info("Create: creating client name=%s", name)

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		Name:  name,
		Phone: strings.TrimSpace(req.Phone),
	})
	if err != nil {
		if errors.Is(err, clientRepo.ErrDuplicatePhone) {
			s.logger.Warn("Create: phone already registered for name=%s", name)
			return nil, ErrPhoneTaken
		}
		s.logger.Error("Create: repository error for name=%s: %v", name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%s", created.ID)
	return models.FromDomainClient(created), nil
}

// UpdatePhone меняет телефон клиента
func (s *Service) UpdatePhone(ctx context.Context, id uuid.UUID, req *models.UpdatePhoneRequest) (*models.ClientResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	s.logger.Info("UpdatePhone: updating phone of client id=%s", id)

	if err := s.clientRepo.UpdatePhone(ctx, id, phone); err != nil {
		switch {
		case errors.Is(err, clientRepo.ErrClientNotFound):
			s.logger.Warn("UpdatePhone: client id=%s not found", id)
			return nil, ErrClientNotFound
		case errors.Is(err, clientRepo.ErrDuplicatePhone):
			s.logger.Warn("UpdatePhone: phone already registered, client id=%s", id)
			return nil, ErrPhoneTaken
		default:
			s.logger.Error("UpdatePhone: repository error for client id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdatePhone - repository error: %v", ErrInternal, err)
		}
	}

	client, err := s.getClient(ctx, "UpdatePhone", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdatePhone: successfully updated client id=%s", id)
	return models.FromDomainClient(client), nil
}

// SoftDelete помечает клиента удаленным; его записи остаются в истории
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("SoftDelete: deleting client id=%s", id)

	if err := s.clientRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("SoftDelete: client id=%s not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("SoftDelete: repository error for client id=%s: %v", id, err)
		return fmt.Errorf("%w: SoftDelete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SoftDelete: successfully deleted client id=%s", id)
	return nil
}

// GetStats возвращает посещаемость, траты за текущий месяц и год и историю записей клиента
func (s *Service) GetStats(ctx context.Context, id uuid.UUID) (*models.ClientStatsResponse, error) {
	s.logger.Info("GetStats: fetching stats for client id=%s", id)

	if _, err := s.getClient(ctx, "GetStats", id); err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		ClientID:        &id,
		IncludeCanceled: true,
	})
	if err != nil {
		s.logger.Error("GetStats: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now().In(s.location)
	stats := calculateStats(appointments, now)

	s.logger.Info("GetStats: client id=%s completed=%d noShows=%d", id, stats.CompletedCount, stats.NoShowCount)
	return models.FromDomainClientStats(id, stats, s.location, now), nil
}

func (s *Service) getClient(ctx context.Context, op string, id uuid.UUID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("%s: client id=%s not found", op, id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("%s: repository error for client id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return client, nil
}

package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	clientRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/client"
	notificationRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications/models"
)

// Service сервис уведомлений администратора
type Service struct {
	notificationRepo NotificationRepository
	clientRepo       ClientRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	notificationRepo NotificationRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		clientRepo:       clientRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// ListUnread возвращает необработанные уведомления
func (s *Service) ListUnread(ctx context.Context) (*models.NotificationListResponse, error) {
	return s.list(ctx, true)
}

// ListAll возвращает все уведомления
func (s *Service) ListAll(ctx context.Context) (*models.NotificationListResponse, error) {
	return s.list(ctx, false)
}

// Resolve обрабатывает уведомление не более одного раза.
// Принятое DUPLICATE_CLIENT_NAME переименовывает клиента в той же транзакции.
func (s *Service) Resolve(ctx context.Context, id uuid.UUID, req *models.ResolveRequest) (*models.ResolveResponse, error) {
	s.logger.Info("Resolve: resolving notification id=%s, accept=%t", id, req.Accept)

	resp := &models.ResolveResponse{ID: id, Accepted: req.Accept}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		notification, err := s.notificationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
				s.logger.Warn("Resolve: notification id=%s not found", id)
				return ErrNotificationNotFound
			}
			s.logger.Error("Resolve: repository error for notification id=%s: %v", id, err)
			return fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
		}

		changed, err := s.notificationRepo.MarkRead(ctx, id)
		if err != nil {
			s.logger.Error("Resolve: failed to mark notification id=%s as read: %v", id, err)
			return fmt.Errorf("%w: Resolve - mark read error: %v", ErrInternal, err)
		}
		if !changed {
			s.logger.Warn("Resolve: notification id=%s already resolved", id)
			return ErrAlreadyResolved
		}

		if !req.Accept || !notification.IsNameConflict() || notification.Data.NewName == "" {
			return nil
		}

		if err := s.clientRepo.UpdateName(ctx, notification.Data.ClientID, notification.Data.NewName); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				s.logger.Warn("Resolve: client id=%s not found", notification.Data.ClientID)
				return ErrClientNotFound
			}
			s.logger.Error("Resolve: failed to rename client id=%s: %v", notification.Data.ClientID, err)
			return fmt.Errorf("%w: Resolve - rename client error: %v", ErrInternal, err)
		}
		resp.ClientRenamed = true
		s.logger.Info("Resolve: client id=%s renamed from %q to %q",
			notification.Data.ClientID, notification.Data.OldName, notification.Data.NewName)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Resolve: successfully resolved notification id=%s", id)
	return resp, nil
}

func (s *Service) list(ctx context.Context, unreadOnly bool) (*models.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.List(ctx, unreadOnly)
	if err != nil {
		s.logger.Error("List: repository error, unreadOnly=%t: %v", unreadOnly, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d notifications, unreadOnly=%t", len(notifications), unreadOnly)
	return models.FromDomainNotificationList(notifications), nil
}

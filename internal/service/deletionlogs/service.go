package deletionlogs

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/service/deletionlogs/models"
)

// Service чтение журнала удалений
type Service struct {
	deletionLogRepo DeletionLogRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса журнала удалений
func NewService(deletionLogRepo DeletionLogRepository, logger Logger) *Service {
	return &Service{deletionLogRepo: deletionLogRepo, logger: logger}
}

// List возвращает удаления, сначала самые свежие
func (s *Service) List(ctx context.Context) (*models.DeletionLogListResponse, error) {
	logs, err := s.deletionLogRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d deletion logs", len(logs))
	return models.FromDomainDeletionLogList(logs), nil
}

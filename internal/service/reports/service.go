package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/reports/models"
)

const (
	minReportYear = 2000
	maxReportYear = 2100
)

// Service сервис финансовых отчетов
type Service struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(appointmentRepo AppointmentRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetFinancialReport возвращает годовой отчет. Нулевой год означает текущий.
func (s *Service) GetFinancialReport(ctx context.Context, year int) (*models.FinancialReportResponse, error) {
	now := s.timeProvider.Now().In(s.location)
	if year == 0 {
		year = now.Year()
	}
	if year < minReportYear || year > maxReportYear {
		s.logger.Warn("GetFinancialReport: invalid year=%d", year)
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	s.logger.Info("GetFinancialReport: building report for year=%d", year)

	from, to := reportRange(year, now)
	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		From:            &from,
		To:              &to,
		IncludeCanceled: true,
	})
	if err != nil {
		s.logger.Error("GetFinancialReport: repository error for year=%d: %v", year, err)
		return nil, fmt.Errorf("%w: GetFinancialReport - repository error: %v", ErrInternal, err)
	}

	report := buildFinancialReport(year, appointments, now)

	s.logger.Info("GetFinancialReport: year=%d revenue=%.2f services=%d", year, report.AnnualRevenue, report.AnnualServices)
	return models.FromDomainFinancialReport(report), nil
}

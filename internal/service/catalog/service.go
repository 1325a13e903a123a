package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/service/catalog/models"
	employeeModels "github.com/m04kA/SMC-BarberService/internal/service/employees/models"
)

// Service публичный каталог услуг и сотрудников
type Service struct {
	serviceRepo  ServiceRepository
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, employeeRepo EmployeeRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// ListActiveServices возвращает активные услуги
func (s *Service) ListActiveServices(ctx context.Context) ([]models.ServiceResponse, error) {
	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActiveServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActiveServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(services), nil
}

// ListActiveEmployees возвращает активных сотрудников
func (s *Service) ListActiveEmployees(ctx context.Context) ([]employeeModels.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListActiveEmployees: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActiveEmployees - repository error: %v", ErrInternal, err)
	}
	return employeeModels.FromDomainEmployeeList(employees).Employees, nil
}

// GetCatalog возвращает услуги и сотрудников для страницы онлайн-записи
func (s *Service) GetCatalog(ctx context.Context) (*models.CatalogResponse, error) {
	services, err := s.ListActiveServices(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.ListActiveEmployees(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetCatalog: %d services, %d employees", len(services), len(employees))
	return &models.CatalogResponse{Services: services, Employees: employees}, nil
}

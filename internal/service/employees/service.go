package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/infra/auth"
	employeeRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-BarberService/internal/service/employees/models"
)

// Service сервис для управления сотрудниками
type Service struct {
	employeeRepo     EmployeeRepository
	passwordVerifier PasswordVerifier
	logger           Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(employeeRepo EmployeeRepository, passwordVerifier PasswordVerifier, logger Logger) *Service {
	return &Service{
		employeeRepo:     employeeRepo,
		passwordVerifier: passwordVerifier,
		logger:           logger,
	}
}

// List возвращает всех сотрудников
func (s *Service) List(ctx context.Context) (*models.EmployeeListResponse, error) {
	employees, err := s.employeeRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d employees", len(employees))
	return models.FromDomainEmployeeList(employees), nil
}

// Create добавляет сотрудника
func (s *Service) Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.logger.Warn("Create: empty employee name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.employeeRepo.Create(ctx, &domain.Employee{Name: name, Active: true})
	if err != nil {
		s.logger.Error("Create: repository error for name=%s: %v", name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created employee id=%s name=%s", created.ID, created.Name)
	return models.FromDomainEmployee(created), nil
}

// Delete удаляет сотрудника после проверки пароля администратора.
// Записи хранят имя сотрудника строкой, поэтому история не меняется.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, req *models.DeleteEmployeeRequest) error {
	s.logger.Info("Delete: deleting employee id=%s", id)

	if err := s.passwordVerifier.Verify(req.Password); err != nil {
		s.logger.Warn("Delete: password check failed for employee id=%s: %v", id, err)
		switch {
		case errors.Is(err, auth.ErrPasswordRequired):
			return ErrPasswordRequired
		case errors.Is(err, auth.ErrInvalidPassword):
			return ErrInvalidPassword
		default:
			return fmt.Errorf("%w: Delete - verify password: %v", ErrInternal, err)
		}
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("Delete: employee id=%s not found", id)
			return ErrEmployeeNotFound
		}
		s.logger.Error("Delete: repository error for employee id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted employee id=%s", id)
	return nil
}

package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	employeeModels "github.com/m04kA/SMC-BarberService/internal/service/employees/models"
)

// ServiceResponse позиция публичного каталога
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
}

// CatalogResponse услуги и сотрудники, доступные для онлайн-записи
type CatalogResponse struct {
	Services  []ServiceResponse                 `json:"services"`
	Employees []employeeModels.EmployeeResponse `json:"employees"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		if resp := FromDomainService(s); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

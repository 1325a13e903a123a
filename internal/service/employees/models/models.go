package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// CreateEmployeeRequest запрос на добавление сотрудника
type CreateEmployeeRequest struct {
	Name string `json:"name"`
}

// DeleteEmployeeRequest запрос на удаление сотрудника
type DeleteEmployeeRequest struct {
	Password string `json:"password"`
}

// EmployeeResponse ответ с данными сотрудника
type EmployeeResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}

// EmployeeListResponse ответ со списком сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// FromDomainEmployee конвертирует domain модель в DTO
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{ID: e.ID, Name: e.Name, Active: e.Active}
}

// FromDomainEmployeeList конвертирует список domain моделей в DTO
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	resp := &EmployeeListResponse{Employees: make([]EmployeeResponse, 0, len(employees))}
	for _, e := range employees {
		if employeeResp := FromDomainEmployee(e); employeeResp != nil {
			resp.Employees = append(resp.Employees, *employeeResp)
		}
	}
	return resp
}

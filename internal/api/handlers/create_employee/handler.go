package create_employee

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/employees"
	"github.com/m04kA/SMC-BarberService/internal/service/employees/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNameRequired       = "o nome do profissional é obrigatório"
)

type Handler struct {
	service EmployeeService
	logger  Logger
}

func NewHandler(service EmployeeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	employee, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, employees.ErrInvalidInput) {
			h.logger.Warn("POST /employees - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgNameRequired)
			return
		}
		h.logger.Error("POST /employees - Failed to create employee: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /employees - Employee created successfully: employee_id=%s", employee.ID)
	handlers.RespondJSON(w, http.StatusCreated, employee)
}

package delete_employee

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/employees"
	"github.com/m04kA/SMC-BarberService/internal/service/employees/models"
)

const (
	msgInvalidEmployeeID  = "ID do profissional inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNotFound           = "profissional não encontrado"
	msgPasswordRequired   = "digite sua senha para remover o profissional"
	msgInvalidPassword    = "senha incorreta"
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

// Handle DELETE /api/v1/employees/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /employees/{id} - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	var req models.DeleteEmployeeRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /employees/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Delete(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, employees.ErrEmployeeNotFound):
			h.logger.Warn("DELETE /employees/{id} - Employee not found: employee_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, employees.ErrPasswordRequired):
			handlers.RespondUnauthorized(w, msgPasswordRequired)

		case errors.Is(err, employees.ErrInvalidPassword):
			h.logger.Warn("DELETE /employees/{id} - Invalid password: employee_id=%s", id)
			handlers.RespondForbidden(w, msgInvalidPassword)

		default:
			h.logger.Error("DELETE /employees/{id} - Failed to delete employee: employee_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /employees/{id} - Employee deleted successfully: employee_id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

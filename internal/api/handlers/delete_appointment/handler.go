package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "ID do agendamento inválido"
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgNotFound             = "agendamento não encontrado"
	msgPasswordRequired     = "para excluir um agendamento já realizado, digite sua senha"
	msgInvalidPassword      = "senha incorreta! não foi possível excluir o agendamento"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{id}
// Тело {"password": "..."} обязательно только для выполненных записей.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.DeleteRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Delete(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: appointment_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrPasswordRequired):
			h.logger.Warn("DELETE /appointments/{id} - Password required: appointment_id=%s", id)
			handlers.RespondUnauthorized(w, msgPasswordRequired)

		case errors.Is(err, appointments.ErrInvalidPassword):
			h.logger.Warn("DELETE /appointments/{id} - Invalid password: appointment_id=%s", id)
			handlers.RespondForbidden(w, msgInvalidPassword)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: appointment_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted successfully: appointment_id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

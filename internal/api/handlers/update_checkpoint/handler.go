package update_checkpoint

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
	msgInvalidPrice         = "por favor, informe o valor do serviço"
	msgInvalidStatus        = "status deve ser COMPLETED ou NO_SHOW"
	msgInvalidFields        = "dados do checkout inválidos"
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

// Handle PUT /api/v1/appointments/{id}/checkpoint
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/checkpoint - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateCheckpointRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id}/checkpoint - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCheckpoint(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id}/checkpoint - Appointment not found: appointment_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidPrice):
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, appointments.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("PUT /appointments/{id}/checkpoint - Failed to update appointment: appointment_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id}/checkpoint - Appointment updated successfully: appointment_id=%s, status=%s",
		id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package toggle_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "ID do agendamento inválido"
	msgNotFound             = "agendamento não encontrado"
	msgNoShowCannotBePaid   = "não é possível marcar como pago um agendamento com falta"
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

// Handle PATCH /api/v1/appointments/{id}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/payment - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.TogglePayment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/payment - Appointment not found: appointment_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrNoShowCannotBePaid):
			h.logger.Warn("PATCH /appointments/{id}/payment - No-show cannot be paid: appointment_id=%s", id)
			handlers.RespondConflict(w, msgNoShowCannotBePaid)

		default:
			h.logger.Error("PATCH /appointments/{id}/payment - Failed to toggle payment: appointment_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/payment - Payment toggled: appointment_id=%s, paid=%t", id, result.IsPaid)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-BarberService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidFields      = "dados do agendamento inválidos"
	msgOutOfHours         = "horário fora do expediente (09:00 às 18:00)"
	msgCapacityExceeded   = "já existem 2 agendamentos para este horário, escolha outro"
	msgPhoneTaken         = "este telefone já pertence a outro cliente"
)

type Handler struct {
	useCase  CreateAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case errors.Is(err, createAppointment.ErrOutOfHours):
			h.logger.Warn("POST /appointments - Out of hours: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, createAppointment.ErrCapacityExceeded):
			h.logger.Warn("POST /appointments - Capacity exceeded: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createAppointment.ErrPhoneTaken):
			h.logger.Warn("POST /appointments - Phone taken: client_name=%s", req.ClientName)
			handlers.RespondConflict(w, msgPhoneTaken)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, client_id=%s",
		result.ID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.location))
}

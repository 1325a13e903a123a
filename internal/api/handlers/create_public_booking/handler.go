package create_public_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	createPublicBooking "github.com/m04kA/SMC-BarberService/internal/usecase/create_public_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidFields      = "dados do agendamento inválidos"
	msgServiceNotFound    = "serviço não encontrado"
	msgEmployeeNotFound   = "profissional não encontrado"
	msgPastDate           = "não é possível agendar em datas passadas"
	msgDayClosed          = "agendamento online disponível apenas de terça a sábado"
	msgSlotNotAvailable   = "este horário não está mais disponível"
	msgOutOfHours         = "horário fora do expediente"
	msgCapacityExceeded   = "já existem 2 agendamentos neste horário, escolha outro"
)

type Handler struct {
	useCase  CreatePublicBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreatePublicBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/public/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePublicBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /public/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createPublicBooking.ErrInvalidInput):
			h.logger.Warn("POST /public/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case errors.Is(err, createPublicBooking.ErrServiceNotFound):
			h.logger.Warn("POST /public/bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createPublicBooking.ErrEmployeeNotFound):
			h.logger.Warn("POST /public/bookings - Employee not found")
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createPublicBooking.ErrInvalidDate):
			h.logger.Warn("POST /public/bookings - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createPublicBooking.ErrDayClosed):
			h.logger.Warn("POST /public/bookings - Day closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDayClosed)

		case errors.Is(err, createPublicBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /public/bookings - Slot not available: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createPublicBooking.ErrOutOfHours):
			h.logger.Warn("POST /public/bookings - Out of hours: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutOfHours)

		case errors.Is(err, createPublicBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /public/bookings - Capacity exceeded: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /public/bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /public/bookings - Booking created successfully: appointment_id=%s, client_id=%s, name_conflict=%t",
		result.ID, result.ClientID, result.NameConflict)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.location))
}

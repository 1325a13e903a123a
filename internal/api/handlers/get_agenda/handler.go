package get_agenda

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
)

const msgInvalidDate = "data inválida, use o formato AAAA-MM-DD"

type Handler struct {
	service      AppointmentService
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service AppointmentService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:      service,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/appointments?date=YYYY-MM-DD
// Без даты возвращается агенда на сегодня.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.QueryDate(r, "date", h.location)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date.IsZero() {
		date = h.timeProvider.Now().In(h.location)
	}

	agenda, err := h.service.GetAgenda(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to get agenda: date=%s, error=%v", date.Format("2006-01-02"), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Agenda retrieved successfully: date=%s, count=%d, overlaps=%d",
		agenda.Date, len(agenda.Appointments), len(agenda.Overlaps))
	handlers.RespondJSON(w, http.StatusOK, agenda)
}

package get_dashboard

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	getDashboard "github.com/m04kA/SMC-BarberService/internal/usecase/get_dashboard"
)

const msgInvalidDate = "data inválida, use o formato AAAA-MM-DD"

type Handler struct {
	useCase  UseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase UseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/dashboard?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.QueryDate(r, "date", h.location)
	if err != nil {
		h.logger.Warn("GET /dashboard - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &getDashboard.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard - Dashboard retrieved successfully: date=%s, appointments=%d, conflicts=%d",
		resp.Date.Format("2006-01-02"), len(resp.Appointments), len(resp.NameConflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp, h.location, time.Now()))
}

package sweep_no_shows

import (
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/no-show-sweep
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /appointments/no-show-sweep - Failed to sweep no-shows: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /appointments/no-show-sweep - Sweep finished: marked=%d", resp.Marked)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}

package get_financial_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/reports"
)

const msgInvalidYear = "ano inválido"

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/financial?year=2026
// Без параметра year отчет строится за текущий год.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, err := handlers.QueryInt(r, "year")
	if err != nil {
		h.logger.Warn("GET /reports/financial - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	report, err := h.service.GetFinancialReport(r.Context(), year)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidYear) {
			h.logger.Warn("GET /reports/financial - Year out of range: year=%d", year)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		h.logger.Error("GET /reports/financial - Failed to build report: year=%d, error=%v", year, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/financial - Report built successfully: year=%d, revenue=%.2f",
		report.Year, report.AnnualRevenue)
	handlers.RespondJSON(w, http.StatusOK, report)
}

package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/public/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.GetCatalog(r.Context())
	if err != nil {
		h.logger.Error("GET /public/catalog - Failed to get catalog: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /public/catalog - Catalog retrieved successfully: services=%d, employees=%d",
		len(catalog.Services), len(catalog.Employees))
	handlers.RespondJSON(w, http.StatusOK, catalog)
}

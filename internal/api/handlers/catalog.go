package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmdesk/internal/agronomy"
	"farmdesk/internal/core"
	"farmdesk/internal/types"
)

// CatalogHandler serves the static option lists and soil suitability.
type CatalogHandler struct{}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// RegisterRoutes mounts GET /catalog and GET /soils/{soil}/suitability.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/catalog", h.HandleCatalog)
	r.Get("/soils/{soil}/suitability", h.HandleSuitability)
}

// HandleCatalog returns crop types, soil types, seasons, tiers and growth
// stages.
func (h *CatalogHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	core.Data(w, r, http.StatusOK, agronomy.NewCatalog())
}

// HandleSuitability returns which crops suit a soil type.
func (h *CatalogHandler) HandleSuitability(w http.ResponseWriter, r *http.Request) {
	soil := pathParam(r, "soil")
	s, ok := agronomy.SuitabilityFor(soil)
	if !ok {
		core.Error(w, r, types.NewAppErrorWithDetails(
			types.ErrCodeNotFoundSoil,
			"unknown soil type",
			nil,
			map[string]any{"soil_type": soil, "available": agronomy.SoilTypes()},
		))
		return
	}
	core.Data(w, r, http.StatusOK, s)
}

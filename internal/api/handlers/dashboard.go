package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmdesk/internal/core"
	"farmdesk/internal/farm"
)

// DashboardService builds the dashboard summary.
type DashboardService interface {
	Summary(ctx context.Context, location string) (*farm.Summary, error)
}

// DashboardHandler serves /dashboard.
type DashboardHandler struct {
	svc DashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// RegisterRoutes mounts GET /dashboard.
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.HandleSummary)
}

// HandleSummary handles GET /dashboard?location=.
func (h *DashboardHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context(), queryFilter(r, "location"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.Data(w, r, http.StatusOK, summary)
}

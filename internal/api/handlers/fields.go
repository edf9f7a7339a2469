package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmdesk/internal/core"
	"farmdesk/internal/farm"
	"farmdesk/internal/types"
)

// FieldService is the soil-monitoring surface used by FieldHandler.
type FieldService interface {
	ListFields(ctx context.Context) ([]*types.Field, error)
	GetField(ctx context.Context, name string) (*farm.FieldReport, error)
	AddField(ctx context.Context, in farm.FieldInput) (*types.Field, error)
	DeleteField(ctx context.Context, name string) (*types.Field, error)
}

// FieldHandler serves /fields.
type FieldHandler struct {
	svc    FieldService
	logger *slog.Logger
}

// NewFieldHandler creates a FieldHandler.
func NewFieldHandler(svc FieldService, logger *slog.Logger) *FieldHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FieldHandler{svc: svc, logger: logger}
}

// RegisterRoutes mounts the field endpoints.
func (h *FieldHandler) RegisterRoutes(r chi.Router) {
	r.Route("/fields", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/{name}", h.HandleGet)
		r.Delete("/{name}", h.HandleDelete)
	})
}

// HandleList handles GET /fields.
func (h *FieldHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	fields, err := h.svc.ListFields(r.Context())
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.Data(w, r, http.StatusOK, fields)
}

// HandleCreate handles POST /fields.
func (h *FieldHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in farm.FieldInput
	if err := core.DecodeJSON(w, r, &in); err != nil {
		core.Error(w, r, err)
		return
	}

	field, err := h.svc.AddField(r.Context(), in)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "field added", "field", field.Name, "status", field.Status)
	core.Data(w, r, http.StatusCreated, field)
}

// HandleGet handles GET /fields/{name}: the field with its nutrient levels
// and crop suitability.
func (h *FieldHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.GetField(r.Context(), pathParam(r, "name"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.Data(w, r, http.StatusOK, report)
}

// HandleDelete handles DELETE /fields/{name}.
func (h *FieldHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	field, err := h.svc.DeleteField(r.Context(), pathParam(r, "name"))
	if err != nil {
		core.Error(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "field deleted", "field", field.Name)
	core.Data(w, r, http.StatusOK, field)
}

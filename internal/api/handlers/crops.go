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

// CropService is the crop-monitoring surface used by CropHandler.
type CropService interface {
	ListCrops(ctx context.Context, filter types.CropFilter) ([]*types.Crop, error)
	GetCrop(ctx context.Context, id string) (*types.Crop, error)
	AddCrop(ctx context.Context, in farm.CropInput) (*types.Crop, error)
	DeleteCrop(ctx context.Context, id string) (*types.Crop, error)
	ScheduleInspection(ctx context.Context, id string) (*types.Crop, error)
	Recommendations(ctx context.Context, id string) ([]string, error)
}

// cropListQuery holds the GET /crops query parameters.
type cropListQuery struct {
	Health string `json:"health"`
	Name   string `json:"name" validate:"omitempty,crop_type"`
}

// CropHandler serves /crops.
type CropHandler struct {
	svc       CropService
	validator *core.Validator
	logger    *slog.Logger
}

// NewCropHandler creates a CropHandler.
func NewCropHandler(svc CropService, val *core.Validator, logger *slog.Logger) *CropHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CropHandler{svc: svc, validator: val, logger: logger}
}

// RegisterRoutes mounts the crop endpoints.
func (h *CropHandler) RegisterRoutes(r chi.Router) {
	r.Route("/crops", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Get("/{id}", h.HandleGet)
		r.Delete("/{id}", h.HandleDelete)
		r.Get("/{id}/recommendations", h.HandleRecommendations)
		r.Post("/{id}/inspections", h.HandleScheduleInspection)
	})
}

// HandleList handles GET /crops?health=&name=.
func (h *CropHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := cropListQuery{
		Health: queryFilter(r, "health"),
		Name:   queryFilter(r, "name"),
	}
	if err := h.validator.ValidateStruct(q); err != nil {
		core.Error(w, r, err)
		return
	}

	crops, err := h.svc.ListCrops(r.Context(), types.CropFilter{
		Health: types.HealthStatus(q.Health),
		Name:   q.Name,
	})
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.Data(w, r, http.StatusOK, crops)
}

// HandleCreate handles POST /crops.
func (h *CropHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in farm.CropInput
	if err := core.DecodeJSON(w, r, &in); err != nil {
		core.Error(w, r, err)
		return
	}

	crop, err := h.svc.AddCrop(r.Context(), in)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "crop added", "crop_id", crop.ID, "name", crop.Name)
	core.Data(w, r, http.StatusCreated, crop)
}

// HandleGet handles GET /crops/{id}.
func (h *CropHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	crop, err := h.svc.GetCrop(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.Data(w, r, http.StatusOK, crop)
}

// HandleDelete handles DELETE /crops/{id} and returns the removed crop.
func (h *CropHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	crop, err := h.svc.DeleteCrop(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.Error(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "crop deleted", "crop_id", crop.ID)
	core.Data(w, r, http.StatusOK, crop)
}

// HandleRecommendations handles GET /crops/{id}/recommendations.
func (h *CropHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Recommendations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.Data(w, r, http.StatusOK, recs)
}

// HandleScheduleInspection handles POST /crops/{id}/inspections.
func (h *CropHandler) HandleScheduleInspection(w http.ResponseWriter, r *http.Request) {
	crop, err := h.svc.ScheduleInspection(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.Data(w, r, http.StatusOK, crop)
}

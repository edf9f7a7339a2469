package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"farmdesk/internal/core"
	"farmdesk/internal/farm"
	"farmdesk/internal/types"
)

// HistoryService is the season-history surface used by HistoryHandler.
type HistoryService interface {
	Query(ctx context.Context, filter farm.HistoryFilter) (*farm.HistoryView, error)
	RecordSeason(ctx context.Context, in farm.SeasonInput) (*types.SeasonRecord, error)
}

type historyQuery struct {
	Crop string `json:"crop" validate:"omitempty,crop_type"`
	Year int    `json:"year" validate:"omitempty,min=1900,max=2200"`
}

// HistoryHandler serves /history.
type HistoryHandler struct {
	svc       HistoryService
	validator *core.Validator
	logger    *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc HistoryService, val *core.Validator, logger *slog.Logger) *HistoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryHandler{svc: svc, validator: val, logger: logger}
}

// RegisterRoutes mounts the history endpoints.
func (h *HistoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/history", func(r chi.Router) {
		r.Get("/", h.HandleQuery)
		r.Post("/", h.HandleRecord)
	})
}

// HandleQuery handles GET /history?crop=&year=.
func (h *HistoryHandler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	q := historyQuery{Crop: queryFilter(r, "crop")}

	if raw := queryFilter(r, "year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			core.Error(w, r, types.NewAppErrorWithDetails(
				types.ErrCodeValidationInvalidFilter,
				"year must be a number",
				err,
				map[string]any{"year": raw},
			))
			return
		}
		q.Year = year
	}

	if err := h.validator.ValidateStruct(q); err != nil {
		core.Error(w, r, err)
		return
	}

	view, err := h.svc.Query(r.Context(), farm.HistoryFilter{Crop: q.Crop, Year: q.Year})
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.Data(w, r, http.StatusOK, view)
}

// HandleRecord handles POST /history.
func (h *HistoryHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var in farm.SeasonInput
	if err := core.DecodeJSON(w, r, &in); err != nil {
		core.Error(w, r, err)
		return
	}

	rec, err := h.svc.RecordSeason(r.Context(), in)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "season recorded", "season_id", rec.ID, "crop", rec.Crop, "season", rec.Season)
	core.Data(w, r, http.StatusCreated, rec)
}

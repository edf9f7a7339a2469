package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmdesk/internal/agronomy"
	"farmdesk/internal/core"
	"farmdesk/internal/prediction"
	"farmdesk/internal/types"
)

// PredictionEngine is the subset of *prediction.Engine the handler uses.
type PredictionEngine interface {
	Compute(req prediction.Request) (*prediction.Result, error)
	CompareTiers(req prediction.Request) ([]*prediction.Result, error)
	Table() *agronomy.Table
}

// PredictionResponse carries the full-precision result and its rounded
// presentation.
type PredictionResponse struct {
	Result  *prediction.Result `json:"result"`
	Display prediction.View    `json:"display"`
}

// PredictionHandler exposes the income prediction engine.
type PredictionHandler struct {
	engine   PredictionEngine
	currency string
}

// NewPredictionHandler creates a handler formatting money with currency.
func NewPredictionHandler(engine PredictionEngine, currency string) *PredictionHandler {
	return &PredictionHandler{engine: engine, currency: currency}
}

// RegisterRoutes mounts the prediction endpoints.
func (h *PredictionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/predictions", func(r chi.Router) {
		r.Get("/profiles", h.HandleProfiles)
		r.Post("/", h.HandlePredict)
		r.Post("/compare", h.HandleCompare)
	})
}

// HandleProfiles returns the knowledge table keyed by crop then soil.
func (h *PredictionHandler) HandleProfiles(w http.ResponseWriter, r *http.Request) {
	core.Data(w, r, http.StatusOK, h.engine.Table().Document())
}

// HandlePredict handles POST /v1/predictions.
func (h *PredictionHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	var req prediction.Request
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	res, err := h.engine.Compute(req)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	types.LoggerFromContext(r.Context()).DebugContext(r.Context(), "prediction computed",
		"crop", res.Crop, "soil_type", res.SoilType, "tier", res.InvestmentTier, "net_profit", res.NetProfit)
	core.Data(w, r, http.StatusOK, PredictionResponse{Result: res, Display: prediction.Display(res, h.currency)})
}

// HandleCompare runs the request under every investment tier. The
// investment_level field is ignored.
func (h *PredictionHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	var req prediction.Request
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}

	results, err := h.engine.CompareTiers(req)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	out := make([]PredictionResponse, 0, len(results))
	for _, res := range results {
		out = append(out, PredictionResponse{Result: res, Display: prediction.Display(res, h.currency)})
	}
	core.Data(w, r, http.StatusOK, out)
}

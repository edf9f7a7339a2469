package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"farmdesk/internal/core"
	"farmdesk/internal/types"
)

// WeatherService is the weather surface used by WeatherHandler.
type WeatherService interface {
	Locations() []string
	Report(location string) (*types.WeatherReport, error)
}

// WeatherHandler serves /weather.
type WeatherHandler struct {
	svc WeatherService
}

// NewWeatherHandler creates a WeatherHandler.
func NewWeatherHandler(svc WeatherService) *WeatherHandler {
	return &WeatherHandler{svc: svc}
}

// RegisterRoutes mounts the weather endpoints.
func (h *WeatherHandler) RegisterRoutes(r chi.Router) {
	r.Route("/weather", func(r chi.Router) {
		r.Get("/", h.HandleReport)
		r.Get("/locations", h.HandleLocations)
	})
}

// HandleReport handles GET /weather?location=. Without a location the
// default one is reported.
func (h *WeatherHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Report(queryFilter(r, "location"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.Data(w, r, http.StatusOK, report)
}

// HandleLocations handles GET /weather/locations.
func (h *WeatherHandler) HandleLocations(w http.ResponseWriter, r *http.Request) {
	core.Data(w, r, http.StatusOK, h.svc.Locations())
}

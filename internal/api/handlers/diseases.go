package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"farmdesk/internal/core"
	"farmdesk/internal/farm"
	"farmdesk/internal/types"
)

// DiseaseLibrary is the reference-library surface used by DiseaseHandler.
type DiseaseLibrary interface {
	Search(filter farm.DiseaseFilter) ([]*types.Disease, error)
	Get(id int) (*types.Disease, error)
}

// DiseaseHandler serves /diseases.
type DiseaseHandler struct {
	lib DiseaseLibrary
}

// NewDiseaseHandler creates a DiseaseHandler.
func NewDiseaseHandler(lib DiseaseLibrary) *DiseaseHandler {
	return &DiseaseHandler{lib: lib}
}

// RegisterRoutes mounts the disease endpoints.
func (h *DiseaseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/diseases", func(r chi.Router) {
		r.Get("/", h.HandleSearch)
		r.Get("/{id}", h.HandleGet)
	})
}

// HandleSearch handles GET /diseases?q=&crop=&severity=.
func (h *DiseaseHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	diseases, err := h.lib.Search(farm.DiseaseFilter{
		Query:    q.Get("q"),
		Crop:     q.Get("crop"),
		Severity: q.Get("severity"),
	})
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.Data(w, r, http.StatusOK, diseases)
}

// HandleGet handles GET /diseases/{id}. A non-numeric ID cannot name a
// disease, so it is reported as not found.
func (h *DiseaseHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		core.Error(w, r, types.NewAppErrorWithDetails(types.ErrCodeNotFoundDisease, "disease not found", nil, map[string]any{"id": raw}))
		return
	}

	d, err := h.lib.Get(id)
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.Data(w, r, http.StatusOK, d)
}

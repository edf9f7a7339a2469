package farm

import (
	"slices"
	"strings"

	"farmdesk/internal/collection"
	"farmdesk/internal/types"
)

// DiseaseFilter narrows the disease library. Query matches name, crop or any
// symptom case-insensitively; Crop and Severity match exactly. "All" or an
// empty value disables a filter.
type DiseaseFilter struct {
	Query    string
	Crop     string
	Severity string
}

// DiseaseLibrary is the read-only disease reference.
type DiseaseLibrary struct {
	diseases *collection.Collection[int, types.Disease]
}

// NewDiseaseLibrary creates a library over diseases.
func NewDiseaseLibrary(diseases ...*types.Disease) (*DiseaseLibrary, error) {
	c := collection.New(func(d types.Disease) int { return d.ID })
	for _, d := range diseases {
		if err := c.Add(*d); err != nil {
			return nil, err
		}
	}
	return &DiseaseLibrary{diseases: c}, nil
}

// Search returns the diseases matching filter in library order.
func (l *DiseaseLibrary) Search(filter DiseaseFilter) ([]*types.Disease, error) {
	severity := strings.TrimSpace(filter.Severity)
	if severity == FilterAll {
		severity = ""
	}
	if severity != "" && !types.Severity(severity).IsValid() {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidFilter,
			"unknown severity",
			nil,
			map[string]any{"severity": severity, "allowed": types.Severities()},
		)
	}

	crop := strings.TrimSpace(filter.Crop)
	if crop == FilterAll {
		crop = ""
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	matched := l.diseases.Filter(func(d types.Disease) bool {
		if crop != "" && d.Crop != crop {
			return false
		}
		if severity != "" && string(d.Severity) != severity {
			return false
		}
		return query == "" || diseaseMentions(&d, query)
	})

	out := make([]*types.Disease, 0, len(matched))
	for i := range matched {
		out = append(out, &matched[i])
	}
	return out, nil
}

// Get returns one disease by ID.
func (l *DiseaseLibrary) Get(id int) (*types.Disease, error) {
	d, ok := l.diseases.Get(id)
	if !ok {
		return nil, types.NewAppErrorWithDetails(types.ErrCodeNotFoundDisease, "disease not found", nil, map[string]any{"id": id})
	}
	return &d, nil
}

// Crops lists the crops covered by the library, in library order.
func (l *DiseaseLibrary) Crops() []string {
	var crops []string
	for _, d := range l.diseases.All() {
		if !slices.Contains(crops, d.Crop) {
			crops = append(crops, d.Crop)
		}
	}
	return crops
}

func diseaseMentions(d *types.Disease, query string) bool {
	if strings.Contains(strings.ToLower(d.Name), query) || strings.Contains(strings.ToLower(d.Crop), query) {
		return true
	}
	for _, s := range d.Symptoms {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}

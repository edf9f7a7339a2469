package agronomy

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"farmdesk/internal/types"
)

// TableDocument is the on-disk (YAML) and wire (JSON) shape of a knowledge table.
//
//	crops:
//	  Rice:
//	    Loamy:
//	      yield: {min: 3.2, max: 4.5, avg: 3.8}
//	      price: {min: 8500, max: 12000, avg: 10000}
//	      expenses: {Low: 25000, Medium: 35000, High: 45000, Premium: 60000}
//	      risks: [Weather dependency]
//	      recommendations: [Use certified seeds]
type TableDocument struct {
	Crops map[string]map[string]Profile `json:"crops" yaml:"crops"`
}

// Document returns the table in its serializable form.
func (t *Table) Document() TableDocument {
	return TableDocument{Crops: t.Profiles()}
}

// ParseTable decodes a YAML document into a validated Table.
// Unknown keys are rejected so that typos in tier or field names surface
// instead of silently producing an incomplete profile.
func ParseTable(data []byte) (*Table, error) {
	var doc TableDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalTable, "failed to decode agronomy table", err)
	}
	return NewTable(doc.Crops)
}

// LoadTableFile reads and validates a YAML knowledge table from path.
func LoadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading agronomy table %s: %w", path, err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("loading agronomy table %s: %w", path, err)
	}
	return t, nil
}

// LoadTable returns the table at path, or the built-in table when path is empty.
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	return LoadTableFile(path)
}

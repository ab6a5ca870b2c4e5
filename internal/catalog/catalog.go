// Package catalog provides extended component records: richer product data
// merged over a diagram's component boxes when the viewer inspects one.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"audio-diagram/internal/diagram"
)

// Record holds the richer product data for one audio component. Records are
// keyed by component ID, or by (category, brand) when no ID match exists.
// Position, visibility, and colors always come from the diagram, never from
// the record.
type Record struct {
	ComponentID string `json:"component_id,omitempty"`
	Category    string `json:"category,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Model       string `json:"model,omitempty"`

	PowerWatts  float64 `json:"power_watts,omitempty"`
	Quantity    int     `json:"quantity,omitempty"`
	CostDollars float64 `json:"cost_dollars,omitempty"`

	// Category-specific fields.
	OhmLoad           float64 `json:"ohm_load,omitempty"`
	FrequencyResponse string  `json:"frequency_response,omitempty"`
	CrossoverPoints   string  `json:"crossover_points,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// Catalog is an ordered set of extended records.
type Catalog struct {
	Records []Record `json:"records"`
}

// Load reads a catalog JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return &c, nil
}

// Lookup finds the record for a component box: first by component ID, then
// by (category, brand). Returns nil when no record matches.
func (c *Catalog) Lookup(box diagram.ComponentBox) *Record {
	if c == nil {
		return nil
	}

	for i := range c.Records {
		if c.Records[i].ComponentID != "" && c.Records[i].ComponentID == box.ID {
			return &c.Records[i]
		}
	}

	for i := range c.Records {
		rec := &c.Records[i]
		if rec.ComponentID != "" {
			continue
		}
		if diagram.ParseCategory(rec.Category) == box.Category &&
			strings.EqualFold(rec.Brand, box.Brand) && box.Brand != "" {
			return rec
		}
	}

	return nil
}

// Field is one populated label/value pair shown in the detail panel.
type Field struct {
	Label string
	Value string
}

// Detail is the merged view of a component box and its optional extended
// record, ready for the detail panel.
type Detail struct {
	Name     string
	Category diagram.Category
	Fields   []Field
}

// Merge overlays a record's populated fields onto the base component box.
// Only populated fields appear in the result.
func Merge(box diagram.ComponentBox, rec *Record) Detail {
	d := Detail{Name: box.Name, Category: box.Category}

	brand := box.Brand
	model := box.Model
	if rec != nil {
		if rec.Brand != "" {
			brand = rec.Brand
		}
		if rec.Model != "" {
			model = rec.Model
		}
	}

	add := func(label, value string) {
		if value != "" {
			d.Fields = append(d.Fields, Field{Label: label, Value: value})
		}
	}

	add("Category", box.Category.DisplayName())
	add("Brand", brand)
	add("Model", model)

	if rec != nil {
		if rec.PowerWatts > 0 {
			add("Power", fmt.Sprintf("%g W", rec.PowerWatts))
		}
		if rec.Quantity > 0 {
			add("Quantity", fmt.Sprintf("%d", rec.Quantity))
		}
		if rec.CostDollars > 0 {
			add("Cost", fmt.Sprintf("$%.2f", rec.CostDollars))
		}
		if rec.OhmLoad > 0 {
			add("Ohm Load", fmt.Sprintf("%g Ω", rec.OhmLoad))
		}
		add("Frequency Response", rec.FrequencyResponse)
		add("Crossover Points", rec.CrossoverPoints)
		add("Notes", rec.Notes)
	}

	return d
}

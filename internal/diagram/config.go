package diagram

import (
	"encoding/json"
	"fmt"
	"os"

	"audio-diagram/internal/vehicle"
	"audio-diagram/pkg/colorutil"
	"audio-diagram/pkg/geometry"
)

// configFile is the on-disk JSON shape of a diagram configuration, as
// written by the external editor. Colors are hex strings; visibility
// defaults to true when omitted.
type configFile struct {
	Vehicle     string            `json:"vehicle"`
	BodyColor   string            `json:"body_color"`
	Components  []componentEntry  `json:"components"`
	Connections []connectionEntry `json:"connections"`
}

type componentEntry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Model    string  `json:"model,omitempty"`
	Category string  `json:"category,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Visible  *bool   `json:"visible,omitempty"`
	Color    string  `json:"color,omitempty"`
}

type connectionEntry struct {
	ID          string             `json:"id"`
	ComponentID string             `json:"component_id"`
	Waypoints   []geometry.Point2D `json:"waypoints"`
	Color       string             `json:"color,omitempty"`
}

// LoadConfiguration reads a diagram configuration JSON file.
// Per-entity problems (unknown category, malformed accent color) degrade
// per entity; only an unreadable file or unknown archetype fails the load.
func LoadConfiguration(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read diagram configuration: %w", err)
	}

	var file configFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal diagram configuration: %w", err)
	}

	return file.toConfiguration()
}

func (f *configFile) toConfiguration() (*Configuration, error) {
	archetype, err := vehicle.ParseArchetype(f.Vehicle)
	if err != nil {
		return nil, err
	}

	cfg := &Configuration{
		Archetype: archetype,
		BodyColor: colorutil.Silver,
	}

	if f.BodyColor != "" {
		body, err := colorutil.ParseHex(f.BodyColor)
		if err != nil {
			return nil, fmt.Errorf("body color: %w", err)
		}
		cfg.BodyColor = body
	}

	for _, entry := range f.Components {
		box := ComponentBox{
			ID:       entry.ID,
			Name:     entry.Name,
			Brand:    entry.Brand,
			Model:    entry.Model,
			Category: ParseCategory(entry.Category),
			Position: geometry.NewPoint2D(entry.X, entry.Y),
			Visible:  true,
		}
		if entry.Visible != nil {
			box.Visible = *entry.Visible
		}
		if accent, err := colorutil.ParseHex(entry.Color); entry.Color != "" && err == nil {
			box.Accent = &accent
		}
		cfg.Components = append(cfg.Components, box)
	}

	for _, entry := range f.Connections {
		conn := Connection{
			ID:          entry.ID,
			ComponentID: entry.ComponentID,
			Waypoints:   entry.Waypoints,
		}
		if override, err := colorutil.ParseHex(entry.Color); entry.Color != "" && err == nil {
			conn.Override = &override
		}
		cfg.Connections = append(cfg.Connections, conn)
	}

	return cfg, nil
}

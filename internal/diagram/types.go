// Package diagram provides the installation diagram data model, connection
// routing, surface composition, and pointer hit-testing.
package diagram

import (
	"image/color"
	"strings"

	"audio-diagram/internal/vehicle"
	"audio-diagram/pkg/colorutil"
	"audio-diagram/pkg/geometry"
)

// Component box footprint in surface units. Every box is this size; the
// position in the configuration is the top-left corner.
const (
	BoxWidth  = 120
	BoxHeight = 40
)

// Category identifies the kind of audio component a box represents.
type Category int

const (
	CategoryOther Category = iota
	CategoryHeadUnit
	CategoryAmplifier
	CategorySpeaker
	CategorySubwoofer
	CategoryProcessor
	CategoryWiring
)

func (c Category) String() string {
	switch c {
	case CategoryHeadUnit:
		return "head-unit"
	case CategoryAmplifier:
		return "amplifier"
	case CategorySpeaker:
		return "speaker"
	case CategorySubwoofer:
		return "subwoofer"
	case CategoryProcessor:
		return "processor"
	case CategoryWiring:
		return "wiring"
	default:
		return "other"
	}
}

// DisplayName returns a human-readable category name.
func (c Category) DisplayName() string {
	switch c {
	case CategoryHeadUnit:
		return "Head Unit"
	case CategoryAmplifier:
		return "Amplifier"
	case CategorySpeaker:
		return "Speaker"
	case CategorySubwoofer:
		return "Subwoofer"
	case CategoryProcessor:
		return "Sound Processor"
	case CategoryWiring:
		return "Wiring"
	default:
		return "Other"
	}
}

// ParseCategory converts a free-form configuration tag to a Category.
// Unrecognized tags map to CategoryOther rather than failing the load.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "head-unit", "head_unit", "headunit", "head unit", "source":
		return CategoryHeadUnit
	case "amplifier", "amp":
		return CategoryAmplifier
	case "speaker", "speakers", "component-speaker":
		return CategorySpeaker
	case "subwoofer", "sub":
		return CategorySubwoofer
	case "processor", "dsp", "sound-processor", "equalizer":
		return CategoryProcessor
	case "wiring", "wire", "cable", "distribution":
		return CategoryWiring
	default:
		return CategoryOther
	}
}

// ComponentBox is one placed audio component. Read-only to the renderer;
// boxes are created by the external configuration editor.
type ComponentBox struct {
	ID       string
	Name     string
	Brand    string
	Model    string
	Category Category
	Position geometry.Point2D
	Visible  bool

	// Accent is the optional outline color, also used for the owning
	// connection's line when the connection has no override.
	Accent *color.RGBA
}

// Bounds returns the box's fixed-size footprint rectangle.
func (b ComponentBox) Bounds() geometry.Rect {
	return geometry.NewRect(b.Position.X, b.Position.Y, BoxWidth, BoxHeight)
}

// Connection is one routed wire from a component box to a point on the
// vehicle body. Connections have no independent existence: one whose owning
// component is absent or hidden is skipped during a render pass.
type Connection struct {
	ID          string
	ComponentID string

	// Waypoints the route passes through, in order; the final waypoint is
	// the visual endpoint on the vehicle.
	Waypoints []geometry.Point2D

	// Override is the optional line color. Resolution falls back to the
	// owning component's accent, then to the system default.
	Override *color.RGBA
}

// Configuration is the complete, immutable-per-render renderer input.
// The renderer never mutates or persists it.
type Configuration struct {
	Archetype   vehicle.Archetype
	BodyColor   color.RGBA
	Components  []ComponentBox
	Connections []Connection
}

// ComponentByID resolves a component by identifier.
func (c *Configuration) ComponentByID(id string) (ComponentBox, bool) {
	for _, box := range c.Components {
		if box.ID == id {
			return box, true
		}
	}
	return ComponentBox{}, false
}

// ResolvedColor returns the drawing color for a connection: its override,
// else the owning component's accent, else the default amber.
func (c *Configuration) ResolvedColor(conn Connection) color.RGBA {
	if conn.Override != nil {
		return *conn.Override
	}
	if box, ok := c.ComponentByID(conn.ComponentID); ok && box.Accent != nil {
		return *box.Accent
	}
	return colorutil.Amber
}

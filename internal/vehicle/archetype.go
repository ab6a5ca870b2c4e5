// Package vehicle provides the vehicle archetype registry and silhouette
// asset loading for the installation diagram renderer.
package vehicle

import (
	"fmt"
	"strings"
)

// Silhouette buffer dimensions. All archetype assets are normalized to this
// size before recoloring, and the recolor engine emits buffers of exactly
// this size.
const (
	SilhouetteWidth  = 500
	SilhouetteHeight = 300
)

// Archetype identifies one of the fixed vehicle body shapes.
type Archetype int

const (
	Sedan Archetype = iota
	SUV
	Van
	TruckSingleCab
	TruckExtendedCab
	Hatchback
)

// Archetypes lists every recognized archetype in display order.
func Archetypes() []Archetype {
	return []Archetype{Sedan, SUV, Van, TruckSingleCab, TruckExtendedCab, Hatchback}
}

func (a Archetype) String() string {
	switch a {
	case Sedan:
		return "sedan"
	case SUV:
		return "suv"
	case Van:
		return "van"
	case TruckSingleCab:
		return "truck-single-cab"
	case TruckExtendedCab:
		return "truck-extended-cab"
	case Hatchback:
		return "hatchback"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable archetype name.
func (a Archetype) DisplayName() string {
	switch a {
	case Sedan:
		return "Sedan"
	case SUV:
		return "SUV"
	case Van:
		return "Van"
	case TruckSingleCab:
		return "Truck (Single Cab)"
	case TruckExtendedCab:
		return "Truck (Extended Cab)"
	case Hatchback:
		return "Hatchback"
	default:
		return "Unknown"
	}
}

// AssetFile returns the silhouette image filename for this archetype.
// The table is fixed; assets live in the application's asset directory.
func (a Archetype) AssetFile() string {
	switch a {
	case Sedan:
		return "sedan.png"
	case SUV:
		return "suv.png"
	case Van:
		return "van.png"
	case TruckSingleCab:
		return "truck_single_cab.png"
	case TruckExtendedCab:
		return "truck_extended_cab.png"
	case Hatchback:
		return "hatchback.png"
	default:
		return ""
	}
}

// ParseArchetype converts a configuration string to an Archetype.
// Accepts a few legacy spellings seen in older diagram files.
func ParseArchetype(s string) (Archetype, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sedan":
		return Sedan, nil
	case "suv":
		return SUV, nil
	case "van":
		return Van, nil
	case "truck-single-cab", "truck_single_cab", "truck":
		return TruckSingleCab, nil
	case "truck-extended-cab", "truck_extended_cab":
		return TruckExtendedCab, nil
	case "hatchback":
		return Hatchback, nil
	default:
		return Sedan, fmt.Errorf("unknown vehicle archetype %q", s)
	}
}

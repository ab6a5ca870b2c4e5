package diagram

import (
	"audio-diagram/pkg/geometry"
)

// HitTest maps a surface-space point to the first visible component box
// whose footprint contains it, in configuration order. Callers must rescale
// display-space pointer coordinates to surface space before calling.
func HitTest(cfg *Configuration, x, y float64) (string, bool) {
	if cfg == nil {
		return "", false
	}

	p := geometry.NewPoint2D(x, y)
	for _, box := range cfg.Components {
		if !box.Visible {
			continue
		}
		if box.Bounds().Contains(p) {
			return box.ID, true
		}
	}
	return "", false
}

// Selection holds the at-most-one selected component identifier.
// The zero value means nothing is selected.
type Selection struct {
	ID string
}

// IsSelected reports whether the given component is the selected one.
func (s Selection) IsSelected(id string) bool {
	return s.ID != "" && s.ID == id
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.ID == ""
}

// Toggle applies one pointer interaction to the selection state:
// a miss (empty hit) clears, re-hitting the selected box clears, and
// hitting any other box selects it. At most one box is ever selected.
func Toggle(current Selection, hit string) Selection {
	if hit == "" || hit == current.ID {
		return Selection{}
	}
	return Selection{ID: hit}
}

// Package colorutil provides shared color utilities for the diagram renderer.
package colorutil

import (
	"fmt"
	"image/color"
	"strings"
)

// Common colors used throughout the application.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray   = color.RGBA{R: 107, G: 114, B: 128, A: 255}
	Blue   = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	Amber  = color.RGBA{R: 255, G: 191, B: 0, A: 255}
	Silver = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// Luminance returns the perceptual brightness of an 8-bit RGB pixel,
// normalized to [0,1], using the Rec.601 weights.
func Luminance(r, g, b uint8) float64 {
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255.0
}

// ParseHex parses a "#RRGGBB" or "RRGGBB" hex color string.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(s), "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats a color as "#RRGGBB".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Blend mixes b into a by the given strength (0 = all a, 1 = all b).
func Blend(a, b color.RGBA, strength float64) color.RGBA {
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	inv := 1 - strength
	return color.RGBA{
		R: uint8(float64(a.R)*inv + float64(b.R)*strength),
		G: uint8(float64(a.G)*inv + float64(b.G)*strength),
		B: uint8(float64(a.B)*inv + float64(b.B)*strength),
		A: a.A,
	}
}

// Dim scales a color's channels toward black by the given factor (0-1).
func Dim(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

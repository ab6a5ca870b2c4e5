// Package paint implements the pixel classifier and recolor engine for
// vehicle silhouettes. A silhouette is classified pixel-by-pixel into tires,
// rims, painted body, and dark detail, then recolored toward a target body
// color while preserving relative shading.
package paint

import (
	"image"
	"image/color"

	"audio-diagram/internal/vehicle"
	"audio-diagram/pkg/colorutil"
)

// Classification thresholds and blend constants. These were tuned against
// the shipped silhouette set; changing them breaks visual parity with
// reference renders. Check the class statistics report in calibrate.go
// before adjusting anything here.
const (
	tireLumMax    = 0.15 // below: tire rubber
	bodyLumMin    = 0.30 // at or above (and not rim): painted body
	rimLumMax     = 0.60 // rim test upper luminance bound
	rimChanDelta  = 20   // max R/G and G/B delta for the desaturation test
	blendStrength = 0.7
)

// Fixed replacement colors for neutral regions.
var (
	TireColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	RimColor  = colorutil.Silver
)

// PixelClass identifies the role of a silhouette pixel.
type PixelClass int

const (
	ClassTransparent PixelClass = iota
	ClassTire
	ClassRim
	ClassBody
	ClassDetail
)

func (c PixelClass) String() string {
	switch c {
	case ClassTransparent:
		return "transparent"
	case ClassTire:
		return "tire"
	case ClassRim:
		return "rim"
	case ClassBody:
		return "body"
	case ClassDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Classify assigns a class to a single 8-bit RGBA pixel.
//
// Order matters: the rim test covers the 0.15-0.6 luminance band, and a
// pixel passing it is a rim even when it also clears the body threshold.
// Pixels in [0.15, 0.3) that fail the rim test are dark shadow detail and
// stay untouched.
func Classify(r, g, b, a uint8) PixelClass {
	if a == 0 {
		return ClassTransparent
	}

	lum := colorutil.Luminance(r, g, b)

	if lum < tireLumMax {
		return ClassTire
	}
	if lum < rimLumMax && isDesaturated(r, g, b) {
		return ClassRim
	}
	if lum >= bodyLumMin {
		return ClassBody
	}
	return ClassDetail
}

// isDesaturated reports whether the pixel is approximately gray: both the
// red/green and green/blue channel deltas are below rimChanDelta.
func isDesaturated(r, g, b uint8) bool {
	return absDelta(r, g) < rimChanDelta && absDelta(g, b) < rimChanDelta
}

func absDelta(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Recolor produces a new pixel buffer of the fixed silhouette size in which
// tires are forced near-black, rims are forced neutral silver, and body
// pixels are tinted toward the target color with shading preserved. The
// source image is never mutated. A nil source yields a nil buffer.
func Recolor(src image.Image, target color.RGBA) *image.RGBA {
	if src == nil {
		return nil
	}

	out := image.NewRGBA(image.Rect(0, 0, vehicle.SilhouetteWidth, vehicle.SilhouetteHeight))
	bounds := src.Bounds()

	for y := 0; y < vehicle.SilhouetteHeight; y++ {
		for x := 0; x < vehicle.SilhouetteWidth; x++ {
			sx := bounds.Min.X + x
			sy := bounds.Min.Y + y
			if sx >= bounds.Max.X || sy >= bounds.Max.Y {
				continue
			}

			r16, g16, b16, a16 := src.At(sx, sy).RGBA()
			r, g, b, a := uint8(r16>>8), uint8(g16>>8), uint8(b16>>8), uint8(a16>>8)

			switch Classify(r, g, b, a) {
			case ClassTransparent:
				// Never touched.
			case ClassTire:
				out.SetRGBA(x, y, color.RGBA{TireColor.R, TireColor.G, TireColor.B, a})
			case ClassRim:
				out.SetRGBA(x, y, color.RGBA{RimColor.R, RimColor.G, RimColor.B, a})
			case ClassBody:
				out.SetRGBA(x, y, tintBody(r, g, b, a, target))
			case ClassDetail:
				out.SetRGBA(x, y, color.RGBA{r, g, b, a})
			}
		}
	}

	return out
}

// tintBody blends the target color into a body pixel. The blend strength is
// modulated by a shade factor derived from the original luminance so darker
// creases remain darker after recoloring.
func tintBody(r, g, b, a uint8, target color.RGBA) color.RGBA {
	lum := colorutil.Luminance(r, g, b)
	shade := lum*0.5 + 0.5

	mix := func(orig uint8, tgt uint8) uint8 {
		v := float64(orig)*(1-blendStrength) + float64(tgt)*blendStrength*shade
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}

	return color.RGBA{
		R: mix(r, target.R),
		G: mix(g, target.G),
		B: mix(b, target.B),
		A: a,
	}
}

package paint

import (
	"fmt"
	"image"
	"strings"

	"gonum.org/v1/gonum/stat"

	"audio-diagram/pkg/colorutil"
)

// ClassStat summarizes the luminance distribution of one pixel class.
type ClassStat struct {
	Count   int
	MeanLum float64
	StdLum  float64
}

// ClassStats classifies every pixel of an image and returns per-class
// luminance statistics. The report is the recalibration signal for the
// tuned constants in recolor.go: a silhouette whose body mean drifts far
// from the asset set the thresholds were tuned against will recolor badly,
// and the numbers make that visible before anyone guesses new thresholds.
func ClassStats(img image.Image) map[PixelClass]ClassStat {
	if img == nil {
		return nil
	}

	lums := make(map[PixelClass][]float64)
	bounds := img.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			r, g, b, a := uint8(r16>>8), uint8(g16>>8), uint8(b16>>8), uint8(a16>>8)
			class := Classify(r, g, b, a)
			lums[class] = append(lums[class], colorutil.Luminance(r, g, b))
		}
	}

	stats := make(map[PixelClass]ClassStat, len(lums))
	for class, values := range lums {
		mean, std := stat.MeanStdDev(values, nil)
		stats[class] = ClassStat{Count: len(values), MeanLum: mean, StdLum: std}
	}
	return stats
}

// FormatClassStats renders a one-line summary suitable for logging.
func FormatClassStats(stats map[PixelClass]ClassStat) string {
	if len(stats) == 0 {
		return "no pixels"
	}

	var parts []string
	for _, class := range []PixelClass{ClassTire, ClassRim, ClassBody, ClassDetail, ClassTransparent} {
		s, ok := stats[class]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: n=%d lum=%.3f±%.3f", class, s.Count, s.MeanLum, s.StdLum))
	}
	return strings.Join(parts, " | ")
}

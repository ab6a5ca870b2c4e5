package paint

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"audio-diagram/internal/vehicle"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a uint8
		want       PixelClass
	}{
		{"fully transparent", 200, 200, 200, 0, ClassTransparent},
		{"near black tire", 10, 10, 10, 255, ClassTire},
		{"tire just under threshold", 38, 38, 38, 255, ClassTire},
		{"gray rim", 128, 128, 128, 255, ClassRim},
		{"dark gray rim", 60, 60, 60, 255, ClassRim},
		{"bright gray above rim band", 200, 200, 200, 255, ClassBody},
		{"saturated red body", 200, 30, 30, 255, ClassBody},
		{"white body", 255, 255, 255, 255, ClassBody},
		{"dark red detail", 120, 20, 20, 255, ClassDetail},
		{"dark blue detail", 40, 40, 150, 255, ClassDetail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.r, tt.g, tt.b, tt.a)
			if got != tt.want {
				t.Errorf("Classify(%d,%d,%d,%d) = %v, want %v",
					tt.r, tt.g, tt.b, tt.a, got, tt.want)
			}
		})
	}
}

// TestClassifyRimWinsOverBody checks precedence in the overlapping band: a
// desaturated pixel with luminance in [0.3, 0.6) is a rim, not body.
func TestClassifyRimWinsOverBody(t *testing.T) {
	if got := Classify(110, 110, 110, 255); got != ClassRim {
		t.Errorf("Classify(110,110,110) = %v, want rim", got)
	}
}

// synthSilhouette builds a full-size silhouette with one region per class.
func synthSilhouette() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, vehicle.SilhouetteWidth, vehicle.SilhouetteHeight))
	for y := 0; y < vehicle.SilhouetteHeight; y++ {
		for x := 0; x < vehicle.SilhouetteWidth; x++ {
			switch {
			case y < 60: // transparent border
			case y < 120:
				img.SetRGBA(x, y, color.RGBA{10, 10, 10, 255}) // tire
			case y < 180:
				img.SetRGBA(x, y, color.RGBA{128, 128, 128, 255}) // rim
			case y < 240:
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255}) // body
			default:
				img.SetRGBA(x, y, color.RGBA{120, 20, 20, 255}) // detail
			}
		}
	}
	return img
}

func TestRecolor(t *testing.T) {
	src := synthSilhouette()
	target := color.RGBA{255, 0, 0, 255}
	out := Recolor(src, target)

	if out == nil {
		t.Fatal("Recolor returned nil for a valid source")
	}
	if got := out.Bounds(); got.Dx() != vehicle.SilhouetteWidth || got.Dy() != vehicle.SilhouetteHeight {
		t.Fatalf("output bounds = %v", got)
	}

	t.Run("transparent untouched", func(t *testing.T) {
		if got := out.RGBAAt(250, 30); got != (color.RGBA{}) {
			t.Errorf("transparent pixel = %v, want zero", got)
		}
	})

	t.Run("tire forced near-black", func(t *testing.T) {
		want := color.RGBA{TireColor.R, TireColor.G, TireColor.B, 255}
		if got := out.RGBAAt(250, 90); got != want {
			t.Errorf("tire pixel = %v, want %v", got, want)
		}
	})

	t.Run("rim forced silver", func(t *testing.T) {
		want := color.RGBA{RimColor.R, RimColor.G, RimColor.B, 255}
		if got := out.RGBAAt(250, 150); got != want {
			t.Errorf("rim pixel = %v, want %v", got, want)
		}
	})

	t.Run("white body tinted toward target", func(t *testing.T) {
		// Full-luminance pixel: shade = 1, so the blend resolves exactly to
		// 255*0.3 + target*0.7 per channel.
		got := out.RGBAAt(250, 210)
		want := color.RGBA{255, 76, 76, 255}
		if got != want {
			t.Errorf("body pixel = %v, want %v", got, want)
		}
	})

	t.Run("detail untouched", func(t *testing.T) {
		if got := out.RGBAAt(250, 270); got != (color.RGBA{120, 20, 20, 255}) {
			t.Errorf("detail pixel = %v, want original", got)
		}
	})

	t.Run("source never mutated", func(t *testing.T) {
		if got := src.RGBAAt(250, 210); got != (color.RGBA{255, 255, 255, 255}) {
			t.Errorf("source pixel changed to %v", got)
		}
	})
}

// TestRecolorPreservesShading checks that two body pixels of different
// original luminance keep their brightness ordering after recoloring.
func TestRecolorPreservesShading(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, vehicle.SilhouetteWidth, vehicle.SilhouetteHeight))
	src.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255}) // bright body
	src.SetRGBA(2, 0, color.RGBA{230, 200, 120, 255}) // darker colored body

	out := Recolor(src, color.RGBA{255, 0, 0, 255})

	bright := out.RGBAAt(0, 0)
	dark := out.RGBAAt(2, 0)

	lumBright := colorLum(bright)
	lumDark := colorLum(dark)
	if lumBright <= lumDark {
		t.Errorf("brightness ordering lost: bright %v (%.3f) vs dark %v (%.3f)",
			bright, lumBright, dark, lumDark)
	}
	if bright.R <= bright.G || bright.R <= bright.B {
		t.Errorf("bright body pixel %v not shifted toward red", bright)
	}
}

func colorLum(c color.RGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

func TestRecolorDeterministic(t *testing.T) {
	src := synthSilhouette()
	target := color.RGBA{21, 101, 192, 255}

	a := Recolor(src, target)
	b := Recolor(src, target)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two recolor passes over identical inputs differ")
	}
}

func TestRecolorNilSource(t *testing.T) {
	if got := Recolor(nil, color.RGBA{255, 0, 0, 255}); got != nil {
		t.Errorf("Recolor(nil) = %v, want nil", got)
	}
}

func TestCache(t *testing.T) {
	src := synthSilhouette()
	cache := NewCache()
	key := Key{Archetype: vehicle.Sedan, Color: color.RGBA{255, 0, 0, 255}}

	first := cache.Recolored(key, src)
	second := cache.Recolored(key, src)
	if first != second {
		t.Error("cache miss on second lookup of the same key")
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}

	other := Key{Archetype: vehicle.Sedan, Color: color.RGBA{0, 0, 255, 255}}
	if cache.Recolored(other, src) == first {
		t.Error("different colors share a buffer")
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}

	cache.Invalidate(key)
	if cache.Len() != 1 {
		t.Errorf("Len() after Invalidate = %d, want 1", cache.Len())
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", cache.Len())
	}
}

func TestCacheNilSource(t *testing.T) {
	cache := NewCache()
	key := Key{Archetype: vehicle.Van, Color: color.RGBA{255, 0, 0, 255}}

	if got := cache.Recolored(key, nil); got != nil {
		t.Errorf("Recolored(nil source) = %v, want nil", got)
	}
	if cache.Len() != 0 {
		t.Error("nil source was cached")
	}
}

func TestClassStats(t *testing.T) {
	src := synthSilhouette()
	stats := ClassStats(src)

	rowPixels := 60 * vehicle.SilhouetteWidth
	for _, class := range []PixelClass{ClassTransparent, ClassTire, ClassRim, ClassBody, ClassDetail} {
		if stats[class].Count != rowPixels {
			t.Errorf("%s count = %d, want %d", class, stats[class].Count, rowPixels)
		}
	}

	// Uniform regions have zero spread.
	if stats[ClassBody].StdLum != 0 {
		t.Errorf("uniform body StdLum = %v, want 0", stats[ClassBody].StdLum)
	}
	if d := stats[ClassBody].MeanLum - 1; d > 1e-9 || d < -1e-9 {
		t.Errorf("white body MeanLum = %v, want 1", stats[ClassBody].MeanLum)
	}

	if ClassStats(nil) != nil {
		t.Error("ClassStats(nil) should be nil")
	}
}

package vehicle

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// LoadSilhouette loads and normalizes the silhouette asset for an archetype.
// The decoded image is resampled to the fixed SilhouetteWidth x
// SilhouetteHeight buffer; alpha is preserved so the recolor engine can skip
// transparent pixels. A decode failure is returned to the caller, which is
// expected to render the diagram without a vehicle body.
func LoadSilhouette(assetDir string, archetype Archetype) (*image.RGBA, error) {
	path := filepath.Join(assetDir, archetype.AssetFile())

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open silhouette %s: %w", archetype, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode silhouette %s: %w", archetype, err)
	}

	return Normalize(img), nil
}

// Normalize resamples an arbitrary silhouette image onto the fixed-size
// buffer. Assets already at the target size are copied without resampling so
// the classifier sees the author's exact pixels.
func Normalize(img image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, SilhouetteWidth, SilhouetteHeight))
	bounds := img.Bounds()

	if bounds.Dx() == SilhouetteWidth && bounds.Dy() == SilhouetteHeight {
		draw.Copy(dst, image.Point{}, img, bounds, draw.Src, nil)
		return dst
	}

	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// Package canvas provides the diagram drawing surfaces: a raster-backed
// Fyne widget and the dual-surface presenter that keeps the inline and
// fullscreen views in sync.
package canvas

import (
	"image"

	"audio-diagram/internal/app"
	"audio-diagram/internal/diagram"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"
)

// Default intrinsic surface size in surface units. Component positions and
// hit-testing use this coordinate space regardless of how large the widget
// is displayed.
const (
	DefaultSurfaceWidth  = 800
	DefaultSurfaceHeight = 500
)

// DiagramCanvas is a drawing surface for the installation diagram. The
// diagram is composed at the intrinsic surface size and scaled to the
// displayed size; pointer coordinates are rescaled the opposite way before
// hit-testing.
type DiagramCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster

	surfaceW int
	surfaceH int

	// Last composed surface, before display scaling.
	lastSurface *image.RGBA
}

// NewDiagramCanvas creates a surface rendering the given application state.
func NewDiagramCanvas(state *app.State) *DiagramCanvas {
	dc := &DiagramCanvas{
		state:    state,
		surfaceW: DefaultSurfaceWidth,
		surfaceH: DefaultSurfaceHeight,
	}

	dc.raster = fynecanvas.NewRaster(dc.draw)
	dc.raster.ScaleMode = fynecanvas.ImageScalePixels
	dc.ExtendBaseWidget(dc)
	return dc
}

// SurfaceSize returns the intrinsic surface dimensions.
func (dc *DiagramCanvas) SurfaceSize() (int, int) {
	return dc.surfaceW, dc.surfaceH
}

// Surface returns the last composed surface buffer, for sampling in tests
// and for parity checks between the two surfaces.
func (dc *DiagramCanvas) Surface() *image.RGBA {
	return dc.lastSurface
}

// Refresh redraws the surface from current state.
func (dc *DiagramCanvas) Refresh() {
	dc.raster.Refresh()
	dc.BaseWidget.Refresh()
}

// draw is the raster drawing function. The diagram is always composed at
// the intrinsic surface size, then scaled to the display size, so both
// surfaces produce identical pixels for identical state.
func (dc *DiagramCanvas) draw(w, h int) image.Image {
	surface := image.NewRGBA(image.Rect(0, 0, dc.surfaceW, dc.surfaceH))
	cfg, body, sel := dc.state.Snapshot()
	diagram.Render(surface, cfg, body, sel)
	dc.lastSurface = surface

	if w <= 0 || h <= 0 || (w == dc.surfaceW && h == dc.surfaceH) {
		return surface
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), surface, surface.Bounds(), xdraw.Src, nil)
	return scaled
}

// Tapped handles pointer clicks. The event position is in display space;
// it is rescaled by the intrinsic-to-displayed size ratio before the
// hit-test runs in surface space.
func (dc *DiagramCanvas) Tapped(ev *fyne.PointEvent) {
	size := dc.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}

	x := float64(ev.Position.X) * float64(dc.surfaceW) / float64(size.Width)
	y := float64(ev.Position.Y) * float64(dc.surfaceH) / float64(size.Height)

	dc.state.HandleTap(x, y)
}

// CreateRenderer implements fyne.Widget.
func (dc *DiagramCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &diagramCanvasRenderer{canvas: dc}
}

type diagramCanvasRenderer struct {
	canvas *DiagramCanvas
}

func (r *diagramCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
}

func (r *diagramCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 250)
}

func (r *diagramCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *diagramCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *diagramCanvasRenderer) Destroy() {}

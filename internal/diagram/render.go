package diagram

import (
	"image"
	"image/color"

	"audio-diagram/internal/raster"
	"audio-diagram/internal/vehicle"
	"audio-diagram/pkg/colorutil"
)

// Surface colors. The diagram draws on a dark panel so amber connector
// lines and painted vehicle bodies stand out.
var (
	backgroundColor = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	boxFillColor    = color.RGBA{R: 31, G: 41, B: 55, A: 255}
	selectedFill    = color.RGBA{R: 30, G: 58, B: 138, A: 255}
	brandTextColor  = color.RGBA{R: 156, G: 163, B: 175, A: 255}
)

const connectionThickness = 2

// Render composes one full diagram pass into dst. Strict order: clear,
// vehicle body, connections with arrowheads, component boxes. Later draws
// occlude earlier ones at overlaps. The pass is pure over its inputs, so
// re-rendering with identical inputs produces byte-identical pixels.
//
// vehicleBody is the recolored silhouette buffer, or nil when the asset
// failed to load; the rest of the diagram still renders. A nil cfg renders
// the placeholder state.
func Render(dst *image.RGBA, cfg *Configuration, vehicleBody *image.RGBA, sel Selection) {
	raster.Clear(dst, backgroundColor)

	if cfg == nil {
		renderPlaceholder(dst)
		return
	}

	drawVehicle(dst, vehicleBody)

	for _, conn := range cfg.Connections {
		drawConnection(dst, cfg, conn)
	}

	for _, box := range cfg.Components {
		if !box.Visible {
			continue
		}
		drawBox(dst, box, sel.IsSelected(box.ID))
	}
}

// renderPlaceholder draws the "no diagram available" state.
func renderPlaceholder(dst *image.RGBA) {
	bounds := dst.Bounds()
	cx := (bounds.Min.X + bounds.Max.X) / 2
	cy := (bounds.Min.Y + bounds.Max.Y) / 2
	raster.DrawLabel(dst, "NO DIAGRAM AVAILABLE", cx, cy, colorutil.Gray, 2)
}

// drawVehicle blits the recolored silhouette centered in the surface.
func drawVehicle(dst *image.RGBA, body *image.RGBA) {
	if body == nil {
		return
	}
	bounds := dst.Bounds()
	ox := bounds.Min.X + (bounds.Dx()-vehicle.SilhouetteWidth)/2
	oy := bounds.Min.Y + (bounds.Dy()-vehicle.SilhouetteHeight)/2
	raster.Blit(dst, body, ox, oy)
}

// drawConnection draws one routed wire with its arrowhead. Connections whose
// owning component is absent or hidden are skipped entirely; a malformed
// reference never aborts the render pass.
func drawConnection(dst *image.RGBA, cfg *Configuration, conn Connection) {
	box, ok := cfg.ComponentByID(conn.ComponentID)
	if !ok || !box.Visible {
		return
	}

	route := Route(box, conn)
	if len(route) < 2 {
		return
	}

	col := cfg.ResolvedColor(conn)
	raster.Polyline(dst, route, col, connectionThickness)

	head := Arrowhead(route[len(route)-1], route[len(route)-2])
	raster.FillPolygon(dst, head[:], col)
}

// drawBox draws one component box with its name and optional brand line.
func drawBox(dst *image.RGBA, box ComponentBox, selected bool) {
	x1 := int(box.Position.X)
	y1 := int(box.Position.Y)
	x2 := x1 + BoxWidth
	y2 := y1 + BoxHeight

	fill := boxFillColor
	border := colorutil.Gray
	if selected {
		fill = selectedFill
		border = colorutil.Blue
	} else if box.Accent != nil {
		border = *box.Accent
	}

	raster.FillRect(dst, x1, y1, x2, y2, fill)
	raster.StrokeRect(dst, x1, y1, x2, y2, border, 2)

	cx := x1 + BoxWidth/2

	// Name centered near the top; drop to the small scale when it would
	// overflow the box.
	nameScale := 2
	if raster.LabelWidth(box.Name, nameScale) > BoxWidth-8 {
		nameScale = 1
	}
	raster.DrawLabel(dst, box.Name, cx, y1+12, colorutil.White, nameScale)

	if box.Brand != "" {
		raster.DrawLabel(dst, box.Brand, cx, y1+28, brandTextColor, 1)
	}
}

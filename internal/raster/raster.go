// Package raster provides software drawing primitives for composing diagram
// surfaces into an RGBA buffer.
package raster

import (
	"image"
	"image/color"

	"audio-diagram/pkg/geometry"
)

// Clear fills the entire buffer with a single color.
func Clear(output *image.RGBA, col color.RGBA) {
	bounds := output.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			output.SetRGBA(x, y, col)
		}
	}
}

// FillRect fills an axis-aligned rectangle, clipped to the buffer.
func FillRect(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := output.Bounds()
	for y := y1; y <= y2; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := x1; x <= x2; x++ {
			if x >= bounds.Min.X && x < bounds.Max.X {
				output.SetRGBA(x, y, col)
			}
		}
	}
}

// StrokeRect draws a rectangle outline of the given thickness.
func StrokeRect(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := output.Bounds()
	for t := 0; t < thickness; t++ {
		for x := x1; x <= x2; x++ {
			if x >= bounds.Min.X && x < bounds.Max.X {
				if y1+t >= bounds.Min.Y && y1+t < bounds.Max.Y {
					output.SetRGBA(x, y1+t, col)
				}
				if y2-t >= bounds.Min.Y && y2-t < bounds.Max.Y {
					output.SetRGBA(x, y2-t, col)
				}
			}
		}
		for y := y1; y <= y2; y++ {
			if y >= bounds.Min.Y && y < bounds.Max.Y {
				if x1+t >= bounds.Min.X && x1+t < bounds.Max.X {
					output.SetRGBA(x1+t, y, col)
				}
				if x2-t >= bounds.Min.X && x2-t < bounds.Max.X {
					output.SetRGBA(x2-t, y, col)
				}
			}
		}
	}
}

// Line draws a line between two points using Bresenham's algorithm.
func Line(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := output.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				px, py := x1+s, y1+t
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					output.SetRGBA(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polyline draws consecutive line segments through the given points.
func Polyline(output *image.RGBA, points []geometry.Point2D, col color.RGBA, thickness int) {
	for i := 0; i+1 < len(points); i++ {
		Line(output,
			int(points[i].X), int(points[i].Y),
			int(points[i+1].X), int(points[i+1].Y),
			col, thickness)
	}
}

// FillPolygon fills a polygon using a scanline algorithm and strokes its
// outline so thin shapes stay visible.
func FillPolygon(output *image.RGBA, points []geometry.Point2D, col color.RGBA) {
	if len(points) < 3 {
		return
	}

	bounds := output.Bounds()
	box := geometry.BoundingBox(points)

	for y := int(box.Y); y <= int(box.Y+box.Height); y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}

		// Find all x intersections with polygon edges at this y
		var xIntersections []float64
		n := len(points)
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]

			if (p1.Y <= float64(y) && p2.Y > float64(y)) ||
				(p2.Y <= float64(y) && p1.Y > float64(y)) {
				t := (float64(y) - p1.Y) / (p2.Y - p1.Y)
				xIntersections = append(xIntersections, p1.X+t*(p2.X-p1.X))
			}
		}

		for i := 0; i < len(xIntersections)-1; i++ {
			for j := i + 1; j < len(xIntersections); j++ {
				if xIntersections[j] < xIntersections[i] {
					xIntersections[i], xIntersections[j] = xIntersections[j], xIntersections[i]
				}
			}
		}

		for i := 0; i+1 < len(xIntersections); i += 2 {
			for x := int(xIntersections[i]); x <= int(xIntersections[i+1]); x++ {
				if x >= bounds.Min.X && x < bounds.Max.X {
					output.SetRGBA(x, y, col)
				}
			}
		}
	}

	n := len(points)
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		Line(output, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), col, 1)
	}
}

// Blit copies src onto output with its top-left corner at (ox, oy), skipping
// fully transparent source pixels and alpha-blending partial ones.
func Blit(output *image.RGBA, src *image.RGBA, ox, oy int) {
	if src == nil {
		return
	}

	bounds := output.Bounds()
	srcBounds := src.Bounds()

	for y := srcBounds.Min.Y; y < srcBounds.Max.Y; y++ {
		for x := srcBounds.Min.X; x < srcBounds.Max.X; x++ {
			dx := ox + x - srcBounds.Min.X
			dy := oy + y - srcBounds.Min.Y
			if dx < bounds.Min.X || dx >= bounds.Max.X || dy < bounds.Min.Y || dy >= bounds.Max.Y {
				continue
			}

			s := src.RGBAAt(x, y)
			if s.A == 0 {
				continue
			}
			if s.A == 255 {
				output.SetRGBA(dx, dy, s)
				continue
			}

			alpha := float64(s.A) / 255.0
			inv := 1 - alpha
			d := output.RGBAAt(dx, dy)
			output.SetRGBA(dx, dy, color.RGBA{
				R: uint8(float64(s.R)*alpha + float64(d.R)*inv),
				G: uint8(float64(s.G)*alpha + float64(d.G)*inv),
				B: uint8(float64(s.B)*alpha + float64(d.B)*inv),
				A: 255,
			})
		}
	}
}

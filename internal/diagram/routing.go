package diagram

import (
	"math"

	"audio-diagram/pkg/geometry"
)

// Arrowhead dimensions in surface units: the triangle extends arrowLength
// back from the line's endpoint and arrowHalfWidth to each side.
const (
	arrowLength    = 10.0
	arrowHalfWidth = 5.0
)

// Anchor offset from a component box origin to its connection anchor
// (the box's horizontal and vertical center).
const (
	anchorOffsetX = BoxWidth / 2
	anchorOffsetY = BoxHeight / 2
)

// Anchor returns the point on a component box where its connection starts.
func Anchor(box ComponentBox) geometry.Point2D {
	return box.Position.Add(geometry.NewPoint2D(anchorOffsetX, anchorOffsetY))
}

// Route returns the full polyline for a connection: the owning component's
// anchor followed by the connection's waypoints in declared order.
func Route(box ComponentBox, conn Connection) []geometry.Point2D {
	points := make([]geometry.Point2D, 0, len(conn.Waypoints)+1)
	points = append(points, Anchor(box))
	points = append(points, conn.Waypoints...)
	return points
}

// Arrowhead returns the three corners of a fixed-size arrowhead triangle
// whose apex sits at last, oriented along the direction from prev to last.
// Pure and deterministic: identical inputs always yield identical triangles.
func Arrowhead(last, prev geometry.Point2D) [3]geometry.Point2D {
	angle := math.Atan2(last.Y-prev.Y, last.X-prev.X)
	place := geometry.Translation(last.X, last.Y).Compose(geometry.Rotation(angle))

	// Canonical triangle pointing along +x with apex at the origin.
	return [3]geometry.Point2D{
		place.Apply(geometry.NewPoint2D(0, 0)),
		place.Apply(geometry.NewPoint2D(-arrowLength, -arrowHalfWidth)),
		place.Apply(geometry.NewPoint2D(-arrowLength, arrowHalfWidth)),
	}
}

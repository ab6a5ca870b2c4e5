package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b Point2D) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestPoint2DDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point2D
		want float64
	}{
		{"same point", NewPoint2D(3, 4), NewPoint2D(3, 4), 0},
		{"3-4-5 triangle", NewPoint2D(0, 0), NewPoint2D(3, 4), 5},
		{"negative coords", NewPoint2D(-1, -1), NewPoint2D(2, 3), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Distance(tt.b); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 100, 50)

	tests := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"center", NewPoint2D(60, 45), true},
		{"top-left corner", NewPoint2D(10, 20), true},
		{"bottom-right corner", NewPoint2D(110, 70), true},
		{"left edge", NewPoint2D(10, 45), true},
		{"just left", NewPoint2D(9.99, 45), false},
		{"just below", NewPoint2D(60, 70.01), false},
		{"far away", NewPoint2D(-5, -5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(0, 0, 120, 40)
	if got := r.Center(); !almostEqual(got, NewPoint2D(60, 20)) {
		t.Errorf("Center() = %v, want (60, 20)", got)
	}
}

func TestAffineTransform(t *testing.T) {
	t.Run("identity is a no-op", func(t *testing.T) {
		p := NewPoint2D(7, -3)
		if got := Identity().Apply(p); !almostEqual(got, p) {
			t.Errorf("Identity().Apply(%v) = %v", p, got)
		}
	})

	t.Run("translation", func(t *testing.T) {
		got := Translation(10, -5).Apply(NewPoint2D(1, 1))
		if !almostEqual(got, NewPoint2D(11, -4)) {
			t.Errorf("Apply() = %v, want (11, -4)", got)
		}
	})

	t.Run("quarter rotation", func(t *testing.T) {
		got := Rotation(math.Pi / 2).Apply(NewPoint2D(1, 0))
		if !almostEqual(got, NewPoint2D(0, 1)) {
			t.Errorf("Apply() = %v, want (0, 1)", got)
		}
	})

	t.Run("translate then rotate composition", func(t *testing.T) {
		// Compose applies the right transform first: rotate about the
		// origin, then translate.
		tr := Translation(100, 200).Compose(Rotation(math.Pi / 2))
		got := tr.Apply(NewPoint2D(1, 0))
		if !almostEqual(got, NewPoint2D(100, 201)) {
			t.Errorf("Apply() = %v, want (100, 201)", got)
		}
	})
}

func TestCentroid(t *testing.T) {
	tests := []struct {
		name   string
		points []Point2D
		want   Point2D
	}{
		{"empty", nil, Point2D{}},
		{"single", []Point2D{{X: 4, Y: 2}}, Point2D{X: 4, Y: 2}},
		{"square", []Point2D{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, Point2D{X: 1, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Centroid(tt.points); !almostEqual(got, tt.want) {
				t.Errorf("Centroid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundingBox(t *testing.T) {
	points := []Point2D{{5, 10}, {-3, 2}, {8, -1}}
	got := BoundingBox(points)
	want := NewRect(-3, -1, 11, 11)
	if got != want {
		t.Errorf("BoundingBox() = %+v, want %+v", got, want)
	}

	if got := BoundingBox(nil); got != (Rect{}) {
		t.Errorf("BoundingBox(nil) = %+v, want zero rect", got)
	}
}

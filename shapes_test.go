package rastr

import (
	"math"
	"testing"
)

func TestRect(t *testing.T) {
	pts := Rect(10, 20, 100, 50)

	want := []Point{
		{X: 10, Y: 20},
		{X: 110, Y: 20},
		{X: 110, Y: 70},
		{X: 10, Y: 70},
	}
	if len(pts) != 4 {
		t.Fatalf("len = %d, want 4", len(pts))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("corner %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestCircle(t *testing.T) {
	const (
		cx, cy, r = 50.0, 60.0, 25.0
		segments  = 32
	)
	pts := Circle(cx, cy, r, segments)

	if len(pts) != segments {
		t.Fatalf("len = %d, want %d", len(pts), segments)
	}
	// First point sits on the positive X axis.
	if math.Abs(pts[0].X-(cx+r)) > 1e-9 || math.Abs(pts[0].Y-cy) > 1e-9 {
		t.Errorf("first point = %v, want (%v, %v)", pts[0], cx+r, cy)
	}
	// Every point lies on the circle.
	center := Pt(cx, cy)
	for i, p := range pts {
		if d := p.Distance(center); math.Abs(d-r) > 1e-9 {
			t.Errorf("point %d distance = %v, want %v", i, d, r)
		}
	}
}

func TestCircle_TooFewSegments(t *testing.T) {
	for _, segments := range []int{-1, 0, 1, 2} {
		if pts := Circle(0, 0, 10, segments); pts != nil {
			t.Errorf("Circle with %d segments = %v, want nil", segments, pts)
		}
	}
}

func TestStar(t *testing.T) {
	const (
		cx, cy       = 100.0, 100.0
		outer, inner = 80.0, 30.0
		points       = 5
	)
	pts := Star(cx, cy, outer, inner, points)

	if len(pts) != 2*points {
		t.Fatalf("len = %d, want %d", len(pts), 2*points)
	}
	// First vertex points straight up.
	if math.Abs(pts[0].X-cx) > 1e-9 || math.Abs(pts[0].Y-(cy-outer)) > 1e-9 {
		t.Errorf("first vertex = %v, want (%v, %v)", pts[0], cx, cy-outer)
	}
	// Vertices alternate between the outer and inner radius.
	center := Pt(cx, cy)
	for i, p := range pts {
		want := outer
		if i%2 == 1 {
			want = inner
		}
		if d := p.Distance(center); math.Abs(d-want) > 1e-9 {
			t.Errorf("vertex %d distance = %v, want %v", i, d, want)
		}
	}
}

func TestStar_TooFewPoints(t *testing.T) {
	for _, points := range []int{-1, 0, 1} {
		if pts := Star(0, 0, 10, 5, points); pts != nil {
			t.Errorf("Star with %d points = %v, want nil", points, pts)
		}
	}
}

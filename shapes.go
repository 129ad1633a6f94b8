package rastr

import "math"

// Rect returns the four corners of an axis-aligned rectangle, clockwise
// from the top-left, as a vertex loop for FillPolygon.
func Rect(x, y, w, h float64) []Point {
	return []Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

// Circle approximates a circle of radius r around (cx, cy) with segments
// vertices evenly spaced by angle. Returns nil if segments < 3.
func Circle(cx, cy, r float64, segments int) []Point {
	if segments < 3 {
		return nil
	}
	pts := make([]Point, segments)
	angle := 2 * math.Pi / float64(segments)
	for i := 0; i < segments; i++ {
		a := angle * float64(i)
		pts[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

// Star returns a star-shaped vertex loop around (cx, cy) with the given
// number of points, alternating between outer and inner radius. The first
// vertex sits straight up from the center. Returns nil if points < 2.
func Star(cx, cy, outer, inner float64, points int) []Point {
	if points < 2 {
		return nil
	}
	pts := make([]Point, 2*points)
	angle := math.Pi / float64(points)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := angle * float64(i)
		pts[i] = Point{X: cx + r*math.Sin(a), Y: cy - r*math.Cos(a)}
	}
	return pts
}

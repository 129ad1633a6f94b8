package rastr

// LinearGradient is a color ramp between two points.
// It implements the Fill interface. The gradient parameter at a pixel is
// the projection fraction of the pixel onto the Start->End axis, so color
// is constant along lines perpendicular to the axis. Parameters outside
// [0, 1] are clamped (pad extension).
//
// Example:
//
//	grad := rastr.NewLinearGradient(0, 0, 100, 0).
//	    AddStop(0, rastr.Red).
//	    AddStop(0.5, rastr.Yellow).
//	    AddStop(1, rastr.Blue)
type LinearGradient struct {
	Start Point       // Start point of the gradient (t = 0)
	End   Point       // End point of the gradient (t = 1)
	Stops []ColorStop // Color stops, kept sorted ascending by offset
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
	}
}

// AddStop adds a color stop at the specified offset, keeping the stop list
// sorted. Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradient) AddStop(offset float64, c RGBA) *LinearGradient {
	g.Stops = insertStop(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// fillMarker implements the sealed Fill interface.
func (*LinearGradient) fillMarker() {}

// ColorAt returns the gradient color at the given point.
// A zero-length gradient (Start == End) is a constant fill of the first
// stop's color.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	axis := g.End.Sub(g.Start)
	lengthSq := axis.LengthSquared()
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := Point{X: x - g.Start.X, Y: y - g.Start.Y}.Dot(axis) / lengthSq

	return colorAtOffset(g.Stops, clamp01(t))
}

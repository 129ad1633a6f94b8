package rastr

// RadialGradient is a color ramp radiating from a center point.
// It implements the Fill interface. The gradient parameter at a pixel is
// distance-from-center divided by Radius, so t = 0 at the center and t = 1
// on the circle of the given radius. Parameters outside [0, 1] are clamped
// (pad extension).
//
// Example:
//
//	grad := rastr.NewRadialGradient(50, 50, 40).
//	    AddStop(0, rastr.White).
//	    AddStop(1, rastr.Black)
type RadialGradient struct {
	Center Point       // Center of the gradient (t = 0)
	Radius float64     // Radius where the gradient ends (t = 1)
	Stops  []ColorStop // Color stops, kept sorted ascending by offset
}

// NewRadialGradient creates a radial gradient around (cx, cy) with the
// given radius.
func NewRadialGradient(cx, cy, radius float64) *RadialGradient {
	return &RadialGradient{
		Center: Point{X: cx, Y: cy},
		Radius: radius,
	}
}

// AddStop adds a color stop at the specified offset, keeping the stop list
// sorted. Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *RadialGradient) AddStop(offset float64, c RGBA) *RadialGradient {
	g.Stops = insertStop(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// fillMarker implements the sealed Fill interface.
func (*RadialGradient) fillMarker() {}

// ColorAt returns the gradient color at the given point.
// A degenerate gradient (Radius <= 0) is a constant fill of the first
// stop's color.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	if g.Radius <= 0 {
		return firstStopColor(g.Stops)
	}

	t := Point{X: x, Y: y}.Distance(g.Center) / g.Radius

	return colorAtOffset(g.Stops, clamp01(t))
}

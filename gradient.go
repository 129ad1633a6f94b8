package rastr

import "sort"

// Fill represents what to fill a polygon with.
// This is a sealed interface - only types in this package implement it.
//
// Supported fill types:
//   - SolidFill: a single solid color
//   - *LinearGradient: a color ramp between two points
//   - *RadialGradient: a color ramp radiating from a center
//
// Example usage:
//
//	rastr.FillPolygon(pm, pts, rastr.Solid(rastr.Red), rastr.BlendNormal)
//	rastr.FillPolygon(pm, pts, rastr.NewRadialGradient(50, 50, 40).
//	    AddStop(0, rastr.White).
//	    AddStop(1, rastr.Black), rastr.BlendNormal)
type Fill interface {
	// fillMarker is an unexported method that seals this interface.
	// Only types in this package can implement Fill.
	fillMarker()

	// ColorAt returns the fill color at the given coordinates.
	// For solid fills this is position-independent; gradients sample
	// their ramp at (x, y).
	ColorAt(x, y float64) RGBA
}

// SolidFill is a single-color fill.
// It implements the Fill interface and always returns the same color.
type SolidFill struct {
	// Color is the solid color of this fill.
	Color RGBA
}

// fillMarker implements the sealed Fill interface.
func (SolidFill) fillMarker() {}

// ColorAt implements Fill. Returns the solid color regardless of position.
func (f SolidFill) ColorAt(_, _ float64) RGBA {
	return f.Color
}

// Solid creates a SolidFill from an RGBA color.
func Solid(c RGBA) SolidFill {
	return SolidFill{Color: c}
}

// SolidRGB creates an opaque SolidFill from RGB components (0-1 range).
func SolidRGB(r, g, b float64) SolidFill {
	return SolidFill{Color: RGB(r, g, b)}
}

// SolidHex creates a SolidFill from a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
func SolidHex(hex string) SolidFill {
	return SolidFill{Color: Hex(hex)}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// insertStop inserts a stop keeping the slice sorted ascending by offset.
// Equal offsets keep insertion order (the new stop goes after existing ones),
// so the sorted invariant holds at every observation point.
func insertStop(stops []ColorStop, stop ColorStop) []ColorStop {
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset > stop.Offset
	})
	stops = append(stops, ColorStop{})
	copy(stops[idx+1:], stops[idx:])
	stops[idx] = stop
	return stops
}

// colorAtOffset returns the interpolated color at a given offset.
// Stops must be sorted ascending by offset (insertStop maintains this).
//
// Edge cases: an empty stop list samples opaque black; t at or beyond the
// first/last stop clamps to that stop's color.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Black
	}

	// Find the first stop at or past t.
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})

	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	stop1 := stops[idx-1]
	stop2 := stops[idx]

	// Coincident offsets: the earlier stop wins.
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	f := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.Lerp(stop2.Color, f)
}

// firstStopColor returns the lowest-offset stop's color, or opaque black
// for an empty stop list. Used as the constant fallback for degenerate
// gradient geometry.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Black
	}
	return stops[0].Color
}

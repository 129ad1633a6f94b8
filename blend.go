package rastr

import "math"

// BlendMode selects how a source color is mixed with the destination
// before alpha compositing.
type BlendMode int

const (
	// BlendNormal composites the source straight over the destination.
	BlendNormal BlendMode = iota
	// BlendMultiply multiplies source and destination channels.
	BlendMultiply
	// BlendAdd adds source and destination channels, clamped to 1.
	BlendAdd
	// BlendDifference takes the absolute channel difference.
	BlendDifference
	// BlendOverlay darkens dark regions and lightens light ones.
	BlendOverlay
)

// String returns the name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendMultiply:
		return "multiply"
	case BlendAdd:
		return "add"
	case BlendDifference:
		return "difference"
	case BlendOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// Blend combines a source color over a destination color using the given
// mode. The mode mixes the RGB channels; the mixed color is then composited
// with the source alpha: out = mixed*src.A + dst*(1-src.A).
//
// The result is always fully opaque (A == 1), regardless of mode or input
// alphas: a filled canvas never accumulates transparency. Blend is a total
// function; it never fails for finite inputs.
func Blend(src, dst RGBA, mode BlendMode) RGBA {
	var r, g, b float64

	switch mode {
	case BlendMultiply:
		r = src.R * dst.R
		g = src.G * dst.G
		b = src.B * dst.B
	case BlendAdd:
		r = clamp01(src.R + dst.R)
		g = clamp01(src.G + dst.G)
		b = clamp01(src.B + dst.B)
	case BlendDifference:
		r = math.Abs(dst.R - src.R)
		g = math.Abs(dst.G - src.G)
		b = math.Abs(dst.B - src.B)
	case BlendOverlay:
		r = overlayChannel(src.R, dst.R)
		g = overlayChannel(src.G, dst.G)
		b = overlayChannel(src.B, dst.B)
	default: // BlendNormal
		r = src.R
		g = src.G
		b = src.B
	}

	alpha := src.A
	inv := 1 - alpha
	return RGBA{
		R: r*alpha + dst.R*inv,
		G: g*alpha + dst.G*inv,
		B: b*alpha + dst.B*inv,
		A: 1,
	}
}

// overlayChannel applies the overlay formula to a single channel pair.
// Destination values of exactly 0.5 take the screen branch.
func overlayChannel(s, d float64) float64 {
	if d < 0.5 {
		return 2 * s * d
	}
	return 1 - 2*(1-s)*(1-d)
}

// Package rastr provides a software scanline polygon rasterizer for Go.
//
// # Overview
//
// rastr fills polygons onto an in-memory pixel buffer using the classic
// even-odd scanline algorithm. Fills can be solid colors or linear/radial
// gradients, composited onto the canvas with one of several blend modes.
// Everything runs on the CPU in pure Go.
//
// # Quick Start
//
//	import "github.com/rastr/rastr"
//
//	pm := rastr.NewPixmap(800, 600)
//	pm.Clear(rastr.White)
//
//	// Solid red rectangle
//	rastr.FillPolygon(pm, rastr.Rect(50, 50, 200, 150), rastr.Solid(rastr.Red), rastr.BlendNormal)
//
//	// Radial gradient circle
//	grad := rastr.NewRadialGradient(400, 300, 100).
//	    AddStop(0, rastr.Blue).
//	    AddStop(1, rastr.Transparent)
//	rastr.FillPolygon(pm, rastr.Circle(400, 300, 100, 50), grad, rastr.BlendNormal)
//
//	pm.SavePNG("output.png")
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases counter-clockwise
//
// # Fidelity
//
// The rasterizer is a hard-edged even-odd fill: no anti-aliasing, no
// sub-pixel coverage, no winding-rule fill. Colors are linear 0-1 floating
// channels truncated to 8 bits at the pixel boundary.
package rastr

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

package rastr

import "sort"

// edge is one polygon edge bucketed for scanline conversion.
// Edges are built per FillPolygon call and discarded with it.
type edge struct {
	// yMin and yMax are the integer scanline bounds; yMin < yMax always
	// (horizontal edges never enter the table).
	yMin, yMax int

	// x is the X coordinate at yMin.
	x float64

	// dxdy is the inverse slope: change in X per unit Y.
	dxdy float64
}

// xAt calculates the X intersection of the edge with scanline y.
func (e *edge) xAt(y int) float64 {
	return e.x + e.dxdy*float64(y-e.yMin)
}

// activeAt returns true if the edge crosses scanline y.
// An edge is active when yMin <= y < yMax.
func (e *edge) activeAt(y int) bool {
	return y >= e.yMin && y < e.yMax
}

// buildEdges converts a vertex loop into an edge table, culled to the
// canvas's vertical extent. The last vertex implicitly connects back to
// the first. Returns the table and the clamped scanline range [minY, maxY).
func buildEdges(vertices []Point, height int) (edges []edge, minY, maxY int) {
	minY = height
	maxY = 0

	for i := range vertices {
		p1 := vertices[i]
		p2 := vertices[(i+1)%len(vertices)]

		// Edges within a single scanline contribute no crossings.
		if int(p1.Y) == int(p2.Y) {
			continue
		}

		// Normalize so the edge runs downward.
		if p1.Y > p2.Y {
			p1, p2 = p2, p1
		}

		e := edge{
			yMin: int(p1.Y),
			yMax: int(p2.Y),
			x:    p1.X,
			dxdy: (p2.X - p1.X) / (p2.Y - p1.Y),
		}

		// Fully above or below the canvas.
		if e.yMax <= 0 || e.yMin >= height {
			continue
		}

		edges = append(edges, e)
		if e.yMin < minY {
			minY = e.yMin
		}
		if e.yMax > maxY {
			maxY = e.yMax
		}
	}

	if minY < 0 {
		minY = 0
	}
	if maxY > height {
		maxY = height
	}
	return edges, minY, maxY
}

// FillPolygon rasterizes the polygon described by vertices onto pm,
// compositing fill over the existing pixels with the given blend mode.
// The vertex loop closes implicitly from the last vertex to the first;
// self-intersecting polygons fill by the even-odd rule, so winding
// direction does not matter.
//
// Fewer than three vertices is a no-op. Geometry outside the canvas is
// clipped; degenerate input degrades to a partial or empty fill rather
// than an error. The call is deterministic and touches each covered pixel
// exactly once.
func FillPolygon(pm *Pixmap, vertices []Point, fill Fill, mode BlendMode) {
	if len(vertices) < 3 {
		return
	}

	width := pm.Width()
	height := pm.Height()

	edges, minY, maxY := buildEdges(vertices, height)
	if len(edges) == 0 {
		return
	}

	Logger().Debug("fill polygon",
		"vertices", len(vertices),
		"edges", len(edges),
		"scanlines", maxY-minY,
		"mode", mode.String())

	// Reused across scanlines to avoid per-line allocation.
	nodes := make([]float64, 0, len(edges))

	for y := minY; y < maxY; y++ {
		// Collect x-intersections of all edges crossing this scanline.
		nodes = nodes[:0]
		for i := range edges {
			if edges[i].activeAt(y) {
				nodes = append(nodes, edges[i].xAt(y))
			}
		}
		sort.Float64s(nodes)

		// Fill spans between pairs of crossings (even-odd rule).
		// An unmatched trailing crossing is dropped.
		for i := 0; i+1 < len(nodes); i += 2 {
			startX := int(nodes[i])
			endX := int(nodes[i+1])

			if startX >= width || endX <= 0 {
				continue
			}
			if startX < 0 {
				startX = 0
			}
			if endX > width {
				endX = width
			}

			for x := startX; x < endX; x++ {
				src := fill.ColorAt(float64(x), float64(y))
				dst := pm.GetPixel(x, y)
				pm.SetPixel(x, y, Blend(src, dst, mode))
			}
		}
	}
}

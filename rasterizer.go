package raster2d

import "github.com/kestrelgfx/raster2d/internal/blit"

// edge is one side of a sub-triangle: a pair of points sharing a y-sorted
// top and bottom, walked one scanline at a time by walkEdges.
type edge struct {
	p1, p2 Point
}

// computeLine fits the line through p1 and p2 as y = m*x + b. It reports
// true (vertical) when p1 and p2 share an x coordinate, in which case m and
// b are left unset.
func computeLine(p1, p2 Point) (m, b float64, vertical bool) {
	dx := p2.X - p1.X
	if dx == 0 {
		return 0, 0, true
	}
	m = (p2.Y - p1.Y) / dx
	b = p1.Y - m*p1.X
	return m, b, false
}

// walkEdges rasterizes the sub-triangle bounded by e1 and e2, which must
// share the same top y (e1.p1.Y == e2.p1.Y) and the same bottom y
// (e1.p2.Y == e2.p2.Y). See §4.6.
func walkEdges(bm Bitmap, e1, e2 edge, blitter blit.Blitter) {
	height := bm.Height
	width := bm.Width

	startY := clampInt(roundToInt(e1.p1.Y), 0, height)
	endY := clampInt(roundToInt(e1.p2.Y), 0, height)
	if startY >= endY {
		return
	}

	m1, b1, vert1 := computeLine(e1.p1, e1.p2)
	m2, b2, vert2 := computeLine(e2.p1, e2.p2)

	// A zero slope on either edge means that edge is horizontal, which is
	// degenerate for a y-spanning edge walk (see Open Question 4).
	if !vert1 && m1 == 0 {
		return
	}
	if !vert2 && m2 == 0 {
		return
	}

	// Collinear edges cover zero area.
	if vert1 && vert2 && e1.p1.X == e2.p1.X {
		return
	}
	if !vert1 && !vert2 && m1 == m2 && b1 == b2 {
		return
	}

	stepX1, stepX2 := 0.0, 0.0
	if !vert1 {
		stepX1 = 1 / m1
	}
	if !vert2 {
		stepX2 = 1 / m2
	}

	sY := float64(startY) + 0.5
	x1 := e1.p1.X
	if !vert1 {
		x1 = (sY - b1) / m1
	}
	x2 := e2.p1.X
	if !vert2 {
		x2 = (sY - b2) / m2
	}

	// Keep x1 <= x2 so the inner loop never needs a min/max.
	if x1 > x2 {
		x1, x2 = x2, x1
		stepX1, stepX2 = stepX2, stepX1
	}

	x1 += 0.5
	x2 += 0.5
	for y := startY; y < endY; y++ {
		sx1 := clampInt(int(x1), 0, width)
		sx2 := clampInt(int(x2), 0, width)
		blitter.BlitRow(bm.asSurface(), sx1, sx2, y)

		x1 += stepX1
		x2 += stepX2
	}
}

// drawTriangleWithBlitter transforms vertices by ctm, sorts them by y, splits
// the triangle into an upper and lower sub-triangle at the long edge, and
// rasterizes each with walkEdges. See §4.6.
func drawTriangleWithBlitter(bm Bitmap, ctm Matrix, vertices [3]Point, blitter blit.Blitter) {
	points := [3]Point{
		ctm.TransformPoint(vertices[0]),
		ctm.TransformPoint(vertices[1]),
		ctm.TransformPoint(vertices[2]),
	}

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if points[i].Y > points[j].Y {
				points[i], points[j] = points[j], points[i]
			}
		}
	}

	m, b, vertical := computeLine(points[0], points[2])
	if !vertical && m == 0 {
		return
	}

	var mid Point
	mid.Y = points[1].Y
	if vertical {
		mid.X = points[0].X
	} else {
		mid.X = (mid.Y - b) / m
	}

	walkEdges(bm, edge{points[0], points[1]}, edge{points[0], mid}, blitter)
	walkEdges(bm, edge{points[1], points[2]}, edge{mid, points[2]}, blitter)
}

func roundToInt(x float64) int {
	if x >= 0 {
		return int(x + 0.5)
	}
	return -int(-x + 0.5)
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

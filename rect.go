package raster2d

import "math"

// IRect is an integer rectangle using the half-open convention:
// left <= x < right, top <= y < bottom.
type IRect struct {
	Left, Top, Right, Bottom int
}

// MakeIRectWH returns an IRect with origin (0,0) and the given size.
func MakeIRectWH(w, h int) IRect {
	return IRect{Right: w, Bottom: h}
}

// Width returns right - left.
func (r IRect) Width() int { return r.Right - r.Left }

// Height returns bottom - top.
func (r IRect) Height() int { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle has no area under the half-open
// convention.
func (r IRect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// IntersectIRect computes the component-wise intersection of a and b: the max of
// the lefts/tops and the min of the rights/bottoms. It reports false (with
// the zero IRect) when the result is empty.
func IntersectIRect(a, b IRect) (IRect, bool) {
	r := IRect{
		Left:   maxInt(a.Left, b.Left),
		Top:    maxInt(a.Top, b.Top),
		Right:  minInt(a.Right, b.Right),
		Bottom: minInt(a.Bottom, b.Bottom),
	}
	if r.IsEmpty() {
		return IRect{}, false
	}
	return r, true
}

// Contains reports whether (x, y) lies within the rectangle, using the
// half-open convention.
func (r IRect) Contains(x, y int) bool {
	return r.Left <= x && x < r.Right && r.Top <= y && y < r.Bottom
}

// Rect is a float rectangle using the half-open convention:
// left <= x < right, top <= y < bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// MakeRectWH returns a Rect with origin (0,0) and the given size.
func MakeRectWH(w, h float64) Rect {
	return Rect{Right: w, Bottom: h}
}

// IsEmpty reports whether the rectangle has no area under the half-open
// convention.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// IntersectRect computes the component-wise intersection of a and b. It
// reports false (with the zero Rect) when the result is empty.
func IntersectRect(a, b Rect) (Rect, bool) {
	r := Rect{
		Left:   math.Max(a.Left, b.Left),
		Top:    math.Max(a.Top, b.Top),
		Right:  math.Min(a.Right, b.Right),
		Bottom: math.Min(a.Bottom, b.Bottom),
	}
	if r.IsEmpty() {
		return Rect{}, false
	}
	return r, true
}

// Round maps the rectangle to an IRect by rounding each edge to the nearest
// integer.
func (r Rect) Round() IRect {
	return IRect{
		Left:   int(math.Round(r.Left)),
		Top:    int(math.Round(r.Top)),
		Right:  int(math.Round(r.Right)),
		Bottom: int(math.Round(r.Bottom)),
	}
}

// ToQuad returns the four corners of the rectangle in order: top-left,
// top-right, bottom-right, bottom-left.
func (r Rect) ToQuad() [4]Point {
	return [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
}

// Contains reports whether (x, y) lies within the rectangle, using the
// half-open convention.
func (r Rect) Contains(x, y float64) bool {
	return r.Left <= x && x < r.Right && r.Top <= y && y < r.Bottom
}

func minFloat(a, b float64) float64 {
	return math.Min(a, b)
}

func maxFloat(a, b float64) float64 {
	return math.Max(a, b)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

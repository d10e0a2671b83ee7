// Package blit implements the row-granularity span fillers used by
// [github.com/kestrelgfx/raster2d.Context] to turn geometry into pixels. A
// Blitter is a small, short-lived value constructed per draw call, capturing
// the blend mode, source, and (for bitmap sampling) the inverse CTM and
// global alpha; the rasterizer calls BlitRow once per scanline and discards
// the blitter when the call returns.
package blit

import "github.com/kestrelgfx/raster2d/internal/blend"

// Surface is the minimal view of a pixel buffer a Blitter needs: enough to
// address row y's span of pixels without depending on the public Bitmap
// type, which would create an import cycle with the root package.
type Surface struct {
	Pixels []blend.Pixel
	Width  int
	Height int
	Stride int // distance between rows, in pixels
}

// Row returns the Width-pixel slice making up row y.
func (s Surface) Row(y int) []blend.Pixel {
	start := y * s.Stride
	return s.Pixels[start : start+s.Width]
}

// Affine is the subset of a 3x3 affine matrix a Blitter needs to map
// destination pixel centers into source space: x' = A*x+B*y+C, y' =
// D*x+E*y+F.
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Apply maps (x, y) through the affine transform.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// Blitter fills a horizontal run of destination pixels on row y, over the
// half-open span [startX, endX).
type Blitter interface {
	BlitRow(dst Surface, startX, endX, y int)
}

// ConstBlitter fills each destination pixel with Pixel composited via
// src-over. Used for partially-transparent constant-color fills.
type ConstBlitter struct {
	Pixel blend.Pixel
}

func (b ConstBlitter) BlitRow(dst Surface, startX, endX, y int) {
	row := dst.Row(y)
	for x := startX; x < endX; x++ {
		row[x] = blend.SrcOver(row[x], b.Pixel)
	}
}

// OpaqueBlitter overwrites each destination pixel with Pixel directly,
// skipping the blend since the source is fully opaque.
type OpaqueBlitter struct {
	Pixel blend.Pixel
}

func (b OpaqueBlitter) BlitRow(dst Surface, startX, endX, y int) {
	row := dst.Row(y)
	for x := startX; x < endX; x++ {
		row[x] = b.Pixel
	}
}

// findBitmapBounds narrows [startX, endX) to the range of x for which
// invCTM.Apply(x+0.5, y+0.5) falls within src's half-open bounds, matching
// per-pixel containment checking without a branch in the caller's inner
// loop. Grounded on the source engine's FindBitmapBounds.
func findBitmapBounds(invCTM Affine, src Surface, startX, endX, y int) (int, int) {
	contains := func(x int) bool {
		sx, sy := invCTM.Apply(float64(x)+0.5, float64(y)+0.5)
		return 0 <= sx && sx < float64(src.Width) && 0 <= sy && sy < float64(src.Height)
	}

	sx := startX
	for ; sx < endX && !contains(sx); sx++ {
	}
	ex := endX
	for ; ex > sx && !contains(ex-1); ex-- {
	}
	return sx, ex
}

// BitmapBlitter samples Src through InvCTM with nearest (truncating)
// sampling, scales the sampled pixel's channels by Alpha, and composites
// with src-over. Used for bitmap draws with a non-opaque paint alpha.
type BitmapBlitter struct {
	InvCTM Affine
	Src    Surface
	Alpha  uint8
}

func (b BitmapBlitter) BlitRow(dst Surface, startX, endX, y int) {
	startX, endX = findBitmapBounds(b.InvCTM, b.Src, startX, endX, y)

	row := dst.Row(y)
	for x := startX; x < endX; x++ {
		sx, sy := b.InvCTM.Apply(float64(x)+0.5, float64(y)+0.5)
		xx, yy := int(sx), int(sy)

		src := b.Src.Row(yy)[xx]
		scaled := blend.Pack(
			blend.FixedMultiply(src.A(), b.Alpha),
			blend.FixedMultiply(src.R(), b.Alpha),
			blend.FixedMultiply(src.G(), b.Alpha),
			blend.FixedMultiply(src.B(), b.Alpha),
		)
		row[x] = blend.SrcOver(row[x], scaled)
	}
}

// OpaqueBitmapBlitter samples Src through InvCTM with nearest sampling and
// composites with src-over, without any alpha scaling. Used for bitmap draws
// with a fully opaque paint alpha.
type OpaqueBitmapBlitter struct {
	InvCTM Affine
	Src    Surface
}

func (b OpaqueBitmapBlitter) BlitRow(dst Surface, startX, endX, y int) {
	startX, endX = findBitmapBounds(b.InvCTM, b.Src, startX, endX, y)

	row := dst.Row(y)
	for x := startX; x < endX; x++ {
		sx, sy := b.InvCTM.Apply(float64(x)+0.5, float64(y)+0.5)
		xx, yy := int(sx), int(sy)
		row[x] = blend.SrcOver(row[x], b.Src.Row(yy)[xx])
	}
}

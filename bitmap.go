package raster2d

import "github.com/kestrelgfx/raster2d/internal/blit"

// Bitmap is a pixel-addressable surface: a rectangular array of premultiplied
// [Pixel] values, width*height in size, with row i starting at
// Pixels[i*RowBytes/4 : ...]. RowBytes is expressed in bytes even though
// Pixels is a []Pixel slice, so that a Bitmap can describe memory whose rows
// are padded beyond width*4 bytes.
//
// A Bitmap does not track whether its backing slice is borrowed from a
// caller or owned by the [Context] that allocated it; in Go both cases are
// just a slice, and the garbage collector reclaims owned buffers when no
// Context references them anymore. NewContextForBitmap never retains a
// Bitmap beyond what the caller already shares by holding the slice.
type Bitmap struct {
	Width, Height int
	Pixels        []Pixel
	RowBytes      int
}

// NewBitmap allocates an owned Bitmap with tightly packed rows
// (RowBytes == Width*4).
func NewBitmap(width, height int) Bitmap {
	return Bitmap{
		Width:    width,
		Height:   height,
		Pixels:   make([]Pixel, width*height),
		RowBytes: width * 4,
	}
}

// pixelsPerRow is RowBytes expressed as a stride in Pixel units.
func (bm Bitmap) pixelsPerRow() int {
	return bm.RowBytes / 4
}

// Row returns the slice of Width pixels making up row y. It panics if y is
// out of [0, Height).
func (bm Bitmap) Row(y int) []Pixel {
	start := y * bm.pixelsPerRow()
	return bm.Pixels[start : start+bm.Width]
}

// At returns the pixel at (x, y).
func (bm Bitmap) At(x, y int) Pixel {
	return bm.Row(y)[x]
}

// Bounds returns the bitmap's extent as an IRect at the origin.
func (bm Bitmap) Bounds() IRect {
	return MakeIRectWH(bm.Width, bm.Height)
}

// asSurface adapts the bitmap to the view blitters in internal/blit expect.
func (bm Bitmap) asSurface() blit.Surface {
	return blit.Surface{
		Pixels: bm.Pixels,
		Width:  bm.Width,
		Height: bm.Height,
		Stride: bm.pixelsPerRow(),
	}
}

// isTightlyPacked reports whether rows are contiguous in Pixels, i.e.
// RowBytes == Width*4, allowing single-pass fills across the whole buffer.
func (bm Bitmap) isTightlyPacked() bool {
	return bm.RowBytes == bm.Width*4
}

// validateBitmap checks the invariants required of a caller-supplied Bitmap
// before a Context may be built around it: non-nil pixel storage, positive
// dimensions, and a sane row stride. See §4.7.
func validateBitmap(bm Bitmap) error {
	if bm.Pixels == nil {
		return ErrNoPixels
	}
	if bm.Width <= 0 || bm.Height <= 0 {
		return ErrInvalidDimensions
	}
	if bm.RowBytes < bm.Width*4 {
		return ErrRowBytesTooSmall
	}
	if bm.RowBytes%4 != 0 {
		return ErrRowBytesMisaligned
	}
	return nil
}

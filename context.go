package raster2d

import (
	"github.com/kestrelgfx/raster2d/internal/blend"
	"github.com/kestrelgfx/raster2d/internal/blit"
)

// Context owns a destination Bitmap and the current transformation matrix
// (CTM) stack, and exposes the public drawing operations: Clear, DrawRect,
// DrawBitmap, DrawTriangle, and the CTM manipulators Save/Restore/
// Translate/Scale/Rotate. See §3 and §4.5.
type Context struct {
	bm Bitmap

	ctm      Matrix
	ctmInv   Matrix
	ctmValid bool
	stack    []Matrix

	opts contextOptions
}

// NewContext creates a Context that owns a newly allocated width x height
// bitmap, cleared to zero (fully transparent black). It returns
// ErrInvalidDimensions if width or height is not positive. See §4.7.
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return newContext(NewBitmap(width, height), opts...), nil
}

// NewContextForBitmap creates a Context that draws into bm. The caller
// retains ownership of bm.Pixels; the Context never reallocates or retains
// more than a reference to it. Returns an error if bm fails the invariants
// in §4.7 (nil pixels, non-positive dimensions, undersized or misaligned
// RowBytes).
func NewContextForBitmap(bm Bitmap, opts ...ContextOption) (*Context, error) {
	if err := validateBitmap(bm); err != nil {
		return nil, err
	}
	return newContext(bm, opts...), nil
}

func newContext(bm Bitmap, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Context{bm: bm, opts: o}
	c.setCTM(Identity())
	return c
}

// setCTM installs m as the current transform and refreshes the cached
// inverse and its validity flag.
func (c *Context) setCTM(m Matrix) {
	c.ctm = m
	c.ctmInv, c.ctmValid = m.Invert()
}

// GetBitmap returns the Context's destination bitmap.
func (c *Context) GetBitmap() Bitmap {
	return c.bm
}

// RandomSource returns the RandomSource attached at construction via
// WithRandomSource, or nil if none was attached.
func (c *Context) RandomSource() RandomSource {
	return c.opts.rng
}

// ClockSource returns the Clock attached at construction via WithClock, or
// nil if none was attached.
func (c *Context) ClockSource() Clock {
	return c.opts.clock
}

// Save pushes a copy of the current CTM onto the save stack.
func (c *Context) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the most recently saved CTM and makes it current. Calling
// Restore without a matching Save is a programmer error and panics; see §7.
func (c *Context) Restore() {
	n := len(c.stack)
	if n == 0 {
		panic("raster2d: unbalanced restore")
	}
	c.setCTM(c.stack[n-1])
	c.stack = c.stack[:n-1]
}

// Translate post-multiplies the CTM by a translation matrix.
func (c *Context) Translate(tx, ty float64) {
	c.setCTM(c.ctm.Multiply(Translate(tx, ty)))
}

// Scale post-multiplies the CTM by a scaling matrix.
func (c *Context) Scale(sx, sy float64) {
	c.setCTM(c.ctm.Multiply(Scale(sx, sy)))
}

// Rotate post-multiplies the CTM by a rotation matrix (radians).
func (c *Context) Rotate(angle float64) {
	c.setCTM(c.ctm.Multiply(Rotate(angle)))
}

// Clear fills the entire destination bitmap with color, using src
// semantics (overwrite, not src-over) and ignoring the CTM. See §4.5.
func (c *Context) Clear(color Color) {
	pixel := ColorToPixel(color)
	if c.bm.isTightlyPacked() {
		for i := range c.bm.Pixels {
			c.bm.Pixels[i] = pixel
		}
		return
	}
	for y := 0; y < c.bm.Height; y++ {
		row := c.bm.Row(y)
		for x := range row {
			row[x] = pixel
		}
	}
}

// transformRect maps rect's four corners through the CTM and returns their
// axis-aligned bounding box in device space.
func (c *Context) transformRect(rect Rect) Rect {
	quad := rect.ToQuad()
	p := c.ctm.TransformPoint(quad[0])
	out := Rect{Left: p.X, Right: p.X, Top: p.Y, Bottom: p.Y}
	for _, corner := range quad[1:] {
		p := c.ctm.TransformPoint(corner)
		out.Left = minFloat(out.Left, p.X)
		out.Right = maxFloat(out.Right, p.X)
		out.Top = minFloat(out.Top, p.Y)
		out.Bottom = maxFloat(out.Bottom, p.Y)
	}
	return out
}

// drawRawRect clips rect (already in device space) to the bitmap bounds and
// fills the resulting span with blitter, one scanline at a time.
func (c *Context) drawRawRect(rect Rect, blitter blit.Blitter) {
	dst, ok := IntersectRect(rect, MakeRectWH(float64(c.bm.Width), float64(c.bm.Height)))
	if !ok {
		return
	}
	ir := dst.Round()
	surface := c.bm.asSurface()
	for y := ir.Top; y < ir.Bottom; y++ {
		blitter.BlitRow(surface, ir.Left, ir.Right, y)
	}
}

// drawRectWithBlitter implements the dispatch in §4.5's drawRect step 2-3:
// the axis-aligned fast path when the CTM has no skew, otherwise a split
// into two triangles covering the transformed parallelogram.
func (c *Context) drawRectWithBlitter(rect Rect, blitter blit.Blitter) {
	if !c.ctm.HasSkew() {
		c.drawRawRect(c.transformRect(rect), blitter)
		return
	}

	quad := rect.ToQuad()
	drawTriangleWithBlitter(c.bm, c.ctm, [3]Point{quad[0], quad[1], quad[2]}, blitter)
	drawTriangleWithBlitter(c.bm, c.ctm, [3]Point{quad[0], quad[2], quad[3]}, blitter)
}

// makeConstBlitter returns an opaque or blended constant-color blitter for
// paint, whichever the paint's resolved alpha calls for.
func (c *Context) makeConstBlitter(paint Paint) blit.Blitter {
	pixel := ColorToPixel(paint.resolvedColor())
	if paint.isEffectivelyOpaque() {
		return blit.OpaqueBlitter{Pixel: pixel}
	}
	return blit.ConstBlitter{Pixel: pixel}
}

// DrawRect fills rect (in logical coordinates) with paint, transformed by
// the current CTM. See §4.5.
func (c *Context) DrawRect(rect Rect, paint Paint) {
	if paint.isEffectivelyTransparent() {
		return
	}
	c.drawRectWithBlitter(rect, c.makeConstBlitter(paint))
}

// DrawTriangle fills the triangle with corners vertices (in logical
// coordinates) with paint, transformed by the current CTM. See §4.6.
func (c *Context) DrawTriangle(vertices [3]Point, paint Paint) {
	if paint.isEffectivelyTransparent() {
		return
	}
	drawTriangleWithBlitter(c.bm, c.ctm, vertices, c.makeConstBlitter(paint))
}

// DrawBitmap draws src with its top-left corner at logical point (x, y),
// modulated by paint's global alpha, transformed by the current CTM. See
// §4.5.
func (c *Context) DrawBitmap(src Bitmap, x, y float64, paint Paint) {
	if paint.isEffectivelyTransparent() {
		return
	}

	c.Save()
	c.Translate(x, y)

	if !c.ctm.HasSkew() {
		c.drawBitmapAxisAligned(src, paint)
	} else {
		c.drawBitmapGeneralAffine(src, paint)
	}

	c.Restore()
}

// drawBitmapAxisAligned is the fast path for axis-aligned (possibly scaled
// or flipped) CTMs: the source-space step per destination pixel is
// constant, so it is computed once per row/column instead of via a full
// matrix multiply per pixel.
func (c *Context) drawBitmapAxisAligned(src Bitmap, paint Paint) {
	if !c.ctmValid {
		Logger().Debug("raster2d: skipping bitmap draw, singular CTM")
		return
	}

	destRect := c.transformRect(MakeRectWH(float64(src.Width), float64(src.Height)))
	clipped, ok := IntersectRect(destRect, MakeRectWH(float64(c.bm.Width), float64(c.bm.Height)))
	if !ok {
		return
	}
	ir := clipped.Round()

	opaque := paint.isEffectivelyOpaque()
	alphaByte := quantize(clamp01(paint.effectiveAlpha()))

	inv := c.ctmInv
	stepX := inv.A
	for y := ir.Top; y < ir.Bottom; y++ {
		sy := inv.E*(float64(y)+0.5) + inv.F
		srcY := int(sy)
		if srcY < 0 || srcY >= src.Height {
			continue
		}

		sx := inv.A*(float64(ir.Left)+0.5) + inv.C
		srcRow := src.Row(srcY)
		dstRow := c.bm.Row(y)
		for x := ir.Left; x < ir.Right; x++ {
			srcX := int(sx)
			if srcX >= 0 && srcX < src.Width {
				p := srcRow[srcX]
				if !opaque {
					p = blend.Pack(
						blend.FixedMultiply(p.A(), alphaByte),
						blend.FixedMultiply(p.R(), alphaByte),
						blend.FixedMultiply(p.G(), alphaByte),
						blend.FixedMultiply(p.B(), alphaByte),
					)
				}
				dstRow[x] = blend.SrcOver(dstRow[x], p)
			}
			sx += stepX
		}
	}
}

// drawBitmapGeneralAffine is the general path for a skewed/rotated CTM: a
// bitmap blitter samples through the inverse CTM with per-row bounds
// narrowing, scanned across the bounding box of the transformed source
// rectangle.
func (c *Context) drawBitmapGeneralAffine(src Bitmap, paint Paint) {
	if !c.ctmValid {
		Logger().Debug("raster2d: skipping bitmap draw, singular CTM")
		return
	}

	invAffine := blit.Affine{
		A: c.ctmInv.A, B: c.ctmInv.B, C: c.ctmInv.C,
		D: c.ctmInv.D, E: c.ctmInv.E, F: c.ctmInv.F,
	}
	srcSurface := src.asSurface()

	var blitter blit.Blitter
	if paint.isEffectivelyOpaque() {
		blitter = blit.OpaqueBitmapBlitter{InvCTM: invAffine, Src: srcSurface}
	} else {
		blitter = blit.BitmapBlitter{
			InvCTM: invAffine,
			Src:    srcSurface,
			Alpha:  quantize(clamp01(paint.effectiveAlpha())),
		}
	}

	destRect := c.transformRect(MakeRectWH(float64(src.Width), float64(src.Height)))
	c.drawRawRect(destRect, blitter)
}

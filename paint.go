package raster2d

// Paint describes how a draw call should color the pixels it touches: a
// color plus a global alpha multiplier applied on top of the color's own
// alpha.
type Paint struct {
	Color Color
	Alpha float64
}

// SolidPaint returns an opaque (Alpha == 1) paint for the given color.
func SolidPaint(c Color) Paint {
	return Paint{Color: c, Alpha: 1}
}

// The alpha thresholds below decide when a paint is close enough to fully
// transparent or fully opaque to take a shortcut, matching the quantization
// boundaries of ColorToPixel: above kOpaqueAlpha a paint's alpha rounds to
// 255 at quantization time, and below kTransparentAlpha it rounds to 0.
const (
	kOpaqueAlpha      = 254.5 / 255.0
	kTransparentAlpha = 0.5 / 255.0
)

// effectiveAlpha returns the paint's resolved alpha: the color's own alpha
// scaled by the paint's global alpha multiplier.
func (p Paint) effectiveAlpha() float64 {
	return p.Color.A * p.Alpha
}

// isEffectivelyTransparent reports whether p's resolved alpha is low enough
// that drawing it has no observable effect, per §4.5 step 1 and §7.
func (p Paint) isEffectivelyTransparent() bool {
	return p.effectiveAlpha() <= kTransparentAlpha
}

// isEffectivelyOpaque reports whether p's resolved alpha is high enough that
// it quantizes to a fully opaque pixel, allowing the opaque blitter fast
// path instead of the blended one.
func (p Paint) isEffectivelyOpaque() bool {
	return p.effectiveAlpha() > kOpaqueAlpha
}

// resolvedColor returns the color drawn by p, with the paint's global alpha
// folded into the color's own alpha channel.
func (p Paint) resolvedColor() Color {
	c := p.Color
	c.A = clamp01(p.effectiveAlpha())
	return c
}

package raster2d

import "github.com/kestrelgfx/raster2d/internal/blend"

// Pixel is a premultiplied 32-bit ARGB pixel: channels are packed
// MSB-to-LSB as A, R, G, B, and R, G, B are each <= A.
type Pixel = blend.Pixel

// PackPixel assembles a premultiplied pixel from its four 8-bit channels.
func PackPixel(a, r, g, b uint8) Pixel {
	return blend.Pack(a, r, g, b)
}

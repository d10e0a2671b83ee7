// Package codec provides PNG and JPEG file I/O for [raster2d.Bitmap], the
// external collaborator the core treats only as an interface (see §6 of the
// specification this engine implements). The core package never imports
// image/png or image/jpeg itself; this package is the thin bridge between
// raster2d's packed, premultiplied Pixel buffer and the standard library's
// image types.
package codec

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/kestrelgfx/raster2d"
)

// toNRGBA converts a premultiplied raster2d.Pixel to a standard
// (straight-alpha) color.NRGBA, the representation PNG stores on disk.
func toNRGBA(p raster2d.Pixel) color.NRGBA {
	a := p.A()
	if a == 0 {
		return color.NRGBA{}
	}
	unpremultiply := func(c uint8) uint8 {
		return uint8((uint32(c)*255 + uint32(a)/2) / uint32(a))
	}
	return color.NRGBA{R: unpremultiply(p.R()), G: unpremultiply(p.G()), B: unpremultiply(p.B()), A: a}
}

// fromNRGBA converts a straight-alpha color to a premultiplied raster2d.Pixel
// using the same clamp-then-quantize rule as raster2d.ColorToPixel.
func fromNRGBA(c color.NRGBA) raster2d.Pixel {
	col := raster2d.RGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
	return raster2d.ColorToPixel(col)
}

// ToImage renders bm as a standard image.Image, for use with any stdlib
// image codec (not just PNG).
func ToImage(bm raster2d.Bitmap) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, bm.Width, bm.Height))
	for y := 0; y < bm.Height; y++ {
		row := bm.Row(y)
		for x, px := range row {
			img.SetNRGBA(x, y, toNRGBA(px))
		}
	}
	return img
}

// FromImage builds an owned Bitmap from any standard image.Image.
func FromImage(img image.Image) raster2d.Bitmap {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	bm := raster2d.NewBitmap(width, height)

	for y := 0; y < height; y++ {
		row := bm.Row(y)
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			c := color.NRGBAModel.Convert(color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}).(color.NRGBA)
			row[x] = fromNRGBA(c)
		}
	}
	return bm
}

// Encode writes bm to w as a PNG image.
func Encode(w io.Writer, bm raster2d.Bitmap) error {
	return png.Encode(w, ToImage(bm))
}

// Decode reads a PNG image from r into a newly allocated Bitmap.
func Decode(r io.Reader) (raster2d.Bitmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return raster2d.Bitmap{}, fmt.Errorf("codec: decode png: %w", err)
	}
	return FromImage(img), nil
}

// EncodeFile writes bm to path as a PNG file.
func EncodeFile(path string, bm raster2d.Bitmap) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return fmt.Errorf("codec: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Encode(f, bm)
}

// DecodeFile reads a PNG file at path into a newly allocated Bitmap.
func DecodeFile(path string) (raster2d.Bitmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return raster2d.Bitmap{}, fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}

// EncodeJPEG writes bm to w as a JPEG image at the given quality (1-100).
// JPEG has no alpha channel; bm is flattened against opaque black first.
func EncodeJPEG(w io.Writer, bm raster2d.Bitmap, quality int) error {
	return jpeg.Encode(w, ToImage(bm), &jpeg.Options{Quality: quality})
}

// EncodeJPEGFile writes bm to path as a JPEG file at the given quality (1-100).
func EncodeJPEGFile(path string, bm raster2d.Bitmap, quality int) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return fmt.Errorf("codec: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return EncodeJPEG(f, bm, quality)
}

// DecodeJPEGFile reads a JPEG file at path into a newly allocated Bitmap.
func DecodeJPEGFile(path string) (raster2d.Bitmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return raster2d.Bitmap{}, fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	img, err := jpeg.Decode(f)
	if err != nil {
		return raster2d.Bitmap{}, fmt.Errorf("codec: decode jpeg: %w", err)
	}
	return FromImage(img), nil
}

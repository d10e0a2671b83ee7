package blit

import (
	"testing"

	"github.com/kestrelgfx/raster2d/internal/blend"
)

func newSurface(w, h int) Surface {
	return Surface{Pixels: make([]blend.Pixel, w*h), Width: w, Height: h, Stride: w}
}

func TestOpaqueBlitterOverwrites(t *testing.T) {
	dst := newSurface(4, 1)
	b := OpaqueBlitter{Pixel: blend.Pack(255, 10, 20, 30)}
	b.BlitRow(dst, 1, 3, 0)

	row := dst.Row(0)
	if row[0] != 0 {
		t.Error("pixel outside [startX, endX) should be untouched")
	}
	if row[1] != b.Pixel || row[2] != b.Pixel {
		t.Error("pixels inside [startX, endX) should be overwritten")
	}
	if row[3] != 0 {
		t.Error("endX is exclusive; pixel at endX should be untouched")
	}
}

func TestConstBlitterBlends(t *testing.T) {
	dst := newSurface(1, 1)
	dst.Row(0)[0] = blend.Pack(255, 0, 0, 0)

	b := ConstBlitter{Pixel: blend.Pack(128, 128, 128, 128)}
	b.BlitRow(dst, 0, 1, 0)

	got := dst.Row(0)[0]
	want := blend.Pack(255, 128, 128, 128)
	diff := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d >= -1 && d <= 1
	}
	if !diff(got.A(), want.A()) || !diff(got.R(), want.R()) || !diff(got.G(), want.G()) || !diff(got.B(), want.B()) {
		t.Errorf("ConstBlitter blend = %08X, want ~%08X", uint32(got), uint32(want))
	}
}

func TestFindBitmapBoundsNarrowsToSource(t *testing.T) {
	src := newSurface(4, 4)
	// Identity mapping: inverse CTM is the identity transform.
	identity := Affine{A: 1, E: 1}

	sx, ex := findBitmapBounds(identity, src, -2, 8, 0)
	if sx != 0 || ex != 4 {
		t.Errorf("findBitmapBounds = [%d, %d), want [0, 4)", sx, ex)
	}
}

func TestOpaqueBitmapBlitterSamplesThroughInverse(t *testing.T) {
	src := newSurface(2, 2)
	src.Row(0)[0] = blend.Pack(255, 255, 0, 0)
	src.Row(0)[1] = blend.Pack(255, 0, 255, 0)
	src.Row(1)[0] = blend.Pack(255, 0, 0, 255)
	src.Row(1)[1] = blend.Pack(255, 255, 255, 255)

	dst := newSurface(2, 2)
	blitter := OpaqueBitmapBlitter{InvCTM: Affine{A: 1, E: 1}, Src: src}
	blitter.BlitRow(dst, 0, 2, 0)
	blitter.BlitRow(dst, 0, 2, 1)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got, want := dst.Row(y)[x], src.Row(y)[x]; got != want {
				t.Errorf("(%d,%d) = %08X, want %08X", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestBitmapBlitterScalesAlpha(t *testing.T) {
	src := newSurface(1, 1)
	src.Row(0)[0] = blend.Pack(255, 255, 255, 255)

	dst := newSurface(1, 1)
	dst.Row(0)[0] = blend.Pack(255, 0, 0, 0)

	blitter := BitmapBlitter{InvCTM: Affine{A: 1, E: 1}, Src: src, Alpha: 128}
	blitter.BlitRow(dst, 0, 1, 0)

	got := dst.Row(0)[0]
	// Compositing onto an opaque destination always yields A=255; the
	// visible effect of the alpha scale shows up in the blended channels.
	if got.A() != 255 {
		t.Errorf("alpha-scaled blit over opaque dst: A = %d, want 255", got.A())
	}
	if got.R() < 126 || got.R() > 129 {
		t.Errorf("alpha-scaled blit over black: R = %d, want ~128", got.R())
	}
}

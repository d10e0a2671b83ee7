package raster2d

import "testing"

func TestColorToPixelOpaqueRed(t *testing.T) {
	// S1: clear to red on a 4x4 bitmap; every pixel equals 0xFFFF0000.
	got := ColorToPixel(Color{A: 1, R: 1, G: 0, B: 0})
	want := PackPixel(0xFF, 0xFF, 0, 0)
	if got != want {
		t.Errorf("ColorToPixel(red) = %08X, want %08X", uint32(got), uint32(want))
	}
}

func TestColorToPixelHalfAlphaWhite(t *testing.T) {
	// S3: a=0.5 white quantizes to A=128, R=G=B=128.
	got := ColorToPixel(Color{A: 0.5, R: 1, G: 1, B: 1})
	want := PackPixel(128, 128, 128, 128)
	if got != want {
		t.Errorf("ColorToPixel(half-alpha white) = %08X, want %08X", uint32(got), uint32(want))
	}
}

func TestColorToPixelClampsOutOfRange(t *testing.T) {
	got := ColorToPixel(Color{A: 2, R: -1, G: 0.5, B: 10})
	want := PackPixel(255, 0, 128, 255)
	if got != want {
		t.Errorf("ColorToPixel(out-of-range) = %08X, want %08X", uint32(got), uint32(want))
	}
}

func TestHexParsing(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#FF0000", Color{A: 1, R: 1, G: 0, B: 0}},
		{"00FF00", Color{A: 1, R: 0, G: 1, B: 0}},
		{"#0000FF80", Color{A: 128.0 / 255, R: 0, G: 0, B: 1}},
		{"F00", Color{A: 1, R: 1, G: 0, B: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got := Hex(tt.hex)
			const eps = 1e-6
			if abs(got.A-tt.want.A) > eps || abs(got.R-tt.want.R) > eps ||
				abs(got.G-tt.want.G) > eps || abs(got.B-tt.want.B) > eps {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	want := Color{A: 1, R: 0.5, G: 0.5, B: 0.5}
	const eps = 1e-9
	if abs(got.A-want.A) > eps || abs(got.R-want.R) > eps || abs(got.G-want.G) > eps || abs(got.B-want.B) > eps {
		t.Errorf("Black.Lerp(White, 0.5) = %+v, want %+v", got, want)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

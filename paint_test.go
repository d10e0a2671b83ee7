package raster2d

import "testing"

func TestPaintTransparencyThresholds(t *testing.T) {
	tests := []struct {
		name        string
		p           Paint
		transparent bool
		opaque      bool
	}{
		{"fully opaque", Paint{Color: Color{A: 1}, Alpha: 1}, false, true},
		{"fully transparent", Paint{Color: Color{A: 0}, Alpha: 1}, true, false},
		{"just above transparent threshold", Paint{Color: Color{A: 0.6 / 255}, Alpha: 1}, false, false},
		{"just below transparent threshold", Paint{Color: Color{A: 0.4 / 255}, Alpha: 1}, true, false},
		{"just above opaque threshold", Paint{Color: Color{A: 254.6 / 255}, Alpha: 1}, false, true},
		{"global alpha scales down", Paint{Color: Color{A: 1}, Alpha: 0}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.isEffectivelyTransparent(); got != tt.transparent {
				t.Errorf("isEffectivelyTransparent() = %v, want %v", got, tt.transparent)
			}
			if got := tt.p.isEffectivelyOpaque(); got != tt.opaque {
				t.Errorf("isEffectivelyOpaque() = %v, want %v", got, tt.opaque)
			}
		})
	}
}

func TestResolvedColorFoldsAlpha(t *testing.T) {
	p := Paint{Color: Color{A: 0.5, R: 1, G: 1, B: 1}, Alpha: 0.5}
	got := p.resolvedColor()
	if got.A != 0.25 {
		t.Errorf("resolvedColor().A = %v, want 0.25", got.A)
	}
	if got.R != 1 || got.G != 1 || got.B != 1 {
		t.Errorf("resolvedColor() should leave RGB untouched, got %+v", got)
	}
}

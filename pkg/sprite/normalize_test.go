package sprite

import (
	"image"
	"image/color"
	"testing"
)

// solidNRGBA returns a w×h image filled with c.
func solidNRGBA(c color.NRGBA, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func mustConfig(t *testing.T, cfg Config) Config {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestNormalizeOutputSize(t *testing.T) {
	cfg := mustConfig(t, Config{IconSize: 24})
	n := NewNormalizer(cfg)

	blue := color.NRGBA{B: 255, A: 255}
	tests := []struct {
		name string
		w, h int
	}{
		{name: "square", w: 64, h: 64},
		{name: "wide", w: 100, h: 50},
		{name: "tall", w: 13, h: 77},
		{name: "tiny", w: 1, h: 1},
		{name: "extreme aspect clamps to 1px", w: 500, h: 2},
		{name: "already icon sized", w: 24, h: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := n.Normalize(solidNRGBA(blue, tt.w, tt.h))
			b := out.Bounds()
			if b.Dx() != 24 || b.Dy() != 24 {
				t.Errorf("Normalize(%dx%d) size = %dx%d, want 24x24", tt.w, tt.h, b.Dx(), b.Dy())
			}
		})
	}
}

func TestNormalizeZeroSizeInput(t *testing.T) {
	cfg := mustConfig(t, Config{IconSize: 24})
	n := NewNormalizer(cfg)

	out := n.Normalize(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	b := out.Bounds()
	if b.Dx() != 24 || b.Dy() != 24 {
		t.Fatalf("size = %dx%d, want 24x24", b.Dx(), b.Dy())
	}
	// Plain filled canvas: opaque white under the default policy.
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("corner = %v, want opaque white", got)
	}
}

func TestNormalizeOpaqueFlatten(t *testing.T) {
	cfg := mustConfig(t, Config{IconSize: 24, Fill: FillOpaque})
	n := NewNormalizer(cfg)

	// A wide translucent red icon: letterboxed top and bottom, all alpha
	// flattened onto white.
	src := solidNRGBA(color.NRGBA{R: 255, A: 128}, 100, 50)
	out := n.Normalize(src)

	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			if a := out.NRGBAAt(x, y).A; a != 255 {
				t.Fatalf("alpha at (%d,%d) = %d, want 255 (opaque policy)", x, y, a)
			}
		}
	}

	// Letterbox rows stay pure white.
	if got := out.NRGBAAt(12, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("letterbox pixel = %v, want white", got)
	}
	// Center is red composited on white: more red than blue.
	center := out.NRGBAAt(12, 12)
	if center.R <= center.B {
		t.Errorf("center = %v, want red-dominant composite", center)
	}
}

func TestNormalizeTransparentPreserve(t *testing.T) {
	cfg := mustConfig(t, Config{IconSize: 24, Fill: FillTransparent})
	n := NewNormalizer(cfg)

	src := solidNRGBA(color.NRGBA{G: 255, A: 255}, 50, 100)
	out := n.Normalize(src)

	// Pillarbox columns stay fully transparent.
	if a := out.NRGBAAt(0, 12).A; a != 0 {
		t.Errorf("pillarbox alpha = %d, want 0 (transparent policy)", a)
	}
	// The icon itself is present and opaque in the center.
	if a := out.NRGBAAt(12, 12).A; a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
}

func TestNormalizeCentersResult(t *testing.T) {
	cfg := mustConfig(t, Config{IconSize: 24, Fill: FillTransparent})
	n := NewNormalizer(cfg)

	// 100x50 scales to 24x12, centered at y offset (24-12)/2 = 6.
	src := solidNRGBA(color.NRGBA{R: 255, A: 255}, 100, 50)
	out := n.Normalize(src)

	if a := out.NRGBAAt(12, 5).A; a != 0 {
		t.Errorf("pixel above the centered icon has alpha %d, want 0", a)
	}
	if a := out.NRGBAAt(12, 6).A; a == 0 {
		t.Error("first centered row is transparent, icon not centered")
	}
	if a := out.NRGBAAt(12, 17).A; a == 0 {
		t.Error("last centered row is transparent, icon not centered")
	}
	if a := out.NRGBAAt(12, 18).A; a != 0 {
		t.Errorf("pixel below the centered icon has alpha %d, want 0", a)
	}
}

func TestNormalizeAll(t *testing.T) {
	cfg := mustConfig(t, Config{IconSize: 24, ExtractColors: true})
	n := NewNormalizer(cfg)

	loaded := map[string]image.Image{
		"a.example": solidNRGBA(color.NRGBA{R: 100, G: 150, B: 200, A: 255}, 32, 32),
	}

	icons := n.NormalizeAll(loaded)
	ic, ok := icons["a.example"]
	if !ok {
		t.Fatal("NormalizeAll dropped a.example")
	}
	if b := ic.Image.Bounds(); b.Dx() != 24 || b.Dy() != 24 {
		t.Errorf("size = %dx%d, want 24x24", b.Dx(), b.Dy())
	}
	if ic.Color == "" {
		t.Error("Color = empty, want extracted dominant color")
	}
}

func TestNormalizeAllWithoutColors(t *testing.T) {
	cfg := mustConfig(t, Config{IconSize: 24, ExtractColors: false})
	n := NewNormalizer(cfg)

	icons := n.NormalizeAll(map[string]image.Image{
		"a.example": solidNRGBA(color.NRGBA{R: 10, G: 20, B: 30, A: 255}, 8, 8),
	})
	if c := icons["a.example"].Color; c != "" {
		t.Errorf("Color = %q, want empty when extraction is disabled", c)
	}
}

package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Icon is a normalized icon: a square raster of exactly Config.IconSize per
// side, plus the optional dominant accent color extracted from it.
type Icon struct {
	Image *image.NRGBA
	Color string // "#rrggbb" dominant color, empty when extraction is off
}

// Normalizer fits decoded images onto a fixed square canvas according to the
// build's fill policy.
type Normalizer struct {
	cfg Config
}

// NewNormalizer creates a normalizer for the given configuration.
// The configuration must already be validated.
func NewNormalizer(cfg Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Normalize scales src to fit inside an IconSize square, preserving aspect
// ratio, and composites it centered onto the policy's canvas:
//
//   - FillOpaque: white canvas, result fully opaque
//   - FillTransparent: transparent canvas, alpha preserved
//
// The output is always exactly IconSize×IconSize. Degenerate inputs with a
// zero dimension normalize to the plain filled canvas.
func (n *Normalizer) Normalize(src image.Image) *image.NRGBA {
	size := n.cfg.IconSize
	canvas := imaging.New(size, size, n.background())

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return canvas
	}

	scale := math.Min(float64(size)/float64(w), float64(size)/float64(h))
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))

	resized := imaging.Resize(src, nw, nh, imaging.Lanczos)

	x := (size - nw) / 2
	y := (size - nh) / 2
	return imaging.Overlay(canvas, resized, image.Pt(x, y), 1.0)
}

// NormalizeAll normalizes each loaded icon and, when enabled, extracts its
// dominant color. Keys are preserved.
func (n *Normalizer) NormalizeAll(loaded map[string]image.Image) map[string]Icon {
	icons := make(map[string]Icon, len(loaded))
	for host, src := range loaded {
		ic := Icon{Image: n.Normalize(src)}
		if n.cfg.ExtractColors {
			ic.Color = n.DominantColor(ic.Image)
		}
		icons[host] = ic
	}
	return icons
}

// background returns the canvas fill for the configured policy.
func (n *Normalizer) background() color.NRGBA {
	if n.cfg.Fill == FillTransparent {
		return color.NRGBA{}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

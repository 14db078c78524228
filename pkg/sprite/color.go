package sprite

import (
	"image"

	"github.com/cenkalti/dominantcolor"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/stat"
)

const (
	// FallbackColor is emitted when every pixel is filtered out as
	// background or outline noise.
	FallbackColor = "#f3f4f6"

	// pastelBlend is how far each channel is pulled toward white.
	pastelBlend = 0.25

	// Channel thresholds for background/outline filtering.
	nearWhite = 245 // all channels above: background
	nearBlack = 10  // all channels below: outline noise

	// clusterCount is the k used by the cluster strategy.
	clusterCount = 3
)

// DominantColor computes a soft representative color for a normalized icon,
// formatted as "#rrggbb". The strategy comes from the configuration; all
// strategies soften the result by blending it toward white ("pastelize") so
// it reads as a UI accent rather than a saturated brand color.
//
// Only meaningful under FillOpaque, where background pixels are known to be
// white. Identical pixel data yields an identical result under the average
// and histogram strategies; the cluster strategy seeds randomly.
func (n *Normalizer) DominantColor(img image.Image) string {
	switch n.cfg.Colors {
	case StrategyHistogram:
		return histogramColor(img)
	case StrategyCluster:
		return clusterColor(img)
	default:
		return averageColor(img)
	}
}

// averageColor ignores near-white and near-black pixels and averages the
// remaining channels independently.
func averageColor(img image.Image) string {
	rs, gs, bs := filterPixels(img)
	if len(rs) == 0 {
		return FallbackColor
	}
	return pastelize(stat.Mean(rs, nil), stat.Mean(gs, nil), stat.Mean(bs, nil))
}

// clusterColor partitions the filtered pixels into clusterCount k-means
// clusters and takes the center of the most populated one. Small pixel sets
// fall back to plain averaging.
func clusterColor(img image.Image) string {
	rs, gs, bs := filterPixels(img)
	if len(rs) == 0 {
		return FallbackColor
	}
	if len(rs) <= clusterCount {
		return pastelize(stat.Mean(rs, nil), stat.Mean(gs, nil), stat.Mean(bs, nil))
	}

	obs := make(clusters.Observations, len(rs))
	for i := range rs {
		obs[i] = clusters.Coordinates{rs[i], gs[i], bs[i]}
	}

	km := kmeans.New()
	cls, err := km.Partition(obs, clusterCount)
	if err != nil || len(cls) == 0 {
		return pastelize(stat.Mean(rs, nil), stat.Mean(gs, nil), stat.Mean(bs, nil))
	}

	largest := cls[0]
	for _, c := range cls[1:] {
		if len(c.Observations) > len(largest.Observations) {
			largest = c
		}
	}
	center := largest.Center
	return pastelize(center[0], center[1], center[2])
}

// histogramColor delegates bucket selection to the dominantcolor library,
// then applies the same pastelize pass as the other strategies.
func histogramColor(img image.Image) string {
	c := dominantcolor.Find(img)
	return pastelize(float64(c.R), float64(c.G), float64(c.B))
}

// filterPixels collects the channel values of every pixel that is neither
// near-white nor near-black, as parallel float slices in [0,255].
func filterPixels(img image.Image) (rs, gs, bs []float64) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r32, g32, b32, _ := img.At(x, y).RGBA()
			r, g, bl := r32>>8, g32>>8, b32>>8
			if r > nearWhite && g > nearWhite && bl > nearWhite {
				continue
			}
			if r < nearBlack && g < nearBlack && bl < nearBlack {
				continue
			}
			rs = append(rs, float64(r))
			gs = append(gs, float64(g))
			bs = append(bs, float64(bl))
		}
	}
	return rs, gs, bs
}

// pastelize blends the color 25% toward white and formats it as a
// six-hex-digit color string.
func pastelize(r, g, b float64) string {
	c := colorful.Color{R: r / 255, G: g / 255, B: b / 255}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendRgb(white, pastelBlend).Hex()
}

// Package sprite builds a single composite icon image from per-site icon
// files, along with the pixel offsets needed to address each icon inside it.
//
// The build is a fixed pipeline:
//
//  1. Resolve each site URL to a canonical hostname.
//  2. Load the hostname's icon file from disk, skipping missing or broken
//     files (LoadIcons).
//  3. Normalize every icon onto a fixed square canvas and optionally extract
//     a dominant accent color (Normalizer).
//  4. Lay the normalized icons out on a deterministic grid (Assembler).
//  5. Encode the grid to a base64 data URI, trying WebP first and falling
//     back to a universally supported codec (Encoder).
//  6. Bind the resulting offsets and colors back onto the site entries
//     (Bind).
//
// Every stage takes its knobs from an explicit Config value; the package has
// no process-wide state, so differently configured builds can run side by
// side.
package sprite

import (
	"github.com/sitedeck/sitedeck/pkg/errors"
)

// FillPolicy controls what happens to an icon's transparent regions.
type FillPolicy string

const (
	// FillOpaque flattens transparency onto a white background. The sprite
	// carries no alpha and lossy codecs are usable.
	FillOpaque FillPolicy = "opaque"

	// FillTransparent preserves the alpha channel so the sprite renders
	// correctly on non-white backgrounds. Requires a lossless codec.
	FillTransparent FillPolicy = "transparent"
)

// ColorStrategy selects how the dominant accent color is computed.
type ColorStrategy string

const (
	// StrategyAverage filters out near-white and near-black pixels and
	// averages the rest. Deterministic; this is the default.
	StrategyAverage ColorStrategy = "average"

	// StrategyCluster k-means-clusters the filtered pixels and takes the
	// largest cluster's center. Uses randomized seeding, so repeated runs
	// may differ slightly.
	StrategyCluster ColorStrategy = "cluster"

	// StrategyHistogram picks the dominant histogram bucket of the whole
	// icon. Deterministic.
	StrategyHistogram ColorStrategy = "histogram"
)

// Defaults applied by Config.Validate for zero values.
const (
	DefaultIconSize    = 24
	DefaultColumns     = 12
	DefaultJPEGQuality = 85
)

// Config carries every knob of the sprite build. Pass it by value to the
// stage constructors; a zero Config becomes the default build after
// Validate.
type Config struct {
	// IconSize is the square side length of every normalized icon in pixels.
	IconSize int

	// Columns is the fixed grid width of the sprite sheet, in cells.
	Columns int

	// Fill is the transparency policy applied uniformly to every icon in a
	// build. Mixing policies within one sprite is not representable.
	Fill FillPolicy

	// JPEGQuality is the quality level for the JPEG fallback codec (1-100).
	JPEGQuality int

	// ExtractColors enables dominant color extraction. Only meaningful under
	// FillOpaque, where background pixels are known to be white.
	ExtractColors bool

	// Colors selects the dominant color strategy when ExtractColors is set.
	Colors ColorStrategy
}

// DefaultConfig returns the configuration used when nothing is overridden:
// 24px icons on a 12-column grid, opaque white flatten, color extraction on.
func DefaultConfig() Config {
	return Config{
		IconSize:      DefaultIconSize,
		Columns:       DefaultColumns,
		Fill:          FillOpaque,
		JPEGQuality:   DefaultJPEGQuality,
		ExtractColors: true,
		Colors:        StrategyAverage,
	}
}

// Validate applies defaults for zero values and checks the rest.
// It is idempotent.
func (c *Config) Validate() error {
	if c.IconSize == 0 {
		c.IconSize = DefaultIconSize
	}
	if c.Columns == 0 {
		c.Columns = DefaultColumns
	}
	if c.Fill == "" {
		c.Fill = FillOpaque
	}
	if c.JPEGQuality == 0 {
		c.JPEGQuality = DefaultJPEGQuality
	}
	if c.Colors == "" {
		c.Colors = StrategyAverage
	}

	if c.IconSize < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "icon size must be positive, got %d", c.IconSize)
	}
	if c.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "columns must be positive, got %d", c.Columns)
	}
	if c.Fill != FillOpaque && c.Fill != FillTransparent {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid fill policy: %q (must be 'opaque' or 'transparent')", c.Fill)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return errors.New(errors.ErrCodeInvalidConfig, "jpeg quality must be 1-100, got %d", c.JPEGQuality)
	}
	switch c.Colors {
	case StrategyAverage, StrategyCluster, StrategyHistogram:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid color strategy: %q (must be 'average', 'cluster' or 'histogram')", c.Colors)
	}
	return nil
}

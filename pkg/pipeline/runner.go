package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sitedeck/sitedeck/pkg/buildinfo"
	"github.com/sitedeck/sitedeck/pkg/errors"
	"github.com/sitedeck/sitedeck/pkg/page"
	"github.com/sitedeck/sitedeck/pkg/registry"
	"github.com/sitedeck/sitedeck/pkg/sprite"
)

// Runner executes the page build pipeline.
//
// The Runner is stateless except for its logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → normalize → assemble → encode → render
// pipeline and, when opts.OutputPath is set, writes the final page.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid options")
	}
	logger := opts.Logger

	sites, err := registry.Load(opts.RegistryPath)
	if err != nil {
		return nil, err
	}

	result := &Result{Version: opts.Version}
	result.Stats.SiteCount = len(sites)
	if result.Version == "" {
		result.Version = buildinfo.PageVersion()
	}
	logger.Info("loaded registry", "sites", len(sites), "path", opts.RegistryPath)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 1: Load
	loadStart := time.Now()
	urls := make([]string, len(sites))
	for i, s := range sites {
		urls[i] = s.URL
	}
	loaded, skipped := sprite.LoadIcons(opts.IconsDir, sprite.HostnameSet(urls))
	result.Skipped = skipped
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.IconCount = len(loaded)
	result.Stats.SkippedCount = len(skipped)

	logger.Info("loaded icons",
		"found", len(loaded),
		"skipped", len(skipped),
		"duration", result.Stats.LoadTime)
	for _, s := range skipped {
		logger.Warn("skipped icon", "host", s.Host, "path", s.Path, "error", s.Err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Normalize
	normStart := time.Now()
	normalizer := sprite.NewNormalizer(opts.Sprite)
	icons := normalizer.NormalizeAll(loaded)
	result.Stats.NormalizeTime = time.Since(normStart)

	logger.Info("normalized icons",
		"count", len(icons),
		"size", opts.Sprite.IconSize,
		"duration", result.Stats.NormalizeTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Assemble
	asmStart := time.Now()
	assembled := sprite.NewAssembler(opts.Sprite).Assemble(icons)
	result.Positions = assembled.Positions
	result.Colors = assembled.Colors
	result.Stats.AssembleTime = time.Since(asmStart)

	bounds := assembled.Sheet.Bounds()
	logger.Info("assembled sprite",
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"duration", result.Stats.AssembleTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: Encode
	encStart := time.Now()
	encoded, err := sprite.NewEncoder(opts.Sprite).Encode(assembled.Sheet)
	if err != nil {
		return nil, err
	}
	result.Encoded = encoded
	result.Stats.EncodeTime = time.Since(encStart)

	logger.Info("encoded sprite",
		"format", encoded.Format,
		"bytes", len(encoded.DataURI),
		"duration", result.Stats.EncodeTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 5: Render
	renderStart := time.Now()
	result.Sites = sprite.Bind(sites, assembled.Positions, assembled.Colors)

	tmpl, err := page.LoadTemplate(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	html, err := page.Render(tmpl, page.Data{
		Sites:         result.Sites,
		SpriteDataURI: encoded.DataURI,
		SpriteBGSize:  encoded.Size,
		Version:       result.Version,
	})
	if err != nil {
		return nil, err
	}
	result.Page = html

	if opts.OutputPath != "" {
		if err := page.Write(opts.OutputPath, html); err != nil {
			return nil, err
		}
		logger.Info("wrote page", "path", opts.OutputPath, "bytes", len(html))
	}
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

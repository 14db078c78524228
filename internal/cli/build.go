package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sitedeck/sitedeck/pkg/pipeline"
)

// buildCommand creates the build command running the full page build.
func (c *CLI) buildCommand() *cobra.Command {
	var configPath string
	flags := DefaultCLIConfig()

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site page with an embedded icon sprite",
		Long: `Build the site page.

The build reads the site registry, loads one icon file per site hostname,
normalizes the icons onto a fixed square grid, packs them into a single
sprite sheet, and writes the final HTML page with the sprite embedded as
a data URI.

Settings come from sitedeck.toml when present; flags override the file.
Sites without an icon file are kept in the page, just without icon
metadata. Icon files that exist but cannot be decoded are skipped and
reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, &cfg, flags)
			return c.runBuild(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default sitedeck.toml if present)")
	cmd.Flags().StringVar(&flags.Registry, "registry", flags.Registry, "site registry JSON file")
	cmd.Flags().StringVar(&flags.Icons, "icons", flags.Icons, "directory of icon files named <hostname>.png")
	cmd.Flags().StringVar(&flags.Template, "template", flags.Template, "HTML template file")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", flags.Output, "output HTML file")
	cmd.Flags().IntVar(&flags.Sprite.Size, "size", flags.Sprite.Size, "icon cell size in pixels")
	cmd.Flags().IntVar(&flags.Sprite.Columns, "columns", flags.Sprite.Columns, "sprite grid width in cells")
	cmd.Flags().StringVar(&flags.Sprite.Fill, "fill", flags.Sprite.Fill, "transparency policy: opaque (default), transparent")
	cmd.Flags().IntVar(&flags.Sprite.JPEGQuality, "quality", flags.Sprite.JPEGQuality, "JPEG fallback quality (1-100)")
	cmd.Flags().BoolVar(&flags.Sprite.Colors, "colors", flags.Sprite.Colors, "extract a dominant accent color per icon")
	cmd.Flags().StringVar(&flags.Sprite.ColorStrategy, "color-strategy", flags.Sprite.ColorStrategy, "color strategy: average (default), cluster, histogram")

	return cmd
}

// applyFlagOverrides copies explicitly set flag values over the file config.
// Flags the user didn't touch keep whatever the config file said.
func applyFlagOverrides(cmd *cobra.Command, cfg *Config, flags Config) {
	set := map[string]func(){
		"registry":       func() { cfg.Registry = flags.Registry },
		"icons":          func() { cfg.Icons = flags.Icons },
		"template":       func() { cfg.Template = flags.Template },
		"output":         func() { cfg.Output = flags.Output },
		"size":           func() { cfg.Sprite.Size = flags.Sprite.Size },
		"columns":        func() { cfg.Sprite.Columns = flags.Sprite.Columns },
		"fill":           func() { cfg.Sprite.Fill = flags.Sprite.Fill },
		"quality":        func() { cfg.Sprite.JPEGQuality = flags.Sprite.JPEGQuality },
		"colors":         func() { cfg.Sprite.Colors = flags.Sprite.Colors },
		"color-strategy": func() { cfg.Sprite.ColorStrategy = flags.Sprite.ColorStrategy },
	}
	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}

// runBuild executes the pipeline and prints a result summary.
func (c *CLI) runBuild(ctx context.Context, cfg Config) error {
	opts := cfg.PipelineOptions()
	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	result, err := pipeline.NewRunner(c.Logger).Execute(ctx, opts)
	if err != nil {
		printError("Build failed: %v", err)
		return err
	}
	prog.done("Built page")

	printSuccess("Built %d sites, %d icons (%s sprite, %s)",
		result.Stats.SiteCount, result.Stats.IconCount,
		result.Encoded.Format, result.Encoded.Size)
	printFile(cfg.Output)

	if len(result.Skipped) > 0 {
		printWarning("Skipped %d icon(s)", len(result.Skipped))
		for _, s := range result.Skipped {
			printDetail("%s", s)
		}
	}

	printNextStep("Preview locally", appName+" serve")
	return nil
}

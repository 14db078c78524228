package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sitedeck/sitedeck/pkg/errors"
	"github.com/sitedeck/sitedeck/pkg/pipeline"
	"github.com/sitedeck/sitedeck/pkg/sprite"
)

// DefaultConfigFile is the config file looked up in the working directory
// when --config is not given.
const DefaultConfigFile = "sitedeck.toml"

// Config mirrors the sitedeck.toml layout:
//
//	registry = "sites.json"
//	icons    = "icons"
//	template = "web/index.template.html"
//	output   = "dist/index.html"
//
//	[sprite]
//	size           = 24
//	columns        = 12
//	fill           = "opaque"
//	jpeg_quality   = 85
//	colors         = true
//	color_strategy = "average"
type Config struct {
	Registry string       `toml:"registry"`
	Icons    string       `toml:"icons"`
	Template string       `toml:"template"`
	Output   string       `toml:"output"`
	Sprite   SpriteConfig `toml:"sprite"`
}

// SpriteConfig is the [sprite] section of the config file.
type SpriteConfig struct {
	Size          int    `toml:"size"`
	Columns       int    `toml:"columns"`
	Fill          string `toml:"fill"`
	JPEGQuality   int    `toml:"jpeg_quality"`
	Colors        bool   `toml:"colors"`
	ColorStrategy string `toml:"color_strategy"`
}

// DefaultCLIConfig returns the configuration used when no config file exists
// and no flags are given.
func DefaultCLIConfig() Config {
	sc := sprite.DefaultConfig()
	return Config{
		Registry: pipeline.DefaultRegistryPath,
		Icons:    pipeline.DefaultIconsDir,
		Template: pipeline.DefaultTemplatePath,
		Output:   pipeline.DefaultOutputPath,
		Sprite: SpriteConfig{
			Size:          sc.IconSize,
			Columns:       sc.Columns,
			Fill:          string(sc.Fill),
			JPEGQuality:   sc.JPEGQuality,
			Colors:        sc.ExtractColors,
			ColorStrategy: string(sc.Colors),
		},
	}
}

// LoadConfig reads a config file and fills unset fields with defaults.
//
// When path is empty, DefaultConfigFile is used if it exists; a missing
// default file is not an error, it just means all defaults apply. An
// explicitly given path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultCLIConfig()

	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing %s", path)
	}
	return cfg, nil
}

// PipelineOptions converts the file config into pipeline options.
// The sprite settings are validated later by the pipeline itself.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		RegistryPath: c.Registry,
		IconsDir:     c.Icons,
		TemplatePath: c.Template,
		OutputPath:   c.Output,
		Sprite: sprite.Config{
			IconSize:      c.Sprite.Size,
			Columns:       c.Sprite.Columns,
			Fill:          sprite.FillPolicy(c.Sprite.Fill),
			JPEGQuality:   c.Sprite.JPEGQuality,
			ExtractColors: c.Sprite.Colors,
			Colors:        sprite.ColorStrategy(c.Sprite.ColorStrategy),
		},
	}
}

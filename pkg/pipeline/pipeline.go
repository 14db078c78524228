// Package pipeline runs the complete site page build.
//
// This package implements the load → normalize → assemble → encode → render
// pipeline that takes a site registry, a directory of icon files and an HTML
// template, and produces the final page with an embedded sprite sheet. The
// CLI is a thin wrapper around this package; anything that can construct
// Options can run a build.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    RegistryPath: "sites.json",
//	    IconsDir:     "icons",
//	    TemplatePath: "templates/index.template.html",
//	    OutputPath:   "dist/index.html",
//	}
//	result, err := runner.Execute(ctx, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sitedeck/sitedeck/pkg/registry"
	"github.com/sitedeck/sitedeck/pkg/sprite"
)

// Default paths used when Options leaves them empty.
const (
	DefaultRegistryPath = "sites.json"
	DefaultIconsDir     = "icons"
	DefaultTemplatePath = "web/index.template.html"
	DefaultOutputPath   = "dist/index.html"
)

// Options contains all configuration for a page build.
type Options struct {
	// RegistryPath is the JSON site registry.
	RegistryPath string

	// IconsDir holds the raw icon files, one per hostname.
	IconsDir string

	// TemplatePath is the HTML template with substitution tokens.
	TemplatePath string

	// OutputPath is where the rendered page is written. Empty skips the
	// write, which is what the tests and any embedding caller want.
	OutputPath string

	// Sprite configures icon normalization and sheet encoding. Zero fields
	// take their defaults during validation.
	Sprite sprite.Config

	// Version overrides the build version stamped into the page. Empty
	// means derive it from the build environment.
	Version string

	// Logger receives progress output. Nil discards it.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.RegistryPath == "" {
		o.RegistryPath = DefaultRegistryPath
	}
	if o.IconsDir == "" {
		o.IconsDir = DefaultIconsDir
	}
	if o.TemplatePath == "" {
		o.TemplatePath = DefaultTemplatePath
	}
	if err := o.Sprite.Validate(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Sites is the normalized registry with icon metadata attached.
	Sites []registry.Site

	// Page is the rendered HTML.
	Page string

	// Encoded is the compressed sprite sheet.
	Encoded sprite.Encoded

	// Positions maps hostnames to their sprite cell offsets.
	Positions map[string]sprite.Position

	// Colors maps hostnames to their dominant accent colors.
	Colors map[string]string

	// Skipped lists icons that were dropped with the reason for each.
	Skipped []sprite.Skipped

	// Version is the build version stamped into the page.
	Version string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SiteCount    int
	IconCount    int
	SkippedCount int

	LoadTime      time.Duration
	NormalizeTime time.Duration
	AssembleTime  time.Duration
	EncodeTime    time.Duration
	RenderTime    time.Duration
}

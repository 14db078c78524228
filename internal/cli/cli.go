// Package cli implements the sitedeck command-line interface.
//
// This package provides commands for building the site page (sprite sheet
// plus rendered HTML) and previewing the output directory locally. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
//   - build: Run the full page build: registry → icons → sprite → HTML
//   - serve: Preview the built output directory over HTTP
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sitedeck/sitedeck/pkg/buildinfo"
)

// appName is the application name used for display and config lookup.
const appName = "sitedeck"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sitedeck builds a site directory page with an embedded icon sprite",
		Long:         `Sitedeck is a CLI tool that turns a JSON site registry and a directory of icon files into a single static HTML page, packing all icons into one sprite sheet embedded as a data URI.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

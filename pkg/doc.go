// Package pkg provides the core libraries for the Sitedeck page build.
//
// # Overview
//
// Sitedeck turns a JSON site registry and a directory of per-hostname icon
// files into a single static HTML page with all icons packed into one sprite
// sheet. The pkg directory is organized into:
//
//  1. [registry] - Site registry loading and normalization
//  2. [sprite] - Icon loading, normalization, sheet assembly and encoding
//  3. [page] - HTML template rendering and output
//  4. [pipeline] - Orchestration (load → normalize → assemble → encode → render)
//
// # Architecture
//
// The data flow through a build:
//
//	sites.json + icons/
//	         ↓
//	    [registry] package (load, trim, sort sites)
//	         ↓
//	    [sprite] package (load → normalize → assemble → encode)
//	         ↓
//	    [page] package (token substitution, dist/index.html)
//
// # Quick Start
//
// Run a complete build:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    RegistryPath: "sites.json",
//	    IconsDir:     "icons",
//	    TemplatePath: "web/index.template.html",
//	    OutputPath:   "dist/index.html",
//	})
//
// Or drive the stages directly:
//
//	sites, _ := registry.Load("sites.json")
//	icons, skipped := sprite.LoadIcons("icons", sprite.HostnameSet(urls))
//	assembled := sprite.NewAssembler(cfg).Assemble(sprite.NewNormalizer(cfg).NormalizeAll(icons))
//	encoded, _ := sprite.NewEncoder(cfg).Encode(assembled.Sheet)
//
// # Supporting Packages
//
// [errors] - Structured errors with machine-readable codes.
//
// [buildinfo] - Build metadata injected via ldflags, plus the page version
// stamp derived from SOURCE_DATE_EPOCH for reproducible builds.
//
// [registry]: https://pkg.go.dev/github.com/sitedeck/sitedeck/pkg/registry
// [sprite]: https://pkg.go.dev/github.com/sitedeck/sitedeck/pkg/sprite
// [page]: https://pkg.go.dev/github.com/sitedeck/sitedeck/pkg/page
// [pipeline]: https://pkg.go.dev/github.com/sitedeck/sitedeck/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/sitedeck/sitedeck/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/sitedeck/sitedeck/pkg/buildinfo
package pkg

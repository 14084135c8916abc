// Package pkg provides the core libraries for Labelator sheet rendering.
//
// # Overview
//
// Labelator turns a list of short text labels into a printable sheet of
// circular stickers, matching the label positions to the physical die-cut
// grid of a sheet product. The pkg directory is organized into five areas:
//
//  1. [sheet] - Sheet geometry (grid parameters, presets, TOML sheet files)
//  2. [label] - Label input (text/CSV/JSON readers, grid normalization)
//  3. [render] - SVG generation and PDF/PNG export
//  4. [errors] - Structured error codes shared by all packages
//  5. [observability] - Render and export lifecycle hooks
//
// # Architecture
//
// The typical data flow through Labelator:
//
//	Labels file (text/CSV/JSON) or inline flags
//	         ↓
//	    [label] package (read + normalize into a grid)
//	         ↓
//	    [sheet] package (map grid cells to page coordinates)
//	         ↓
//	    [render] package (draw SVG, convert to PDF/PNG)
//	         ↓
//	    SVG/PDF/PNG output
//
// # Quick Start
//
// Render a handful of labels onto the default sheet:
//
//	import (
//	    "context"
//	    "github.com/UC-Davis-molecular-computing/labelator/pkg/label"
//	    "github.com/UC-Davis-molecular-computing/labelator/pkg/render"
//	    "github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
//	)
//
//	// 1. Describe the labels
//	in := label.FromList([]string{"DNA-1", "DNA-2", "ctrl"}, label.OrderCol)
//
//	// 2. Pick the sheet geometry
//	params := sheet.Default()
//
//	// 3. Place labels on the grid
//	grid, _ := label.Normalize(in, params)
//
//	// 4. Render and write
//	_ = render.WriteFile(context.Background(), "labels.pdf", grid, render.DefaultOptions(), params)
//
// # Main Packages
//
// [sheet] - Physical sheet geometry. Parameters describes a rows x cols grid
// of circular regions on a fixed page: per-cell spacing multipliers, page
// offsets, circle radius, and the default font size. Ships with the
// flexilabels-260-per-a4-sheet preset and reads additional geometries from
// TOML sheet files.
//
// [label] - Label input handling. Reads labels from plain text (one label
// per line, \n escapes for multi-line), CSV (cells map to grid cells), and
// JSON (explicit grid, rows, or flat list), then normalizes any input form
// into a dense grid sized to the sheet.
//
// [render] - SVG document generation via svgo, with each label drawn as
// centered tspan lines inside its circle. Export converts SVG to PDF or PNG
// through an external rsvg-convert binary; Format and FormatForFilename
// pick the converter mode from the output extension.
//
// [errors] - Coded errors. Every failure path in the libraries carries a
// stable Code (INVALID_INPUT, OUT_OF_BOUNDS, UNSUPPORTED_FORMAT, ...) that
// callers test with errors.Is.
//
// [observability] - Process-wide hooks invoked around render and export.
// The CLI registers logging hooks here; embedders can attach their own
// metrics without threading loggers through the libraries.
//
// [buildinfo] - Version, commit, and build date injected via ldflags.
//
// # Common Workflows
//
// Load labels from a file, respecting its extension:
//
//	in, _ := label.LoadLabels("plate.csv")
//	grid, _ := label.Normalize(in, params)
//
// Use a custom sheet geometry:
//
//	sheets, _ := sheet.LoadSheets("sheets.toml")
//	params := sheets["mini-badge"]
//
// Style the output:
//
//	opts := render.DefaultOptions()
//	opts.FontSize = 5.5
//	opts.ShowCircles = false
//	doc, _ := render.Render(ctx, grid, opts, params)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/label/...     # Specific package
//	go test -run Example        # Examples only
//
// [sheet]: https://pkg.go.dev/github.com/UC-Davis-molecular-computing/labelator/pkg/sheet
// [label]: https://pkg.go.dev/github.com/UC-Davis-molecular-computing/labelator/pkg/label
// [render]: https://pkg.go.dev/github.com/UC-Davis-molecular-computing/labelator/pkg/render
// [errors]: https://pkg.go.dev/github.com/UC-Davis-molecular-computing/labelator/pkg/errors
// [observability]: https://pkg.go.dev/github.com/UC-Davis-molecular-computing/labelator/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/UC-Davis-molecular-computing/labelator/pkg/buildinfo
package pkg

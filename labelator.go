// Package labelator lays out short text labels on sheets of circular
// stickers and writes the result as SVG, PDF, or PNG.
//
// The heavy lifting lives in the subpackages: pkg/label normalizes the
// three input shapes into a sparse grid, pkg/sheet describes sticker
// sheet geometry, and pkg/render draws and exports. This package ties
// them together for the common case of going from raw labels straight to
// an output file:
//
//	in := label.FromList(names, label.OrderCol)
//	doc, err := labelator.WriteLabels(ctx, "tubes.pdf", in, render.DefaultOptions(), sheet.Default())
package labelator

import (
	"context"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/label"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/render"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

// WriteLabels normalizes in against the sheet, renders it, and writes the
// document to filename, dispatching on the extension (.svg, .pdf, .png).
// The returned document is the rendered SVG regardless of the output
// format. On any error no output file is left behind.
func WriteLabels(ctx context.Context, filename string, in label.Input, opts render.Options, p sheet.Parameters) (*render.Document, error) {
	grid, err := label.Normalize(in, p)
	if err != nil {
		return nil, err
	}
	return render.WriteFile(ctx, filename, grid, opts, p)
}

// RenderLabels normalizes in against the sheet and renders it without
// touching the filesystem. Use this to inspect or serve the SVG directly.
func RenderLabels(ctx context.Context, in label.Input, opts render.Options, p sheet.Parameters) (*render.Document, error) {
	grid, err := label.Normalize(in, p)
	if err != nil {
		return nil, err
	}
	return render.Render(ctx, grid, opts, p)
}

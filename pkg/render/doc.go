// Package render turns a normalized label grid into printable documents.
//
// # Overview
//
// Rendering walks every occupied grid position, computes its circle center
// from the sheet parameters, and appends at most two primitives per
// position: an optional sticker boundary circle and a centered block of
// text. The result is an in-memory SVG [Document] that can be written out
// directly or converted to print formats.
//
// Basic usage:
//
//	opts := render.DefaultOptions()
//	doc, err := render.Render(ctx, grid, opts, sheet.Default())
//	if err != nil {
//	    return err
//	}
//	doc.WriteTo(w)
//
// # Text Placement
//
// Label text is split on line breaks and emitted as one tspan per line,
// horizontally centered on the circle. Vertical centering offsets the
// first line by -((n-1)/2) line heights in em units so the middle of the
// block, not its first baseline, sits on the circle center. The caller's
// DXTextEm/DYTextEm nudges shift the whole block in em units on top of
// that.
//
// Labels that are empty or all whitespace keep their position but produce
// no primitives at all.
//
// # Export
//
// [WriteFile] dispatches on the output filename's extension
// (case-insensitive):
//
//   - .svg: the document is written as-is
//   - .pdf: a fixed-page-size PDF via rsvg-convert
//   - .png: a raster image via rsvg-convert
//
// Conversion writes the SVG to a uniquely named temporary file, runs the
// converter, and removes the temporary file again, so concurrent exports
// never collide. rsvg-convert must be installed for .pdf and .png:
//
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// When it is missing, export fails with an EXPORT_UNAVAILABLE error before
// any file is touched. The converter binary can be overridden with the
// LABELATOR_RSVG environment variable.
package render

package render

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/label"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/observability"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

// Format identifies an output file format.
type Format string

// Supported output formats.
const (
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// ValidFormats maps each supported format to whether it requires the
// external converter.
var ValidFormats = map[Format]bool{
	FormatSVG: false,
	FormatPDF: true,
	FormatPNG: true,
}

// NeedsConverter reports whether exporting in this format runs the
// external converter binary.
func (f Format) NeedsConverter() bool {
	return ValidFormats[f]
}

// FormatForFilename derives the output format from the filename's
// extension, case-insensitively. A missing or unrecognized extension is
// an error; the dispatch never falls through to a default format.
func FormatForFilename(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New(errors.ErrCodeMissingExtension,
			"file name %q has no extension; must end in .pdf, .svg, or .png", filename)
	}
	format := Format(strings.TrimPrefix(ext, "."))
	if _, ok := ValidFormats[format]; !ok {
		return "", errors.New(errors.ErrCodeUnsupportedFormat,
			"unsupported output format %q; must end in .pdf, .svg, or .png", string(format))
	}
	return format, nil
}

// Export writes doc to filename in the format implied by its extension.
// SVG is written directly; PDF and PNG run through the external
// converter. Export hooks observe every attempt, including failures.
func Export(ctx context.Context, doc *Document, filename string) error {
	format, err := FormatForFilename(filename)
	if err != nil {
		return err
	}

	hooks := observability.Export()
	hooks.OnExportStart(ctx, string(format), filename)
	start := time.Now()

	err = exportDocument(ctx, doc, filename, format)
	hooks.OnExportComplete(ctx, string(format), filename, time.Since(start), err)
	return err
}

func exportDocument(ctx context.Context, doc *Document, filename string, format Format) error {
	if format == FormatSVG {
		if err := os.WriteFile(filename, doc.Bytes(), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", filename)
		}
		return nil
	}
	return convertDocument(ctx, doc, filename, format)
}

// WriteFile renders grid against the sheet's geometry and writes the
// result to filename, dispatching on the file extension. The filename
// is validated before any rendering happens, so a bad extension fails
// fast. On failure no output file is left behind.
func WriteFile(ctx context.Context, filename string, grid label.Grid, opts Options, p sheet.Parameters) (*Document, error) {
	if _, err := FormatForFilename(filename); err != nil {
		return nil, err
	}
	doc, err := Render(ctx, grid, opts, p)
	if err != nil {
		return nil, err
	}
	if err := Export(ctx, doc, filename); err != nil {
		return nil, err
	}
	return doc, nil
}

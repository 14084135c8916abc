// Package sheet describes physical label sheets as grids of circular
// sticker regions on a fixed-size page.
//
// A sheet is fully determined by its Parameters: the pixel pitch between
// neighboring circle centers, the position of the grid on the page, the
// circle radius, and the grid dimensions. Positions use zero-indexed
// (row, col) pairs where row 0 is the bottom-most printed row; CellCenter
// translates a position into page pixel coordinates with the vertical axis
// pointing down, as SVG does.
//
// Built-in presets for commercial sticker products are registered at init
// and selected by name. Additional sheets can be described in TOML files
// and loaded with [LoadSheets].
package sheet

import (
	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
)

// Parameters describes one physical label sheet product.
//
// All lengths are in page pixels. The zero value is not usable; construct
// parameters literally or load them from a preset or TOML file, then
// Validate before use.
type Parameters struct {
	// Name identifies the sheet, e.g. in CLI flags and TOML files.
	Name string

	// XMultiplier and YMultiplier are the horizontal and vertical pitch
	// between neighboring circle centers.
	XMultiplier float64
	YMultiplier float64

	// XOffset and YOffset anchor the grid on the page: the center of the
	// circle at column 0 sits at x = XOffset, and the center of the top
	// printed row (row Rows-1) sits at y = YOffset.
	XOffset float64
	YOffset float64

	// Radius is the sticker circle radius.
	Radius float64

	// DefaultFontSize is the font size used when a render does not
	// request one.
	DefaultFontSize float64

	// PageWidth and PageHeight are the page dimensions.
	PageWidth  float64
	PageHeight float64

	// Rows and Cols are the grid dimensions.
	Rows int
	Cols int
}

// Validate checks that the parameters describe a usable sheet.
func (p Parameters) Validate() error {
	if p.Rows < 1 || p.Cols < 1 {
		return errors.New(errors.ErrCodeInvalidSheet, "sheet %q needs at least one row and one column, got %dx%d", p.Name, p.Rows, p.Cols)
	}
	if p.PageWidth <= 0 || p.PageHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidSheet, "sheet %q page size must be positive, got %gx%g", p.Name, p.PageWidth, p.PageHeight)
	}
	if p.Radius <= 0 {
		return errors.New(errors.ErrCodeInvalidSheet, "sheet %q radius must be positive, got %g", p.Name, p.Radius)
	}
	if p.DefaultFontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidSheet, "sheet %q default font size must be positive, got %g", p.Name, p.DefaultFontSize)
	}
	if p.Cols > 1 && p.XMultiplier <= 0 {
		return errors.New(errors.ErrCodeInvalidSheet, "sheet %q x multiplier must be positive for %d columns, got %g", p.Name, p.Cols, p.XMultiplier)
	}
	if p.Rows > 1 && p.YMultiplier <= 0 {
		return errors.New(errors.ErrCodeInvalidSheet, "sheet %q y multiplier must be positive for %d rows, got %g", p.Name, p.Rows, p.YMultiplier)
	}
	return nil
}

// Capacity returns the number of sticker positions on the sheet.
func (p Parameters) Capacity() int {
	return p.Rows * p.Cols
}

// ContainsRow reports whether row is a valid row index.
func (p Parameters) ContainsRow(row int) bool {
	return row >= 0 && row < p.Rows
}

// ContainsCol reports whether col is a valid column index.
func (p Parameters) ContainsCol(col int) bool {
	return col >= 0 && col < p.Cols
}

// CellCenter returns the page pixel coordinates of the circle center at
// (row, col). Row 0 is the bottom printed row while page y grows downward,
// so the row index is inverted.
func (p Parameters) CellCenter(row, col int) (x, y float64) {
	x = p.XOffset + float64(col)*p.XMultiplier
	y = p.YOffset + float64(p.Rows-row-1)*p.YMultiplier
	return x, y
}

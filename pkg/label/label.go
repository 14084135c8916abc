// Package label models the text placed on a sheet and reconciles the
// different shapes callers hand labels over in.
//
// The canonical form is a [Grid]: a mapping from zero-indexed (row, col)
// positions to label text, row 0 being the bottom printed row. Callers
// rarely start from that form, so [Normalize] accepts three input shapes
// and produces a Grid:
//
//   - a Grid itself, validated against the sheet bounds
//   - a 2D slice of rows, placed as given
//   - a flat list, reshaped row-major or column-major
//
// Label text may contain embedded line breaks; each becomes its own
// visual line when rendered. Empty and all-whitespace labels survive
// normalization (their positions stay occupied) and are skipped later at
// render time.
package label

import (
	"cmp"
	"slices"
)

// Position addresses one sticker on a sheet. Row 0 is the bottom printed
// row; both indices are zero-based.
type Position struct {
	Row int
	Col int
}

// Grid maps occupied positions to their label text. Absent positions mean
// "no label there" and produce nothing when rendered.
type Grid map[Position]string

// Positions returns the occupied positions sorted by row, then column.
// Map iteration order is not deterministic; every consumer that needs
// stable output goes through this.
func (g Grid) Positions() []Position {
	positions := make([]Position, 0, len(g))
	for pos := range g {
		positions = append(positions, pos)
	}
	slices.SortFunc(positions, func(a, b Position) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return positions
}

// Order selects how a flat label list fills the grid.
type Order string

const (
	// OrderRow fills row 0 left to right, then row 1, and so on.
	OrderRow Order = "row"

	// OrderCol fills column 0 bottom to top, then column 1, and so on.
	// When the list does not fill a whole number of columns, the last
	// column stops early.
	OrderCol Order = "col"
)

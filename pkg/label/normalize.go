package label

import (
	"github.com/UC-Davis-molecular-computing/labelator/pkg/errors"
	"github.com/UC-Davis-molecular-computing/labelator/pkg/sheet"
)

// Input is the tagged union of the accepted label shapes. Exactly one of
// Grid, Rows, or List must be non-nil; use an empty non-nil value for a
// deliberately empty input.
//
// Order applies only to the List shape. Setting it alongside Grid or Rows
// is rejected, since those shapes already fix every position.
type Input struct {
	// Grid places labels at explicit (row, col) positions.
	Grid Grid

	// Rows places labels as a 2D slice: Rows[r][c] goes to position
	// (r, c). Rows may have fewer rows than the sheet and rows may be
	// ragged, but nothing may exceed the sheet's dimensions.
	Rows [][]string

	// List places labels as a flat sequence reshaped by Order.
	List []string

	// Order is the fill order for List: OrderRow (the default when
	// empty) or OrderCol.
	Order Order
}

// FromGrid returns an Input carrying position-keyed labels.
func FromGrid(g Grid) Input {
	if g == nil {
		g = Grid{}
	}
	return Input{Grid: g}
}

// FromRows returns an Input carrying a 2D slice of label rows.
func FromRows(rows [][]string) Input {
	if rows == nil {
		rows = [][]string{}
	}
	return Input{Rows: rows}
}

// FromList returns an Input carrying a flat label sequence and its fill
// order. An empty order means row-major.
func FromList(labels []string, order Order) Input {
	if labels == nil {
		labels = []string{}
	}
	return Input{List: labels, Order: order}
}

// Normalize converts any accepted input shape into the canonical Grid for
// the given sheet. It never truncates or drops labels: anything that does
// not fit the sheet is a hard error.
//
// Normalize returns an error with the indicated code if:
//   - no shape or more than one shape is set (INVALID_INPUT)
//   - Order is set for the Grid or Rows shape (INVALID_OPTION)
//   - Order is neither "row" nor "col" for the List shape (INVALID_OPTION)
//   - a Grid position lies outside the sheet (OUT_OF_BOUNDS)
//   - Rows has too many rows, a row has too many columns, or List has
//     more labels than the sheet holds (TOO_MANY_LABELS)
//
// Empty and all-whitespace labels are kept: their positions count as
// occupied and the renderer decides to draw nothing for them.
func Normalize(in Input, p sheet.Parameters) (Grid, error) {
	shapes := 0
	if in.Grid != nil {
		shapes++
	}
	if in.Rows != nil {
		shapes++
	}
	if in.List != nil {
		shapes++
	}
	switch {
	case shapes == 0:
		return nil, errors.New(errors.ErrCodeInvalidInput, "no labels given: exactly one of grid, rows, or list must be set")
	case shapes > 1:
		return nil, errors.New(errors.ErrCodeInvalidInput, "ambiguous labels: grid, rows, and list are mutually exclusive")
	}

	switch {
	case in.Grid != nil:
		return normalizeGrid(in, p)
	case in.Rows != nil:
		return normalizeRows(in, p)
	default:
		return normalizeList(in, p)
	}
}

func normalizeGrid(in Input, p sheet.Parameters) (Grid, error) {
	if in.Order != "" {
		return nil, errOrderForFixedShape()
	}

	grid := make(Grid, len(in.Grid))
	for pos, text := range in.Grid {
		if !p.ContainsRow(pos.Row) {
			return nil, errors.New(errors.ErrCodeOutOfBounds, "row %d is out of bounds, must be in range [0, %d]", pos.Row, p.Rows-1)
		}
		if !p.ContainsCol(pos.Col) {
			return nil, errors.New(errors.ErrCodeOutOfBounds, "col %d is out of bounds, must be in range [0, %d]", pos.Col, p.Cols-1)
		}
		grid[pos] = text
	}
	return grid, nil
}

func normalizeRows(in Input, p sheet.Parameters) (Grid, error) {
	if in.Order != "" {
		return nil, errOrderForFixedShape()
	}

	if len(in.Rows) > p.Rows {
		return nil, errors.New(errors.ErrCodeTooManyLabels, "labels have %d rows; sheet %q has %d", len(in.Rows), p.Name, p.Rows)
	}
	grid := Grid{}
	for r, row := range in.Rows {
		if len(row) > p.Cols {
			return nil, errors.New(errors.ErrCodeTooManyLabels, "labels row #%d has %d columns; sheet %q has %d", r, len(row), p.Name, p.Cols)
		}
		for c, text := range row {
			grid[Position{Row: r, Col: c}] = text
		}
	}
	return grid, nil
}

func normalizeList(in Input, p sheet.Parameters) (Grid, error) {
	if n := len(in.List); n > p.Capacity() {
		return nil, errors.New(errors.ErrCodeTooManyLabels, "cannot place %d labels; sheet %q holds at most %d", n, p.Name, p.Capacity())
	}

	grid := make(Grid, len(in.List))
	switch in.Order {
	case "", OrderRow:
		for i, text := range in.List {
			grid[Position{Row: i / p.Cols, Col: i % p.Cols}] = text
		}
	case OrderCol:
		for i, text := range in.List {
			grid[Position{Row: i % p.Rows, Col: i / p.Rows}] = text
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidOption, "invalid order value %q, must be %q or %q", string(in.Order), OrderRow, OrderCol)
	}
	return grid, nil
}

func errOrderForFixedShape() error {
	return errors.New(errors.ErrCodeInvalidOption, "order is only meaningful for a flat label list")
}

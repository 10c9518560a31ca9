package termgrid

import "fmt"

// LineOffset is a zero-based line index into the grid. Line 0 is the top line.
type LineOffset int

// ColumnOffset is a zero-based column index into the grid. Column 0 is the
// leftmost column.
type ColumnOffset int

// LineCount is a number of grid lines.
type LineCount int

// ColumnCount is a number of grid columns.
type ColumnCount int

// CellLocation addresses one cell of the grid.
type CellLocation struct {
	Line   LineOffset
	Column ColumnOffset
}

func (c CellLocation) String() string {
	return fmt.Sprintf("(%d, %d)", c.Line, c.Column)
}

// PageSize is the size of the grid in logical units.
type PageSize struct {
	Lines   LineCount
	Columns ColumnCount
}

// String formats the page size as lines x columns.
func (s PageSize) String() string {
	return fmt.Sprintf("%dx%d", s.Lines, s.Columns)
}

// ImageSize is a size in pixels.
type ImageSize struct {
	Width  int
	Height int
}

// String formats the size as width x height.
func (s ImageSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

package termgrid

// CellMargin is a uniform margin around every grid cell, in pixels.
//
// Values are usually 0 or positive but may be negative. The mapping methods
// do not apply it yet; it is carried so that renderers and configuration
// can round-trip it.
type CellMargin struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// PageMargin offsets the whole grid within the target surface, so that text
// is not glued to the edge of the window. There is no right margin.
type PageMargin struct {
	Left   int
	Top    int
	Bottom int
}

// Underline describes where decorations are drawn within a cell.
type Underline struct {
	// Position is the underline's center, in pixels above the cell bottom.
	Position int

	// Thickness is the line thickness in pixels.
	Thickness int
}

// DefaultUnderline is used when no font information is available.
var DefaultUnderline = Underline{Position: 1, Thickness: 1}

// GridMetrics contains the metrics required to calculate positions on the grid.
type GridMetrics struct {
	PageSize PageSize  // page size in line and column count
	CellSize ImageSize // grid cell size in pixels

	Baseline int // glyph baseline position relative to cell bottom

	Underline Underline

	CellMargin CellMargin
	PageMargin PageMargin
}

// New returns grid metrics for the given page and cell size with
// DefaultUnderline, a zero baseline and zero margins.
func New(pageSize PageSize, cellSize ImageSize) GridMetrics {
	return GridMetrics{
		PageSize:  pageSize,
		CellSize:  cellSize,
		Underline: DefaultUnderline,
	}
}

// Map maps a grid coordinate to the top left of its cell in surface
// coordinates. It is the same as MapTopLeft.
func (m GridMetrics) Map(line LineOffset, column ColumnOffset) Point {
	return m.MapTopLeft(line, column)
}

// MapLocation is Map for a CellLocation.
func (m GridMetrics) MapLocation(pos CellLocation) Point {
	return m.Map(pos.Line, pos.Column)
}

// MapTopLeft returns the top-left corner of the cell at (line, column).
//
// Offsets are not checked against PageSize; a cell outside the page yields
// the extrapolated point.
func (m GridMetrics) MapTopLeft(line LineOffset, column ColumnOffset) Point {
	x := m.PageMargin.Left + int(column)*m.CellSize.Width
	y := m.PageMargin.Top + int(line)*m.CellSize.Height

	return Point{X: x, Y: y}
}

// MapTopLeftLocation is MapTopLeft for a CellLocation.
func (m GridMetrics) MapTopLeftLocation(pos CellLocation) Point {
	return m.MapTopLeft(pos.Line, pos.Column)
}

// MapBottomLeft returns the bottom-left corner of the cell at (line, column),
// which is the top-left corner of the cell directly below it.
func (m GridMetrics) MapBottomLeft(line LineOffset, column ColumnOffset) Point {
	return m.MapTopLeft(line+1, column)
}

// MapBottomLeftLocation is MapBottomLeft for a CellLocation.
func (m GridMetrics) MapBottomLeftLocation(pos CellLocation) Point {
	return m.MapBottomLeft(pos.Line, pos.Column)
}

package termgrid

import (
	"image"

	"golang.org/x/text/width"
)

// CellRect returns the pixel bounds of the cell at (line, column).
// Like every image.Rectangle it is half-open: Max lies on the next cell.
func (m GridMetrics) CellRect(line LineOffset, column ColumnOffset) image.Rectangle {
	return m.SpanRect(line, column, 1)
}

// SpanRect returns the pixel bounds of columns consecutive cells on one line,
// starting at (line, column). It serves selection rows and wide glyphs.
// A non-positive count yields an empty rectangle at the cell's top-left.
func (m GridMetrics) SpanRect(line LineOffset, column ColumnOffset, columns int) image.Rectangle {
	tl := m.MapTopLeft(line, column)
	if columns <= 0 {
		return image.Rectangle{Min: tl.ImagePoint(), Max: tl.ImagePoint()}
	}
	bl := m.MapBottomLeft(line, column)

	return image.Rectangle{
		Min: tl.ImagePoint(),
		Max: image.Point{X: bl.X + columns*m.CellSize.Width, Y: bl.Y},
	}
}

// BaselineY returns the y coordinate of the glyph baseline for line.
func (m GridMetrics) BaselineY(line LineOffset) int {
	return m.MapBottomLeft(line, 0).Y - m.Baseline
}

// UnderlineRect returns the band covered by an underline spanning columns
// cells from (line, column). Its center lies Underline.Position pixels above
// the cell bottom and its height is Underline.Thickness.
func (m GridMetrics) UnderlineRect(line LineOffset, column ColumnOffset, columns int) image.Rectangle {
	span := m.SpanRect(line, column, columns)
	y0 := span.Max.Y - m.Underline.Position - m.Underline.Thickness/2

	return image.Rectangle{
		Min: image.Point{X: span.Min.X, Y: y0},
		Max: image.Point{X: span.Max.X, Y: y0 + m.Underline.Thickness},
	}
}

// GlyphRect returns the bounds of the cells occupied by r when it is drawn
// at (line, column).
func (m GridMetrics) GlyphRect(line LineOffset, column ColumnOffset, r rune) image.Rectangle {
	return m.SpanRect(line, column, RuneColumns(r))
}

// RuneColumns reports how many grid cells r occupies: 2 for East Asian wide
// and fullwidth characters, 1 otherwise.
func RuneColumns(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// PageExtent returns the pixel size required to show the whole page,
// margins included.
func (m GridMetrics) PageExtent() ImageSize {
	return ImageSize{
		Width:  m.PageMargin.Left + int(m.PageSize.Columns)*m.CellSize.Width,
		Height: m.PageMargin.Top + int(m.PageSize.Lines)*m.CellSize.Height + m.PageMargin.Bottom,
	}
}

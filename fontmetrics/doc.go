// Package fontmetrics fills the font-dependent fields of a
// [termgrid.GridMetrics] from a font the caller has already loaded.
//
// The package never opens files or shapes text. It reads the handful of
// numbers a terminal grid needs:
//
//   - Cell width: advance of a reference rune ('M' unless configured)
//   - Cell height: line height (ascent + descent + line gap)
//   - Baseline: descent, measured up from the cell bottom
//   - Underline: the font's underline position and thickness, when present
//
// All values are rounded up to whole pixels so glyphs never spill into a
// neighbouring cell.
//
// # Font backends
//
// One constructor exists per font stack:
//
//	gm, err := fontmetrics.FromFace(basicfont.Face7x13) // golang.org/x/image/font
//	gm, err := fontmetrics.FromSFNT(sfntFont, 16)      // golang.org/x/image/font/sfnt
//	gm, err := fontmetrics.FromGoText(goTextFace, 16)  // github.com/go-text/typesetting/font
//
// Page size and margins are not font properties; pass them as options:
//
//	gm, err := fontmetrics.FromSFNT(f, 16,
//	    fontmetrics.WithPageSize(termgrid.PageSize{Lines: 25, Columns: 80}),
//	    fontmetrics.WithPageMargin(termgrid.PageMargin{Left: 4, Top: 2}),
//	)
package fontmetrics

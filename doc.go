// Package termgrid maps a text terminal's logical grid onto pixel space.
//
// # Overview
//
// A terminal rasterizer draws glyphs, the cursor, decorations and selection
// highlights into a pixel surface, but the screen model addresses everything
// by line and column. [GridMetrics] holds the numbers that connect the two:
// the page size in cells, the pixel size of one cell, the glyph baseline,
// underline geometry and margins. Its mapping methods turn a grid
// coordinate into a surface coordinate, and every renderer must go through
// them so that all layers agree on placement.
//
// # Quick Start
//
//	gm := termgrid.New(termgrid.PageSize{Lines: 25, Columns: 80}, termgrid.ImageSize{Width: 10, Height: 20})
//	gm.PageMargin = termgrid.PageMargin{Left: 4, Top: 2}
//
//	p := gm.MapTopLeft(2, 3)    // (34, 42)
//	q := gm.MapBottomLeft(2, 3) // (34, 62)
//
// Font-dependent fields can be filled from an already-loaded font with the
// fontmetrics sub-package.
//
// # Coordinate System
//
// Both spaces use a top-left origin:
//   - Line offsets grow downward from 0, column offsets grow rightward from 0
//   - Pixel X increases right, pixel Y increases down
//   - The bottom edge of line N is the top edge of line N+1
//
// Offsets are not checked against the page size. Out-of-range offsets
// produce extrapolated points; clamping and wrapping are the caller's job.
//
// # Concurrency
//
// GridMetrics is a plain value. Mapping methods never mutate it, so any
// number of goroutines may map against a snapshot concurrently. Callers that
// mutate a shared GridMetrics (on resize or font reload) must synchronize
// themselves.
package termgrid

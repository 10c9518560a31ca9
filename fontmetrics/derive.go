package fontmetrics

import (
	"math"

	"github.com/gogpu/termgrid"
)

// faceMetrics are the font measurements a grid needs, in pixels.
// Descent is positive below the baseline. Underline position is the top of
// the underline relative to the baseline, negative below it.
type faceMetrics struct {
	advance    float64
	ascent     float64
	descent    float64
	lineHeight float64

	hasUnderline       bool
	underlinePosition  float64
	underlineThickness float64
}

// gridMetrics turns face measurements into grid metrics.
func (fm faceMetrics) gridMetrics(o options) termgrid.GridMetrics {
	lineHeight := fm.lineHeight
	if lineHeight <= 0 {
		lineHeight = fm.ascent + fm.descent
	}

	gm := termgrid.GridMetrics{
		PageSize: o.pageSize,
		CellSize: termgrid.ImageSize{
			Width:  ceilPixels(fm.advance),
			Height: ceilPixels(lineHeight),
		},
		Baseline:   ceilPixels(fm.descent),
		Underline:  termgrid.DefaultUnderline,
		CellMargin: o.cellMargin,
		PageMargin: o.pageMargin,
	}

	switch {
	case o.underline != nil:
		gm.Underline = *o.underline
	case fm.hasUnderline && fm.underlineThickness > 0:
		gm.Underline = underlineFor(gm.Baseline, fm.underlinePosition, fm.underlineThickness)
	}

	termgrid.Logger().Debug("fontmetrics: derived grid metrics", "metrics", gm)
	return gm
}

// underlineFor converts a font underline (top edge relative to the baseline)
// into a center offset from the cell bottom. The band is kept inside the cell.
func underlineFor(baseline int, position, thickness float64) termgrid.Underline {
	t := max(1, int(math.Round(thickness)))
	p := baseline + int(math.Round(position)) - t/2
	p = max(p, (t+1)/2)

	return termgrid.Underline{Position: p, Thickness: t}
}

func ceilPixels(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Ceil(v))
}

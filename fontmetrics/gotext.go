package fontmetrics

import (
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/termgrid"
)

// FromGoText derives grid metrics from a go-text/typesetting face at ppem
// pixels per em. Metrics are unhinted; underline geometry comes from the
// face's line metrics.
func FromGoText(face *font.Face, ppem float64, opts ...Option) (termgrid.GridMetrics, error) {
	if face == nil || face.Font == nil {
		return termgrid.GridMetrics{}, ErrNilFace
	}
	if ppem <= 0 {
		return termgrid.GridMetrics{}, ErrInvalidSize
	}
	o := applyOptions(opts)

	upem := float64(face.Upem())
	if upem == 0 {
		return termgrid.GridMetrics{}, errors.New("fontmetrics: face reports zero units per em")
	}
	scale := ppem / upem

	gid, ok := face.NominalGlyph(o.referenceRune)
	if !ok {
		return termgrid.GridMetrics{}, fmt.Errorf("%w: %q", ErrMissingGlyph, o.referenceRune)
	}
	advance := float64(face.HorizontalAdvance(gid)) * scale
	if advance <= 0 {
		return termgrid.GridMetrics{}, fmt.Errorf("%w: %q", ErrMissingGlyph, o.referenceRune)
	}

	fm := faceMetrics{advance: advance}
	if ext, ok := face.FontHExtents(); ok {
		// Descender is negative below the baseline.
		fm.ascent = float64(ext.Ascender) * scale
		fm.descent = -float64(ext.Descender) * scale
		fm.lineHeight = float64(ext.Ascender-ext.Descender+ext.LineGap) * scale
	}

	if thickness := face.LineMetric(font.UnderlineThickness); thickness > 0 {
		fm.hasUnderline = true
		fm.underlinePosition = float64(face.LineMetric(font.UnderlinePosition)) * scale
		fm.underlineThickness = float64(thickness) * scale
	}

	return fm.gridMetrics(o), nil
}

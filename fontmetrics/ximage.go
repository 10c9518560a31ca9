package fontmetrics

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/termgrid"
)

// FromFace derives grid metrics from a golang.org/x/image/font face, such as
// a basicfont bitmap face or an opentype face. Face metrics carry no
// underline information, so the result has termgrid.DefaultUnderline unless
// WithUnderline is given.
func FromFace(face font.Face, opts ...Option) (termgrid.GridMetrics, error) {
	if face == nil {
		return termgrid.GridMetrics{}, ErrNilFace
	}
	o := applyOptions(opts)

	advance, ok := face.GlyphAdvance(o.referenceRune)
	if !ok || advance <= 0 {
		return termgrid.GridMetrics{}, fmt.Errorf("%w: %q", ErrMissingGlyph, o.referenceRune)
	}

	m := face.Metrics()
	fm := faceMetrics{
		advance:    fixedToFloat64(advance),
		ascent:     fixedToFloat64(m.Ascent),
		descent:    fixedToFloat64(m.Descent),
		lineHeight: fixedToFloat64(m.Height),
	}
	return fm.gridMetrics(o), nil
}

// FromSFNT derives grid metrics from a parsed sfnt font at ppem pixels per em.
// Underline geometry comes from the font's post table.
func FromSFNT(f *sfnt.Font, ppem float64, opts ...Option) (termgrid.GridMetrics, error) {
	if f == nil {
		return termgrid.GridMetrics{}, ErrNilFace
	}
	if ppem <= 0 {
		return termgrid.GridMetrics{}, ErrInvalidSize
	}
	o := applyOptions(opts)

	var buf sfnt.Buffer
	size := fixed.Int26_6(ppem * 64)

	metrics, err := f.Metrics(&buf, size, o.hinting)
	if err != nil {
		return termgrid.GridMetrics{}, fmt.Errorf("fontmetrics: failed to read metrics: %w", err)
	}

	idx, err := f.GlyphIndex(&buf, o.referenceRune)
	if err != nil {
		return termgrid.GridMetrics{}, fmt.Errorf("fontmetrics: failed to look up %q: %w", o.referenceRune, err)
	}
	if idx == 0 {
		return termgrid.GridMetrics{}, fmt.Errorf("%w: %q", ErrMissingGlyph, o.referenceRune)
	}

	advance, err := f.GlyphAdvance(&buf, idx, size, o.hinting)
	if err != nil {
		return termgrid.GridMetrics{}, fmt.Errorf("fontmetrics: failed to read advance of %q: %w", o.referenceRune, err)
	}
	if advance <= 0 {
		return termgrid.GridMetrics{}, fmt.Errorf("%w: %q", ErrMissingGlyph, o.referenceRune)
	}

	fm := faceMetrics{
		advance:    fixedToFloat64(advance),
		ascent:     fixedToFloat64(metrics.Ascent),
		descent:    fixedToFloat64(metrics.Descent),
		lineHeight: fixedToFloat64(metrics.Height),
	}

	if post := f.PostTable(); post != nil && post.UnderlineThickness > 0 {
		scale := ppem / float64(f.UnitsPerEm())
		fm.hasUnderline = true
		fm.underlinePosition = float64(post.UnderlinePosition) * scale
		fm.underlineThickness = float64(post.UnderlineThickness) * scale
	}

	return fm.gridMetrics(o), nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

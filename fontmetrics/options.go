package fontmetrics

import (
	"golang.org/x/image/font"

	"github.com/gogpu/termgrid"
)

// Option configures how grid metrics are derived.
type Option func(*options)

// options holds the configuration shared by all constructors.
type options struct {
	pageSize      termgrid.PageSize
	pageMargin    termgrid.PageMargin
	cellMargin    termgrid.CellMargin
	referenceRune rune
	hinting       font.Hinting
	underline     *termgrid.Underline
}

// defaultOptions returns the default derivation options.
func defaultOptions() options {
	return options{
		referenceRune: 'M',
		hinting:       font.HintingFull,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPageSize sets the page size stored in the result.
func WithPageSize(s termgrid.PageSize) Option {
	return func(o *options) {
		o.pageSize = s
	}
}

// WithPageMargin sets the page margin stored in the result.
func WithPageMargin(m termgrid.PageMargin) Option {
	return func(o *options) {
		o.pageMargin = m
	}
}

// WithCellMargin sets the cell margin stored in the result.
func WithCellMargin(m termgrid.CellMargin) Option {
	return func(o *options) {
		o.cellMargin = m
	}
}

// WithReferenceRune sets the rune whose advance defines the cell width.
// The default is 'M'.
func WithReferenceRune(r rune) Option {
	return func(o *options) {
		o.referenceRune = r
	}
}

// WithHinting sets the hinting used when reading sfnt metrics.
// The default is font.HintingFull. FromFace and FromGoText ignore it; a
// font.Face carries its own hinting and go-text metrics are unhinted.
func WithHinting(h font.Hinting) Option {
	return func(o *options) {
		o.hinting = h
	}
}

// WithUnderline overrides the underline geometry taken from the font.
func WithUnderline(u termgrid.Underline) Option {
	return func(o *options) {
		o.underline = &u
	}
}

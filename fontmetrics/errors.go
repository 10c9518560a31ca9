package fontmetrics

import "errors"

// Sentinel errors for the fontmetrics package.
var (
	// ErrNilFace is returned when the face or font is nil.
	ErrNilFace = errors.New("fontmetrics: nil face")

	// ErrInvalidSize is returned when the requested pixel size is not positive.
	ErrInvalidSize = errors.New("fontmetrics: size must be positive")

	// ErrMissingGlyph is returned when the reference rune has no glyph or no advance.
	ErrMissingGlyph = errors.New("fontmetrics: reference glyph missing")
)

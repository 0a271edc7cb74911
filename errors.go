package textlayout

import "errors"

// Sentinel errors for the textlayout package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("textlayout: empty font data")

	// ErrInvalidFontSize is returned when a face size is zero or negative.
	// Sizes are never clamped; the caller must pass a positive size.
	ErrInvalidFontSize = errors.New("textlayout: font size must be positive")

	// ErrNilFace is returned when a Face has no font source,
	// e.g. the zero Face value or a face whose source was closed.
	ErrNilFace = errors.New("textlayout: face has no font source")
)

package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownMeasurer is returned by NewMeasurer for an unknown backend name.
	ErrUnknownMeasurer = errors.New("text: unknown measurer")
)

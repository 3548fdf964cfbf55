package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when a face is requested with a non-positive size.
	ErrInvalidSize = errors.New("text: face size must be positive")
)

// UnknownFontError is returned when a built-in font name is not recognized.
type UnknownFontError struct {
	Name string
}

func (e *UnknownFontError) Error() string {
	return fmt.Sprintf("text: unknown built-in font %q", e.Name)
}

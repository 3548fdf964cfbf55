package vidframe

import (
	"errors"
	"fmt"
)

// Sentinel errors for vidframe package.
var (
	// ErrNilFont is returned when a Config is missing one of its faces.
	ErrNilFont = errors.New("vidframe: font face is nil")

	// ErrInvalidFPS is returned when the configured frame rate is not positive.
	ErrInvalidFPS = errors.New("vidframe: fps must be positive")

	// ErrInvalidLineHeight is returned when the line height multiplier is not positive.
	ErrInvalidLineHeight = errors.New("vidframe: line height multiplier must be positive")
)

// GeometryError is returned when a section boundary lies outside the canvas
// or a padding value is negative.
type GeometryError struct {
	Field string
	Value float64
	Limit float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("vidframe: %s = %g out of range (0, %g)", e.Field, e.Value, e.Limit)
}

package vidframe

import (
	"fmt"
	"image/color"

	"github.com/vardbg/vidframe/text"
)

// Fonts holds one face per text role.
type Fonts struct {
	Body     *text.Face // code, output and variable text
	BodyBold *text.Face // last-variable action label
	Caption  *text.Face // execution caption and watermark
	Heading  *text.Face // section headings
	Intro    *text.Face // intro title
}

// Colors holds the frame palette.
type Colors struct {
	Background color.Color
	Body       color.Color
	Heading    color.Color
	Highlight  color.Color
	Watermark  color.Color

	// Red, Green and Blue are the action colors trace producers pick from.
	Red   color.Color
	Green color.Color
	Blue  color.Color
}

// Geometry holds the section boundaries and spacing, in pixels.
type Geometry struct {
	Width  int
	Height int

	// VarX is the vertical divider between code and variables.
	VarX float64
	// OutY is the horizontal divider between code and output.
	OutY float64
	// OtherVarY is the horizontal divider between the last variable and the
	// other variables, within the variable column.
	OtherVarY float64

	SectPadding float64
	HeadPadding float64

	// LineHeight is a multiplier applied to the body glyph height.
	LineHeight float64
}

// Config is the display configuration of a Renderer.
// It is read once at construction and never mutated by vidframe.
type Config struct {
	Geometry
	Fonts  Fonts
	Colors Colors

	// FPS is the frame rate handed to the encoder.
	FPS float64

	// IntroText and IntroTime configure the optional intro sequence.
	// Both must be set for an intro to be rendered.
	IntroText string
	IntroTime float64

	// Watermark enables the bottom-right watermark on every frame.
	Watermark bool
}

// Validate reports the first problem that would make the layout degenerate
// or drawing fail mid-render.
func (c *Config) Validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return err
	}
	if c.FPS <= 0 {
		return ErrInvalidFPS
	}

	faces := []struct {
		role string
		face *text.Face
	}{
		{"body", c.Fonts.Body},
		{"body_bold", c.Fonts.BodyBold},
		{"caption", c.Fonts.Caption},
		{"heading", c.Fonts.Heading},
		{"intro", c.Fonts.Intro},
	}
	for _, f := range faces {
		if f.face == nil {
			return fmt.Errorf("%w: %s", ErrNilFont, f.role)
		}
	}

	colors := []struct {
		role string
		c    color.Color
	}{
		{"bg", c.Colors.Background},
		{"fg_body", c.Colors.Body},
		{"fg_heading", c.Colors.Heading},
		{"highlight", c.Colors.Highlight},
		{"fg_watermark", c.Colors.Watermark},
	}
	for _, col := range colors {
		if col.c == nil {
			return fmt.Errorf("vidframe: color %s is not set", col.role)
		}
	}
	return nil
}

// Validate checks 0 < VarX < Width, 0 < OutY < Height and
// 0 < OtherVarY < Height, and that paddings are non-negative.
func (g *Geometry) Validate() error {
	if g.Width <= 0 {
		return &GeometryError{Field: "width", Value: float64(g.Width), Limit: 1 << 16}
	}
	if g.Height <= 0 {
		return &GeometryError{Field: "height", Value: float64(g.Height), Limit: 1 << 16}
	}

	bounds := []struct {
		field string
		value float64
		limit int
	}{
		{"var_x", g.VarX, g.Width},
		{"out_y", g.OutY, g.Height},
		{"ovar_y", g.OtherVarY, g.Height},
	}
	for _, b := range bounds {
		if b.value <= 0 || b.value >= float64(b.limit) {
			return &GeometryError{Field: b.field, Value: b.value, Limit: float64(b.limit)}
		}
	}

	if g.SectPadding < 0 {
		return &GeometryError{Field: "sect_padding", Value: g.SectPadding, Limit: g.VarX}
	}
	if g.HeadPadding < 0 {
		return &GeometryError{Field: "head_padding", Value: g.HeadPadding, Limit: g.OutY}
	}
	if g.LineHeight <= 0 {
		return ErrInvalidLineHeight
	}
	return nil
}

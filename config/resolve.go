package config

import (
	"fmt"
	"image/color"

	"github.com/vardbg/vidframe"
	"github.com/vardbg/vidframe/text"
)

// Resolve loads the fonts and parses the colors of c into a renderer
// configuration. The result is validated.
func (c *Config) Resolve() (vidframe.Config, error) {
	out := vidframe.Config{
		Geometry: vidframe.Geometry{
			Width:       c.Video.Width,
			Height:      c.Video.Height,
			VarX:        c.Layout.VarX,
			OutY:        c.Layout.OutY,
			OtherVarY:   c.Layout.OtherVarY,
			SectPadding: c.Layout.SectPadding,
			HeadPadding: c.Layout.HeadPadding,
			LineHeight:  c.Layout.LineHeight,
		},
		FPS:       c.Video.FPS,
		IntroText: c.Intro.Text,
		IntroTime: c.Intro.Time,
		Watermark: c.Watermark,
	}

	sources := map[string]*text.FontSource{}
	faces := []struct {
		role string
		font Font
		dst  **text.Face
	}{
		{"body", c.Fonts.Body, &out.Fonts.Body},
		{"body_bold", c.Fonts.BodyBold, &out.Fonts.BodyBold},
		{"caption", c.Fonts.Caption, &out.Fonts.Caption},
		{"heading", c.Fonts.Heading, &out.Fonts.Heading},
		{"intro", c.Fonts.Intro, &out.Fonts.Intro},
	}
	for _, f := range faces {
		src, ok := sources[f.font.Font]
		if !ok {
			var err error
			if src, err = text.LoadSource(f.font.Font); err != nil {
				return vidframe.Config{}, fmt.Errorf("config: fonts.%s: %w", f.role, err)
			}
			sources[f.font.Font] = src
		}
		face, err := src.Face(f.font.Size)
		if err != nil {
			return vidframe.Config{}, fmt.Errorf("config: fonts.%s: %w", f.role, err)
		}
		*f.dst = face
	}

	colors := []struct {
		role string
		hex  string
		dst  *color.Color
	}{
		{"bg", c.Colors.Background, &out.Colors.Background},
		{"fg_body", c.Colors.Body, &out.Colors.Body},
		{"fg_heading", c.Colors.Heading, &out.Colors.Heading},
		{"fg_watermark", c.Colors.Watermark, &out.Colors.Watermark},
		{"highlight", c.Colors.Highlight, &out.Colors.Highlight},
		{"red", c.Colors.Red, &out.Colors.Red},
		{"green", c.Colors.Green, &out.Colors.Green},
		{"blue", c.Colors.Blue, &out.Colors.Blue},
	}
	for _, col := range colors {
		v, err := vidframe.Hex(col.hex)
		if err != nil {
			return vidframe.Config{}, fmt.Errorf("config: colors.%s: %w", col.role, err)
		}
		*col.dst = v
	}

	if err := out.Validate(); err != nil {
		return vidframe.Config{}, fmt.Errorf("config: %w", err)
	}
	return out, nil
}

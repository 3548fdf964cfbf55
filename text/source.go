package text

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// builtinFonts maps built-in font names to their TTF data.
var builtinFonts = map[string][]byte{
	"go-mono":      gomono.TTF,
	"go-mono-bold": gomonobold.TTF,
	"go-regular":   goregular.TTF,
	"go-bold":      gobold.TTF,
}

// BuiltinNames returns the names accepted by [Builtin], in no particular order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinFonts))
	for name := range builtinFonts {
		names = append(names, name)
	}
	return names
}

// FontSource represents a parsed font file.
// One FontSource can create multiple Face instances at different sizes.
type FontSource struct {
	font *opentype.Font
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{font: f}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data)
}

// Builtin returns a FontSource for one of the bundled Go fonts
// ("go-mono", "go-mono-bold", "go-regular", "go-bold").
func Builtin(name string) (*FontSource, error) {
	data, ok := builtinFonts[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownFontError{Name: name}
	}
	return NewFontSource(data)
}

// LoadSource resolves ref as a built-in font name first and as a file path
// otherwise.
func LoadSource(ref string) (*FontSource, error) {
	if _, ok := builtinFonts[strings.ToLower(ref)]; ok {
		return Builtin(ref)
	}
	return NewFontSourceFromFile(ref)
}

// Name returns the font family name, or "" if the font does not carry one.
func (s *FontSource) Name() string {
	return s.name
}

// Face creates a Face at the specified size (in points, 72 DPI so one point
// is one pixel).
func (s *FontSource) Face(size float64) (*Face, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	otFace, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	return newFace(s, otFace, size), nil
}

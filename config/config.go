// Package config loads rendering configuration from TOML files.
package config

import (
	"embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed default/config.toml
var configFS embed.FS

// Config mirrors the TOML configuration file.
type Config struct {
	Watermark bool   `toml:"watermark"`
	Video     Video  `toml:"video"`
	Layout    Layout `toml:"layout"`
	Fonts     Fonts  `toml:"fonts"`
	Colors    Colors `toml:"colors"`
	Intro     Intro  `toml:"intro"`
}

type Video struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	FPS    float64 `toml:"fps"`
}

type Layout struct {
	VarX        float64 `toml:"var_x"`
	OutY        float64 `toml:"out_y"`
	OtherVarY   float64 `toml:"ovar_y"`
	SectPadding float64 `toml:"sect_padding"`
	HeadPadding float64 `toml:"head_padding"`
	LineHeight  float64 `toml:"line_height"`
}

// Font names a built-in font or a TTF/OTF file, and its size in points.
type Font struct {
	Font string  `toml:"font"`
	Size float64 `toml:"size"`
}

type Fonts struct {
	Body     Font `toml:"body"`
	BodyBold Font `toml:"body_bold"`
	Caption  Font `toml:"caption"`
	Heading  Font `toml:"heading"`
	Intro    Font `toml:"intro"`
}

// Colors holds hex color strings.
type Colors struct {
	Background string `toml:"bg"`
	Body       string `toml:"fg_body"`
	Heading    string `toml:"fg_heading"`
	Watermark  string `toml:"fg_watermark"`
	Highlight  string `toml:"highlight"`
	Red        string `toml:"red"`
	Green      string `toml:"green"`
	Blue       string `toml:"blue"`
}

type Intro struct {
	Text string  `toml:"text"`
	Time float64 `toml:"time"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		return nil, fmt.Errorf("config: no embedded default config: %w", err)
	}
	c := &Config{}
	if err := c.Load(string(data)); err != nil {
		return nil, fmt.Errorf("config: embedded default config: %w", err)
	}
	return c, nil
}

// Load decodes data on top of c. Keys missing from data keep their current
// values. Unknown keys are rejected.
func (c *Config) Load(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return &UnknownKeyError{Key: undecoded[0].String()}
	}
	return nil
}

// LoadFile returns the defaults overlaid with the file at path.
// An empty path returns the defaults.
func LoadFile(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Load(string(data)); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// UnknownKeyError is returned for configuration keys that do not exist.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("config: unknown key %q", e.Key)
}

// Package encoder turns finished frames into a video file.
//
// An [Encoder] accepts frames one at a time and finalizes the container on
// [Encoder.Stop]. [New] picks the implementation from the output file
// extension:
//
//	.gif   animated GIF (image/gif, Plan 9 palette with dithering)
//	.png   numbered PNG frame sequence
//	.mp4   H.264 through an ffmpeg subprocess
//	.webp  animated WebP through an ffmpeg subprocess
package encoder

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"strings"
)

// Encoder consumes finished frames.
//
// Write takes ownership of img; callers must not modify it afterwards.
// Stop flushes and finalizes the output and must be called exactly once.
type Encoder interface {
	Write(img image.Image) error
	Stop() error
}

// Format identifies an output container.
type Format string

// Supported formats, named by their file extension.
const (
	FormatGIF  Format = "gif"
	FormatPNG  Format = "png"
	FormatMP4  Format = "mp4"
	FormatWebP Format = "webp"
)

// Formats lists the supported formats.
var Formats = []Format{FormatMP4, FormatGIF, FormatWebP, FormatPNG}

// UnsupportedFormatError is returned for output paths whose extension does
// not name a supported format.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("encoder: unrecognized file extension %q", e.Ext)
}

// FormatOf returns the format named by the extension of path, matched
// case-insensitively.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if Format(ext) == f {
			return f, nil
		}
	}
	return "", &UnsupportedFormatError{Ext: ext}
}

// Options configures encoders created by [New].
type Options struct {
	FPS    float64
	Width  int
	Height int

	// FFmpegPath is the ffmpeg binary used for MP4 and WebP output.
	// Defaults to "ffmpeg" looked up in PATH.
	FFmpegPath string

	// Logger receives encoder diagnostics. Defaults to discarding them.
	Logger *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// New creates the encoder for the format named by path's extension.
// The output file (or, for ffmpeg formats, the subprocess) is created
// immediately so configuration problems surface before any frame is drawn.
func New(path string, opts Options) (Encoder, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if opts.FPS <= 0 {
		return nil, fmt.Errorf("encoder: fps must be positive, got %g", opts.FPS)
	}

	log := opts.logger()
	log.Info("encoder: selected", "format", string(format), "path", path, "fps", opts.FPS)

	switch format {
	case FormatGIF:
		g, err := createGIF(path, opts.FPS)
		if err != nil {
			return nil, err
		}
		return g, nil
	case FormatPNG:
		return NewPNGSequence(path, log), nil
	default:
		opts.Logger = log
		f, err := startFFmpeg(path, format, opts)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}

package vidframe

import (
	"log/slog"

	"github.com/vardbg/vidframe/encoder"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default: encoder picked from the output file extension
//	r, err := vidframe.New("out.mp4", cfg)
//
//	// Custom encoder (dependency injection)
//	r, err := vidframe.New("", cfg, vidframe.WithEncoder(enc))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	encoder    encoder.Encoder
	ffmpegPath string
	logger     *slog.Logger
}

// WithEncoder sets the encoder frames are handed to. The output path passed
// to [New] is ignored.
func WithEncoder(enc encoder.Encoder) Option {
	return func(o *options) {
		o.encoder = enc
	}
}

// WithFFmpeg sets the ffmpeg binary used for MP4 and WebP output.
func WithFFmpeg(path string) Option {
	return func(o *options) {
		o.ffmpegPath = path
	}
}

// WithLogger sets the logger of this Renderer, overriding [Logger].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

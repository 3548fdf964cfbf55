package encoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
)

// FFmpeg pipes raw RGBA frames into an ffmpeg subprocess.
type FFmpeg struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	width  int
	height int
	buf    *image.RGBA
	log    *slog.Logger
}

// ffmpegArgs builds the ffmpeg command line for format.
func ffmpegArgs(path string, format Format, opts Options) []string {
	args := []string{
		"-hide_banner", "-loglevel", "error", "-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"-r", strconv.FormatFloat(opts.FPS, 'f', -1, 64),
		"-i", "-",
	}

	switch format {
	case FormatWebP:
		args = append(args, "-c:v", "libwebp_anim", "-lossless", "0", "-loop", "0")
	default:
		args = append(args, "-c:v", "libx264", "-pix_fmt", "yuv420p", "-movflags", "+faststart")
	}

	return append(args, path)
}

func startFFmpeg(path string, format Format, opts Options) (*FFmpeg, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("encoder: invalid frame size %dx%d", opts.Width, opts.Height)
	}

	bin := opts.FFmpegPath
	if bin == "" {
		bin = "ffmpeg"
	}

	e := &FFmpeg{
		width:  opts.Width,
		height: opts.Height,
		log:    opts.logger(),
	}
	e.cmd = exec.Command(bin, ffmpegArgs(path, format, opts)...) //nolint:gosec // binary comes from configuration
	e.cmd.Stderr = &e.stderr

	stdin, err := e.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("encoder: ffmpeg: %w", err)
	}
	e.stdin = stdin

	if err := e.cmd.Start(); err != nil {
		return nil, fmt.Errorf("encoder: ffmpeg: %w", err)
	}
	e.log.Debug("encoder: ffmpeg started", "args", strings.Join(e.cmd.Args, " "))
	return e, nil
}

// Write implements Encoder.
func (e *FFmpeg) Write(img image.Image) error {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Dx() != e.width || rgba.Rect.Dy() != e.height || rgba.Stride != 4*e.width {
		rgba = e.convert(img)
	}

	if _, err := e.stdin.Write(rgba.Pix[:4*e.width*e.height]); err != nil {
		return e.failure(err)
	}
	return nil
}

// convert copies img into a reusable buffer of the stream size.
func (e *FFmpeg) convert(img image.Image) *image.RGBA {
	if e.buf == nil {
		e.buf = image.NewRGBA(image.Rect(0, 0, e.width, e.height))
	}
	draw.Draw(e.buf, e.buf.Rect, img, img.Bounds().Min, draw.Src)
	return e.buf
}

// Stop implements Encoder. It closes the pipe and waits for ffmpeg to exit.
func (e *FFmpeg) Stop() error {
	cerr := e.stdin.Close()
	if err := e.cmd.Wait(); err != nil {
		return e.failure(err)
	}
	if cerr != nil && !errors.Is(cerr, io.ErrClosedPipe) {
		return fmt.Errorf("encoder: ffmpeg: %w", cerr)
	}
	return nil
}

// failure wraps err with whatever ffmpeg printed to stderr.
func (e *FFmpeg) failure(err error) error {
	if msg := strings.TrimSpace(e.stderr.String()); msg != "" {
		return fmt.Errorf("encoder: ffmpeg: %w: %s", err, msg)
	}
	return fmt.Errorf("encoder: ffmpeg: %w", err)
}

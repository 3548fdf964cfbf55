package vidframe

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/vardbg/vidframe/encoder"
)

// ErrClosed is returned by Close when the Renderer was already closed.
var ErrClosed = errors.New("vidframe: renderer closed")

// Renderer composes frames and hands them to an encoder.
//
// A frame goes through StartFrame, any number of Draw calls, and FinishFrame.
// The layout is computed during the first StartFrame and kept for the
// lifetime of the Renderer.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	cfg Config
	enc encoder.Encoder
	log *slog.Logger

	metrics *Metrics
	frame   *Canvas

	frames      int
	missingRefs int
	closed      bool
}

// New creates a Renderer writing to path, with the encoder chosen by the
// path's extension. An unsupported extension yields an
// [*encoder.UnsupportedFormatError]. If cfg configures an intro, the intro
// frames are written before New returns.
func New(path string, cfg Config, opts ...Option) (*Renderer, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	enc := o.encoder
	if enc == nil {
		var err error
		enc, err = encoder.New(path, encoder.Options{
			FPS:        cfg.FPS,
			Width:      cfg.Width,
			Height:     cfg.Height,
			FFmpegPath: o.ffmpegPath,
			Logger:     o.logger,
		})
		if err != nil {
			return nil, err
		}
	}

	r := &Renderer{cfg: cfg, enc: enc, log: o.logger}

	if cfg.IntroText != "" && cfg.IntroTime > 0 {
		if err := r.writeIntro(); err != nil {
			_ = enc.Stop()
			return nil, err
		}
	}
	return r, nil
}

// IntroFrames returns the number of intro frames cfg produces.
func IntroFrames(cfg *Config) int {
	if cfg.IntroText == "" || cfg.IntroTime <= 0 || cfg.FPS <= 0 {
		return 0
	}
	return int(math.Round(cfg.IntroTime / cfg.FPS))
}

func (r *Renderer) writeIntro() error {
	n := IntroFrames(&r.cfg)
	r.log.Info("vidframe: writing intro", "frames", n)

	for i := 0; i < n; i++ {
		r.newFrame()
		drawIntro(r.frame, &r.cfg)
		if err := r.FinishFrame(nil); err != nil {
			return fmt.Errorf("vidframe: intro frame %d: %w", i, err)
		}
	}
	return nil
}

func (r *Renderer) newFrame() {
	r.frame = NewCanvas(r.cfg.Width, r.cfg.Height, r.cfg.Colors.Background)
}

// StartFrame allocates a blank frame and draws the section dividers and
// headings. A frame that was started but not finished is discarded.
func (r *Renderer) StartFrame() {
	r.newFrame()
	drawChrome(r.frame, &r.cfg)

	if r.metrics == nil {
		m := ComputeMetrics(r.cfg.Geometry, measureGlyph(r.cfg.Fonts.Body), measureGlyph(r.cfg.Fonts.Heading))
		r.metrics = &m
		r.log.Debug("vidframe: layout computed",
			"line_height", m.LineHeight,
			"code_cols", m.Code.Cols, "code_rows", m.Code.Rows,
			"output_rows", m.Output.Rows,
			"last_var_rows", m.LastVar.Rows, "other_var_rows", m.OtherVars.Rows)
	}
	r.log.Debug("vidframe: frame started", "frame", r.frames)
}

// Metrics returns the layout, or false if no frame was started yet.
func (r *Renderer) Metrics() (Metrics, bool) {
	if r.metrics == nil {
		return Metrics{}, false
	}
	return *r.metrics, true
}

// drawing reports whether a frame is open for drawing.
func (r *Renderer) drawing() bool {
	return r.frame != nil && r.metrics != nil
}

// DrawCode draws the window of snap around its current line.
func (r *Renderer) DrawCode(snap CodeSnapshot) {
	if !r.drawing() {
		return
	}
	m := r.metrics
	lines := WrapAndWindow(snap.Lines, snap.Current-1, m.Code.Cols, m.Code.Rows)
	drawCodeLines(r.frame, &r.cfg, m, lines)
}

// DrawOutput draws the tail of the output history that fits the output
// section.
func (r *Renderer) DrawOutput(lines []string) {
	if !r.drawing() {
		return
	}
	drawTextBlock(r.frame, &r.cfg, r.metrics, r.metrics.Output, OutputTail(lines, r.metrics.Output.Rows))
}

// DrawExecutionCaption draws the execution count and timing caption under
// the code.
func (r *Renderer) DrawExecutionCaption(count int, current, average, total string) {
	if !r.drawing() {
		return
	}
	drawExecCaption(r.frame, &r.cfg, r.metrics, ExecutionCaption(count, current, average, total))
}

// FinishFrame draws vs (if not nil) and the watermark, then hands the frame to
// the encoder. Without an open frame it does nothing.
func (r *Renderer) FinishFrame(vs *VariableState) error {
	if r.frame == nil {
		return nil
	}

	if vs != nil && r.metrics != nil {
		r.drawVariableState(vs)
	}
	if r.cfg.Watermark {
		drawWatermark(r.frame, &r.cfg)
	}

	// The encoder owns the frame from here on
	img := r.frame.Image()
	r.frame = nil
	r.frames++
	r.log.Debug("vidframe: frame finished", "frame", r.frames-1)

	return r.enc.Write(img)
}

func (r *Renderer) drawVariableState(vs *VariableState) {
	anchors, ok := drawVariables(r.frame, &r.cfg, r.metrics, vs)
	if ok {
		pts := RoutePolyline(anchors.Source, anchors.Target, float64(r.cfg.Width), r.cfg.SectPadding)
		col := vs.Color
		if col == nil {
			col = r.cfg.Colors.Body
		}
		r.frame.StrokePolyline(pts, connectorWidth, col)
		return
	}

	if vs.Ref != "" {
		r.missingRefs++
		r.log.Warn("vidframe: referenced variable not shown",
			"variable", vs.Name, "ref", vs.Ref, "frame", r.frames)
	}
}

// Frames returns the number of frames handed to the encoder.
func (r *Renderer) Frames() int {
	return r.frames
}

// MissingReferences returns how many frames declared a reference that had no
// matching entry among the displayed other variables.
func (r *Renderer) MissingReferences() int {
	return r.missingRefs
}

// Close finishes the open frame, if any, and stops the encoder.
func (r *Renderer) Close(vs *VariableState) error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true

	err := r.FinishFrame(vs)
	if serr := r.enc.Stop(); serr != nil {
		err = errors.Join(err, serr)
	}
	r.log.Debug("vidframe: closed", "frames", r.frames)
	return err
}

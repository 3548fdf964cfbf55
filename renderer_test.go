package vidframe

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vardbg/vidframe/encoder"
)

func newTestRenderer(t *testing.T, cfg Config) (*Renderer, *recordingEncoder) {
	t.Helper()
	enc := &recordingEncoder{}
	r, err := New("", cfg, WithEncoder(enc))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	return r, enc
}

func TestNewUnsupportedExtension(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "out.avi"), testConfig(t))
	var ufe *encoder.UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("New error = %v, want *encoder.UnsupportedFormatError", err)
	}
	if ufe.Ext != "avi" {
		t.Errorf("Ext = %q, want avi", ufe.Ext)
	}
}

func TestNewInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"var_x at width", func(c *Config) { c.VarX = float64(c.Width) }},
		{"var_x zero", func(c *Config) { c.VarX = 0 }},
		{"out_y past height", func(c *Config) { c.OutY = 900 }},
		{"ovar_y negative", func(c *Config) { c.OtherVarY = -1 }},
		{"negative padding", func(c *Config) { c.SectPadding = -2 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"missing font", func(c *Config) { c.Fonts.Caption = nil }},
		{"missing color", func(c *Config) { c.Colors.Highlight = nil }},
		{"zero line height", func(c *Config) { c.LineHeight = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)
			enc := &recordingEncoder{}
			if _, err := New("", cfg, WithEncoder(enc)); err == nil {
				t.Error("New should reject the configuration")
			}
		})
	}
}

func TestGeometryErrorFields(t *testing.T) {
	g := testGeometry()
	g.OutY = 800
	err := g.Validate()

	var ge *GeometryError
	if !errors.As(err, &ge) {
		t.Fatalf("Validate error = %v, want *GeometryError", err)
	}
	if ge.Field != "out_y" || ge.Value != 800 || ge.Limit != 800 {
		t.Errorf("GeometryError = %+v", ge)
	}
}

func TestFinishFrameWithoutFrameIsNoop(t *testing.T) {
	r, enc := newTestRenderer(t, testConfig(t))

	if err := r.FinishFrame(&VariableState{Name: "x"}); err != nil {
		t.Fatalf("FinishFrame error = %v", err)
	}
	if len(enc.frames) != 0 || r.Frames() != 0 {
		t.Errorf("FinishFrame without a frame wrote %d frames", len(enc.frames))
	}
	if _, ok := r.Metrics(); ok {
		t.Error("metrics computed without a frame")
	}
}

func TestDrawWithoutFrameIsNoop(t *testing.T) {
	r, enc := newTestRenderer(t, testConfig(t))
	r.DrawCode(CodeSnapshot{Lines: []string{"x = 1"}, Current: 1})
	r.DrawOutput([]string{"hi"})
	r.DrawExecutionCaption(1, "a", "b", "c")
	if len(enc.frames) != 0 {
		t.Error("draw calls without a frame reached the encoder")
	}
}

func TestFrameLifecycle(t *testing.T) {
	cfg := testConfig(t)
	r, enc := newTestRenderer(t, cfg)

	src := []string{"a = [1, 2, 3]", "b = a", "print(b)"}
	for line := 1; line <= len(src); line++ {
		r.StartFrame()
		r.DrawCode(CodeSnapshot{Lines: src, Current: line})
		r.DrawOutput([]string{"[1, 2, 3]"})
		r.DrawExecutionCaption(1, "1 ms", "1 ms", "1 ms")
		if err := r.FinishFrame(&VariableState{Name: "a", Action: "assigned", Color: testGreen}); err != nil {
			t.Fatalf("FinishFrame error = %v", err)
		}
	}

	if len(enc.frames) != 3 || r.Frames() != 3 {
		t.Fatalf("frames = %d (renderer %d), want 3", len(enc.frames), r.Frames())
	}
	for i, img := range enc.frames {
		if b := img.Bounds(); b.Dx() != cfg.Width || b.Dy() != cfg.Height {
			t.Errorf("frame %d bounds = %v", i, b)
		}
	}
	if enc.frames[0] == enc.frames[1] {
		t.Error("frames share a canvas")
	}

	m, ok := r.Metrics()
	if !ok {
		t.Fatal("metrics not computed after StartFrame")
	}
	if m.Code.Rows <= 0 || m.Code.Cols <= 0 || m.Output.Rows <= 0 {
		t.Errorf("unexpected metrics %+v", m)
	}

	// The frame is handed off: a second FinishFrame does nothing
	if err := r.FinishFrame(nil); err != nil {
		t.Fatal(err)
	}
	if len(enc.frames) != 3 {
		t.Errorf("second FinishFrame wrote a frame")
	}
}

func TestMetricsComputedOnce(t *testing.T) {
	r, _ := newTestRenderer(t, testConfig(t))
	r.StartFrame()
	first := r.metrics
	_ = r.FinishFrame(nil)
	r.StartFrame()
	if r.metrics != first {
		t.Error("metrics recomputed on the second frame")
	}
}

func TestHighlightedLineDrawn(t *testing.T) {
	cfg := testConfig(t)
	r, enc := newTestRenderer(t, cfg)

	r.StartFrame()
	r.DrawCode(CodeSnapshot{Lines: []string{"a = 1", "b = 2", "c = 3"}, Current: 2})
	if err := r.FinishFrame(nil); err != nil {
		t.Fatal(err)
	}

	m, _ := r.Metrics()
	img := enc.frames[0]
	x := int(cfg.VarX - cfg.SectPadding - 3)
	y := int(m.Code.RowTop(1, m.LineHeight) + m.LineHeight/2)
	if got := img.At(x, y); !sameColor(got, testHighlight) {
		t.Errorf("current line row = %v, want highlight", got)
	}
}

func TestReferenceConnectorDrawn(t *testing.T) {
	cfg := testConfig(t)
	r, enc := newTestRenderer(t, cfg)

	vs := &VariableState{
		Name:           "b",
		Action:         "assigned",
		Color:          testGreen,
		TextLines:      []string{"[1, 2, 3]"},
		OtherTextLines: []string{"a:", "  [1, 2, 3]"},
		Ref:            "a",
	}
	r.StartFrame()
	if err := r.FinishFrame(vs); err != nil {
		t.Fatal(err)
	}
	if r.MissingReferences() != 0 {
		t.Errorf("MissingReferences = %d, want 0", r.MissingReferences())
	}

	// Find the trunk the same way the renderer does and probe it midway
	c, _, m := variableFixture(t)
	anchors, ok := drawVariables(c, &cfg, &m, vs)
	if !ok {
		t.Fatal("fixture produced no anchors")
	}
	x := TrunkX(anchors.Source, anchors.Target, float64(cfg.Width), cfg.SectPadding)
	y := (anchors.Source.Y + anchors.Target.Y) / 2

	img := enc.frames[0]
	if got := img.At(int(x), int(y)); !nearColor(got, testGreen) {
		t.Errorf("trunk pixel (%d, %d) = %v, want action color", int(x), int(y), got)
	}
}

func TestMissingReferenceCounted(t *testing.T) {
	r, enc := newTestRenderer(t, testConfig(t))

	vs := &VariableState{Name: "b", Action: "assigned", OtherTextLines: []string{"a:"}, Ref: "zzz"}
	for i := 0; i < 2; i++ {
		r.StartFrame()
		if err := r.FinishFrame(vs); err != nil {
			t.Fatal(err)
		}
	}
	if r.MissingReferences() != 2 {
		t.Errorf("MissingReferences = %d, want 2", r.MissingReferences())
	}
	if len(enc.frames) != 2 {
		t.Errorf("frames = %d, want 2", len(enc.frames))
	}
}

func TestIntroFrames(t *testing.T) {
	cfg := testConfig(t)
	cfg.IntroText = "Debugging demo.py"
	cfg.IntroTime = 6
	cfg.FPS = 2
	cfg.Watermark = true

	if n := IntroFrames(&cfg); n != 3 {
		t.Fatalf("IntroFrames = %d, want 3", n)
	}

	r, enc := newTestRenderer(t, cfg)
	if len(enc.frames) != 3 || r.Frames() != 3 {
		t.Fatalf("intro wrote %d frames, want 3", len(enc.frames))
	}
	if _, ok := r.Metrics(); ok {
		t.Error("intro frames should not compute the layout")
	}

	// Intro frames carry no chrome: the variable divider is absent
	if got := enc.frames[0].At(int(cfg.VarX), 100); !sameColor(got, testBG) {
		t.Errorf("intro divider pixel = %v, want background", got)
	}
}

func TestIntroNeedsTextAndTime(t *testing.T) {
	cfg := testConfig(t)
	cfg.IntroTime = 10
	if n := IntroFrames(&cfg); n != 0 {
		t.Errorf("IntroFrames without text = %d, want 0", n)
	}
	cfg.IntroText = "hi"
	cfg.IntroTime = 0
	if n := IntroFrames(&cfg); n != 0 {
		t.Errorf("IntroFrames without time = %d, want 0", n)
	}
}

func TestWriteErrorPropagates(t *testing.T) {
	r, enc := newTestRenderer(t, testConfig(t))
	enc.writeErr = errWrite

	r.StartFrame()
	if err := r.FinishFrame(nil); !errors.Is(err, errWrite) {
		t.Errorf("FinishFrame error = %v, want %v", err, errWrite)
	}
}

func TestIntroWriteErrorStopsEncoder(t *testing.T) {
	cfg := testConfig(t)
	cfg.IntroText = "hi"
	cfg.IntroTime = 4
	enc := &recordingEncoder{writeErr: errWrite}

	if _, err := New("", cfg, WithEncoder(enc)); !errors.Is(err, errWrite) {
		t.Fatalf("New error = %v, want %v", err, errWrite)
	}
	if enc.stops != 1 {
		t.Errorf("encoder stopped %d times, want 1", enc.stops)
	}
}

func TestClose(t *testing.T) {
	r, enc := newTestRenderer(t, testConfig(t))

	r.StartFrame()
	if err := r.Close(&VariableState{Name: "x", Action: "assigned"}); err != nil {
		t.Fatalf("Close error = %v", err)
	}
	if len(enc.frames) != 1 {
		t.Errorf("Close wrote %d frames, want 1", len(enc.frames))
	}
	if enc.stops != 1 {
		t.Errorf("encoder stopped %d times, want 1", enc.stops)
	}

	if err := r.Close(nil); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close error = %v, want ErrClosed", err)
	}
	if enc.stops != 1 {
		t.Errorf("second Close stopped the encoder again")
	}
}

func TestCloseWithoutOpenFrame(t *testing.T) {
	r, enc := newTestRenderer(t, testConfig(t))
	if err := r.Close(nil); err != nil {
		t.Fatal(err)
	}
	if len(enc.frames) != 0 || enc.stops != 1 {
		t.Errorf("frames=%d stops=%d, want 0 and 1", len(enc.frames), enc.stops)
	}
}

func TestRenderGIFEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	cfg := testConfig(t)
	cfg.Watermark = true

	r, err := New(path, cfg)
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	r.StartFrame()
	r.DrawCode(CodeSnapshot{Lines: []string{"x = 1"}, Current: 1})
	if err := r.Close(nil); err != nil {
		t.Fatalf("Close error = %v", err)
	}

	if r.frame != nil {
		t.Error("renderer kept the frame after Close")
	}
}

package encoder

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPNGSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.png")
	enc, err := New(path, Options{FPS: 5, Width: 6, Height: 4})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	seq, ok := enc.(*PNGSequence)
	if !ok {
		t.Fatalf("New(.png) = %T, want *PNGSequence", enc)
	}

	for i := 0; i < 2; i++ {
		if err := seq.Write(solidFrame(6, 4, color.White)); err != nil {
			t.Fatalf("Write %d error = %v", i, err)
		}
	}
	if err := seq.Stop(); err != nil {
		t.Fatalf("Stop error = %v", err)
	}

	for i := 0; i < 2; i++ {
		name := seq.FramePath(i)
		if want := filepath.Join(filepath.Dir(path), "frames_0000"+string(rune('0'+i))+".png"); name != want {
			t.Errorf("FramePath(%d) = %q, want %q", i, name, want)
		}
		f, err := os.Open(name)
		if err != nil {
			t.Fatalf("frame %d missing: %v", i, err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("frame %d decode error = %v", i, err)
		}
		if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
			t.Errorf("frame %d bounds = %v, want 6x4", i, b)
		}
	}

	if _, err := os.Stat(seq.FramePath(2)); !os.IsNotExist(err) {
		t.Errorf("unexpected third frame: %v", err)
	}
}

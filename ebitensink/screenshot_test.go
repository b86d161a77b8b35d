package ebitensink

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"open", "open"},
		{"open-0.75", "open-0.75"},
		{"t=1.5s", "t_1.5s"},
		{"path/to/thing", "path_to_thing"},
		{"", "mandala"},
		{"   ", "mandala"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		100, 50, 0, 200, // half-ish alpha
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)

	want := []color.NRGBA{
		{R: 127, G: 63, B: 0, A: 200},
		{R: 10, G: 20, B: 30, A: 255},
		{},
	}
	for x, w := range want {
		if got := img.NRGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestScreenshotsQueue(t *testing.T) {
	s := NewScreenshots(t.TempDir())
	s.Queue("a")
	s.Queue("b")
	if s.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", s.Pending())
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.png")
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("stat = %v, %v", fi, err)
	}
	if err := writePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img); err == nil {
		t.Error("expected error for missing directory")
	}
}

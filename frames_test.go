package mandala

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFramesTrailingNewline(t *testing.T) {
	fl, err := ParseFrames(strings.NewReader(squarePath + "\n" + quadPetalPath + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	if fl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", fl.Len())
	}
	if fl.Raw(1) != quadPetalPath {
		t.Errorf("Raw(1) = %q", fl.Raw(1))
	}
	if fl.Raw(2) != "" {
		t.Errorf("Raw(2) = %q, want empty", fl.Raw(2))
	}
}

func TestParseFramesCRLF(t *testing.T) {
	fl, err := ParseFrames(strings.NewReader(squarePath + "\r\n" + squarePath + "\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if fl.Raw(0) != squarePath {
		t.Errorf("Raw(0) = %q, want CR stripped", fl.Raw(0))
	}
}

func TestFrameListOutlineCached(t *testing.T) {
	fl := NewFrameList([]string{squarePath, quadPetalPath})
	a, err := fl.Outline(1)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := fl.Outline(1)
	if a != b {
		t.Error("Outline(1) not cached")
	}
}

func TestFrameListBadFrame(t *testing.T) {
	fl := NewFrameList([]string{squarePath, "M0 0 Q1"})
	_, err := fl.Outline(1)
	var pe *PathGrammarError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *PathGrammarError", err)
	}
	if pe.Source != "frame 1" {
		t.Errorf("Source = %q, want %q", pe.Source, "frame 1")
	}
	_, err2 := fl.Outline(1)
	if err2 != err {
		t.Error("frame error not cached")
	}
	if _, err := fl.Outline(0); err != nil {
		t.Errorf("good frame failed: %v", err)
	}
}

func TestFrameListIndexOutOfRange(t *testing.T) {
	fl := NewFrameList([]string{squarePath})
	for _, i := range []int{-1, 1, 100} {
		if _, err := fl.Outline(i); !errors.Is(err, ErrFrameIndex) {
			t.Errorf("Outline(%d) err = %v, want ErrFrameIndex", i, err)
		}
	}
}

func TestParseFramesInvalidUTF8(t *testing.T) {
	_, err := ParseFrames(strings.NewReader(squarePath + "\nM0 0\xff\n"))
	if !errors.Is(err, ErrPathSource) {
		t.Fatalf("err = %v, want ErrPathSource", err)
	}
}

func TestParseFramesLongLine(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("M0 0")
	for i := 0; i < 40000; i++ {
		sb.WriteString(" L1 1")
	}
	sb.WriteString(" Z")
	fl, err := ParseFrames(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(fl.Raw(0)) <= 64*1024 {
		t.Fatalf("test line too short: %d bytes", len(fl.Raw(0)))
	}
}

func TestLoadFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.txt")
	if err := os.WriteFile(path, []byte(squarePath+"\n"+quadPetalPath), 0o644); err != nil {
		t.Fatal(err)
	}
	fl, err := LoadFrames(path)
	if err != nil {
		t.Fatal(err)
	}
	if fl.Len() != 2 {
		t.Errorf("Len = %d, want 2", fl.Len())
	}

	if _, err := LoadFrames(path + ".missing"); !errors.Is(err, ErrPathSource) {
		t.Errorf("missing file err = %v, want ErrPathSource", err)
	}
}

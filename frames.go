package mandala

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// maxFrameLine bounds a single line of a frame file. Morph frames exported
// from vector tools can carry several megabytes of path data each.
const maxFrameLine = 16 << 20

// FrameList is a line-indexed list of raw path-data strings, one petal shape
// per line. Lines are parsed lazily on first access and the result (or the
// error) is cached per index.
type FrameList struct {
	raw     []string
	outline []*Outline
	err     []error
	parsed  []bool
}

// ParseFrames reads one path-data string per line from r. A trailing newline
// does not create an empty final frame. Carriage returns before the newline
// are stripped.
func ParseFrames(r io.Reader) (*FrameList, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxFrameLine)

	var raw []string
	for line := 1; sc.Scan(); line++ {
		b := sc.Bytes()
		if !utf8.Valid(b) {
			return nil, fmt.Errorf("%w: frame line %d: invalid UTF-8", ErrPathSource, line)
		}
		raw = append(raw, strings.TrimSuffix(string(b), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read frames: %w", ErrPathSource, err)
	}
	return NewFrameList(raw), nil
}

// LoadFrames opens path and parses it with ParseFrames.
func LoadFrames(path string) (*FrameList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPathSource, err)
	}
	defer f.Close()

	fl, err := ParseFrames(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fl, nil
}

// NewFrameList wraps already-split path-data strings.
func NewFrameList(raw []string) *FrameList {
	return &FrameList{
		raw:     raw,
		outline: make([]*Outline, len(raw)),
		err:     make([]error, len(raw)),
		parsed:  make([]bool, len(raw)),
	}
}

// Len returns the number of frames.
func (fl *FrameList) Len() int { return len(fl.raw) }

// Raw returns the unparsed path data of frame i, or "" when i is out of range.
func (fl *FrameList) Raw(i int) string {
	if i < 0 || i >= len(fl.raw) {
		return ""
	}
	return fl.raw[i]
}

// Outline returns the parsed outline of frame i.
func (fl *FrameList) Outline(i int) (*Outline, error) {
	if i < 0 || i >= len(fl.raw) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrFrameIndex, i, len(fl.raw))
	}
	if !fl.parsed[i] {
		fl.outline[i], fl.err[i] = parsePathData(fl.raw[i], fmt.Sprintf("frame %d", i))
		fl.parsed[i] = true
	}
	return fl.outline[i], fl.err[i]
}

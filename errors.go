package mandala

import (
	"errors"
	"fmt"
)

var (
	// ErrPathSource marks geometry input that could not be read or decoded:
	// a missing file, malformed XML, or invalid UTF-8.
	ErrPathSource = errors.New("mandala: path source")

	// ErrPathGrammar marks path data that is missing or does not follow the
	// SVG path grammar. Errors of type *PathGrammarError match it.
	ErrPathGrammar = errors.New("mandala: path grammar")

	// ErrTessellation marks an outline that cannot be filled. Errors of type
	// *TessellationError match it.
	ErrTessellation = errors.New("mandala: tessellation")

	// ErrContract marks a caller-side contract violation detected in release
	// mode. In debug mode the same violations panic.
	ErrContract = errors.New("mandala: contract violation")

	// ErrFrameIndex is returned for a frame index outside a frame list.
	ErrFrameIndex = errors.New("mandala: frame index out of range")
)

// PathGrammarError reports malformed or missing path data.
type PathGrammarError struct {
	Source string // where the data came from ("svg", "frame 3", ...); may be empty
	Pos    int    // 1-based byte offset into the path data, 0 when not applicable
	Reason string
}

func (e *PathGrammarError) Error() string {
	prefix := "mandala: bad path"
	if e.Source != "" {
		prefix += " (" + e.Source + ")"
	}
	if e.Pos > 0 {
		return fmt.Sprintf("%s: %s at position %d", prefix, e.Reason, e.Pos)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Reason)
}

// Unwrap lets errors.Is(err, ErrPathGrammar) match.
func (e *PathGrammarError) Unwrap() error { return ErrPathGrammar }

// TessellationError reports an outline, or one ring of it, that could not be
// triangulated at the configured tolerance.
type TessellationError struct {
	Ring   int // index of the offending ring after flattening, -1 for the whole outline
	Reason string
}

func (e *TessellationError) Error() string {
	if e.Ring < 0 {
		return "mandala: tessellation failed: " + e.Reason
	}
	return fmt.Sprintf("mandala: tessellation failed on ring %d: %s", e.Ring, e.Reason)
}

// Unwrap lets errors.Is(err, ErrTessellation) match.
func (e *TessellationError) Unwrap() error { return ErrTessellation }

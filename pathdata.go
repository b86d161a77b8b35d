package mandala

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// pathArity is the number of numeric arguments each path command consumes.
var pathArity = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

func skipCommaWhitespace(d []byte) int {
	i := 0
	for i < len(d) && (d[i] == ' ' || d[i] == ',' || d[i] == '\n' || d[i] == '\r' || d[i] == '\t' || d[i] == '\f') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// ParsePathData parses an SVG path-data string (the value of a d attribute)
// into an Outline. Relative commands are resolved to absolute coordinates.
func ParsePathData(d string) (*Outline, error) {
	return parsePathData(d, "")
}

func parsePathData(s, source string) (*Outline, error) {
	fail := func(pos int, format string, args ...any) error {
		return &PathGrammarError{Source: source, Pos: pos, Reason: fmt.Sprintf(format, args...)}
	}

	d := []byte(s)
	i := skipCommaWhitespace(d)
	if i == len(d) {
		return nil, fail(0, "empty path data")
	}
	if d[i] == ',' || isNumberStart(d[i]) {
		return nil, fail(i+1, "path should start with a command")
	}

	o := NewOutline()
	var f [7]float64
	var p0, p1 Vec2 // pen before and after the command
	var q, c Vec2   // last quadratic and cubic control points
	prev := byte('z')
	for {
		i += skipCommaWhitespace(d[i:])
		if i >= len(d) {
			break
		}

		cmd := prev
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !isNumberStart(d[i]) {
			cmd = d[i]
			repeat = false
			i++
			i += skipCommaWhitespace(d[i:])
		}

		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, ok := pathArity[upper]
		if !ok {
			return nil, fail(i, "unknown command '%c'", cmd)
		}
		for j := 0; j < n; j++ {
			if upper == 'A' && (j == 3 || j == 4) {
				if i < len(d) && (d[i] == '0' || d[i] == '1') {
					f[j] = float64(d[i] - '0')
					i++
				} else {
					return nil, fail(i+1, "arc flags should be 0 or 1 in command '%c'", cmd)
				}
			} else {
				num, k := strconv.ParseFloat(d[i:])
				if k == 0 {
					if repeat && j == 0 && i < len(d) {
						return nil, fail(i+1, "unknown command '%c'", d[i])
					}
					if n > 1 {
						return nil, fail(i+1, "sets of %d numbers should follow command '%c'", n, cmd)
					}
					return nil, fail(i+1, "number should follow command '%c'", cmd)
				}
				f[j] = num
				i += k
			}
			i += skipCommaWhitespace(d[i:])
		}

		rel := cmd != upper
		abs := func(x, y float64) Vec2 {
			if rel {
				return Vec2{x + p0.X, y + p0.Y}
			}
			return Vec2{x, y}
		}
		switch upper {
		case 'M':
			p1 = abs(f[0], f[1])
			o.MoveTo(p1.X, p1.Y)
			// Coordinate pairs after a MoveTo are implicit LineTos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			o.Close()
			p1 = o.Pos()
		case 'L':
			p1 = abs(f[0], f[1])
			o.LineTo(p1.X, p1.Y)
		case 'H':
			p1.X = f[0]
			if rel {
				p1.X += p0.X
			}
			o.LineTo(p1.X, p1.Y)
		case 'V':
			p1.Y = f[0]
			if rel {
				p1.Y += p0.Y
			}
			o.LineTo(p1.X, p1.Y)
		case 'C':
			cp1 := abs(f[0], f[1])
			cp2 := abs(f[2], f[3])
			p1 = abs(f[4], f[5])
			o.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y)
			c = cp2
		case 'S':
			cp1 := p0
			if prev == 'C' || prev == 'c' || prev == 'S' || prev == 's' {
				cp1 = p0.Mul(2).Sub(c)
			}
			cp2 := abs(f[0], f[1])
			p1 = abs(f[2], f[3])
			o.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y)
			c = cp2
		case 'Q':
			cp := abs(f[0], f[1])
			p1 = abs(f[2], f[3])
			o.QuadTo(cp.X, cp.Y, p1.X, p1.Y)
			q = cp
		case 'T':
			cp := p0
			if prev == 'Q' || prev == 'q' || prev == 'T' || prev == 't' {
				cp = p0.Mul(2).Sub(q)
			}
			p1 = abs(f[0], f[1])
			o.QuadTo(cp.X, cp.Y, p1.X, p1.Y)
			q = cp
		case 'A':
			p1 = abs(f[5], f[6])
			o.ArcTo(f[0], f[1], f[2], f[3] == 1, f[4] == 1, p1.X, p1.Y)
		}
		prev = cmd
		p0 = p1
	}
	return o, nil
}

package mandala

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

// ParseSVG reads an SVG document and parses the path data of the first
// element, in document order, that carries a d attribute. Other elements and
// their styling are ignored.
func ParseSVG(r io.Reader) (*Outline, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, &PathGrammarError{Source: "svg", Reason: "no path data"}
			}
			return nil, fmt.Errorf("%w: decode svg: %w", ErrPathSource, err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		for _, a := range start.Attr {
			if a.Name.Local == "d" {
				return parsePathData(a.Value, "svg <"+start.Name.Local+">")
			}
		}
	}
}

// LoadSVGFile opens path and parses it with ParseSVG.
func LoadSVGFile(path string) (*Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPathSource, err)
	}
	defer f.Close()

	o, err := ParseSVG(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

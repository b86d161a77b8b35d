package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tdewolff/parse/v2/strconv"

	"github.com/phanxgames/mandala"
)

// Lines reads one openness value per line from Reader, for example piped
// from an external sensor decoder. Blank lines and lines starting with '#'
// are ignored; lines that are not a single decimal number are logged and
// skipped. Sample times are
// seconds since Run started.
//
// A read blocked on Reader is not interrupted by cancellation; the producer
// notices ctx at the next line.
type Lines struct {
	Reader io.Reader
	Logger *zerolog.Logger
}

// Run reads samples until the reader is exhausted or ctx is done.
func (l Lines) Run(ctx context.Context, out chan<- mandala.Sample) error {
	log := zerolog.Nop()
	if l.Logger != nil {
		log = *l.Logger
	}
	start := time.Now()
	sc := bufio.NewScanner(l.Reader)
	for line := 1; sc.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, n := strconv.ParseFloat([]byte(text))
		if n == 0 || n != len(text) {
			log.Warn().Int("line", line).Str("text", text).Msg("bad sample line")
			continue
		}
		s := mandala.Sample{Time: time.Since(start).Seconds(), Value: v}
		if err := send(ctx, out, s); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("feed: read samples: %w", err)
	}
	return nil
}

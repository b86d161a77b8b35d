package mandala

// Sample is one openness reading from an external source.
type Sample struct {
	Time  float64 // seconds on the producer's clock
	Value float64 // nominally in [0, 1], not enforced
}

// Drain consumes every sample already buffered in ch without blocking and
// re-targets the mandala once per sample, each over smoothing seconds, all
// at time now. The last sample wins. It returns the number of samples
// received and stops early if ch is closed.
//
// Samples the mandala rejects (a non-finite value) are counted but leave the
// transition untouched.
func (m *Mandala) Drain(ch <-chan Sample, now, smoothing float64) int {
	n := 0
	for {
		select {
		case s, ok := <-ch:
			if !ok {
				return n
			}
			n++
			if err := m.StartTransition(now, smoothing, s.Value); err != nil {
				m.log.Warn().Err(err).Float64("value", s.Value).Msg("sample rejected")
			}
		default:
			return n
		}
	}
}

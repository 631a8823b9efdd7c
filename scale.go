package radar

// scaleHeadroom keeps the outermost data point off the plot boundary.
const scaleHeadroom = 1.1

// RadialScale maps values onto the visible radius range [0, Max].
type RadialScale struct {
	Max float64
}

func scaleMax(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m * scaleHeadroom
}

// Degenerate reports whether the scale has no positive extent.
func (s RadialScale) Degenerate() bool {
	return !(s.Max > 0)
}

// Fraction returns v's distance from the centre as a fraction of Max, clamped
// to [0, 1]. A degenerate scale maps everything to the centre.
func (s RadialScale) Fraction(v float64) float64 {
	if s.Degenerate() || v <= 0 {
		return 0
	}
	f := v / s.Max
	if f > 1 {
		return 1
	}
	return f
}

// Ticks returns n evenly spaced tick values in (0, Max]. It returns nil for a
// degenerate scale or n < 1.
func (s RadialScale) Ticks(n int) []float64 {
	if s.Degenerate() || n < 1 {
		return nil
	}
	ticks := make([]float64, n)
	for k := 1; k <= n; k++ {
		ticks[k-1] = s.Max * float64(k) / float64(n)
	}
	return ticks
}

// Package seq holds the append-only numeric sequence helpers used by lines.
package seq

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Append returns s with vs appended. The result never aliases s, so a
// caller holding the old slice keeps seeing the old data.
func Append(s []float64, vs ...float64) []float64 {
	out := make([]float64, 0, len(s)+len(vs))
	out = append(out, s...)
	return append(out, vs...)
}

// Arange returns the dense index sequence 0, 1, ..., n-1.
func Arange(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Finite returns the finite values of s, dropping NaN and ±Inf.
func Finite(s []float64) []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}

// Limits returns the minimum and maximum finite values of s.
// ok is false when s has no finite value.
func Limits(s []float64) (lo, hi float64, ok bool) {
	f := Finite(s)
	if len(f) == 0 {
		return 0, 0, false
	}
	return floats.Min(f), floats.Max(f), true
}

// Pairs returns the (x, y) pairs where both coordinates are finite,
// truncated to the shorter of the two sequences.
func Pairs(xs, ys []float64) (px, py []float64) {
	n := min(len(xs), len(ys))
	px = make([]float64, 0, n)
	py = make([]float64, 0, n)
	for i := range n {
		x, y := xs[i], ys[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		px = append(px, x)
		py = append(py, y)
	}
	return px, py
}

// Package ticks places axis tick marks on 1, 2, 5 x 10^k steps.
package ticks

import (
	"math"
	"strconv"
)

// Step returns a nice step size close to span/target.
func Step(span float64, target int) float64 {
	if target < 1 {
		target = 1
	}
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}
	raw := span / float64(target)
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)

	const tol = 1e-9
	var nice float64
	switch f := raw / base; {
	case f <= 1+tol:
		nice = 1
	case f <= 2+tol:
		nice = 2
	case f <= 5+tol:
		nice = 5
	default:
		nice = 10
	}
	return nice * base
}

// MaxTicks bounds the number of positions Positions returns.
const MaxTicks = 1000

// Positions returns the tick positions inside [lo, hi] for about target
// intervals, and the step used. A range whose ends or span are not finite
// gets no ticks.
func Positions(lo, hi float64, target int) ([]float64, float64) {
	if hi < lo {
		lo, hi = hi, lo
	}
	if !finite(lo) || !finite(hi) || !finite(hi-lo) {
		return nil, 1
	}
	step := Step(hi-lo, target)
	if hi == lo {
		return []float64{lo}, step
	}

	eps := step * 1e-9
	first := math.Ceil((lo-eps)/step) * step

	var out []float64
	for i := 0; i < MaxTicks; i++ {
		v := first + float64(i)*step
		if v > hi+eps {
			break
		}
		if math.Abs(v) < eps {
			v = 0
		}
		out = append(out, v)
	}
	return out, step
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Label formats a tick value with just enough decimals for step.
func Label(v, step float64) string {
	if v == 0 {
		return "0"
	}
	if a := math.Abs(v); a >= 1e6 || a < 1e-4 {
		return strconv.FormatFloat(v, 'g', 4, 64)
	}
	decimals := 0
	if step > 0 && step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

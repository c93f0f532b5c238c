package series

import (
	"fmt"
	"math"
	"sort"
)

// ============================================================
// Element-wise arithmetic
// ============================================================
//
// All binary operations align the right operand onto the left operand's key
// order before combining. Additive operations treat missing values as zero;
// multiplicative operations propagate them, and division additionally masks
// out zero or missing divisors. The asymmetry is deliberate: a missing
// dividend payment is a zero payment, a missing share count is not.

// Add returns x + y aligned on x's keys, missing values counted as zero.
func Add(name string, x, y Series) Series {
	ys := y.alignTo(x.keys)
	out := make([]float64, len(x.vals))
	for i := range out {
		out[i] = fillZero(x.vals[i]) + fillZero(ys[i])
	}
	return New(name, x.keys, out)
}

// Sub returns x - y aligned on x's keys, missing values counted as zero.
func Sub(name string, x, y Series) Series {
	ys := y.alignTo(x.keys)
	out := make([]float64, len(x.vals))
	for i := range out {
		out[i] = fillZero(x.vals[i]) - fillZero(ys[i])
	}
	return New(name, x.keys, out)
}

// Mul returns x * y aligned on x's keys; a missing factor yields a missing
// product.
func Mul(name string, x, y Series) Series {
	ys := y.alignTo(x.keys)
	out := make([]float64, len(x.vals))
	for i := range out {
		out[i] = x.vals[i] * ys[i]
	}
	return New(name, x.keys, out)
}

// Div returns x / y aligned on x's keys. Positions where the divisor is zero
// or missing come back missing instead of Inf.
func Div(name string, x, y Series) Series {
	ys := y.alignTo(x.keys)
	out := make([]float64, len(x.vals))
	for i := range out {
		d := ys[i]
		if math.IsNaN(d) || d == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = x.vals[i] / d
		}
	}
	return New(name, x.keys, out)
}

func fillZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// ============================================================
// Positional transforms
// ============================================================

// Shift moves values along the latest-first axis, keys unchanged.
// n = -1 pulls each older value one slot toward the front (so position i holds
// the prior-period value); n = 1 pushes values back. Vacated slots are NaN,
// and |n| >= len clears the whole series.
func Shift(s Series, n int) Series {
	m := len(s.vals)
	if m == 0 || n == 0 {
		return New(s.name, s.keys, s.vals)
	}
	out := make([]float64, m)
	for i := range out {
		out[i] = math.NaN()
	}
	if abs(n) < m {
		if n < 0 {
			copy(out[:m+n], s.vals[-n:])
		} else {
			copy(out[n:], s.vals[:m-n])
		}
	}
	return New(s.name, s.keys, out)
}

// YoYGrowth returns value[i]/value[i+1] - 1 for each position. The oldest
// position has no prior period and is always missing, as is any position
// whose prior value is zero or missing.
func YoYGrowth(name string, s Series) Series {
	out := make([]float64, len(s.vals))
	for i := range out {
		out[i] = math.NaN()
	}
	for i := 0; i < len(s.vals)-1; i++ {
		cur, prior := s.vals[i], s.vals[i+1]
		if math.IsNaN(cur) || math.IsNaN(prior) || prior == 0 {
			continue
		}
		out[i] = cur/prior - 1
	}
	return New(name, s.keys, out)
}

// SignMode selects how SignAdjust rewrites values.
type SignMode int

const (
	// NegToPos flips negative values positive, leaving the rest untouched.
	NegToPos SignMode = iota
	// PosToNeg flips positive values negative.
	PosToNeg
	// FlipAll negates every value.
	FlipAll
	// AbsAll takes the absolute value of every value.
	AbsAll
)

// SignAdjust rewrites the sign of each value per the given mode. Missing
// values pass through unchanged.
func SignAdjust(s Series, mode SignMode) Series {
	out := make([]float64, len(s.vals))
	for i, v := range s.vals {
		if math.IsNaN(v) {
			out[i] = v
			continue
		}
		switch mode {
		case NegToPos:
			if v < 0 {
				v = -v
			}
		case PosToNeg:
			if v > 0 {
				v = -v
			}
		case FlipAll:
			v = -v
		case AbsAll:
			v = math.Abs(v)
		default:
			panic(fmt.Sprintf("series: unknown sign mode %d", mode))
		}
		out[i] = v
	}
	return New(s.name, s.keys, out)
}

// ============================================================
// Window reductions (latest-first windows)
// ============================================================

// MeanN is the mean of the n most recent values, missing ones skipped.
// NaN when the window holds no valid value.
func MeanN(s Series, n int) float64 {
	return reduceWindow(s, n, mean)
}

// MedianN is the median of the n most recent values, missing ones skipped.
func MedianN(s Series, n int) float64 {
	return reduceWindow(s, n, median)
}

// Mean is the mean over the whole series, missing values skipped.
func Mean(s Series) float64 { return MeanN(s, s.Len()) }

// Median is the median over the whole series, missing values skipped.
func Median(s Series) float64 { return MedianN(s, s.Len()) }

// StdN is the sample standard deviation (n-1 denominator) of the n most
// recent values, missing ones skipped. NaN with fewer than two valid values.
func StdN(s Series, n int) float64 {
	vals := validWindow(s, n)
	if len(vals) < 2 {
		return math.NaN()
	}
	m := mean(vals)
	var acc float64
	for _, v := range vals {
		d := v - m
		acc += d * d
	}
	return math.Sqrt(acc / float64(len(vals)-1))
}

func reduceWindow(s Series, n int, f func([]float64) float64) float64 {
	vals := validWindow(s, n)
	if len(vals) == 0 {
		return math.NaN()
	}
	return f(vals)
}

func validWindow(s Series, n int) []float64 {
	if n < 0 {
		n = 0
	}
	if n > len(s.vals) {
		n = len(s.vals)
	}
	out := make([]float64, 0, n)
	for _, v := range s.vals[:n] {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	m := len(sorted)
	if m%2 == 1 {
		return sorted[m/2]
	}
	return (sorted[m/2-1] + sorted[m/2]) / 2
}

// ============================================================
// CAGR
// ============================================================

// CAGR computes the compound annual growth rate over roughly nYears.
//
// The endpoint search works on positions: the latest valid value anchors one
// end, then the first key at least nYears older anchors the other (falling
// back to a plain n-step offset when the keys carry no usable span). The
// elapsed span between the two keys, in 365.25-day years, is the exponent
// base, so off-cycle fiscal calendars still annualize correctly.
//
// NaN when either endpoint is missing or non-positive, or the span is zero.
func CAGR(s Series, nYears int) float64 {
	if nYears <= 0 {
		return math.NaN()
	}

	latestPos := -1
	for i, v := range s.vals {
		if !math.IsNaN(v) {
			latestPos = i
			break
		}
	}
	if latestPos < 0 {
		return math.NaN()
	}
	latestValue := s.vals[latestPos]
	latestKey := s.keys[latestPos]

	startPos := -1
	yearsDiff := float64(nYears)
	if !latestKey.IsZero() {
		for j := latestPos + 1; j < len(s.vals); j++ {
			if s.keys[j].IsZero() {
				continue
			}
			if latestKey.Year()-s.keys[j].Year() >= nYears {
				startPos = j
				yearsDiff = spanYears(latestKey, s.keys[j])
				break
			}
		}
		if startPos < 0 {
			if candidate := latestPos + nYears; candidate < len(s.vals) {
				startPos = candidate
				if !s.keys[candidate].IsZero() {
					yearsDiff = spanYears(latestKey, s.keys[candidate])
				}
			}
		}
	} else if candidate := latestPos + nYears; candidate < len(s.vals) {
		startPos = candidate
	}
	if startPos < 0 {
		return math.NaN()
	}

	startValue := math.NaN()
	for k := startPos; k < len(s.vals); k++ {
		if !math.IsNaN(s.vals[k]) {
			startValue = s.vals[k]
			if !latestKey.IsZero() && !s.keys[k].IsZero() {
				yearsDiff = spanYears(latestKey, s.keys[k])
			}
			break
		}
	}
	if math.IsNaN(startValue) || yearsDiff <= 0 {
		return math.NaN()
	}
	if latestValue <= 0 || startValue <= 0 {
		return math.NaN()
	}
	return math.Pow(latestValue/startValue, 1/yearsDiff) - 1
}

func spanYears(later, earlier Key) float64 {
	days := later.Date().Sub(earlier.Date()).Hours() / 24
	years := days / 365.25
	if years < 0 {
		return 0
	}
	return years
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

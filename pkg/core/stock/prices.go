package stock

import (
	"math"
	"sort"

	"equity_insight/pkg/core/series"
)

func isNaN(v float64) bool { return math.IsNaN(v) }

// priceAt maps each key of the template series to the nearest daily close,
// preserving the template's keys. Missing closes stay missing.
func priceAt(name string, template series.Series, prices PriceHistory) series.Series {
	sorted := append(PriceHistory{}, prices...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	keys := template.Keys()
	vals := make([]float64, len(keys))
	for i, k := range keys {
		if k.IsZero() || len(sorted) == 0 {
			vals[i] = math.NaN()
			continue
		}
		vals[i] = nearestClose(sorted, k.Date())
	}
	return series.New(name, keys, vals)
}

func nearestClose(sorted PriceHistory, target interface{ Unix() int64 }) float64 {
	ts := target.Unix()
	lo, hi := 0, len(sorted)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if sorted[mid].Date.Unix() < ts {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	best := lo
	if lo > 0 {
		prev := lo - 1
		if abs64(sorted[prev].Date.Unix()-ts) <= abs64(sorted[lo].Date.Unix()-ts) {
			best = prev
		}
	}
	return sorted[best].Close
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// pctReturns computes simple period returns from a close history ordered
// oldest -> newest. Non-finite or non-positive closes are excluded before
// differencing, so the first usable observation has no return.
func pctReturns(prices PriceHistory) map[int64]float64 {
	out := make(map[int64]float64, len(prices))
	prev := math.NaN()
	for _, p := range prices {
		c := p.Close
		if !isFinite(c) || c <= 0 {
			c = math.NaN()
		}
		if !math.IsNaN(c) && !math.IsNaN(prev) {
			out[midnight(p.Date).Unix()] = c/prev - 1
		}
		if !math.IsNaN(c) {
			prev = c
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// winsorize clips a sample at its 1st and 99th percentile.
func winsorize(vals []float64) []float64 {
	lo := quantile(vals, 0.01)
	hi := quantile(vals, 0.99)
	out := make([]float64, len(vals))
	for i, v := range vals {
		switch {
		case v < lo:
			out[i] = lo
		case v > hi:
			out[i] = hi
		default:
			out[i] = v
		}
	}
	return out
}

// quantile computes the q-th quantile with linear interpolation between
// order statistics.
func quantile(vals []float64, q float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	sorted := append([]float64{}, vals...)
	sort.Float64s(sorted)
	h := q * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

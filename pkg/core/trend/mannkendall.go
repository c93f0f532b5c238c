// Package trend implements the non-parametric Mann-Kendall trend test used
// by the rule-based checks on statement and dividend histories.
package trend

import (
	"math"

	"equity_insight/pkg/core/series"
)

// MannKendall runs the Mann-Kendall test on a latest-first series.
//
// Observations are reversed into chronological order and missing values are
// dropped before testing. Fewer than three valid observations is treated as
// "no trend": tau 0, p-value 1. The variance of the S statistic is corrected
// for ties and the Z statistic carries the usual continuity correction; the
// two-sided p-value comes from the normal CDF.
func MannKendall(s series.Series) (tau, pValue float64) {
	vals := s.Values()

	// Chronological order, nulls dropped.
	x := make([]float64, 0, len(vals))
	for i := len(vals) - 1; i >= 0; i-- {
		if !math.IsNaN(vals[i]) {
			x = append(x, vals[i])
		}
	}
	n := len(x)
	if n < 3 {
		return 0.0, 1.0
	}

	var sStat float64
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case x[j] > x[i]:
				sStat++
			case x[j] < x[i]:
				sStat--
			}
		}
	}

	// Tie correction: sum t*(t-1)*(2t+5) over each group of tied values.
	counts := make(map[float64]int, n)
	for _, v := range x {
		counts[v]++
	}
	var tieTerm float64
	for _, t := range counts {
		if t > 1 {
			tf := float64(t)
			tieTerm += tf * (tf - 1) * (2*tf + 5)
		}
	}
	nf := float64(n)
	varS := (nf*(nf-1)*(2*nf+5) - tieTerm) / 18

	var z float64
	switch {
	case varS <= 0:
		z = 0
	case sStat > 0:
		z = (sStat - 1) / math.Sqrt(varS)
	case sStat < 0:
		z = (sStat + 1) / math.Sqrt(varS)
	}

	pValue = 2 * (1 - normalCDF(math.Abs(z)))
	tau = sStat / (nf * (nf - 1) / 2)
	return tau, pValue
}

func normalCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

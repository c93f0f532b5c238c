package stock

import "sort"

// minBetaObservations is the minimum number of aligned monthly return pairs
// required before a beta is reported.
const minBetaObservations = 12

// computeBeta estimates beta from five years of monthly closes against the
// benchmark index. Returns are aligned by date, winsorized at the 1%/99%
// quantiles, and beta is cov(stock, index)/var(index) with sample (n-1)
// normalization. Returns nil when fewer than 12 aligned observations exist.
func computeBeta(stockMonthly, indexMonthly PriceHistory) *float64 {
	stockRet := pctReturns(stockMonthly)
	indexRet := pctReturns(indexMonthly)

	dates := make([]int64, 0, len(stockRet))
	for d := range stockRet {
		if _, ok := indexRet[d]; ok {
			dates = append(dates, d)
		}
	}
	if len(dates) < minBetaObservations {
		return nil
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	s := make([]float64, len(dates))
	e := make([]float64, len(dates))
	for i, d := range dates {
		s[i] = stockRet[d]
		e[i] = indexRet[d]
	}
	s = winsorize(s)
	e = winsorize(e)

	n := float64(len(dates))
	meanS, meanE := meanOf(s), meanOf(e)
	var cov, varE float64
	for i := range s {
		cov += (s[i] - meanS) * (e[i] - meanE)
		varE += (e[i] - meanE) * (e[i] - meanE)
	}
	cov /= n - 1
	varE /= n - 1
	if varE == 0 {
		return nil
	}
	beta := cov / varE
	return &beta
}

func meanOf(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

package stock

import (
	"sort"
	"time"

	"equity_insight/pkg/core/series"
)

// inferFYEMonth infers the fiscal-year-end month from the annual statement
// column dates (quarterly as fallback), taking the most frequent month.
// Defaults to December when no dated columns exist.
func inferFYEMonth(annualBalance, quarterlyBalance StatementTable) time.Month {
	months := columnMonths(annualBalance)
	if len(months) == 0 {
		months = columnMonths(quarterlyBalance)
	}
	if len(months) == 0 {
		return time.December
	}

	counts := make(map[time.Month]int)
	best := months[0]
	for _, m := range months {
		counts[m]++
		if counts[m] > counts[best] {
			best = m
		}
	}
	return best
}

func columnMonths(t StatementTable) []time.Month {
	seen := make(map[string]bool)
	dates := make([]time.Time, 0, len(t.Columns))
	for _, d := range t.Columns {
		if d.IsZero() {
			continue
		}
		key := d.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	months := make([]time.Month, len(dates))
	for i, d := range dates {
		months[i] = d.Month()
	}
	return months
}

// fiscalYearEndFor returns the fiscal-year-end date covering dt: the last
// day of the FYE month, this year if dt falls on or before it, else next.
func fiscalYearEndFor(dt time.Time, fyeMonth time.Month) time.Time {
	endYear := dt.Year()
	if dt.Month() > fyeMonth {
		endYear++
	}
	return endOfMonth(endYear, fyeMonth)
}

func endOfMonth(year int, month time.Month) time.Time {
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1)
}

// annualDPSCompleteYears sums dividend payments into fiscal years, keyed by
// fiscal-year-end date latest -> older. The current fiscal year is dropped
// while still incomplete (asOf before its end date).
func annualDPSCompleteYears(dividends []DividendEvent, fyeMonth time.Month, asOf time.Time) series.Series {
	const name = "dividend_per_share"
	if len(dividends) == 0 {
		return series.Empty(name)
	}

	totalsByFY := make(map[int]float64)
	for _, ev := range dividends {
		if ev.Date.IsZero() || isNaN(ev.Amount) {
			continue
		}
		label := fiscalYearEndFor(ev.Date, fyeMonth).Year()
		totalsByFY[label] += ev.Amount
	}
	if len(totalsByFY) == 0 {
		return series.Empty(name)
	}

	currentFYE := fiscalYearEndFor(asOf, fyeMonth)
	if midnight(asOf).Before(currentFYE) {
		delete(totalsByFY, currentFYE.Year())
	}
	if len(totalsByFY) == 0 {
		return series.Empty(name)
	}

	years := make([]int, 0, len(totalsByFY))
	for y := range totalsByFY {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	keys := make([]series.Key, len(years))
	vals := make([]float64, len(years))
	for i, y := range years {
		keys[i] = series.DateKey(endOfMonth(y, fyeMonth))
		vals[i] = totalsByFY[y]
	}
	return series.New(name, keys, vals)
}

// buildZeroDividends synthesizes an all-zero quarterly payment history for
// non-payers, so the dividend checks operate on real zeros instead of an
// absent series.
func buildZeroDividends(asOf time.Time, calendarYears int) []DividendEvent {
	paymentMonths := []time.Month{time.February, time.May, time.August, time.November}
	const dayOfMonth = 15

	latestYear := asOf.Year()
	earliestYear := latestYear - (calendarYears - 1)

	var out []DividendEvent
	for year := earliestYear; year <= latestYear; year++ {
		for _, m := range paymentMonths {
			out = append(out, DividendEvent{
				Date:   time.Date(year, m, dayOfMonth, 0, 0, 0, 0, time.UTC),
				Amount: 0,
			})
		}
	}
	return out
}

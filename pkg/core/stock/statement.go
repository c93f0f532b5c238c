package stock

import (
	"math"
	"sort"
	"time"

	"equity_insight/pkg/core/series"
)

// reportingSemiannualCutoffDays splits quarterly from semiannual reporters
// when inferring the balance-sheet averaging window.
const reportingSemiannualCutoffDays = 135

// NormalizeStatement prepares a raw statement table for analysis:
//   - drop columns without a valid date, sort the rest latest -> older
//   - drop the oldest column when more than half of it is missing (vendors
//     pad the history edge with near-empty columns)
//   - fill remaining gaps with zero
func NormalizeStatement(raw StatementTable) StatementTable {
	t := sortColumnsDesc(raw)
	if t.Empty() {
		return StatementTable{Rows: map[string][]float64{}}
	}

	if len(t.Columns) >= 2 {
		last := len(t.Columns) - 1
		var missing, total int
		for _, vals := range t.Rows {
			total++
			if math.IsNaN(vals[last]) {
				missing++
			}
		}
		if total > 0 && float64(missing)/float64(total) > 0.5 {
			t = dropColumn(t, last)
		}
	}

	for _, vals := range t.Rows {
		for i, v := range vals {
			if math.IsNaN(v) {
				vals[i] = 0
			}
		}
	}
	return t
}

func sortColumnsDesc(raw StatementTable) StatementTable {
	type col struct {
		date time.Time
		pos  int
	}
	cols := make([]col, 0, len(raw.Columns))
	for i, d := range raw.Columns {
		if d.IsZero() {
			continue
		}
		cols = append(cols, col{date: d, pos: i})
	}
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].date.After(cols[j].date) })

	out := StatementTable{
		Columns: make([]time.Time, len(cols)),
		Rows:    make(map[string][]float64, len(raw.Rows)),
	}
	for i, c := range cols {
		out.Columns[i] = c.date
	}
	for label, vals := range raw.Rows {
		row := make([]float64, len(cols))
		for i, c := range cols {
			if c.pos < len(vals) {
				row[i] = vals[c.pos]
			} else {
				row[i] = math.NaN()
			}
		}
		out.Rows[label] = row
	}
	return out
}

func dropColumn(t StatementTable, idx int) StatementTable {
	out := StatementTable{
		Columns: append(append([]time.Time{}, t.Columns[:idx]...), t.Columns[idx+1:]...),
		Rows:    make(map[string][]float64, len(t.Rows)),
	}
	for label, vals := range t.Rows {
		out.Rows[label] = append(append([]float64{}, vals[:idx]...), vals[idx+1:]...)
	}
	return out
}

// rowSeries lifts one table row into a latest-first series. A missing label
// yields an all-zero row over the table's columns, matching how normalized
// tables treat absent data.
func rowSeries(t StatementTable, label string) series.Series {
	keys := make([]series.Key, len(t.Columns))
	for i, d := range t.Columns {
		keys[i] = series.DateKey(d)
	}
	vals, ok := t.Row(label)
	if !ok {
		vals = make([]float64, len(t.Columns))
	}
	return series.New(label, keys, vals)
}

// latestColumn returns the most recent column date, or zero when empty.
func latestColumn(t StatementTable) time.Time {
	if t.Empty() {
		return time.Time{}
	}
	return t.Columns[0]
}

// inferReportingIntervalDays estimates the median spacing between quarterly
// balance-sheet columns. Defaults to 90 when fewer than two columns exist.
func inferReportingIntervalDays(quarterlyBalance StatementTable) int {
	if len(quarterlyBalance.Columns) < 2 {
		return 90
	}
	cols := append([]time.Time{}, quarterlyBalance.Columns...)
	sort.Slice(cols, func(i, j int) bool { return cols[i].After(cols[j]) })
	diffs := make([]float64, 0, len(cols)-1)
	for i := 0; i < len(cols)-1; i++ {
		d := cols[i].Sub(cols[i+1]).Hours() / 24
		diffs = append(diffs, math.Abs(d))
	}
	sort.Float64s(diffs)
	var med float64
	m := len(diffs)
	if m%2 == 1 {
		med = diffs[m/2]
	} else {
		med = (diffs[m/2-1] + diffs[m/2]) / 2
	}
	if med < 1 {
		return 1
	}
	return int(med)
}

// averagingWindow returns 4 for quarterly reporters and 2 for semiannual
// ones, judged by the inferred reporting interval.
func averagingWindow(quarterlyBalance StatementTable) int {
	if inferReportingIntervalDays(quarterlyBalance) < reportingSemiannualCutoffDays {
		return 4
	}
	return 2
}

// isBalanceSheetStale reports whether the latest quarterly balance-sheet
// column trails the as-of date by at least one reporting interval (minus a
// tolerance).
func isBalanceSheetStale(quarterlyBalance StatementTable, asOf time.Time, toleranceDays int) bool {
	latest := latestColumn(quarterlyBalance)
	if latest.IsZero() {
		return false
	}
	gap := int(midnight(asOf).Sub(midnight(latest)).Hours() / 24)
	interval := inferReportingIntervalDays(quarterlyBalance)
	threshold := interval - toleranceDays
	if threshold < 1 {
		threshold = 1
	}
	return gap >= threshold
}

func datesWithin(d1, d2 time.Time, tolDays int) bool {
	if d1.IsZero() || d2.IsZero() {
		return false
	}
	if tolDays < 0 {
		tolDays = 0
	}
	diff := midnight(d1).Sub(midnight(d2)).Hours() / 24
	return math.Abs(diff) <= float64(tolDays)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

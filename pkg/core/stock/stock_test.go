package stock

import (
	"math"
	"testing"
	"time"

	"equity_insight/pkg/core/series"
)

var nan = math.NaN()

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) < 1e-9
}

func checkValues(t *testing.T, got series.Series, want []float64) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("%s: expected %d values, got %d", got.Name(), len(want), got.Len())
	}
	for i, w := range want {
		if !almostEqual(got.Value(i), w) {
			t.Errorf("%s position %d: expected %v, got %v", got.Name(), i, w, got.Value(i))
		}
	}
}

func annualSeries(name string, vals ...float64) series.Series {
	keys := make([]series.Key, len(vals))
	for i := range vals {
		keys[i] = series.DateKey(day(2024-i, time.December, 31))
	}
	return series.New(name, keys, vals)
}

func TestNormalizeStatementSortsAndFills(t *testing.T) {
	raw := StatementTable{
		Columns: []time.Time{
			day(2022, time.December, 31),
			{}, // undated column, dropped
			day(2024, time.December, 31),
			day(2023, time.December, 31),
		},
		Rows: map[string][]float64{
			"Total Assets": {800, 1, 1000, nan},
		},
	}

	got := NormalizeStatement(raw)
	if len(got.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(got.Columns))
	}
	if !got.Columns[0].Equal(day(2024, time.December, 31)) {
		t.Errorf("expected latest column first, got %v", got.Columns[0])
	}
	// latest-first with the gap zero-filled: 1000, 0, 800
	vals := got.Rows["Total Assets"]
	want := []float64{1000, 0, 800}
	for i, w := range want {
		if vals[i] != w {
			t.Errorf("position %d: expected %v, got %v", i, w, vals[i])
		}
	}
}

func TestNormalizeStatementDropsSparseOldestColumn(t *testing.T) {
	raw := StatementTable{
		Columns: []time.Time{
			day(2024, time.December, 31),
			day(2023, time.December, 31),
			day(2022, time.December, 31),
		},
		Rows: map[string][]float64{
			"Total Assets":  {1000, 900, nan},
			"Total Revenue": {500, 450, nan},
			"Net Income":    {100, 90, 80},
		},
	}

	// 2 of 3 rows are missing in the 2022 column, so it goes.
	got := NormalizeStatement(raw)
	if len(got.Columns) != 2 {
		t.Fatalf("expected sparse oldest column dropped, got %d columns", len(got.Columns))
	}
	if len(got.Rows["Net Income"]) != 2 {
		t.Errorf("rows must track dropped columns")
	}
}

func fixtureRawData() RawData {
	annualCols := []time.Time{
		day(2024, time.December, 31),
		day(2023, time.December, 31),
		day(2022, time.December, 31),
	}
	quarterlyCols := []time.Time{
		day(2025, time.March, 31),
		day(2024, time.December, 31),
		day(2024, time.September, 30),
		day(2024, time.June, 30),
	}

	return RawData{
		Info: Info{
			Ticker:        "ACME",
			Name:          "Acme Corp",
			Country:       "United States",
			Currency:      "USD",
			Sector:        "Technology",
			Industry:      "Semiconductors",
			PreviousClose: 12.0,
			VendorBeta:    1.5,
		},
		NextYearGrowthEstimate: 0.08,
		NetInsiderPurchases:    0.001,

		AnnualBalance: StatementTable{
			Columns: annualCols,
			Rows: map[string][]float64{
				"Common Stock Equity":                     {1000, 900, 800},
				"Total Liabilities Net Minority Interest": {500, 450, 400},
				"Current Liabilities":                     {200, 180, 160},
				"Current Assets":                          {400, 360, 320},
				"Ordinary Shares Number":                  {100, 100, 100},
				"Total Assets":                            {1500, 1350, 1200},
				"Working Capital":                         {200, 180, 160},
				"Retained Earnings":                       {300, 280, 260},
			},
		},
		AnnualIncome: StatementTable{
			Columns: annualCols,
			Rows: map[string][]float64{
				"Total Revenue":                  {1000, 900, 800},
				"Net Income Common Stockholders": {100, 90, 80},
				"EBIT":                           {150, 135, 120},
				"Pretax Income":                  {130, 117, 104},
				"Tax Provision":                  {30, 27, 24},
			},
		},
		AnnualCashFlow: StatementTable{
			Columns: annualCols,
			Rows: map[string][]float64{
				"Free Cash Flow":      {120, 110, 100},
				"Operating Cash Flow": {130, 120, 110},
				"Cash Dividends Paid": {-40, -36, -32},
			},
		},
		QuarterlyBalance: StatementTable{
			Columns: quarterlyCols,
			Rows: map[string][]float64{
				"Common Stock Equity": {1040, 1000, 980, 960},
				"Total Assets":        {1560, 1500, 1470, 1440},
			},
		},
		QuarterlyIncome: StatementTable{
			Columns: []time.Time{day(2025, time.March, 31)},
			Rows:    map[string][]float64{"Total Revenue": {270}},
		},
		QuarterlyCashFlow: StatementTable{
			Columns: []time.Time{day(2025, time.March, 31)},
			Rows:    map[string][]float64{"Operating Cash Flow": {35}},
		},
		TTMIncome: StatementTable{
			Columns: []time.Time{day(2025, time.March, 31)},
			Rows:    map[string][]float64{"Total Revenue": {1050}},
		},
		TTMCashFlow: StatementTable{
			Columns: []time.Time{day(2025, time.March, 31)},
			Rows:    map[string][]float64{"Free Cash Flow": {125}},
		},
		Dividends: []DividendEvent{
			{Date: day(2023, time.March, 15), Amount: 0.20},
			{Date: day(2023, time.September, 15), Amount: 0.20},
			{Date: day(2024, time.March, 15), Amount: 0.25},
			{Date: day(2024, time.September, 15), Amount: 0.25},
			{Date: day(2025, time.March, 15), Amount: 0.30},
		},
	}
}

func fixturePrices() PriceHistory {
	return PriceHistory{
		{Date: day(2022, time.December, 30), Close: 8, Volume: 1000},
		{Date: day(2023, time.December, 29), Close: 9, Volume: 1000},
		{Date: day(2024, time.December, 31), Close: 10, Volume: 1000},
		{Date: day(2025, time.July, 31), Close: 12, Volume: 1000},
	}
}

func TestNewResolvesAliasesWithStalenessBackfill(t *testing.T) {
	asOf := day(2025, time.August, 1)
	s := New(fixtureRawData(), fixturePrices(), asOf)

	// The quarterly balance sheet trails the as-of date by ~123 days and
	// the latest quarterly statements post-date the annual ones, so an
	// averaged snapshot is prepended. Quarterly window is 4:
	// (1040+1000+980+960)/4 = 995.
	checkValues(t, s.TotalEquity, []float64{995, 1000, 900, 800})
	if !s.TotalEquity.Key(0).Date().Equal(asOf) {
		t.Errorf("expected backfill point at as-of date, got %v", s.TotalEquity.Key(0))
	}

	// Income rows get the trailing-twelve-month value instead.
	checkValues(t, s.TotalRevenue, []float64{1050, 1000, 900, 800})

	// An income row absent from the TTM table backfills with zero.
	checkValues(t, s.NetIncome, []float64{0, 100, 90, 80})

	// A balance row absent from the quarterly table reads as zeros there,
	// so the averaged snapshot is an explicit zero.
	checkValues(t, s.CurrentAssets, []float64{0, 400, 360, 320})

	// Aliases with no matching row resolve to empty series.
	if !s.LongDebt.IsEmpty() {
		t.Errorf("expected empty series for unmatched alias, got %d points", s.LongDebt.Len())
	}
}

func TestNewFreshFinancialsSkipBackfill(t *testing.T) {
	// As-of right on the latest quarterly column: no reporting gap.
	s := New(fixtureRawData(), fixturePrices(), day(2025, time.April, 2))
	checkValues(t, s.TotalEquity, []float64{1000, 900, 800})
	checkValues(t, s.TotalRevenue, []float64{1000, 900, 800})
}

func TestDerivedRatios(t *testing.T) {
	s := New(fixtureRawData(), fixturePrices(), day(2025, time.April, 2))

	// 500/1000, 450/900, 400/800
	checkValues(t, s.DebtToEquity, []float64{0.5, 0.5, 0.5})
	// 100/1000, 90/900, 80/800
	checkValues(t, s.NetProfitMargin, []float64{0.1, 0.1, 0.1})
	// revenue growth: 1000/900-1, 900/800-1, oldest missing
	checkValues(t, s.EarningYoYGrowth, []float64{1000.0/900 - 1, 900.0/800 - 1, nan})
	// nearest closes at the report dates: 10, 9, 8
	checkValues(t, s.PriceAtReport, []float64{10, 9, 8})
	// price * shares
	checkValues(t, s.MarketCap, []float64{1000, 900, 800})
	// tax provision / pretax income
	checkValues(t, s.TaxRate, []float64{30.0 / 130, 27.0 / 117, 24.0 / 104})

	if s.RiskFreeRate != 0.04187 {
		t.Errorf("expected US risk-free rate 0.04187, got %v", s.RiskFreeRate)
	}
}

func TestDividendHistoryDropsIncompleteFiscalYear(t *testing.T) {
	s := New(fixtureRawData(), fixturePrices(), day(2025, time.August, 1))

	// December FYE. FY2025 (the 0.30 payment) is still open on Aug 1 and
	// is dropped; FY2024 = 0.50, FY2023 = 0.40.
	dps := s.DividendPerShareHistory
	checkValues(t, dps, []float64{0.50, 0.40})
	if !dps.Key(0).Date().Equal(day(2024, time.December, 31)) {
		t.Errorf("expected FY-end key 2024-12-31, got %v", dps.Key(0))
	}
}

func TestDividendHistoryZeroPayer(t *testing.T) {
	data := fixtureRawData()
	data.Dividends = nil
	s := New(data, fixturePrices(), day(2025, time.August, 1))

	dps := s.DividendPerShareHistory
	// Synthetic quarterly zeros over 10 calendar years; the open FY2025
	// drops, leaving FY2016..FY2024.
	if dps.Len() != 9 {
		t.Fatalf("expected 9 complete zero years, got %d", dps.Len())
	}
	for i := 0; i < dps.Len(); i++ {
		if dps.Value(i) != 0 {
			t.Errorf("position %d: expected 0, got %v", i, dps.Value(i))
		}
	}
}

func TestInferFYEMonthMajority(t *testing.T) {
	annual := StatementTable{Columns: []time.Time{
		day(2024, time.June, 30),
		day(2023, time.June, 30),
		day(2022, time.July, 2),
	}}
	if m := inferFYEMonth(annual, StatementTable{}); m != time.June {
		t.Errorf("expected June, got %v", m)
	}
	if m := inferFYEMonth(StatementTable{}, StatementTable{}); m != time.December {
		t.Errorf("expected December default, got %v", m)
	}
}

func monthlyCloses(start time.Time, closes []float64) PriceHistory {
	out := make(PriceHistory, len(closes))
	for i, c := range closes {
		out[i] = PricePoint{Date: start.AddDate(0, i, 0), Close: c}
	}
	return out
}

func TestComputeBetaLinearRelation(t *testing.T) {
	// Index alternates +1% and +2% returns; the stock moves exactly twice
	// as much each month, so beta is exactly 2.
	start := day(2024, time.January, 1)
	idx := make([]float64, 13)
	stk := make([]float64, 13)
	idx[0], stk[0] = 100, 100
	for i := 1; i < 13; i++ {
		r := 0.01
		if i%2 == 0 {
			r = 0.02
		}
		idx[i] = idx[i-1] * (1 + r)
		stk[i] = stk[i-1] * (1 + 2*r)
	}

	beta := computeBeta(monthlyCloses(start, stk), monthlyCloses(start, idx))
	if beta == nil {
		t.Fatal("expected a beta, got nil")
	}
	if !almostEqual(*beta, 2.0) {
		t.Errorf("expected beta 2.0, got %v", *beta)
	}
}

func TestComputeBetaInsufficientObservations(t *testing.T) {
	start := day(2024, time.January, 1)
	closes := []float64{100, 101, 102, 103, 104, 105}
	if beta := computeBeta(monthlyCloses(start, closes), monthlyCloses(start, closes)); beta != nil {
		t.Errorf("expected nil beta below the observation floor, got %v", *beta)
	}
}

func TestBeneishMSteadyGrower(t *testing.T) {
	// Every line item grows exactly 10% per year, so all index factors are
	// 1 except SGI (1.1) and TATA ((100-130)/1500 = -0.02):
	//   M = -4.84 + 0.920 + 0.528 + 0.404 + 0.892*1.1 + 0.115
	//       - 0.172 + 4.679*(-0.02) - 0.327 = -2.48438
	grow := func(name string, base float64) series.Series {
		return annualSeries(name, base*1.21, base*1.1, base)
	}
	s := &Stock{
		AccountsReceivable: grow("accounts_receivable", 100),
		TotalRevenue:       grow("total_revenue", 1000),
		GrossProfit:        grow("gross_profit", 400),
		CurrentAssets:      grow("current_assets", 400),
		NetPPE:             grow("net_ppe", 600),
		OtherProperties:    annualSeries("other_properties", 0, 0, 0),
		TotalAssets:        grow("total_assets", 1500),
		Depreciation:       grow("depreciation", 60),
		SGA:                grow("sga", 120),
		CurrentLiabilities: grow("current_liabilities", 200),
		LongDebt:           grow("long_debt", 300),
		NetIncome:          grow("net_income", 100),
		OperatingCashflow:  grow("operating_cashflow", 130),
	}

	checkValues(t, s.computeBeneishM(), []float64{-2.48438, -2.48438, nan})
}

func TestBeneishMEmptyWithoutAssets(t *testing.T) {
	s := &Stock{TotalAssets: series.Empty("total_assets")}
	if got := s.computeBeneishM(); !got.IsEmpty() {
		t.Errorf("expected empty score, got %d points", got.Len())
	}
}

func TestAltmanZHandWorked(t *testing.T) {
	s := &Stock{
		WorkingCapital:   annualSeries("working_capital", 200),
		RetainedEarnings: annualSeries("retained_earnings", 300),
		EBIT:             annualSeries("ebit", 150),
		MarketCap:        annualSeries("market_cap", 1200),
		TotalLiabilities: annualSeries("total_liabilities", 500),
		TotalRevenue:     annualSeries("total_revenue", 1000),
		TotalAssets:      annualSeries("total_assets", 1500),
	}
	// 1.2*(200/1500) + 1.4*(300/1500) + 3.3*(150/1500)
	//   + 0.6*(1200/500) + 1.0*(1000/1500)
	// = 0.16 + 0.28 + 0.33 + 1.44 + 0.666667 = 2.876667
	checkValues(t, s.computeAltmanZ(), []float64{2.876666666666667})
}

func TestToPayloadShapes(t *testing.T) {
	s := New(fixtureRawData(), fixturePrices(), day(2025, time.August, 1))
	p := s.ToPayload()

	if p.AsOf != "2025-08-01" {
		t.Errorf("expected as_of 2025-08-01, got %q", p.AsOf)
	}
	if got := p.BasicInformation["ticker"]; got != "ACME" {
		t.Errorf("expected ticker ACME, got %v", got)
	}

	// The zero net-income backfill point survives as an explicit zero.
	ni := p.FinancialPoints["net_income"]
	if v, ok := ni["2025-08-01"]; !ok || v == nil || *v != 0 {
		t.Errorf("expected zero backfill point, got %v", v)
	}

	// Missing values map to nil, never NaN, so the payload marshals.
	growth, ok := p.DerivedMetrics["earning_yoy_growth"].(map[string]*float64)
	if !ok {
		t.Fatal("expected a series mapping for earning_yoy_growth")
	}
	if v := growth["2022-12-31"]; v != nil {
		t.Errorf("expected nil for the oldest growth point, got %v", *v)
	}

	if len(p.KeyRatios) != 11 {
		t.Fatalf("expected 11 key ratios, got %d", len(p.KeyRatios))
	}
	if p.KeyRatios[0].Key != "current_price" || p.KeyRatios[0].Value == nil || *p.KeyRatios[0].Value != 12.0 {
		t.Errorf("unexpected first key ratio: %+v", p.KeyRatios[0])
	}
}

package valuation

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"equity_insight/pkg/core/series"
	"equity_insight/pkg/core/stock"
)

func fptr(v float64) *float64 { return &v }

func annual(name string, vals ...float64) series.Series {
	keys := make([]series.Key, len(vals))
	for i := range vals {
		keys[i] = series.DateKey(time.Date(2024-i, time.December, 31, 0, 0, 0, 0, time.UTC))
	}
	return series.New(name, keys, vals)
}

// fixtureStock builds an entity with steady books: equity 1000/900/800,
// 10 shares, EPS 5, P/E 20, ROE 0.15, beta 1.
func fixtureStock() *stock.Stock {
	return &stock.Stock{
		Beta:                   fptr(1.0),
		RiskFreeRate:           0.03,
		NextYearGrowthEstimate: math.NaN(),

		TotalEquity:       annual("total_equity", 1000, 900, 800),
		SharesOutstanding: annual("shares_outstanding", 10, 10, 10),
		TotalLiabilities:  annual("total_liabilities", 500, 450, 400),

		EarningPerShare:  annual("earning_per_share", 5, 4, 4),
		PriceToEarning:   annual("price_to_earning", 20, 22, 18),
		ReturnOnEquity:   annual("return_on_equity", 0.15, 0.15, 0.15),
		EarningYoYGrowth: annual("earning_yoy_growth", 0.10, 0.12, math.NaN()),

		FreeCashflow: annual("free_cashflow", 120, 110, 100),
		MarketCap:    annual("market_cap", 1600, 1500, 1400),

		InterestExpense:          annual("interest_expense", 20, 19, 18),
		ShortTermDebtObligations: annual("short_term_debt", 100, 95, 90),
		LongTermDebtObligations:  annual("long_term_debt", 300, 290, 280),
		TaxRate:                  annual("tax_rate", 0.25, 0.25, 0.25),

		DividendPerShareHistory:   annual("dividend_per_share", 1.0, 0.9, 0.8),
		DividendPerShareYoYGrowth: annual("dividend_per_share_yoy_growth", 1.0/0.9-1, 0.9/0.8-1, math.NaN()),
	}
}

func TestGrahamNumber(t *testing.T) {
	v := New(fixtureStock())
	r := v.Valuate(Overrides{})

	// median EPS = 4, median BVPS = median(100, 90, 80) = 90:
	// sqrt(22.5 * 4 * 90) = sqrt(8100) = 90
	got := fairValue(t, r, "graham_number")
	if math.Abs(got-90) > 1e-9 {
		t.Errorf("expected Graham number 90, got %v", got)
	}
}

func TestGrahamNumberNegativeEarningsIsNull(t *testing.T) {
	s := fixtureStock()
	s.EarningPerShare = annual("earning_per_share", -5, -4, -4)
	r := New(s).Valuate(Overrides{})

	// 22.5 * (-4) * 90 < 0: the model declines to price the company.
	if got := fairValue(t, r, "graham_number"); !math.IsNaN(got) {
		t.Errorf("expected null fair value for negative earnings, got %v", got)
	}

	doc, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Models []struct {
			Key       string   `json:"key"`
			FairValue *float64 `json:"fair_value"`
		} `json:"models"`
	}
	if err := json.Unmarshal(doc, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, m := range decoded.Models {
		if m.Key == "graham_number" && m.FairValue != nil {
			t.Errorf("negative-product Graham number must marshal as null, got %v", *m.FairValue)
		}
	}
}

func TestPriceEarningMultiplesHandWorked(t *testing.T) {
	v := New(fixtureStock())
	r := v.Valuate(Overrides{
		GrowthRate:     fptr(0.10),
		MarginOfSafety: fptr(0.25),
		DiscountRate:   fptr(0.09),
	})

	// latest EPS 5, median P/E 20, conservative growth 0.10*0.75 = 0.075:
	// 5 * 20 * 1.075^10 / 1.09^10
	want := 5 * 20 * math.Pow(1.075, 10) / math.Pow(1.09, 10)
	got := fairValue(t, r, "price_earning_multiples")
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExcessReturnHandWorked(t *testing.T) {
	v := New(fixtureStock())
	r := v.Valuate(Overrides{GrowthRate: fptr(0.10), MarginOfSafety: fptr(0.25)})

	// cost of equity = 0.03 + 1.0*(0.09-0.03) = 0.09
	// excess = (0.15-0.09)*900 = 54; spread = 0.09-0.075 = 0.015
	// fair = (54/0.015 + 900) / 10 = 450
	if math.Abs(r.Params.CostOfEquity-0.09) > 1e-9 {
		t.Fatalf("expected cost of equity 0.09, got %v", r.Params.CostOfEquity)
	}
	got := fairValue(t, r, "excess_return")
	if math.Abs(got-450) > 1e-9 {
		t.Errorf("expected 450, got %v", got)
	}
}

func TestWeightedCostOfCapital(t *testing.T) {
	v := New(fixtureStock())
	r := v.Valuate(Overrides{})

	// debt book 400, market cap 1600: weights 0.2/0.8;
	// cost of debt 20/400 = 0.05; tax 0.25; cost of equity 0.09:
	// 0.8*0.09 + 0.2*0.05*0.75 = 0.0795
	if math.Abs(r.Params.DiscountRate-0.0795) > 1e-9 {
		t.Errorf("expected WACC 0.0795, got %v", r.Params.DiscountRate)
	}
}

func TestDiscountRateFallsBackWithoutBeta(t *testing.T) {
	s := fixtureStock()
	s.Beta = nil
	r := New(s).Valuate(Overrides{})

	if !math.IsNaN(r.Params.CostOfEquity) {
		t.Errorf("expected missing cost of equity, got %v", r.Params.CostOfEquity)
	}
	if r.Params.DiscountRate != 0.09 {
		t.Errorf("expected default discount rate 0.09, got %v", r.Params.DiscountRate)
	}
	// The dividend model needs cost of equity and prices missing.
	if got := fairValue(t, r, "discounted_dividend_two_stage"); !math.IsNaN(got) {
		t.Errorf("expected NaN dividend value, got %v", got)
	}
}

func TestGordonTerminalGuard(t *testing.T) {
	v := New(fixtureStock())
	// Terminal growth above the discount rate leaves no finite perpetuity.
	r := v.Valuate(Overrides{
		DiscountRate:       fptr(0.05),
		TerminalGrowthRate: fptr(0.08),
	})
	if got := fairValue(t, r, "discounted_cash_flow_two_stage"); !math.IsNaN(got) {
		t.Errorf("expected NaN with non-positive spread, got %v", got)
	}
}

func TestEarningGrowthEstimateTakesSmaller(t *testing.T) {
	s := fixtureStock()
	s.NextYearGrowthEstimate = 0.30
	r := New(s).Valuate(Overrides{})
	// median revenue growth over 2 valid points = 0.11 < 0.30
	if math.Abs(r.Params.EarningGrowthEstimate-0.11) > 1e-9 {
		t.Errorf("expected 0.11, got %v", r.Params.EarningGrowthEstimate)
	}
}

func TestEarningGrowthEstimateDefaultsWhenUnknown(t *testing.T) {
	s := fixtureStock()
	s.EarningYoYGrowth = series.Empty("earning_yoy_growth")
	r := New(s).Valuate(Overrides{})
	if r.Params.EarningGrowthEstimate != 0.05 {
		t.Errorf("expected default 0.05, got %v", r.Params.EarningGrowthEstimate)
	}
}

func TestValuateIsDeterministic(t *testing.T) {
	v := New(fixtureStock())
	a := v.Valuate(Overrides{})
	b := v.Valuate(Overrides{})
	for i := range a.Models {
		x, y := a.Models[i].FairValue, b.Models[i].FairValue
		if x != y && !(math.IsNaN(x) && math.IsNaN(y)) {
			t.Errorf("%s: %v != %v", a.Models[i].Key, x, y)
		}
	}
}

func fairValue(t *testing.T, r Result, key string) float64 {
	t.Helper()
	for _, m := range r.Models {
		if m.Key == key {
			return m.FairValue
		}
	}
	t.Fatalf("model %s missing from result", key)
	return math.NaN()
}

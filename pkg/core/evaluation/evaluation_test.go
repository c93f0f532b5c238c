package evaluation

import (
	"errors"
	"math"
	"testing"
	"time"

	"equity_insight/pkg/core/macro"
	"equity_insight/pkg/core/reference"
	"equity_insight/pkg/core/series"
	"equity_insight/pkg/core/stock"
)

func annual(name string, vals ...float64) series.Series {
	keys := make([]series.Key, len(vals))
	for i := range vals {
		keys[i] = series.DateKey(time.Date(2024-i, time.December, 31, 0, 0, 0, 0, time.UTC))
	}
	return series.New(name, keys, vals)
}

func yearly(name string, startYear int, vals ...float64) series.Series {
	keys := make([]series.Key, len(vals))
	for i := range vals {
		keys[i] = series.YearKey(startYear - i)
	}
	return series.New(name, keys, vals)
}

// fixtureStock passes most checks: rising fundamentals, low leverage,
// steady dividends.
func fixtureStock() *stock.Stock {
	return &stock.Stock{
		Sector:              "Technology",
		Industry:            "Software - Application",
		CurrentPrice:        100,
		NetInsiderPurchases: 0.001,

		// Rising levels with the latest YoY growth above its own average,
		// so both the trend and momentum categories pass.
		FreeCashflow:       annual("free_cashflow", 200, 150, 120, 105, 100),
		CashAndEquivalents: annual("cash_and_equivalents", 1000, 750, 600, 525, 500),
		EarningPerShare:    annual("earning_per_share", 6.0, 4.5, 3.6, 3.15, 3.0),
		BookValuePerShare:  annual("book_value_per_share", 60, 45, 36, 31.5, 30),
		NetProfitMargin:    annual("net_profit_margin", 0.24, 0.20, 0.18, 0.17, 0.165),
		ReturnOnEquity:     annual("return_on_equity", 0.20, 0.17, 0.155, 0.15, 0.148),

		EnterpriseProfit: annual("enterprise_profit", 0.20, 0.19, 0.18),
		TrailingPEGRatio: annual("trailing_peg_ratio", 0.8, 0.9, 1.1),
		PriceToEarning:   annual("price_to_earning", 20, 22, 18),

		CurrentRatio:      annual("current_ratio", 2.0, 1.9, 1.8),
		DebtToEquity:      annual("debt_to_equity", 0.4, 0.45, 0.5),
		BeneishM:          annual("beneish_m", -2.5, -2.6, math.NaN()),
		AltmanZ:           annual("altman_z", 3.1, 3.0, 2.9),
		OperatingCashflow: annual("operating_cashflow", 150, 140, 130),
		TotalLiabilities:  annual("total_liabilities", 500, 480, 460),

		DividendPerShareHistory: annual("dividend_per_share", 1.4, 1.3, 1.2, 1.1, 1.0),
		DividendYield:           annual("dividend_yield", 0.02, 0.019, 0.018),
		DividendPayoutRatio:     annual("dividend_payout_ratio", 0.30, 0.31, 0.32),
	}
}

// fixtureMacro passes every macro check: steady growth, tame inflation,
// stable currency, solvent government.
func fixtureMacro() *macro.Context {
	return &macro.Context{
		Country:              "United States",
		BaseCurrencyCountry:  "USA",
		CountryRealGDPGrowth: yearly("country_real_gdp_growth", 2024, 2.8, 2.7, 2.6, 2.0, 2.0, 2.0, 2.0, 2.0, 2.0, 2.0),
		WorldRealGDPGrowth:   yearly("world_real_gdp_growth", 2024, 2.5, 2.4, 2.6),
		CountryInflationCPI:  yearly("country_inflation_cpi", 2024, 2.4, 3.1, 4.0, 6.5, 4.7),
		CountryLendingRate:   yearly("country_lending_rate", 2024, 5.0, 5.2, 4.8),
		CountryFXRatio:       yearly("country_fx_ratio", 2024, 1.0, 1.0, 1.0, 1.0),
		CountryCurrentAccountGDP: yearly("country_current_account_gdp", 2024,
			-2.5, -2.8, -3.0, -3.2, -3.4),
		CountryGovDebtGDP: yearly("country_gov_debt_gdp", 2024, 75, 78, 80),
	}
}

func TestRunAllPassingProfile(t *testing.T) {
	e := New(fixtureStock(), fixtureMacro())
	all, err := e.RunAll()
	if err != nil {
		t.Fatal(err)
	}

	for _, category := range reference.CriterionCategories {
		signals, ok := all[category]
		if !ok {
			t.Fatalf("missing category %s", category)
		}
		if len(signals) != 6 {
			t.Errorf("%s: expected 6 signals, got %d", category, len(signals))
		}
		for _, name := range reference.CriterionOrder[category] {
			r, ok := signals[name]
			if !ok {
				t.Errorf("%s: missing signal %s", category, name)
				continue
			}
			if r.Check != 1.0 {
				t.Errorf("%s/%s: expected pass, got %v (outputs %v)", category, name, r.Check, r.Outputs)
			}
		}
	}
}

func TestPresentBoundaries(t *testing.T) {
	s := fixtureStock()
	// ROE exactly at the 0.15 bar passes; PB = 100/50 = 2 is within (0, 3].
	s.ReturnOnEquity = annual("return_on_equity", 0.15)
	s.BookValuePerShare = annual("book_value_per_share", 50)
	e := New(s, fixtureMacro())

	results, err := e.PresentCheck()
	if err != nil {
		t.Fatal(err)
	}
	if results["return_on_equity"].Check != 1.0 {
		t.Error("ROE of exactly 0.15 must pass")
	}
	if got := results["price_to_book"].Outputs["Price To Book"]; got != 2.0 {
		t.Errorf("expected PB 2.0, got %v", got)
	}

	s.ReturnOnEquity = annual("return_on_equity", 0.1499)
	results, err = New(s, fixtureMacro()).PresentCheck()
	if err != nil {
		t.Fatal(err)
	}
	if results["return_on_equity"].Check != 0.0 {
		t.Error("ROE just under 0.15 must fail")
	}
}

func TestHealthBoundaries(t *testing.T) {
	s := fixtureStock()
	s.CurrentRatio = annual("current_ratio", 1.5)
	s.DebtToEquity = annual("debt_to_equity", 0.5)
	results := New(s, fixtureMacro()).HealthCheck()

	if results["current_ratio"].Check != 1.0 {
		t.Error("current ratio of exactly 1.5 must pass")
	}
	if results["debt_to_equity"].Check != 1.0 {
		t.Error("debt-to-equity of exactly 0.5 must pass")
	}

	s.CurrentRatio = annual("current_ratio", 1.4999)
	s.DebtToEquity = annual("debt_to_equity", 0.5001)
	results = New(s, fixtureMacro()).HealthCheck()

	if results["current_ratio"].Check != 0.0 {
		t.Error("current ratio just under 1.5 must fail")
	}
	if results["debt_to_equity"].Check != 0.0 {
		t.Error("debt-to-equity just over 0.5 must fail")
	}
}

func TestNullInputsFailWithoutError(t *testing.T) {
	s := fixtureStock()
	s.CurrentRatio = series.Empty("current_ratio")
	s.BeneishM = annual("beneish_m", math.NaN())
	results := New(s, fixtureMacro()).HealthCheck()

	if results["current_ratio"].Check != 0.0 {
		t.Error("an empty series must fail, not error")
	}
	if results["beneish_m"].Check != 0.0 {
		t.Error("a null latest value must fail, not error")
	}
}

func TestUnknownSectorBenchmark(t *testing.T) {
	s := fixtureStock()
	s.Sector = "Alchemy"
	_, err := New(s, fixtureMacro()).RunAll()

	var benchErr *UnknownBenchmarkError
	if !errors.As(err, &benchErr) {
		t.Fatalf("expected UnknownBenchmarkError, got %v", err)
	}
	if benchErr.Kind != "sector" || benchErr.Name != "Alchemy" {
		t.Errorf("unexpected error detail: %+v", benchErr)
	}
}

func TestZeroDividendYearFailsThreeSignals(t *testing.T) {
	s := fixtureStock()
	// A zero year inside the history: continuity, streak, and (via the
	// -100% then rebound pattern) volatility all fail.
	s.DividendPerShareHistory = annual("dividend_per_share", 1.2, 1.1, 0, 1.0, 0.9)
	results := New(s, fixtureMacro()).DividendCheck()

	if results["dividend"].Check != 0.0 {
		t.Error("zero year within the last five must fail the continuity check")
	}
	if results["dividend_streak"].Check != 0.0 {
		t.Error("any zero year must fail the streak check")
	}
	if results["dividend_volatile"].Check != 0.0 {
		t.Error("a full cut is a drop of at least 10 percent")
	}
}

func TestMacroMomentumFailsOnSlowdown(t *testing.T) {
	m := fixtureMacro()
	// Recent three years average below the ten-year average.
	m.CountryRealGDPGrowth = yearly("country_real_gdp_growth", 2024,
		1.0, 1.1, 1.2, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0, 3.0)
	results := New(fixtureStock(), m).MacroEconomicCheck()

	if results["momentum"].Check != 0.0 {
		t.Error("expected momentum to fail when recent growth trails the baseline")
	}
}

func TestMacroChecksFailOnEmptyContext(t *testing.T) {
	m := &macro.Context{Country: "Unknown", BaseCurrencyCountry: "USA"}
	results := New(fixtureStock(), m).MacroEconomicCheck()
	for name, r := range results {
		if r.Check != 0.0 {
			t.Errorf("%s: expected fail on missing macro data, got %v", name, r.Check)
		}
	}
}

func TestRunAllIsDeterministic(t *testing.T) {
	e := New(fixtureStock(), fixtureMacro())
	a, err := e.RunAll()
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.RunAll()
	if err != nil {
		t.Fatal(err)
	}
	for category, signals := range a {
		for name, r := range signals {
			if b[category][name].Check != r.Check {
				t.Errorf("%s/%s: verdict changed between runs", category, name)
			}
		}
	}
}

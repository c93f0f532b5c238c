// Package evaluation runs the 36-check fundamental screen over an equity
// entity and its macro context: six categories (past, present, future,
// health, dividend, macroeconomics) of six signals each, every signal a
// pass/fail comparison against a fixed threshold or benchmark table.
package evaluation

import (
	"fmt"
	"math"

	"equity_insight/pkg/core/macro"
	"equity_insight/pkg/core/reference"
	"equity_insight/pkg/core/series"
	"equity_insight/pkg/core/stock"
	"equity_insight/pkg/core/trend"
)

// UnknownBenchmarkError reports a sector or industry with no entry in the
// compiled-in benchmark tables.
type UnknownBenchmarkError struct {
	Kind string // "sector" or "industry"
	Name string
}

func (e *UnknownBenchmarkError) Error() string {
	return fmt.Sprintf("evaluation: no %s benchmark for %q", e.Kind, e.Name)
}

// CheckResult is one signal's verdict plus the catalog prose and the raw
// inputs that produced it.
type CheckResult struct {
	Category    string         `json:"category"`
	Name        string         `json:"name"`
	FancyName   string         `json:"fancy_name"`
	Description string         `json:"description"`
	Input       string         `json:"input"`
	Method      string         `json:"method"`
	Criteria    string         `json:"criteria"`
	Outputs     map[string]any `json:"outputs"`
	Check       float64        `json:"check"`
}

// Evaluator screens one entity against one macro context. All comparisons
// treat missing values as failing, never as errors.
type Evaluator struct {
	stock  *stock.Stock
	macros *macro.Context
}

// New builds an evaluator over an entity and its macro context.
func New(s *stock.Stock, m *macro.Context) *Evaluator {
	return &Evaluator{stock: s, macros: m}
}

func (e *Evaluator) makeResult(category, signal string, outputs map[string]any, pass bool) CheckResult {
	meta := reference.Criteria[category][signal]
	check := 0.0
	if pass {
		check = 1.0
	}
	for key, value := range outputs {
		if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			outputs[key] = nil
		}
	}
	return CheckResult{
		Category:    category,
		Name:        signal,
		FancyName:   meta.FancyName,
		Description: meta.Description,
		Input:       meta.Input,
		Method:      meta.Method,
		Criteria:    meta.Criteria,
		Outputs:     outputs,
		Check:       check,
	}
}

// PastCheck trend-tests six fundamental series; a signal passes on a
// significant upward Mann-Kendall trend.
func (e *Evaluator) PastCheck() map[string]CheckResult {
	const category = "past"
	results := make(map[string]CheckResult, 6)

	trendSignal := func(signal string, s series.Series) {
		tau, pValue := trend.MannKendall(s)
		results[signal] = e.makeResult(category, signal,
			map[string]any{"Kendall Tau": tau, "P Value": pValue},
			tau > 0 && pValue < 0.10,
		)
	}

	trendSignal("free_cashflow", e.stock.FreeCashflow)
	trendSignal("cash_and_equivalents", e.stock.CashAndEquivalents)
	trendSignal("earning_per_share", e.stock.EarningPerShare)
	trendSignal("book_value_per_share", e.stock.BookValuePerShare)
	trendSignal("net_profit_margin", e.stock.NetProfitMargin)
	trendSignal("return_on_equity", e.stock.ReturnOnEquity)

	return results
}

// PresentCheck compares six latest levels against fixed bars and the
// sector/industry benchmark tables.
func (e *Evaluator) PresentCheck() (map[string]CheckResult, error) {
	const category = "present"
	results := make(map[string]CheckResult, 6)

	enterpriseProfit := e.stock.EnterpriseProfit.Latest()
	results["enterprise_profits"] = e.makeResult(category, "enterprise_profits",
		map[string]any{"Enterprise Profit": enterpriseProfit},
		enterpriseProfit > 0 && enterpriseProfit >= 0.18,
	)

	currentPrice := e.stock.CurrentPrice
	bvps := e.stock.BookValuePerShare.Latest()
	priceToBook := math.NaN()
	if !math.IsNaN(bvps) && !math.IsInf(bvps, 0) && bvps != 0 {
		priceToBook = currentPrice / bvps
	}
	results["price_to_book"] = e.makeResult(category, "price_to_book",
		map[string]any{
			"Price To Book":        priceToBook,
			"Current Price":        currentPrice,
			"Book Value Per Share": bvps,
		},
		priceToBook > 0 && priceToBook <= 3.0,
	)

	peg := e.stock.TrailingPEGRatio.Latest()
	results["peg_ratio"] = e.makeResult(category, "peg_ratio",
		map[string]any{"PEG Ratio": peg},
		peg > 0 && peg <= 1.0,
	)

	roe := e.stock.ReturnOnEquity.Latest()
	results["return_on_equity"] = e.makeResult(category, "return_on_equity",
		map[string]any{"Return On Equity": roe},
		roe >= 0.15,
	)

	sectorPECap, ok := reference.SectorPERatio[e.stock.Sector]
	if !ok {
		return nil, &UnknownBenchmarkError{Kind: "sector", Name: e.stock.Sector}
	}
	priceToEarning := e.stock.PriceToEarning.Latest()
	results["price_earning"] = e.makeResult(category, "price_earning",
		map[string]any{"Price To Earnings": priceToEarning, "Industry Benchmark PE": sectorPECap},
		priceToEarning > 0 && priceToEarning < sectorPECap,
	)

	industryMargin, ok := reference.IndustryNetMargin[e.stock.Industry]
	if !ok {
		return nil, &UnknownBenchmarkError{Kind: "industry", Name: e.stock.Industry}
	}
	netProfitMargin := e.stock.NetProfitMargin.Latest()
	results["net_profit_margin"] = e.makeResult(category, "net_profit_margin",
		map[string]any{"Net Profit Margin": netProfitMargin, "Industry Average Net Margin": industryMargin.NetMargin},
		netProfitMargin > industryMargin.NetMargin,
	)

	return results, nil
}

// FutureCheck passes each of six metrics whose latest YoY growth beats its
// own historical average.
func (e *Evaluator) FutureCheck() map[string]CheckResult {
	const category = "future"
	results := make(map[string]CheckResult, 6)

	momentum := func(signal string, s series.Series) {
		growth := series.YoYGrowth(s.Name()+"_yoy", s)
		latest := growth.Latest()
		average := math.NaN()
		if !growth.IsEmpty() {
			average = series.Mean(growth)
		}
		results[signal] = e.makeResult(category, signal,
			map[string]any{"Latest YoY Growth": latest, "Average YoY Growth": average},
			latest > average,
		)
	}

	momentum("free_cashflow", e.stock.FreeCashflow)
	momentum("cash_and_equivalents", e.stock.CashAndEquivalents)
	momentum("earning_per_share", e.stock.EarningPerShare)
	momentum("book_value_per_share", e.stock.BookValuePerShare)
	momentum("net_profit_margin", e.stock.NetProfitMargin)
	momentum("return_on_equity", e.stock.ReturnOnEquity)

	return results
}

// HealthCheck screens balance-sheet strength and earnings quality.
func (e *Evaluator) HealthCheck() map[string]CheckResult {
	const category = "health"
	results := make(map[string]CheckResult, 6)

	currentRatio := e.stock.CurrentRatio.Latest()
	results["current_ratio"] = e.makeResult(category, "current_ratio",
		map[string]any{"Current Ratio": currentRatio},
		currentRatio >= 1.5,
	)

	debtToEquity := e.stock.DebtToEquity.Latest()
	results["debt_to_equity"] = e.makeResult(category, "debt_to_equity",
		map[string]any{"Debt To Equity": debtToEquity},
		debtToEquity <= 0.5,
	)

	beneishM := e.stock.BeneishM.Latest()
	results["beneish_m"] = e.makeResult(category, "beneish_m",
		map[string]any{"Beneish M Score": beneishM},
		beneishM <= -2.22,
	)

	altmanZ := e.stock.AltmanZ.Latest()
	results["altman_z"] = e.makeResult(category, "altman_z",
		map[string]any{"Altman Z Score": altmanZ},
		altmanZ >= 1.80,
	)

	netInsiderPurchases := e.stock.NetInsiderPurchases
	results["net_insider_purchases"] = e.makeResult(category, "net_insider_purchases",
		map[string]any{"Net Insider Purchases": netInsiderPurchases},
		netInsiderPurchases >= -0.10,
	)

	operatingCashflow := e.stock.OperatingCashflow.Latest()
	totalLiabilities := e.stock.TotalLiabilities.Latest()
	results["debt_coverage"] = e.makeResult(category, "debt_coverage",
		map[string]any{"Operating Cash Flow": operatingCashflow, "Total Liabilities": totalLiabilities},
		operatingCashflow > 0.20*totalLiabilities,
	)

	return results
}

// DividendCheck screens the fiscal-year dividend history for continuity,
// yield, stability and affordability.
func (e *Evaluator) DividendCheck() map[string]CheckResult {
	const category = "dividend"
	results := make(map[string]CheckResult, 6)

	dps := e.stock.DividendPerShareHistory

	lastFiveNonZero := true
	for i := 0; i < dps.Len() && i < 5; i++ {
		if dps.Value(i) == 0 {
			lastFiveNonZero = false
			break
		}
	}
	results["dividend"] = e.makeResult(category, "dividend",
		map[string]any{"Dividends Paid In Last Five Years": lastFiveNonZero},
		lastFiveNonZero,
	)

	dividendYield := e.stock.DividendYield.Latest()
	results["dividend_yield"] = e.makeResult(category, "dividend_yield",
		map[string]any{"Dividend Yield": dividendYield},
		dividendYield > 0.015,
	)

	hasZeroYear := false
	for i := 0; i < dps.Len(); i++ {
		if dps.Value(i) == 0 {
			hasZeroYear = true
			break
		}
	}
	results["dividend_streak"] = e.makeResult(category, "dividend_streak",
		map[string]any{"Any Zero Dividend Year": hasZeroYear},
		!hasZeroYear,
	)

	yoy := series.YoYGrowth("dividend_yoy", dps)
	hasBigDrop := false
	for i := 0; i < yoy.Len(); i++ {
		if yoy.Value(i) <= -0.10 {
			hasBigDrop = true
			break
		}
	}
	results["dividend_volatile"] = e.makeResult(category, "dividend_volatile",
		map[string]any{"Any Dividend Drop At Least 10 Percent": hasBigDrop},
		!hasBigDrop && lastFiveNonZero,
	)

	tau, pValue := trend.MannKendall(dps)
	results["dividend_trend"] = e.makeResult(category, "dividend_trend",
		map[string]any{"Kendall Tau": tau, "P Value": pValue},
		tau > 0 && pValue < 0.10,
	)

	payoutMedian := series.Median(e.stock.DividendPayoutRatio)
	results["dividend_payout_ratio"] = e.makeResult(category, "dividend_payout_ratio",
		map[string]any{"Median Payout Ratio": payoutMedian},
		payoutMedian > 0.0 && payoutMedian < 0.60,
	)

	return results
}

// MacroEconomicCheck screens the host-country macro backdrop.
func (e *Evaluator) MacroEconomicCheck() map[string]CheckResult {
	const category = "macroeconomics"
	results := make(map[string]CheckResult, 6)

	ave3Country := e.macros.Ave3CountryGDP()
	ave10Country := e.macros.Ave10CountryGDP()
	ave3World := e.macros.Ave3WorldGDP()
	latestGDP := e.macros.LatestCountryGDP()
	baseline := math.Max(ave10Country, ave3World)
	results["momentum"] = e.makeResult(category, "momentum",
		map[string]any{
			"Country Three Year Average Real GDP Growth": ave3Country,
			"Baseline Comparator Growth":                 baseline,
			"Latest Real GDP Growth":                     latestGDP,
		},
		ave3Country >= baseline && latestGDP >= 0.0,
	)

	latestCPI := e.macros.LatestInflationCPI()
	stdevCPI := e.macros.Stdev5CountryInflationCPI()
	results["inflation_stability"] = e.makeResult(category, "inflation_stability",
		map[string]any{"Latest CPI Inflation": latestCPI, "Five Year Standard Deviation Of CPI": stdevCPI},
		latestCPI <= 0.05 && stdevCPI <= 3.0,
	)

	realRate := e.macros.CountryRealInterests()
	results["real_interest_rate"] = e.makeResult(category, "real_interest_rate",
		map[string]any{"Real Interest Rate": realRate},
		realRate > -2.0 && realRate < 6.0,
	)

	fxCAGR := e.macros.YearlyCountryFXCAGR()
	results["fx_trend"] = e.makeResult(category, "fx_trend",
		map[string]any{"Three Year FX CAGR Percent Per Year": fxCAGR},
		fxCAGR <= 5.0,
	)

	latestCA := e.macros.LatestCountryCurrentAccount()
	ave5CA := e.macros.Ave5CountryCurrentAccount()
	results["external_balance"] = e.makeResult(category, "external_balance",
		map[string]any{
			"Latest Current Account Balance":            latestCA,
			"Five Year Average Current Account Balance": ave5CA,
		},
		latestCA >= -3.0 && latestCA >= ave5CA,
	)

	latestDebt := e.macros.LatestCountryDebt()
	results["fiscal_sustainability"] = e.makeResult(category, "fiscal_sustainability",
		map[string]any{"Latest Government Debt To GDP": latestDebt},
		latestDebt <= 0.80,
	)

	return results
}

// RunAll executes every category and keys the results by category name.
func (e *Evaluator) RunAll() (map[string]map[string]CheckResult, error) {
	present, err := e.PresentCheck()
	if err != nil {
		return nil, err
	}
	return map[string]map[string]CheckResult{
		"past":           e.PastCheck(),
		"present":        present,
		"future":         e.FutureCheck(),
		"health":         e.HealthCheck(),
		"dividend":       e.DividendCheck(),
		"macroeconomics": e.MacroEconomicCheck(),
	}, nil
}

// Package macro assembles the country and world macroeconomic context the
// evaluation layer consumes: GDP growth, inflation, rates, FX and fiscal
// series keyed by year, latest-first.
package macro

import (
	"math"
	"strings"

	"equity_insight/pkg/core/reference"
	"equity_insight/pkg/core/series"
)

// YearValue is one (year, value) observation from an indicator source.
// Value is nil when the source reported no figure for the year.
type YearValue struct {
	Year  int
	Value *float64
}

// IndicatorProvider serves indicator observations for a country code. The
// ingest package implements it against the World Bank API; tests supply
// fixtures.
type IndicatorProvider interface {
	// Indicators fetches the requested indicator codes for an ISO3 country
	// code (or "WLD"), up to mrv most recent values each. Missing
	// indicators simply have no entry in the result.
	Indicators(countryISO3 string, indicatorCodes []string, mrv int) (map[string][]YearValue, error)
}

// defaultMacroYears is the minimum history window requested per indicator.
const defaultMacroYears = 10

// Context holds the fetched macro series. All series are keyed by year,
// ordered latest -> older, with missing observations as explicit nulls.
type Context struct {
	Country             string
	BaseCurrencyCountry string

	CountryRealGDPGrowth     series.Series
	CountryInflationCPI      series.Series
	CountryLendingRate       series.Series
	CountryFXPerUSD          series.Series
	CountryCurrentAccountGDP series.Series
	CountryGovDebtGDP        series.Series
	CountryFiscalBalanceGDP  series.Series
	CountryFXRatio           series.Series

	WorldRealGDPGrowth series.Series
}

// NewContext fetches the macro context for a company country against a base
// currency country (ISO3; "USA" means no FX re-basing). Fetch failures
// degrade to empty series so a missing macro feed never blocks the
// fundamental analysis.
func NewContext(provider IndicatorProvider, baseCurrencyCountry, country string, macroYears int) *Context {
	if macroYears < defaultMacroYears {
		macroYears = defaultMacroYears
	}
	ctx := &Context{
		Country:             country,
		BaseCurrencyCountry: strings.ToUpper(baseCurrencyCountry),
	}
	ctx.fetchCountryMacro(provider, macroYears)
	ctx.fetchWorldMacro(provider, macroYears)
	ctx.computeFXRatio(provider, macroYears)
	return ctx
}

// CountryISO3 resolves the company country to its ISO3 code.
func (c *Context) CountryISO3() (string, bool) {
	code, ok := reference.TryISO3(c.Country)
	if !ok {
		return "", false
	}
	return strings.ToUpper(code), true
}

// CountryRealInterestRate is lending rate minus CPI inflation, in points.
func (c *Context) CountryRealInterestRate() series.Series {
	return series.Sub("country_real_interest_rate", c.CountryLendingRate, c.CountryInflationCPI)
}

// Summary accessors for the macro checks. GDP growth, rates and current
// account stay in percentage points as the indicator source reports them;
// CPI and government debt convert to fractions.

// Ave3CountryGDP is the 3-year average country real GDP growth, in points.
func (c *Context) Ave3CountryGDP() float64 {
	return series.MeanN(c.CountryRealGDPGrowth, 3)
}

// Ave10CountryGDP is the 10-year average country real GDP growth, in points.
func (c *Context) Ave10CountryGDP() float64 {
	return series.MeanN(c.CountryRealGDPGrowth, 10)
}

// Ave3WorldGDP is the 3-year average world real GDP growth, in points.
func (c *Context) Ave3WorldGDP() float64 {
	return series.MeanN(c.WorldRealGDPGrowth, 3)
}

// LatestCountryGDP is the latest reported country real GDP growth, in points.
func (c *Context) LatestCountryGDP() float64 {
	return c.CountryRealGDPGrowth.LatestValid()
}

// LatestInflationCPI is the latest CPI inflation as a fraction.
func (c *Context) LatestInflationCPI() float64 {
	return c.CountryInflationCPI.LatestValid() / 100
}

// Stdev5CountryInflationCPI is the 5-year CPI standard deviation, in points.
func (c *Context) Stdev5CountryInflationCPI() float64 {
	return series.StdN(c.CountryInflationCPI, 5)
}

// CountryRealInterests is the latest real interest rate, in points.
func (c *Context) CountryRealInterests() float64 {
	return c.CountryRealInterestRate().LatestValid()
}

// YearlyCountryFXCAGR is the 3-year FX-ratio CAGR in percent per year. A
// positive value means the country currency is depreciating against the
// base currency.
func (c *Context) YearlyCountryFXCAGR() float64 {
	return series.CAGR(c.CountryFXRatio, 3) * 100
}

// LatestCountryCurrentAccount is the latest current account balance as a
// share of GDP, in points.
func (c *Context) LatestCountryCurrentAccount() float64 {
	return c.CountryCurrentAccountGDP.LatestValid()
}

// Ave5CountryCurrentAccount is the 5-year average current account balance,
// in points.
func (c *Context) Ave5CountryCurrentAccount() float64 {
	return series.MeanN(c.CountryCurrentAccountGDP, 5)
}

// LatestCountryDebt is the latest government-debt-to-GDP as a fraction.
func (c *Context) LatestCountryDebt() float64 {
	return c.CountryGovDebtGDP.LatestValid() / 100
}

var countryIndicatorCodes = []string{
	reference.IndicatorRealGDPGrowth,
	reference.IndicatorInflationCPI,
	reference.IndicatorLendingRate,
	reference.IndicatorFXPerUSD,
	reference.IndicatorCurrentAccountGDP,
	reference.IndicatorGovDebtGDP,
	reference.IndicatorFiscalBalanceGDP,
}

func (c *Context) fetchCountryMacro(provider IndicatorProvider, macroYears int) {
	empty := func() {
		c.CountryRealGDPGrowth = series.Empty("country_real_gdp_growth")
		c.CountryInflationCPI = series.Empty("country_inflation_cpi")
		c.CountryLendingRate = series.Empty("country_lending_rate")
		c.CountryFXPerUSD = series.Empty("country_fx_lcu_per_usd")
		c.CountryCurrentAccountGDP = series.Empty("country_current_account_gdp")
		c.CountryGovDebtGDP = series.Empty("country_gov_debt_gdp")
		c.CountryFiscalBalanceGDP = series.Empty("country_fiscal_balance_gdp")
	}

	iso3, ok := c.CountryISO3()
	if !ok {
		empty()
		return
	}
	raw, err := provider.Indicators(iso3, countryIndicatorCodes, macroYears)
	if err != nil {
		empty()
		return
	}

	c.CountryRealGDPGrowth = yearSeries("country_real_gdp_growth", raw[reference.IndicatorRealGDPGrowth], macroYears)
	c.CountryInflationCPI = yearSeries("country_inflation_cpi", raw[reference.IndicatorInflationCPI], macroYears)
	c.CountryLendingRate = yearSeries("country_lending_rate", raw[reference.IndicatorLendingRate], macroYears)
	c.CountryFXPerUSD = yearSeries("country_fx_lcu_per_usd", raw[reference.IndicatorFXPerUSD], macroYears)
	c.CountryCurrentAccountGDP = yearSeries("country_current_account_gdp", raw[reference.IndicatorCurrentAccountGDP], macroYears)
	c.CountryGovDebtGDP = yearSeries("country_gov_debt_gdp", raw[reference.IndicatorGovDebtGDP], macroYears)
	c.CountryFiscalBalanceGDP = yearSeries("country_fiscal_balance_gdp", raw[reference.IndicatorFiscalBalanceGDP], macroYears)
}

func (c *Context) fetchWorldMacro(provider IndicatorProvider, macroYears int) {
	raw, err := provider.Indicators("WLD", []string{reference.IndicatorRealGDPGrowth}, macroYears)
	if err != nil {
		c.WorldRealGDPGrowth = series.Empty("world_real_gdp_growth")
		return
	}
	c.WorldRealGDPGrowth = yearSeries("world_real_gdp_growth", raw[reference.IndicatorRealGDPGrowth], macroYears)
}

// computeFXRatio re-bases the country FX series onto the base currency: a
// USA base keeps LCU-per-USD as-is; otherwise the ratio of the two
// LCU-per-USD series expresses country currency per base currency.
func (c *Context) computeFXRatio(provider IndicatorProvider, macroYears int) {
	const name = "country_fx_ratio"
	if c.BaseCurrencyCountry == "USA" {
		c.CountryFXRatio = c.CountryFXPerUSD.Rename(name)
		return
	}

	raw, err := provider.Indicators(c.BaseCurrencyCountry, []string{reference.IndicatorFXPerUSD}, macroYears)
	if err != nil {
		c.CountryFXRatio = c.CountryFXPerUSD.Rename(name)
		return
	}
	baseFX := yearSeries("base_fx_lcu_per_usd", raw[reference.IndicatorFXPerUSD], macroYears)
	if baseFX.IsEmpty() {
		c.CountryFXRatio = c.CountryFXPerUSD.Rename(name)
		return
	}
	c.CountryFXRatio = series.Div(name, c.CountryFXPerUSD, baseFX)
}

// yearSeries converts (year, value) observations into a latest-first series,
// truncated to at most maximumPoints.
func yearSeries(name string, pairs []YearValue, maximumPoints int) series.Series {
	if len(pairs) == 0 {
		return series.Empty(name)
	}
	sorted := append([]YearValue{}, pairs...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Year > sorted[j-1].Year; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	if maximumPoints > 0 && len(sorted) > maximumPoints {
		sorted = sorted[:maximumPoints]
	}

	keys := make([]series.Key, len(sorted))
	vals := make([]float64, len(sorted))
	for i, p := range sorted {
		keys[i] = series.YearKey(p.Year)
		if p.Value == nil {
			vals[i] = math.NaN()
		} else {
			vals[i] = *p.Value
		}
	}
	return series.New(name, keys, vals)
}

// Package valuation prices an equity entity with seven fair-value models
// (earnings multiples, one- and two-stage DCF, dividend discount, ROE
// capitalization, excess return, Graham number) sharing one estimated
// parameter set.
package valuation

import (
	"encoding/json"
	"math"

	"equity_insight/pkg/core/reference"
	"equity_insight/pkg/core/series"
	"equity_insight/pkg/core/stock"
)

// Overrides lets a caller pin individual parameters; nil fields are
// estimated from the entity or fall back to the compiled-in defaults.
type Overrides struct {
	MarginOfSafety      *float64
	GrowthRate          *float64
	RiskFreeRate        *float64
	DiscountRate        *float64
	DeclineRate         *float64
	AverageMarketReturn *float64
	NYears1             *int
	NYears2             *int
	TerminalGrowthRate  *float64
}

// Params is the fully-resolved parameter set a valuation run used.
type Params struct {
	MarginOfSafety      float64 `json:"margin_of_safety"`
	RiskFreeRate        float64 `json:"risk_free_rate"`
	DiscountRate        float64 `json:"discount_rate"`
	DeclineRate         float64 `json:"decline_rate"`
	AverageMarketReturn float64 `json:"average_market_return"`
	NYears1             int     `json:"n_years1"`
	NYears2             int     `json:"n_years2"`
	TerminalGrowthRate  float64 `json:"terminal_growth_rate"`

	CostOfEquity float64 `json:"cost_of_equity"`

	EarningGrowthEstimate        float64 `json:"earning_growth_estimates"`
	ConservativeGrowthOnEarning  float64 `json:"conservative_growth_on_earning"`
	DividendGrowthEstimate       float64 `json:"growth_estimates_from_dividend"`
	ConservativeGrowthOnDividend float64 `json:"conservative_growth_on_dividend"`
}

// MarshalJSON nulls the estimates that stayed NaN (no dividend history, no
// beta) so the parameter block always marshals.
func (p Params) MarshalJSON() ([]byte, error) {
	opt := func(v float64) *float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	}
	return json.Marshal(struct {
		MarginOfSafety      float64 `json:"margin_of_safety"`
		RiskFreeRate        float64 `json:"risk_free_rate"`
		DiscountRate        float64 `json:"discount_rate"`
		DeclineRate         float64 `json:"decline_rate"`
		AverageMarketReturn float64 `json:"average_market_return"`
		NYears1             int     `json:"n_years1"`
		NYears2             int     `json:"n_years2"`
		TerminalGrowthRate  float64 `json:"terminal_growth_rate"`

		CostOfEquity *float64 `json:"cost_of_equity"`

		EarningGrowthEstimate        *float64 `json:"earning_growth_estimates"`
		ConservativeGrowthOnEarning  *float64 `json:"conservative_growth_on_earning"`
		DividendGrowthEstimate       *float64 `json:"growth_estimates_from_dividend"`
		ConservativeGrowthOnDividend *float64 `json:"conservative_growth_on_dividend"`
	}{
		MarginOfSafety:      p.MarginOfSafety,
		RiskFreeRate:        p.RiskFreeRate,
		DiscountRate:        p.DiscountRate,
		DeclineRate:         p.DeclineRate,
		AverageMarketReturn: p.AverageMarketReturn,
		NYears1:             p.NYears1,
		NYears2:             p.NYears2,
		TerminalGrowthRate:  p.TerminalGrowthRate,

		CostOfEquity: opt(p.CostOfEquity),

		EarningGrowthEstimate:        opt(p.EarningGrowthEstimate),
		ConservativeGrowthOnEarning:  opt(p.ConservativeGrowthOnEarning),
		DividendGrowthEstimate:       opt(p.DividendGrowthEstimate),
		ConservativeGrowthOnDividend: opt(p.ConservativeGrowthOnDividend),
	})
}

// ModelResult is one model's catalog entry plus its fair value.
type ModelResult struct {
	Key         string   `json:"key"`
	FancyName   string   `json:"fancy_name"`
	Description string   `json:"description"`
	Feasibility string   `json:"feasibility"`
	Inputs      []string `json:"inputs"`
	Formula     string   `json:"formula"`
	FairValue   float64  `json:"-"`
}

// MarshalJSON emits the fair value as null when the model could not price.
func (m ModelResult) MarshalJSON() ([]byte, error) {
	type plain ModelResult
	var fair *float64
	if !math.IsNaN(m.FairValue) && !math.IsInf(m.FairValue, 0) {
		fair = &m.FairValue
	}
	return json.Marshal(struct {
		plain
		FairValueJSON *float64 `json:"fair_value"`
	}{plain(m), fair})
}

// Result is a complete valuation run: every model in catalog order plus the
// resolved parameters.
type Result struct {
	Models []ModelResult `json:"models"`
	Params Params        `json:"params"`
}

// Valuator prices one entity.
type Valuator struct {
	stock    *stock.Stock
	priceNow float64
}

// New wraps an entity for valuation. The spot price is the last close of
// the daily tape, NaN when no tape exists.
func New(s *stock.Stock) *Valuator {
	priceNow := math.NaN()
	if prices := s.Prices(); len(prices) > 0 {
		priceNow = prices[len(prices)-1].Close
	}
	return &Valuator{stock: s, priceNow: priceNow}
}

// PriceNow returns the spot price the valuator compares fair values against.
func (v *Valuator) PriceNow() float64 { return v.priceNow }

// Valuate resolves parameters and runs every model.
func (v *Valuator) Valuate(o Overrides) Result {
	p := v.resolveParams(o)

	fair := map[string]float64{
		"price_earning_multiples": v.priceEarningMultiples(p.ConservativeGrowthOnEarning, p.DiscountRate, p.NYears1),
		"discounted_cash_flow_one_stage": v.discountedCashFlowOneStage(
			p.ConservativeGrowthOnEarning, p.DiscountRate, p.DeclineRate, p.NYears1),
		"discounted_cash_flow_two_stage": v.discountedCashFlowTwoStage(
			p.ConservativeGrowthOnEarning, p.DiscountRate, p.DeclineRate, p.NYears1, p.NYears2, p.TerminalGrowthRate),
		"discounted_dividend_two_stage": v.discountedDividendTwoStage(
			p.ConservativeGrowthOnDividend, p.CostOfEquity, p.NYears1, p.NYears2, p.TerminalGrowthRate),
		"return_on_equity": v.returnOnEquity(
			p.ConservativeGrowthOnEarning, p.DiscountRate, p.AverageMarketReturn, p.NYears1),
		"excess_return": v.excessReturn(p.ConservativeGrowthOnEarning, p.CostOfEquity),
		"graham_number": v.grahamNumber(),
	}

	models := make([]ModelResult, 0, len(reference.ValuationOrder))
	for _, key := range reference.ValuationOrder {
		meta := reference.ValuationCatalog[key]
		models = append(models, ModelResult{
			Key:         key,
			FancyName:   meta.FancyName,
			Description: meta.Description,
			Feasibility: meta.Feasibility,
			Inputs:      meta.Inputs,
			Formula:     meta.Formula,
			FairValue:   fair[key],
		})
	}
	return Result{Models: models, Params: p}
}

func pick(override *float64, fallback float64) float64 {
	if override != nil {
		return *override
	}
	return fallback
}

func pickInt(override *int, fallback int) int {
	if override != nil {
		return *override
	}
	return fallback
}

func (v *Valuator) resolveParams(o Overrides) Params {
	p := Params{
		MarginOfSafety:      pick(o.MarginOfSafety, reference.DefaultMarginOfSafety),
		DeclineRate:         pick(o.DeclineRate, reference.DefaultDeclineRate),
		AverageMarketReturn: pick(o.AverageMarketReturn, reference.DefaultAverageMarketReturn),
		NYears1:             pickInt(o.NYears1, reference.DefaultStage1Years),
		NYears2:             pickInt(o.NYears2, reference.DefaultStage2Years),
	}

	p.RiskFreeRate = pick(o.RiskFreeRate, v.stock.RiskFreeRate)
	p.TerminalGrowthRate = pick(o.TerminalGrowthRate, v.stock.RiskFreeRate)

	if o.GrowthRate != nil {
		p.EarningGrowthEstimate = *o.GrowthRate
		p.ConservativeGrowthOnEarning = *o.GrowthRate * (1 - p.MarginOfSafety)
	} else {
		p.EarningGrowthEstimate, p.ConservativeGrowthOnEarning = v.estimateEarningGrowthRate(p.MarginOfSafety)
	}
	p.DividendGrowthEstimate, p.ConservativeGrowthOnDividend = v.estimateDividendGrowthRate(p.MarginOfSafety)

	p.CostOfEquity = v.costOfEquity(p.RiskFreeRate, p.AverageMarketReturn)

	if o.DiscountRate != nil {
		p.DiscountRate = *o.DiscountRate
	} else {
		p.DiscountRate = v.weightedCostOfCapital(p.CostOfEquity)
	}
	return p
}

// estimateEarningGrowthRate blends the analyst next-year estimate with the
// 3-period median of revenue YoY growth, taking the smaller when both exist
// and defaulting when neither does.
func (v *Valuator) estimateEarningGrowthRate(marginOfSafety float64) (estimate, conservative float64) {
	fromAnalyst := v.stock.NextYearGrowthEstimate
	fromHistory := series.MedianN(v.stock.EarningYoYGrowth, 3)

	switch {
	case !math.IsNaN(fromAnalyst) && !math.IsNaN(fromHistory):
		estimate = math.Min(fromAnalyst, fromHistory)
	case !math.IsNaN(fromHistory):
		estimate = fromHistory
	case !math.IsNaN(fromAnalyst):
		estimate = fromAnalyst
	default:
		estimate = math.NaN()
	}
	if math.IsNaN(estimate) {
		estimate = reference.DefaultGrowthRate
	}
	return estimate, estimate * (1 - marginOfSafety)
}

// estimateDividendGrowthRate is the 5-period median of dividend YoY growth;
// both values stay missing for non-growers so the dividend model prices NaN.
func (v *Valuator) estimateDividendGrowthRate(marginOfSafety float64) (estimate, conservative float64) {
	estimate = series.MedianN(v.stock.DividendPerShareYoYGrowth, 5)
	if math.IsNaN(estimate) {
		return math.NaN(), math.NaN()
	}
	return estimate, estimate * (1 - marginOfSafety)
}

// costOfEquity is CAPM off the computed beta; missing beta prices NaN.
func (v *Valuator) costOfEquity(riskFreeRate, averageMarketReturn float64) float64 {
	if v.stock.Beta == nil {
		return math.NaN()
	}
	return riskFreeRate + *v.stock.Beta*(averageMarketReturn-riskFreeRate)
}

// weightedCostOfCapital builds WACC from market-value weights, the interest
// cost of the debt book and the latest effective tax rate, falling back to
// the default discount rate when inputs are missing.
func (v *Valuator) weightedCostOfCapital(costOfEquity float64) float64 {
	bookValueOfDebt := series.Add("book_value_of_debt",
		v.stock.ShortTermDebtObligations, v.stock.LongTermDebtObligations)

	costOfDebt := series.MeanN(series.Div("cost_of_debt", v.stock.InterestExpense, bookValueOfDebt), 1)

	capitalBase := series.Add("capital_base", v.stock.MarketCap, bookValueOfDebt)
	weightOfEquity := series.MeanN(series.Div("weight_of_equity", v.stock.MarketCap, capitalBase), 1)
	weightOfDebt := series.MeanN(series.Div("weight_of_debt", bookValueOfDebt, capitalBase), 1)

	taxRate := series.MeanN(v.stock.TaxRate, 1)

	wacc := weightOfEquity*costOfEquity + weightOfDebt*costOfDebt*(1-taxRate)
	if math.IsNaN(wacc) {
		return reference.DefaultDiscountRate
	}
	return wacc
}

func (v *Valuator) priceEarningMultiples(conservativeGrowth, discountRate float64, nYears int) float64 {
	if nYears < 1 {
		nYears = 1
	}
	eps := series.MeanN(v.stock.EarningPerShare, 1)
	peMedian := series.MedianN(v.stock.PriceToEarning, 3)
	targetValue := eps * peMedian * math.Pow(1+conservativeGrowth, float64(nYears))
	return targetValue / math.Pow(1+discountRate, float64(nYears))
}

func (v *Valuator) discountedCashFlowOneStage(conservativeGrowth, discountRate, declineRate float64, nYears int) float64 {
	fcf := series.MedianN(v.stock.FreeCashflow, 3)
	shares := series.MedianN(v.stock.SharesOutstanding, 3)

	var total, lastDiscounted float64
	last := fcf
	for i := 0; i < nYears; i++ {
		growthThisYear := conservativeGrowth * math.Pow(1-declineRate, float64(i))
		last *= 1 + growthThisYear
		presentValue := last / math.Pow(1+discountRate, float64(i+1))
		total += presentValue
		lastDiscounted = presentValue
	}

	terminalValue := lastDiscounted * 12
	equityValue := total + terminalValue
	if !isPositive(shares) {
		return math.NaN()
	}
	return equityValue / shares
}

func (v *Valuator) discountedCashFlowTwoStage(
	conservativeGrowth, discountRate, declineRate float64,
	nYears1, nYears2 int,
	terminalGrowth float64,
) float64 {
	fcf := series.MedianN(v.stock.FreeCashflow, 3)
	shares := series.MedianN(v.stock.SharesOutstanding, 3)

	var stage1, stage2 float64
	last := fcf
	for i := 0; i < nYears1; i++ {
		growthThisYear := conservativeGrowth * math.Pow(1-declineRate, float64(i))
		last *= 1 + growthThisYear
		stage1 += last / math.Pow(1+discountRate, float64(i+1))
	}
	for k := 0; k < nYears2; k++ {
		last *= 1 + terminalGrowth
		stage2 += last / math.Pow(1+discountRate, float64(nYears1+k+1))
	}

	terminalValue := gordonTerminal(last*(1+terminalGrowth), discountRate-terminalGrowth)
	presentTerminal := terminalValue / math.Pow(1+discountRate, float64(nYears1+nYears2))

	equityValue := stage1 + stage2 + presentTerminal
	if !isPositive(shares) {
		return math.NaN()
	}
	return equityValue / shares
}

func (v *Valuator) discountedDividendTwoStage(
	conservativeGrowth, costOfEquity float64,
	nYears1, nYears2 int,
	terminalGrowth float64,
) float64 {
	var stage1, stage2 float64
	last := series.MedianN(v.stock.DividendPerShareHistory, 3)

	for i := 0; i < nYears1; i++ {
		last *= 1 + conservativeGrowth
		stage1 += last / math.Pow(1+costOfEquity, float64(i+1))
	}
	for k := 0; k < nYears2; k++ {
		last *= 1 + terminalGrowth
		stage2 += last / math.Pow(1+costOfEquity, float64(nYears1+k+1))
	}

	terminalValue := gordonTerminal(last*(1+terminalGrowth), costOfEquity-terminalGrowth)
	presentTerminal := terminalValue / math.Pow(1+costOfEquity, float64(nYears1+nYears2))

	return stage1 + stage2 + presentTerminal
}

func (v *Valuator) returnOnEquity(conservativeGrowth, discountRate, averageMarketReturn float64, nYears int) float64 {
	roe := series.MedianN(v.stock.ReturnOnEquity, 3)
	dps := series.MeanN(v.stock.DividendPerShareHistory, 3)
	bvps := series.MeanN(
		series.Div("book_value_per_share", v.stock.TotalEquity, v.stock.SharesOutstanding), 3)

	var presentDividends float64
	lastBVPS, lastDPS := bvps, dps
	for i := 0; i < nYears; i++ {
		lastBVPS *= 1 + conservativeGrowth
		lastDPS *= 1 + conservativeGrowth
		presentDividends += lastDPS / math.Pow(1+discountRate, float64(i+1))
	}

	finalNetIncomePerShare := lastBVPS * roe
	terminalAtHorizon := math.NaN()
	if isPositive(averageMarketReturn) {
		terminalAtHorizon = finalNetIncomePerShare / averageMarketReturn
	}
	presentTerminal := terminalAtHorizon / math.Pow(1+discountRate, float64(nYears))

	return presentDividends + presentTerminal
}

func (v *Valuator) excessReturn(conservativeGrowth, costOfEquity float64) float64 {
	roe := series.MedianN(v.stock.ReturnOnEquity, 3)
	totalEquity := series.MedianN(v.stock.TotalEquity, 3)
	shares := series.MedianN(v.stock.SharesOutstanding, 3)

	excess := (roe - costOfEquity) * totalEquity
	terminalValue := gordonTerminal(excess, costOfEquity-conservativeGrowth)
	presentValue := terminalValue + totalEquity

	if !isPositive(shares) {
		return math.NaN()
	}
	return presentValue / shares
}

func (v *Valuator) grahamNumber() float64 {
	eps := series.MedianN(v.stock.EarningPerShare, 3)
	bvps := series.MedianN(
		series.Div("book_value_per_share", v.stock.TotalEquity, v.stock.SharesOutstanding), 3)

	// A negative product means the company cannot be priced this way,
	// not that it is worth zero.
	product := 22.5 * eps * bvps
	if math.IsNaN(product) || math.IsInf(product, 0) || product < 0 {
		return math.NaN()
	}
	return math.Sqrt(product)
}

// gordonTerminal guards the perpetuity against a non-positive spread.
func gordonTerminal(nextFlow, spread float64) float64 {
	if math.IsNaN(spread) || math.IsInf(spread, 0) || spread <= 0 {
		return math.NaN()
	}
	return nextFlow / spread
}

func isPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

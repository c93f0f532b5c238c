package stock

import (
	"math"
	"time"

	"equity_insight/pkg/core/reference"
	"equity_insight/pkg/core/series"
)

// Stock is the fully-derived equity entity. Construction normalizes the raw
// statements, resolves every statement alias into a latest-first series and
// computes the derived metric set; afterwards the struct is read-only.
type Stock struct {
	Ticker   string
	Country  string
	Sector   string
	Industry string
	Currency string

	Info     Info
	News     []NewsItem
	Officers []Officer

	CurrentPrice           float64
	NextYearGrowthEstimate float64
	NetInsiderPurchases    float64

	asOf   time.Time
	prices PriceHistory
	raw    RawData

	annualIncome      StatementTable
	annualBalance     StatementTable
	annualCashFlow    StatementTable
	quarterlyIncome   StatementTable
	quarterlyBalance  StatementTable
	quarterlyCashFlow StatementTable
	ttmIncome         StatementTable
	ttmCashFlow       StatementTable

	statementPoints map[string]series.Series

	// Statement alias series (balance sheet)
	TotalEquity              series.Series
	TotalLiabilities         series.Series
	CurrentLiabilities       series.Series
	LongLiabilities          series.Series
	LongDebt                 series.Series
	CurrentAssets            series.Series
	CashAndEquivalents       series.Series
	SharesOutstanding        series.Series
	TotalAssets              series.Series
	NetPPE                   series.Series
	OtherProperties          series.Series
	TotalDebt                series.Series
	ShortTermDebtObligations series.Series
	LongTermDebtObligations  series.Series
	RetainedEarnings         series.Series
	WorkingCapital           series.Series
	AccountsReceivable       series.Series

	// Statement alias series (income statement)
	NetIncome       series.Series
	TotalRevenue    series.Series
	EBIT            series.Series
	GrossProfit     series.Series
	SGA             series.Series
	InterestExpense series.Series
	DilutedEPS      series.Series
	CostOfGoods     series.Series
	TaxProvision    series.Series
	PretaxIncome    series.Series

	// Statement alias series (cash flow)
	FreeCashflow      series.Series
	OperatingCashflow series.Series
	Capex             series.Series
	DividendsPaid     series.Series
	Depreciation      series.Series

	// Derived metrics
	Beta                      *float64
	RiskFreeRate              float64
	DebtToEquity              series.Series
	NetProfitMargin           series.Series
	ReturnOnEquity            series.Series
	CurrentRatio              series.Series
	EarningYoYGrowth          series.Series
	PriceAtReport             series.Series
	MarketCap                 series.Series
	BookValuePerShare         series.Series
	PriceToBook               series.Series
	EarningPerShare           series.Series
	PriceToEarning            series.Series
	TrailingPEGRatio          series.Series
	EnterpriseProfit          series.Series
	BeneishM                  series.Series
	AltmanZ                   series.Series
	DividendPerShareHistory   series.Series
	DividendPayoutRatio       series.Series
	PriceAtDividend           series.Series
	DividendYield             series.Series
	DividendPerShareYoYGrowth series.Series
	DividendPerShareCAGR      float64
	TaxRate                   series.Series
}

// New builds the entity from vendor raw data, a daily price history and an
// as-of date (zero value means today, UTC).
func New(data RawData, prices PriceHistory, asOf time.Time) *Stock {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	s := &Stock{
		Ticker:   data.Info.Ticker,
		Country:  data.Info.Country,
		Sector:   data.Info.Sector,
		Industry: data.Info.Industry,
		Currency: data.Info.Currency,

		Info:     data.Info,
		News:     data.News,
		Officers: data.Officers,

		CurrentPrice:           data.Info.PreviousClose,
		NextYearGrowthEstimate: data.NextYearGrowthEstimate,
		NetInsiderPurchases:    data.NetInsiderPurchases,

		asOf:   midnight(asOf),
		prices: prices,
		raw:    data,

		annualIncome:      NormalizeStatement(data.AnnualIncome),
		annualBalance:     NormalizeStatement(data.AnnualBalance),
		annualCashFlow:    NormalizeStatement(data.AnnualCashFlow),
		quarterlyIncome:   NormalizeStatement(data.QuarterlyIncome),
		quarterlyBalance:  NormalizeStatement(data.QuarterlyBalance),
		quarterlyCashFlow: NormalizeStatement(data.QuarterlyCashFlow),
		ttmIncome:         NormalizeStatement(data.TTMIncome),
		ttmCashFlow:       NormalizeStatement(data.TTMCashFlow),

		statementPoints: make(map[string]series.Series, len(reference.Financials)),
	}

	s.resolveStatementAliases()
	s.Beta = computeBeta(data.StockMonthly, data.IndexMonthly)
	s.deriveMetrics()
	return s
}

// AsOf returns the analysis reference date.
func (s *Stock) AsOf() time.Time { return s.asOf }

// Prices returns the daily price history the entity was built with.
func (s *Stock) Prices() PriceHistory { return s.prices }

// StatementPoints returns the resolved alias series, keyed by alias.
func (s *Stock) StatementPoints() map[string]series.Series { return s.statementPoints }

// resolveStatementAliases builds one series per alias in the canonical
// table and binds it to the matching struct field.
func (s *Stock) resolveStatementAliases() {
	const toleranceDays = 5
	for _, alias := range reference.FinancialOrder {
		mapping := reference.Financials[alias]
		pts := s.statementItemPoints(mapping, toleranceDays)
		s.statementPoints[alias] = pts
		s.bindAlias(alias, pts)
	}
}

func (s *Stock) bindAlias(alias string, pts series.Series) {
	switch alias {
	case "total_equity":
		s.TotalEquity = pts
	case "total_liabilities":
		s.TotalLiabilities = pts
	case "current_liabilities":
		s.CurrentLiabilities = pts
	case "long_liabilities":
		s.LongLiabilities = pts
	case "long_debt":
		s.LongDebt = pts
	case "current_assets":
		s.CurrentAssets = pts
	case "cash_and_equivalents":
		s.CashAndEquivalents = pts
	case "shares_outstanding":
		s.SharesOutstanding = pts
	case "total_assets":
		s.TotalAssets = pts
	case "net_ppe":
		s.NetPPE = pts
	case "other_properties":
		s.OtherProperties = pts
	case "total_debt":
		s.TotalDebt = pts
	case "short_term_debt_and_capital_obligation":
		s.ShortTermDebtObligations = pts
	case "long_term_debt_and_capital_obligation":
		s.LongTermDebtObligations = pts
	case "retained_earnings":
		s.RetainedEarnings = pts
	case "working_capital":
		s.WorkingCapital = pts
	case "accounts_receivable":
		s.AccountsReceivable = pts
	case "net_income":
		s.NetIncome = pts
	case "total_revenue":
		s.TotalRevenue = pts
	case "ebit":
		s.EBIT = pts
	case "gross_profit":
		s.GrossProfit = pts
	case "sga":
		s.SGA = pts
	case "interest_expense":
		s.InterestExpense = pts
	case "diluted_eps":
		s.DilutedEPS = pts
	case "cost_of_goods":
		s.CostOfGoods = pts
	case "tax_provision":
		s.TaxProvision = pts
	case "pretax_income":
		s.PretaxIncome = pts
	case "free_cashflow":
		s.FreeCashflow = pts
	case "operating_cashflow":
		s.OperatingCashflow = pts
	case "capex":
		s.Capex = pts
	case "dividends_paid":
		s.DividendsPaid = pts
	case "depreciation_amortization_depletion":
		s.Depreciation = pts
	}
}

func (s *Stock) annualTable(name reference.StatementName) StatementTable {
	switch name {
	case reference.BalanceSheet:
		return s.annualBalance
	case reference.IncomeStatement:
		return s.annualIncome
	case reference.CashFlow:
		return s.annualCashFlow
	}
	return StatementTable{}
}

// pickItemFromAlias resolves the first candidate row label present in the
// annual table; that label is then used across all frequencies.
func (s *Stock) pickItemFromAlias(mapping reference.AliasMapping) (string, bool) {
	ann := s.annualTable(mapping.Source)
	if ann.Empty() {
		return "", false
	}
	for _, candidate := range mapping.Fields {
		if ann.HasRow(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// financialsStale reports whether annual statements should be supplemented
// with fresher data: the quarterly balance sheet trails the as-of date by a
// full reporting interval AND the latest quarterly income/cash-flow column
// is distinct from the annual one (when they coincide the annual filing
// already is the freshest data).
func (s *Stock) financialsStale(toleranceDays int) bool {
	gapOK := isBalanceSheetStale(s.quarterlyBalance, s.asOf, toleranceDays)

	isEqual := datesWithin(latestColumn(s.quarterlyIncome), latestColumn(s.annualIncome), toleranceDays)
	cfEqual := datesWithin(latestColumn(s.quarterlyCashFlow), latestColumn(s.annualCashFlow), toleranceDays)

	return gapOK && !(isEqual || cfEqual)
}

// averageLastKQuarterly averages the item over the last k quarterly
// balance-sheet snapshots (k by reporting frequency). NaN with fewer than
// two snapshots: a single point is a level, not an average.
func (s *Stock) averageLastKQuarterly(item string) float64 {
	k := averagingWindow(s.quarterlyBalance)
	row := rowSeries(s.quarterlyBalance, item)
	vals := row.Head(k).DropNull()
	if vals.Len() < 2 {
		return math.NaN()
	}
	return series.Mean(vals)
}

// balanceSheetItemPoints builds the annual series for a balance-sheet row,
// truncated to the four most recent filings, prepending an averaged
// "LTM-like" snapshot at the as-of date when the financials are stale.
func (s *Stock) balanceSheetItemPoints(item string, toleranceDays int) series.Series {
	annual := rowSeries(s.annualBalance, item).DropNull()
	if annual.IsEmpty() {
		ltm := s.averageLastKQuarterly(item)
		if math.IsNaN(ltm) {
			return series.Empty(item)
		}
		return series.New(item, []series.Key{series.DateKey(s.asOf)}, []float64{ltm})
	}

	annual = annual.Head(4)
	if s.financialsStale(toleranceDays) {
		ltm := s.averageLastKQuarterly(item)
		if !math.IsNaN(ltm) {
			return prepend(annual, series.DateKey(s.asOf), ltm)
		}
	}
	return annual
}

// ttmItemValue reads the latest trailing-twelve-month value for an income
// or cash-flow row; zero when the row or table is absent.
func (s *Stock) ttmItemValue(statement reference.StatementName, item string) float64 {
	var t StatementTable
	switch statement {
	case reference.IncomeStatement:
		t = s.ttmIncome
	case reference.CashFlow:
		t = s.ttmCashFlow
	default:
		return math.NaN()
	}
	if t.Empty() || !t.HasRow(item) {
		return 0.0
	}
	row := rowSeries(t, item).DropNull()
	if row.IsEmpty() {
		return 0.0
	}
	return row.Value(0)
}

// statementItemPoints resolves one alias mapping into its annual point
// series, with the staleness backfill applied.
func (s *Stock) statementItemPoints(mapping reference.AliasMapping, toleranceDays int) series.Series {
	fallbackName := "UNKNOWN_ITEM"
	if len(mapping.Fields) > 0 {
		fallbackName = mapping.Fields[0]
	}
	item, ok := s.pickItemFromAlias(mapping)
	if !ok {
		return series.Empty(fallbackName)
	}

	if mapping.Source == reference.BalanceSheet {
		return s.balanceSheetItemPoints(item, toleranceDays)
	}

	annual := rowSeries(s.annualTable(mapping.Source), item).DropNull().Head(4)
	if annual.IsEmpty() {
		return series.Empty(item)
	}
	if s.financialsStale(toleranceDays) {
		ttm := s.ttmItemValue(mapping.Source, item)
		if !math.IsNaN(ttm) {
			return prepend(annual, series.DateKey(s.asOf), ttm)
		}
	}
	return annual
}

func prepend(s series.Series, k series.Key, v float64) series.Series {
	keys := append([]series.Key{k}, s.Keys()...)
	vals := append([]float64{v}, s.Values()...)
	return series.New(s.Name(), keys, vals)
}

// deriveMetrics computes every derived metric off the resolved alias series.
func (s *Stock) deriveMetrics() {
	s.DebtToEquity = series.Div("debt_to_equity", s.TotalLiabilities, s.TotalEquity)
	s.NetProfitMargin = series.Div("net_profit_margin", s.NetIncome, s.TotalRevenue)
	s.ReturnOnEquity = series.Div("return_on_equity", s.NetIncome, s.TotalEquity)
	s.CurrentRatio = series.Div("current_ratio", s.CurrentAssets, s.CurrentLiabilities)

	s.EarningYoYGrowth = series.YoYGrowth("earning_yoy_growth", s.TotalRevenue)
	s.PriceAtReport = priceAt("price_at", s.TotalEquity, s.prices)
	s.MarketCap = series.Mul("market_cap", s.PriceAtReport, s.SharesOutstanding)

	s.BookValuePerShare = series.Div("book_value_per_share", s.TotalEquity, s.SharesOutstanding)
	s.PriceToBook = series.Div("price_to_book", s.PriceAtReport, s.BookValuePerShare)

	s.EarningPerShare = series.Div("earning_per_share", s.NetIncome, s.SharesOutstanding)
	s.PriceToEarning = series.Div("price_to_earning", s.PriceAtReport, s.EarningPerShare)
	s.TrailingPEGRatio = series.Div(
		"trailing_peg_ratio",
		s.PriceToEarning,
		series.Scale("eps_yoy_pct", series.YoYGrowth("eps_yoy", s.EarningPerShare), 100),
	)

	s.EnterpriseProfit = series.Div("enterprise_profit", s.EBIT, s.TotalAssets)

	s.BeneishM = s.computeBeneishM()
	s.AltmanZ = s.computeAltmanZ()

	s.DividendPerShareHistory = s.dividendAnnualSeries()
	s.DividendPayoutRatio = series.Div(
		"dividend_payout_ratio",
		series.SignAdjust(s.DividendsPaid, series.NegToPos),
		s.NetIncome,
	)
	s.PriceAtDividend = priceAt("price_at_dividend", s.DividendPerShareHistory, s.prices)
	s.DividendYield = series.Div("dividend_yield", s.DividendPerShareHistory, s.PriceAtDividend)
	s.DividendPerShareYoYGrowth = series.YoYGrowth("dividend_per_share_yoy_growth", s.DividendPerShareHistory)
	s.DividendPerShareCAGR = series.CAGR(s.DividendPerShareHistory, 10)

	s.RiskFreeRate = lookupRiskFreeRate(s.Country)
	s.TaxRate = series.Div("tax_rate", s.TaxProvision, s.PretaxIncome)
}

// dividendAnnualSeries aggregates the payment history into complete fiscal
// years; a missing history becomes an explicit zero history first.
func (s *Stock) dividendAnnualSeries() series.Series {
	dividends := s.raw.Dividends
	if len(dividends) == 0 {
		dividends = buildZeroDividends(s.asOf, 10)
	}
	fyeMonth := inferFYEMonth(s.raw.AnnualBalance, s.raw.QuarterlyBalance)
	return annualDPSCompleteYears(dividends, fyeMonth, s.asOf)
}

func lookupRiskFreeRate(country string) float64 {
	if r, ok := reference.RiskFreeRate[country]; ok {
		return r
	}
	if r, ok := reference.RiskFreeRate["United States"]; ok {
		return r
	}
	return reference.DefaultRiskFreeRate
}

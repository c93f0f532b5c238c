// Package reference holds the compiled-in lookup tables the analysis layers
// share: statement row aliases, derived-metric definitions, country and
// benchmark tables, and the catalogs describing every check and valuation
// model. The tables are data, not behavior; keeping them in one package keeps
// the computing packages free of magic strings.
package reference

// StatementName identifies one of the three financial statements.
type StatementName string

const (
	BalanceSheet    StatementName = "balance_sheet"
	IncomeStatement StatementName = "income_statement"
	CashFlow        StatementName = "cash_flow"
)

// AliasMapping maps a canonical metric alias onto the vendor row labels that
// may carry it. Candidates are tried in order; the first label present in the
// annual table wins and is reused for every reporting frequency.
type AliasMapping struct {
	Source    StatementName
	Fields    []string
	FancyName string
}

// FinancialOrder fixes the payload ordering of the statement aliases.
var FinancialOrder = []string{
	"total_equity", "total_liabilities", "current_liabilities", "long_liabilities",
	"long_debt", "current_assets", "cash_and_equivalents", "shares_outstanding",
	"total_assets", "net_ppe", "other_properties", "total_debt",
	"short_term_debt_and_capital_obligation", "long_term_debt_and_capital_obligation",
	"retained_earnings", "working_capital", "accounts_receivable",
	"net_income", "total_revenue", "ebit", "gross_profit", "sga",
	"interest_expense", "diluted_eps", "cost_of_goods", "tax_provision",
	"pretax_income",
	"free_cashflow", "operating_cashflow", "capex", "dividends_paid",
	"depreciation_amortization_depletion",
}

// Financials is the canonical alias table for statement rows.
var Financials = map[string]AliasMapping{
	// Balance sheet
	"total_equity": {
		Source:    BalanceSheet,
		Fields:    []string{"Common Stock Equity", "Total Equity Gross Minority Interest", "Stockholders Equity"},
		FancyName: "Total Equity",
	},
	"total_liabilities": {
		Source:    BalanceSheet,
		Fields:    []string{"Total Liabilities Net Minority Interest", "Total Liabilities"},
		FancyName: "Total Liabilities",
	},
	"current_liabilities": {
		Source:    BalanceSheet,
		Fields:    []string{"Current Liabilities"},
		FancyName: "Current Liabilities",
	},
	"long_liabilities": {
		Source: BalanceSheet,
		Fields: []string{
			"Total Non Current Liabilities Net Minority Interest",
			"Long Term Debt And Capital Lease Obligation",
			"Long Term Debt",
		},
		FancyName: "Non-Current Liabilities",
	},
	"long_debt": {
		Source:    BalanceSheet,
		Fields:    []string{"Long Term Debt"},
		FancyName: "Long-Term Debt",
	},
	"current_assets": {
		Source:    BalanceSheet,
		Fields:    []string{"Current Assets"},
		FancyName: "Current Assets",
	},
	"cash_and_equivalents": {
		Source:    BalanceSheet,
		Fields:    []string{"Cash And Cash Equivalents", "Cash Cash Equivalents And Short Term Investments"},
		FancyName: "Cash & Cash Equivalents",
	},
	"shares_outstanding": {
		Source:    BalanceSheet,
		Fields:    []string{"Ordinary Shares Number", "Share Issued", "Common Stock Shares Outstanding"},
		FancyName: "Shares Outstanding",
	},
	"total_assets": {
		Source:    BalanceSheet,
		Fields:    []string{"Total Assets"},
		FancyName: "Total Assets",
	},
	"net_ppe": {
		Source:    BalanceSheet,
		Fields:    []string{"Net PPE", "Property Plant Equipment Net"},
		FancyName: "Net Property, Plant & Equipment (PP&E)",
	},
	"other_properties": {
		Source:    BalanceSheet,
		Fields:    []string{"Other Properties"},
		FancyName: "Other Properties",
	},
	"total_debt": {
		Source:    BalanceSheet,
		Fields:    []string{"Total Debt"},
		FancyName: "Total Debt",
	},
	"short_term_debt_and_capital_obligation": {
		Source:    BalanceSheet,
		Fields:    []string{"Current Debt And Capital Lease Obligation"},
		FancyName: "Current Debt & Capital Lease Obligations",
	},
	"long_term_debt_and_capital_obligation": {
		Source:    BalanceSheet,
		Fields:    []string{"Long Term Debt And Capital Lease Obligation"},
		FancyName: "Long-Term Debt & Capital Lease Obligations",
	},
	"retained_earnings": {
		Source:    BalanceSheet,
		Fields:    []string{"Retained Earnings"},
		FancyName: "Retained Earnings",
	},
	"working_capital": {
		Source:    BalanceSheet,
		Fields:    []string{"Working Capital"},
		FancyName: "Working Capital",
	},
	"accounts_receivable": {
		Source:    BalanceSheet,
		Fields:    []string{"Accounts Receivable", "Receivables"},
		FancyName: "Accounts Receivable",
	},

	// Income statement
	"net_income": {
		Source:    IncomeStatement,
		Fields:    []string{"Net Income Common Stockholders", "Net Income"},
		FancyName: "Net Income",
	},
	"total_revenue": {
		Source:    IncomeStatement,
		Fields:    []string{"Total Revenue", "Operating Revenue"},
		FancyName: "Total Revenue",
	},
	"ebit": {
		Source:    IncomeStatement,
		Fields:    []string{"EBIT", "Operating Income", "Total Operating Income As Reported", "Pretax Income"},
		FancyName: "EBIT (Operating Income)",
	},
	"gross_profit": {
		Source:    IncomeStatement,
		Fields:    []string{"Gross Profit"},
		FancyName: "Gross Profit",
	},
	"sga": {
		Source:    IncomeStatement,
		Fields:    []string{"Selling General And Administration", "Selling General Administrative Expense"},
		FancyName: "Selling, General & Administrative (SG&A)",
	},
	"interest_expense": {
		Source:    IncomeStatement,
		Fields:    []string{"Interest Expense"},
		FancyName: "Interest Expense",
	},
	"diluted_eps": {
		Source:    IncomeStatement,
		Fields:    []string{"Diluted EPS", "Basic EPS", "DilutedEPS"},
		FancyName: "Earnings Per Share (Diluted)",
	},
	"cost_of_goods": {
		Source:    IncomeStatement,
		Fields:    []string{"Cost of Revenue"},
		FancyName: "Cost of Revenue (COGS)",
	},
	"tax_provision": {
		Source:    IncomeStatement,
		Fields:    []string{"Tax Provision"},
		FancyName: "Tax Provision",
	},
	"pretax_income": {
		Source:    IncomeStatement,
		Fields:    []string{"Pretax Income"},
		FancyName: "Pre-Tax Income",
	},

	// Cash flow
	"free_cashflow": {
		Source:    CashFlow,
		Fields:    []string{"Free Cash Flow"},
		FancyName: "Free Cash Flow (FCF)",
	},
	"operating_cashflow": {
		Source:    CashFlow,
		Fields:    []string{"Operating Cash Flow", "Total Cash From Operating Activities"},
		FancyName: "Operating Cash Flow (OCF)",
	},
	"capex": {
		Source:    CashFlow,
		Fields:    []string{"Capital Expenditure", "Purchase Of PPE", "Capital Expenditures"},
		FancyName: "Capital Expenditures (CapEx)",
	},
	"dividends_paid": {
		Source:    CashFlow,
		Fields:    []string{"Cash Dividends Paid", "Common Stock Dividends Paid", "Dividends Paid"},
		FancyName: "Dividends Paid",
	},
	"depreciation_amortization_depletion": {
		Source: CashFlow,
		Fields: []string{
			"Depreciation And Amortization In Income Statement",
			"Depreciation Amortization Depletion Income Statement",
			"Depreciation Amortization Depletion",
		},
		FancyName: "Depreciation & Amortization & Depletion",
	},
}

// InfoField maps an identity alias onto the vendor info-blob key.
type InfoField struct {
	Alias     string
	Source    string
	FancyName string
}

// StockInfo fixes which identity fields are carried and their payload order.
var StockInfo = []InfoField{
	{Alias: "ticker", Source: "symbol", FancyName: "Ticker"},
	{Alias: "name", Source: "shortName", FancyName: "Company Name"},
	{Alias: "country", Source: "country", FancyName: "Country"},
	{Alias: "region", Source: "region", FancyName: "Region"},
	{Alias: "currency", Source: "currency", FancyName: "Currency"},
	{Alias: "industry", Source: "industry", FancyName: "Industry"},
	{Alias: "sector", Source: "sector", FancyName: "Sector"},
	{Alias: "company_summary", Source: "longBusinessSummary", FancyName: "Company Summary"},
	{Alias: "beta", Source: "beta", FancyName: "Beta"},
	{Alias: "fifty_two_week_low", Source: "fiftyTwoWeekLow", FancyName: "52-Week Low"},
	{Alias: "fifty_two_week_high", Source: "fiftyTwoWeekHigh", FancyName: "52-Week High"},
	{Alias: "fifty_two_week_change", Source: "52WeekChange", FancyName: "52-Week Change"},
	{Alias: "total_contractual_obligations", Source: "totalDebt", FancyName: "Total Contractual Obligations"},
}

// MetricKind tags how a derived metric is shaped in the entity payload.
type MetricKind string

const (
	KindScalar       MetricKind = "scalar"
	KindSeries       MetricKind = "series"
	KindSeriesLatest MetricKind = "series_latest"
)

// DerivedMetric describes one computed metric.
type DerivedMetric struct {
	FancyName string
	Kind      MetricKind
}

// DerivedMetricOrder fixes the payload ordering of the derived metrics.
var DerivedMetricOrder = []string{
	"beta", "risk_free_rate", "next_year_growth_estimates", "net_insider_purchases",
	"current_price", "dividend_per_share_cagr",
	"debt_to_equity", "net_profit_margin", "return_on_equity", "current_ratio",
	"earning_yoy_growth", "price_at", "market_cap",
	"price_to_book", "book_value_per_share", "earning_per_share",
	"price_to_earning", "trailing_peg_ratio", "enterprise_profit",
	"beneish_m", "altman_z",
	"dividend_per_share_history", "dividend_payout_ratio", "price_at_dividend",
	"dividend_yield", "dividend_per_share_yoy_growth",
	"tax_rate",
}

// DerivedMetrics catalogs every derived metric the entity model computes.
var DerivedMetrics = map[string]DerivedMetric{
	"beta":                       {FancyName: "Beta", Kind: KindScalar},
	"risk_free_rate":             {FancyName: "Risk-Free Rate", Kind: KindScalar},
	"next_year_growth_estimates": {FancyName: "Next Year Growth Estimate", Kind: KindScalar},
	"net_insider_purchases":      {FancyName: "Net Insider Purchases", Kind: KindScalar},
	"current_price":              {FancyName: "Current Price", Kind: KindScalar},
	"dividend_per_share_cagr":    {FancyName: "Dividend Per Share CAGR", Kind: KindScalar},

	"debt_to_equity":    {FancyName: "Debt to Equity", Kind: KindSeries},
	"net_profit_margin": {FancyName: "Net Profit Margin", Kind: KindSeries},
	"return_on_equity":  {FancyName: "Return on Equity", Kind: KindSeries},
	"current_ratio":     {FancyName: "Current Ratio", Kind: KindSeries},

	"earning_yoy_growth": {FancyName: "Earnings YoY Growth", Kind: KindSeries},
	"price_at":           {FancyName: "Price at Report Date", Kind: KindSeries},
	"market_cap":         {FancyName: "Market Capitalization", Kind: KindSeries},

	"price_to_book":       {FancyName: "Price to Book", Kind: KindSeries},
	"book_value_per_share": {FancyName: "Book Value Per Share", Kind: KindSeries},
	"earning_per_share":   {FancyName: "Earnings Per Share", Kind: KindSeries},
	"price_to_earning":    {FancyName: "Price to Earnings", Kind: KindSeries},
	"trailing_peg_ratio":  {FancyName: "Trailing PEG Ratio", Kind: KindSeries},
	"enterprise_profit":   {FancyName: "Enterprise Profit", Kind: KindSeries},

	"beneish_m": {FancyName: "Beneish M-Score", Kind: KindSeries},
	"altman_z":  {FancyName: "Altman Z-Score", Kind: KindSeries},

	"dividend_per_share_history":    {FancyName: "Dividend Per Share", Kind: KindSeries},
	"dividend_payout_ratio":         {FancyName: "Dividend Payout Ratio", Kind: KindSeries},
	"price_at_dividend":             {FancyName: "Price at Dividend", Kind: KindSeries},
	"dividend_yield":                {FancyName: "Dividend Yield", Kind: KindSeries},
	"dividend_per_share_yoy_growth": {FancyName: "Dividend Per Share YoY Growth", Kind: KindSeries},

	"tax_rate": {FancyName: "Tax Rate", Kind: KindSeries},
}

// KeyRatio describes one entry of the overview "key ratios" block.
type KeyRatio struct {
	Key       string
	Kind      MetricKind
	FancyName string
	Format    string
}

// KeyRatios fixes the overview ratios and their display order.
var KeyRatios = []KeyRatio{
	{Key: "current_price", Kind: KindScalar, FancyName: "Current Price", Format: "money"},
	{Key: "fifty_two_week_change", Kind: KindScalar, FancyName: "52-Week Change", Format: "ratio"},
	{Key: "beta", Kind: KindScalar, FancyName: "Beta", Format: "raw"},
	{Key: "price_to_earning", Kind: KindSeriesLatest, FancyName: "P/E", Format: "ratio"},
	{Key: "trailing_peg_ratio", Kind: KindSeriesLatest, FancyName: "Trailing PEG", Format: "ratio"},
	{Key: "price_to_book", Kind: KindSeriesLatest, FancyName: "P/B", Format: "ratio"},
	{Key: "return_on_equity", Kind: KindSeriesLatest, FancyName: "ROE", Format: "ratio"},
	{Key: "net_profit_margin", Kind: KindSeriesLatest, FancyName: "Net Margin", Format: "ratio"},
	{Key: "debt_to_equity", Kind: KindSeriesLatest, FancyName: "Debt to Equity", Format: "ratio"},
	{Key: "dividend_yield", Kind: KindSeriesLatest, FancyName: "Dividend Yield", Format: "ratio"},
	{Key: "current_ratio", Kind: KindSeriesLatest, FancyName: "Current Ratio", Format: "ratio"},
}

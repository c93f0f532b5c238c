// Package stock builds the analyzable equity entity: normalized financial
// statements, alias-resolved statement series, and the derived metric set
// (ratios, scores, dividend history, beta) that the valuation and evaluation
// layers consume.
package stock

import (
	"time"
)

// PricePoint is one daily (or monthly) close observation.
type PricePoint struct {
	Date   time.Time
	Close  float64
	Volume float64
}

// PriceHistory is a price sequence ordered oldest -> newest.
type PriceHistory []PricePoint

// StatementTable is one financial statement: row labels against report-date
// columns. Columns are ordered latest -> older once normalized; Rows values
// align positionally with Columns.
type StatementTable struct {
	Columns []time.Time
	Rows    map[string][]float64
}

// Empty reports whether the table carries no columns.
func (t StatementTable) Empty() bool { return len(t.Columns) == 0 }

// Row returns the values for a row label, aligned with Columns.
func (t StatementTable) Row(label string) ([]float64, bool) {
	vals, ok := t.Rows[label]
	return vals, ok
}

// HasRow reports whether the label exists in the table.
func (t StatementTable) HasRow(label string) bool {
	_, ok := t.Rows[label]
	return ok
}

// Officer is one company officer record from the vendor info blob.
type Officer struct {
	Name             string   `json:"name"`
	Title            string   `json:"title"`
	Age              int      `json:"age,omitempty"`
	TotalPay         *float64 `json:"total_pay"`
	UnexercisedValue *float64 `json:"unexercised_value"`
}

// NewsItem is one news row: (published ISO date, title, summary, url).
type NewsItem struct {
	Published string `json:"published"`
	Title     string `json:"title"`
	Summary   string `json:"summary,omitempty"`
	URL       string `json:"url,omitempty"`
}

// DividendEvent is one cash dividend payment.
type DividendEvent struct {
	Date   time.Time
	Amount float64
}

// Info carries the identity fields lifted from the vendor info blob.
// Numeric fields default to NaN when the vendor omitted them.
type Info struct {
	Ticker             string
	Name               string
	Country            string
	Region             string
	Currency           string
	Industry           string
	Sector             string
	Summary            string
	VendorBeta         float64
	FiftyTwoWeekLow    float64
	FiftyTwoWeekHigh   float64
	FiftyTwoWeekChange float64
	TotalDebt          float64
	PreviousClose      float64
}

// RawData bundles everything the entity model needs from the data vendor.
// Statement tables arrive as fetched; normalization happens in New.
type RawData struct {
	Info     Info
	News     []NewsItem
	Officers []Officer

	// Forward analyst estimate of next-year growth; NaN when unavailable.
	NextYearGrowthEstimate float64
	// Net insider purchases over the recent window, as a share fraction.
	NetInsiderPurchases float64

	AnnualIncome      StatementTable
	AnnualBalance     StatementTable
	AnnualCashFlow    StatementTable
	QuarterlyIncome   StatementTable
	QuarterlyBalance  StatementTable
	QuarterlyCashFlow StatementTable
	TTMIncome         StatementTable
	TTMCashFlow       StatementTable

	// Dividend payments, any order.
	Dividends []DividendEvent

	// Five years of monthly closes for the stock and its benchmark ETF,
	// used for beta estimation.
	StockMonthly PriceHistory
	IndexMonthly PriceHistory
}

package ingest

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"equity_insight/pkg/core/stock"
)

// rawDocument is the on-disk vendor snapshot for one ticker: identity blob,
// eight statement tables, dividend history and the price tapes.
type rawDocument struct {
	Info struct {
		Symbol             string   `json:"symbol"`
		ShortName          string   `json:"shortName"`
		Country            string   `json:"country"`
		Region             string   `json:"region"`
		Currency           string   `json:"currency"`
		Industry           string   `json:"industry"`
		Sector             string   `json:"sector"`
		Summary            string   `json:"longBusinessSummary"`
		Beta               *float64 `json:"beta"`
		FiftyTwoWeekLow    *float64 `json:"fiftyTwoWeekLow"`
		FiftyTwoWeekHigh   *float64 `json:"fiftyTwoWeekHigh"`
		FiftyTwoWeekChange *float64 `json:"52WeekChange"`
		TotalDebt          *float64 `json:"totalDebt"`
		PreviousClose      *float64 `json:"previousClose"`
	} `json:"info"`

	News     []stock.NewsItem `json:"news"`
	Officers []stock.Officer  `json:"officers"`

	NextYearGrowthEstimate *float64 `json:"next_year_growth_estimate"`
	NetInsiderPurchases    *float64 `json:"net_insider_purchases"`

	Statements struct {
		AnnualIncome      rawStatement `json:"annual_income"`
		AnnualBalance     rawStatement `json:"annual_balance"`
		AnnualCashFlow    rawStatement `json:"annual_cash_flow"`
		QuarterlyIncome   rawStatement `json:"quarterly_income"`
		QuarterlyBalance  rawStatement `json:"quarterly_balance"`
		QuarterlyCashFlow rawStatement `json:"quarterly_cash_flow"`
		TTMIncome         rawStatement `json:"ttm_income"`
		TTMCashFlow       rawStatement `json:"ttm_cash_flow"`
	} `json:"statements"`

	Dividends []struct {
		Date   string  `json:"date"`
		Amount float64 `json:"amount"`
	} `json:"dividends"`

	PricesDaily        []rawPrice `json:"prices_daily"`
	PricesMonthlyStock []rawPrice `json:"prices_monthly_stock"`
	PricesMonthlyIndex []rawPrice `json:"prices_monthly_index"`
}

// rawStatement is a column-dated row table; null cells mean missing.
type rawStatement struct {
	Columns []string              `json:"columns"`
	Rows    map[string][]*float64 `json:"rows"`
}

type rawPrice struct {
	Date   string   `json:"date"`
	Close  *float64 `json:"close"`
	Volume *float64 `json:"volume"`
}

// ParseRawData decodes a vendor snapshot into the entity model's inputs:
// the raw data bundle plus the daily price history.
func ParseRawData(doc []byte) (stock.RawData, stock.PriceHistory, error) {
	var raw rawDocument
	if err := json.Unmarshal(doc, &raw); err != nil {
		return stock.RawData{}, nil, fmt.Errorf("failed to parse raw data document: %w", err)
	}

	data := stock.RawData{
		Info: stock.Info{
			Ticker:             raw.Info.Symbol,
			Name:               raw.Info.ShortName,
			Country:            raw.Info.Country,
			Region:             raw.Info.Region,
			Currency:           raw.Info.Currency,
			Industry:           raw.Info.Industry,
			Sector:             raw.Info.Sector,
			Summary:            raw.Info.Summary,
			VendorBeta:         deref(raw.Info.Beta),
			FiftyTwoWeekLow:    deref(raw.Info.FiftyTwoWeekLow),
			FiftyTwoWeekHigh:   deref(raw.Info.FiftyTwoWeekHigh),
			FiftyTwoWeekChange: deref(raw.Info.FiftyTwoWeekChange),
			TotalDebt:          deref(raw.Info.TotalDebt),
			PreviousClose:      deref(raw.Info.PreviousClose),
		},
		News:     raw.News,
		Officers: raw.Officers,

		NextYearGrowthEstimate: deref(raw.NextYearGrowthEstimate),
		NetInsiderPurchases:    deref(raw.NetInsiderPurchases),

		AnnualIncome:      convertStatement(raw.Statements.AnnualIncome),
		AnnualBalance:     convertStatement(raw.Statements.AnnualBalance),
		AnnualCashFlow:    convertStatement(raw.Statements.AnnualCashFlow),
		QuarterlyIncome:   convertStatement(raw.Statements.QuarterlyIncome),
		QuarterlyBalance:  convertStatement(raw.Statements.QuarterlyBalance),
		QuarterlyCashFlow: convertStatement(raw.Statements.QuarterlyCashFlow),
		TTMIncome:         convertStatement(raw.Statements.TTMIncome),
		TTMCashFlow:       convertStatement(raw.Statements.TTMCashFlow),

		StockMonthly: convertPrices(raw.PricesMonthlyStock),
		IndexMonthly: convertPrices(raw.PricesMonthlyIndex),
	}

	for _, d := range raw.Dividends {
		date, ok := parseDate(d.Date)
		if !ok {
			continue
		}
		data.Dividends = append(data.Dividends, stock.DividendEvent{Date: date, Amount: d.Amount})
	}

	return data, convertPrices(raw.PricesDaily), nil
}

func convertStatement(raw rawStatement) stock.StatementTable {
	table := stock.StatementTable{
		Columns: make([]time.Time, len(raw.Columns)),
		Rows:    make(map[string][]float64, len(raw.Rows)),
	}
	for i, c := range raw.Columns {
		if d, ok := parseDate(c); ok {
			table.Columns[i] = d
		}
	}
	for label, cells := range raw.Rows {
		row := make([]float64, len(raw.Columns))
		for i := range row {
			if i < len(cells) && cells[i] != nil {
				row[i] = *cells[i]
			} else {
				row[i] = math.NaN()
			}
		}
		table.Rows[label] = row
	}
	return table
}

func convertPrices(raw []rawPrice) stock.PriceHistory {
	out := make(stock.PriceHistory, 0, len(raw))
	for _, p := range raw {
		date, ok := parseDate(p.Date)
		if !ok {
			continue
		}
		out = append(out, stock.PricePoint{
			Date:   date,
			Close:  deref(p.Close),
			Volume: deref(p.Volume),
		})
	}
	return out
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if d, err := time.Parse(layout, s); err == nil {
			return d.UTC(), true
		}
	}
	return time.Time{}, false
}

func deref(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

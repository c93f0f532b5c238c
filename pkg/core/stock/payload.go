package stock

import (
	"math"

	"equity_insight/pkg/core/reference"
	"equity_insight/pkg/core/series"
)

// PriceRow is one price observation in the entity payload.
type PriceRow struct {
	Date   string   `json:"date"`
	Close  *float64 `json:"close"`
	Volume *float64 `json:"volume"`
}

// KeyRatioRow is one entry of the overview "key ratios" block.
type KeyRatioRow struct {
	Key       string   `json:"key"`
	FancyName string   `json:"fancy_name"`
	Value     *float64 `json:"value"`
	Format    string   `json:"format"`
}

// Payload is the JSON-ready aggregation of everything the entity knows.
// Missing numeric values are nil rather than NaN so the payload marshals
// with encoding/json.
type Payload struct {
	AsOf             string                         `json:"as_of"`
	BasicInformation map[string]any                 `json:"basic_information"`
	Prices           []PriceRow                     `json:"prices"`
	FinancialPoints  map[string]map[string]*float64 `json:"financial_points"`
	DerivedMetrics   map[string]any                 `json:"derived_metrics"`
	KeyRatios        []KeyRatioRow                  `json:"key_ratios"`
	News             []NewsItem                     `json:"news"`
	Officers         []Officer                      `json:"officers"`
}

func optional(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func seriesMapping(s series.Series) map[string]*float64 {
	out := make(map[string]*float64, s.Len())
	for i := 0; i < s.Len(); i++ {
		out[s.Key(i).String()] = optional(s.Value(i))
	}
	return out
}

// SeriesByName returns a derived-metric or alias series by its payload name.
func (s *Stock) SeriesByName(name string) (series.Series, bool) {
	switch name {
	case "debt_to_equity":
		return s.DebtToEquity, true
	case "net_profit_margin":
		return s.NetProfitMargin, true
	case "return_on_equity":
		return s.ReturnOnEquity, true
	case "current_ratio":
		return s.CurrentRatio, true
	case "earning_yoy_growth":
		return s.EarningYoYGrowth, true
	case "price_at":
		return s.PriceAtReport, true
	case "market_cap":
		return s.MarketCap, true
	case "price_to_book":
		return s.PriceToBook, true
	case "book_value_per_share":
		return s.BookValuePerShare, true
	case "earning_per_share":
		return s.EarningPerShare, true
	case "price_to_earning":
		return s.PriceToEarning, true
	case "trailing_peg_ratio":
		return s.TrailingPEGRatio, true
	case "enterprise_profit":
		return s.EnterpriseProfit, true
	case "beneish_m":
		return s.BeneishM, true
	case "altman_z":
		return s.AltmanZ, true
	case "dividend_per_share_history":
		return s.DividendPerShareHistory, true
	case "dividend_payout_ratio":
		return s.DividendPayoutRatio, true
	case "price_at_dividend":
		return s.PriceAtDividend, true
	case "dividend_yield":
		return s.DividendYield, true
	case "dividend_per_share_yoy_growth":
		return s.DividendPerShareYoYGrowth, true
	case "tax_rate":
		return s.TaxRate, true
	}
	if pts, ok := s.statementPoints[name]; ok {
		return pts, true
	}
	return series.Series{}, false
}

func (s *Stock) scalarByName(name string) *float64 {
	switch name {
	case "beta":
		if s.Beta == nil {
			return nil
		}
		v := *s.Beta
		return optional(v)
	case "risk_free_rate":
		return optional(s.RiskFreeRate)
	case "next_year_growth_estimates":
		return optional(s.NextYearGrowthEstimate)
	case "net_insider_purchases":
		return optional(s.NetInsiderPurchases)
	case "current_price":
		return optional(s.CurrentPrice)
	case "dividend_per_share_cagr":
		return optional(s.DividendPerShareCAGR)
	case "fifty_two_week_change":
		return optional(s.Info.FiftyTwoWeekChange)
	}
	return nil
}

func (s *Stock) basicInformation() map[string]any {
	strOrNil := func(v string) any {
		if v == "" {
			return nil
		}
		return v
	}
	numOrNil := func(v float64) any {
		if p := optional(v); p != nil {
			return *p
		}
		return nil
	}
	out := make(map[string]any, len(reference.StockInfo))
	for _, entry := range reference.StockInfo {
		switch entry.Alias {
		case "ticker":
			out[entry.Alias] = strOrNil(s.Info.Ticker)
		case "name":
			out[entry.Alias] = strOrNil(s.Info.Name)
		case "country":
			out[entry.Alias] = strOrNil(s.Info.Country)
		case "region":
			out[entry.Alias] = strOrNil(s.Info.Region)
		case "currency":
			out[entry.Alias] = strOrNil(s.Info.Currency)
		case "industry":
			out[entry.Alias] = strOrNil(s.Info.Industry)
		case "sector":
			out[entry.Alias] = strOrNil(s.Info.Sector)
		case "company_summary":
			out[entry.Alias] = strOrNil(s.Info.Summary)
		case "beta":
			out[entry.Alias] = numOrNil(s.Info.VendorBeta)
		case "fifty_two_week_low":
			out[entry.Alias] = numOrNil(s.Info.FiftyTwoWeekLow)
		case "fifty_two_week_high":
			out[entry.Alias] = numOrNil(s.Info.FiftyTwoWeekHigh)
		case "fifty_two_week_change":
			out[entry.Alias] = numOrNil(s.Info.FiftyTwoWeekChange)
		case "total_contractual_obligations":
			out[entry.Alias] = numOrNil(s.Info.TotalDebt)
		}
	}
	return out
}

// ToPayload assembles the complete entity payload: basic information, the
// raw price tape, the resolved statement points, every derived metric, the
// overview key ratios, news and officers.
func (s *Stock) ToPayload() Payload {
	priceRows := make([]PriceRow, 0, len(s.prices))
	for _, p := range s.prices {
		priceRows = append(priceRows, PriceRow{
			Date:   midnight(p.Date).Format("2006-01-02"),
			Close:  optional(p.Close),
			Volume: optional(p.Volume),
		})
	}

	financialPoints := make(map[string]map[string]*float64, len(reference.FinancialOrder))
	for _, alias := range reference.FinancialOrder {
		pts, ok := s.statementPoints[alias]
		if !ok {
			financialPoints[alias] = map[string]*float64{}
			continue
		}
		financialPoints[alias] = seriesMapping(pts)
	}

	derived := make(map[string]any, len(reference.DerivedMetricOrder))
	for _, name := range reference.DerivedMetricOrder {
		meta := reference.DerivedMetrics[name]
		if meta.Kind == reference.KindSeries {
			if sr, ok := s.SeriesByName(name); ok {
				derived[name] = seriesMapping(sr)
			} else {
				derived[name] = map[string]*float64{}
			}
			continue
		}
		derived[name] = s.scalarByName(name)
	}

	keyRatios := make([]KeyRatioRow, 0, len(reference.KeyRatios))
	for _, kr := range reference.KeyRatios {
		var value *float64
		if kr.Kind == reference.KindSeriesLatest {
			if sr, ok := s.SeriesByName(kr.Key); ok {
				value = optional(sr.LatestValid())
			}
		} else {
			value = s.scalarByName(kr.Key)
		}
		keyRatios = append(keyRatios, KeyRatioRow{
			Key:       kr.Key,
			FancyName: kr.FancyName,
			Value:     value,
			Format:    kr.Format,
		})
	}

	return Payload{
		AsOf:             s.asOf.Format("2006-01-02"),
		BasicInformation: s.basicInformation(),
		Prices:           priceRows,
		FinancialPoints:  financialPoints,
		DerivedMetrics:   derived,
		KeyRatios:        keyRatios,
		News:             s.News,
		Officers:         s.Officers,
	}
}

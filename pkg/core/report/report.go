// Package report turns a finished analysis (entity payload, valuation run,
// evaluation verdicts) into an initiation-report prompt and, through a
// model provider, into the report itself.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"equity_insight/pkg/core/evaluation"
	"equity_insight/pkg/core/prompt"
	"equity_insight/pkg/core/reference"
	"equity_insight/pkg/core/stock"
	"equity_insight/pkg/core/valuation"
)

// seriesPromptPoints caps how much history each series contributes to the
// prompt.
const seriesPromptPoints = 5

// DocumentURLs points the model at the company's primary filings.
type DocumentURLs struct {
	TenK  string `json:"ten_k,omitempty"`
	TenQ  string `json:"ten_q,omitempty"`
	Extra string `json:"extra,omitempty"`
}

// Request bundles everything the prompt builder needs for one company.
type Request struct {
	Payload    stock.Payload
	Valuation  valuation.Result
	PriceNow   float64
	Evaluation map[string]map[string]evaluation.CheckResult
	URLs       DocumentURLs
	Notes      string
}

// BuildPrompt renders the initiation-report template and appends the fact
// block: summary, basic information, key ratios, fair values, financial
// series, officers, evaluation verdicts and document URLs.
func BuildPrompt(req Request) (string, error) {
	tmpl, err := prompt.Get().Lookup("report.initiation")
	if err != nil {
		return "", err
	}

	ticker, _ := req.Payload.BasicInformation["ticker"].(string)
	name, _ := req.Payload.BasicInformation["name"].(string)
	if name == "" {
		name = ticker
	}
	head := tmpl.Render(map[string]string{
		"TICKER":       ticker,
		"COMPANY_NAME": name,
	})

	summary, _ := req.Payload.BasicInformation["company_summary"].(string)

	sections := []string{
		"Company Summary:\n" + orDash(strings.TrimSpace(summary)),
		"Stock basic information:\n" + orDash(basicInfoLines(req.Payload)),
		"Stock key ratios:\n" + orDash(keyRatioLines(req.Payload)),
		"Stock Fair values:\n" + orDash(fairValueLines(req.Valuation, req.PriceNow)),
		"Stock financial points\n(Original Series - latest 5):\n" + orDash(financialPointLines(req.Payload)) +
			"\n(Derived Series - latest 5):\n" + orDash(derivedSeriesLines(req.Payload)),
		"Company Officer:\n" + orDash(officerLines(req.Payload.Officers)),
		"Evaluation:\n" + orDash(evaluationLines(req.Evaluation)),
		"Online document URLs:\n" + urlLines(req.URLs),
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		sections = append(sections, "Additional notes from user:\n"+notes)
	}

	return head + "\n\n" + strings.Join(sections, "\n\n"), nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return strings.TrimSpace(s)
}

func basicInfoLines(p stock.Payload) string {
	var lines []string
	for _, entry := range reference.StockInfo {
		value, ok := p.BasicInformation[entry.Alias]
		if !ok || value == nil || entry.Alias == "company_summary" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %v", entry.FancyName, value))
	}
	return strings.Join(lines, "\n")
}

func keyRatioLines(p stock.Payload) string {
	var lines []string
	for _, kr := range p.KeyRatios {
		lines = append(lines, fmt.Sprintf("%s: %s", kr.FancyName, formatValue(kr.Value, kr.Format)))
	}
	return strings.Join(lines, "\n")
}

func formatValue(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	switch format {
	case "money":
		return fmt.Sprintf("$%.2f", *v)
	case "ratio":
		return fmt.Sprintf("%.2f", *v)
	default:
		return fmt.Sprintf("%.4g", *v)
	}
}

func fairValueLines(result valuation.Result, priceNow float64) string {
	var lines []string
	if !math.IsNaN(priceNow) {
		lines = append(lines, fmt.Sprintf("Current Price: $%.2f", priceNow))
	}
	for _, m := range result.Models {
		if math.IsNaN(m.FairValue) || math.IsInf(m.FairValue, 0) {
			lines = append(lines, fmt.Sprintf("%s: n/a", m.FancyName))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: $%.2f", m.FancyName, m.FairValue))
	}
	return strings.Join(lines, "\n")
}

func financialPointLines(p stock.Payload) string {
	var lines []string
	for _, alias := range reference.FinancialOrder {
		points := p.FinancialPoints[alias]
		if len(points) == 0 {
			continue
		}
		lines = append(lines, reference.Financials[alias].FancyName+": "+pointLine(points))
	}
	return strings.Join(lines, "\n")
}

func derivedSeriesLines(p stock.Payload) string {
	var lines []string
	for _, name := range reference.DerivedMetricOrder {
		meta := reference.DerivedMetrics[name]
		if meta.Kind != reference.KindSeries {
			continue
		}
		points, ok := p.DerivedMetrics[name].(map[string]*float64)
		if !ok || len(points) == 0 {
			continue
		}
		lines = append(lines, meta.FancyName+": "+pointLine(points))
	}
	return strings.Join(lines, "\n")
}

// pointLine renders the latest few observations as "date=value" pairs,
// newest first.
func pointLine(points map[string]*float64) string {
	dates := make([]string, 0, len(points))
	for d := range points {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > seriesPromptPoints {
		dates = dates[:seriesPromptPoints]
	}

	pairs := make([]string, 0, len(dates))
	for _, d := range dates {
		if v := points[d]; v != nil {
			pairs = append(pairs, fmt.Sprintf("%s=%.4g", d, *v))
		} else {
			pairs = append(pairs, d+"=n/a")
		}
	}
	return strings.Join(pairs, ", ")
}

func officerLines(officers []stock.Officer) string {
	var lines []string
	for _, o := range officers {
		line := o.Name
		if o.Title != "" {
			line += " — " + o.Title
		}
		if o.TotalPay != nil {
			line += fmt.Sprintf(" (total pay $%.0f)", *o.TotalPay)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func evaluationLines(all map[string]map[string]evaluation.CheckResult) string {
	var lines []string
	for _, category := range reference.CriterionCategories {
		signals, ok := all[category]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s]", category))
		for _, name := range reference.CriterionOrder[category] {
			r, ok := signals[name]
			if !ok {
				continue
			}
			verdict := "FAIL"
			if r.Check == 1.0 {
				verdict = "PASS"
			}
			lines = append(lines, fmt.Sprintf("  %s: %s (%s)", r.FancyName, verdict, r.Criteria))
		}
	}
	return strings.Join(lines, "\n")
}

func urlLines(urls DocumentURLs) string {
	var lines []string
	if urls.TenK != "" {
		lines = append(lines, "10-K: "+urls.TenK)
	}
	if urls.TenQ != "" {
		lines = append(lines, "10-Q: "+urls.TenQ)
	}
	if urls.Extra != "" {
		lines = append(lines, "Extra: "+urls.Extra)
	}
	if len(lines) == 0 {
		return "(none provided)"
	}
	return strings.Join(lines, "\n")
}

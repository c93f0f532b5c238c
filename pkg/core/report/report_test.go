package report

import (
	"context"
	"math"
	"strings"
	"testing"

	"equity_insight/pkg/core/evaluation"
	"equity_insight/pkg/core/stock"
	"equity_insight/pkg/core/valuation"
)

func f(v float64) *float64 { return &v }

func fixtureRequest() Request {
	return Request{
		Payload: stock.Payload{
			AsOf: "2025-04-01",
			BasicInformation: map[string]any{
				"ticker":          "ACME",
				"name":            "Acme Corp",
				"sector":          "Technology",
				"company_summary": "Makes everything.",
			},
			KeyRatios: []stock.KeyRatioRow{
				{Key: "current_price", FancyName: "Current Price", Value: f(100), Format: "money"},
				{Key: "beta", FancyName: "Beta", Value: nil, Format: "raw"},
			},
			FinancialPoints: map[string]map[string]*float64{
				"total_equity": {
					"2024-12-31": f(1000), "2023-12-31": f(900), "2022-12-31": f(800),
					"2021-12-31": f(700), "2020-12-31": f(600), "2019-12-31": f(500),
				},
			},
			DerivedMetrics: map[string]any{
				"return_on_equity": map[string]*float64{
					"2024-12-31": f(0.18), "2023-12-31": nil,
				},
			},
			Officers: []stock.Officer{
				{Name: "J. Doe", Title: "CEO", TotalPay: f(1000000)},
			},
		},
		Valuation: valuation.Result{
			Models: []valuation.ModelResult{
				{Key: "graham_number", FancyName: "Graham Number", FairValue: 90},
				{Key: "excess_return", FancyName: "Excess Return", FairValue: math.NaN()},
			},
		},
		PriceNow: 100,
		Evaluation: map[string]map[string]evaluation.CheckResult{
			"health": {
				"current_ratio": {
					Category: "health", Name: "current_ratio",
					FancyName: "Current Ratio", Criteria: ">= 1.5", Check: 1.0,
				},
			},
		},
		URLs: DocumentURLs{TenK: "https://example.com/10k"},
	}
}

func TestBuildPrompt(t *testing.T) {
	text, err := BuildPrompt(fixtureRequest())
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Ticker: ACME",
		"# Acme Corp (ACME)",
		"Company Summary:\nMakes everything.",
		"Current Price: $100.00",
		"Beta: n/a",
		"Graham Number: $90.00",
		"Excess Return: n/a",
		"Total Equity: 2024-12-31=1000",
		"Current Ratio: PASS (>= 1.5)",
		"10-K: https://example.com/10k",
		"J. Doe — CEO (total pay $1000000)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Latest-5 cap drops the two oldest equity observations.
	if strings.Contains(text, "2019-12-31") {
		t.Error("series must be capped at the latest five points")
	}
	if !strings.Contains(text, "2020-12-31") {
		t.Error("fifth-newest point must survive the cap")
	}
}

func TestBuildPromptNoURLs(t *testing.T) {
	req := fixtureRequest()
	req.URLs = DocumentURLs{}
	text, err := BuildPrompt(req)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "Online document URLs:\n(none provided)") {
		t.Error("missing URLs must be stated explicitly")
	}
}

func TestParseRatingHeadline(t *testing.T) {
	md := "# Acme Corp (ACME) — BUY — Target Price: $1,234.50\n\nBody."
	rating, ok := ParseRatingHeadline(md)
	if !ok {
		t.Fatal("headline not recognized")
	}
	if rating.Rating != "BUY" || rating.TargetPrice != 1234.50 {
		t.Errorf("unexpected rating: %+v", rating)
	}

	if _, ok := ParseRatingHeadline("# No verdict here"); ok {
		t.Error("a headline without a verdict must not parse")
	}
}

// fakeProvider returns canned responses: the report first, then the rating
// JSON for any call carrying a system prompt.
type fakeProvider struct {
	report string
	rating string
	calls  int
}

func (p *fakeProvider) GenerateResponse(_ context.Context, _ string, systemPrompt string, _ map[string]interface{}) (string, error) {
	p.calls++
	if systemPrompt != "" {
		return p.rating, nil
	}
	return p.report, nil
}

func (p *fakeProvider) AdaptInstructions(raw string) string { return raw }

func TestGenerateParsesHeadlineWithoutSecondCall(t *testing.T) {
	provider := &fakeProvider{
		report: "```markdown\n# Acme Corp (ACME) — HOLD — Target Price: $88.00\n\nBody.\n```",
	}
	md, rating, err := NewGenerator(provider).Generate(context.Background(), fixtureRequest())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(md, "```") {
		t.Error("markdown fence not stripped")
	}
	if rating == nil || rating.Rating != "HOLD" || rating.TargetPrice != 88 {
		t.Errorf("unexpected rating: %+v", rating)
	}
	if provider.calls != 1 {
		t.Errorf("expected a single provider call, got %d", provider.calls)
	}
}

func TestGenerateFallsBackToRatingExtraction(t *testing.T) {
	provider := &fakeProvider{
		report: "# A report without the verdict headline\n\nBody.",
		rating: "{'rating': 'sell', 'target_price': 42,}",
	}
	_, rating, err := NewGenerator(provider).Generate(context.Background(), fixtureRequest())
	if err != nil {
		t.Fatal(err)
	}
	if rating == nil || rating.Rating != "SELL" || rating.TargetPrice != 42 {
		t.Errorf("unexpected rating: %+v", rating)
	}
	if provider.calls != 2 {
		t.Errorf("expected two provider calls, got %d", provider.calls)
	}
}

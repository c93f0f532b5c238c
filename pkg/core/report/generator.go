package report

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"equity_insight/pkg/core/llm"
	"equity_insight/pkg/core/utils"
)

// Rating is the headline verdict extracted from a finished report.
type Rating struct {
	Rating      string  `json:"rating"`
	TargetPrice float64 `json:"target_price"`
}

// Generator drives a model provider through the full report workflow.
type Generator struct {
	provider llm.Provider
}

// NewGenerator wraps a provider.
func NewGenerator(p llm.Provider) *Generator {
	return &Generator{provider: p}
}

// Generate builds the prompt, asks the provider for the report and cleans
// the returned Markdown. The rating is parsed from the report headline; a
// headline the model mangled comes back as nil rating, not an error.
func (g *Generator) Generate(ctx context.Context, req Request) (string, *Rating, error) {
	promptText, err := BuildPrompt(req)
	if err != nil {
		return "", nil, err
	}

	raw, err := g.provider.GenerateResponse(ctx, promptText, "", map[string]interface{}{
		"google_search": true,
	})
	if err != nil {
		return "", nil, fmt.Errorf("report generation failed: %w", err)
	}

	markdown := utils.CleanMarkdown(raw)
	if !utils.ValidateMarkdown(markdown) {
		return "", nil, fmt.Errorf("provider returned unparseable markdown")
	}

	if rating, ok := ParseRatingHeadline(markdown); ok {
		return markdown, &rating, nil
	}
	rating, err := g.extractRating(ctx, markdown)
	if err != nil {
		return markdown, nil, nil
	}
	return markdown, rating, nil
}

// headlineRe matches "# Name (TICK) — BUY — Target Price: $123.45".
var headlineRe = regexp.MustCompile(`(?mi)^#\s+.*—\s*(buy|hold|sell)\s*—\s*target price:\s*\$?([0-9][0-9,]*\.?[0-9]*)`)

// ParseRatingHeadline reads the rating and target price straight from the
// report's H1 line.
func ParseRatingHeadline(markdown string) (Rating, bool) {
	m := headlineRe.FindStringSubmatch(markdown)
	if m == nil {
		return Rating{}, false
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err != nil {
		return Rating{}, false
	}
	return Rating{Rating: strings.ToUpper(m[1]), TargetPrice: price}, true
}

const ratingSystemPrompt = `You extract the final verdict from an equity research report. Respond with a single JSON object: {"rating": "BUY"|"HOLD"|"SELL", "target_price": <number>}. No prose.`

// extractRating asks the provider to read the verdict back out of the
// report, then parses the reply leniently.
func (g *Generator) extractRating(ctx context.Context, markdown string) (*Rating, error) {
	raw, err := g.provider.GenerateResponse(ctx, markdown, ratingSystemPrompt, map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var rating Rating
	if _, err := utils.SmartParse(utils.CleanMarkdown(raw), &rating); err != nil {
		return nil, err
	}
	rating.Rating = strings.ToUpper(rating.Rating)
	return &rating, nil
}

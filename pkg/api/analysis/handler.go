// Package analysis serves the full fundamental-analysis pipeline over HTTP:
// raw vendor data in, entity payload, fair values, evaluation verdicts and
// optionally a generated initiation report out.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"equity_insight/pkg/api/config"
	"equity_insight/pkg/core/evaluation"
	"equity_insight/pkg/core/ingest"
	"equity_insight/pkg/core/llm"
	"equity_insight/pkg/core/macro"
	"equity_insight/pkg/core/report"
	"equity_insight/pkg/core/stock"
	"equity_insight/pkg/core/valuation"
)

const reportTimeout = 5 * time.Minute

// Handler runs the analysis pipeline for the HTTP endpoints.
type Handler struct {
	cfg           *config.Handler
	macroProvider macro.IndicatorProvider
}

func NewHandler(cfg *config.Handler, provider macro.IndicatorProvider) *Handler {
	return &Handler{cfg: cfg, macroProvider: provider}
}

// Overrides mirrors valuation.Overrides with JSON tags; absent fields keep
// the estimated parameters.
type Overrides struct {
	MarginOfSafety      *float64 `json:"margin_of_safety"`
	GrowthRate          *float64 `json:"growth_rate"`
	RiskFreeRate        *float64 `json:"risk_free_rate"`
	DiscountRate        *float64 `json:"discount_rate"`
	DeclineRate         *float64 `json:"decline_rate"`
	AverageMarketReturn *float64 `json:"average_market_return"`
	NYears1             *int     `json:"n_years1"`
	NYears2             *int     `json:"n_years2"`
	TerminalGrowthRate  *float64 `json:"terminal_growth_rate"`
}

func (o *Overrides) toCore() valuation.Overrides {
	if o == nil {
		return valuation.Overrides{}
	}
	return valuation.Overrides{
		MarginOfSafety:      o.MarginOfSafety,
		GrowthRate:          o.GrowthRate,
		RiskFreeRate:        o.RiskFreeRate,
		DiscountRate:        o.DiscountRate,
		DeclineRate:         o.DeclineRate,
		AverageMarketReturn: o.AverageMarketReturn,
		NYears1:             o.NYears1,
		NYears2:             o.NYears2,
		TerminalGrowthRate:  o.TerminalGrowthRate,
	}
}

// AnalyzeRequest carries the raw vendor document plus run options.
type AnalyzeRequest struct {
	AsOf      string              `json:"as_of"`
	Data      json.RawMessage     `json:"data"`
	Overrides *Overrides          `json:"overrides"`
	URLs      report.DocumentURLs `json:"urls"`
	Notes     string              `json:"notes"`
}

// AnalyzeResponse is the complete pipeline output for one company.
type AnalyzeResponse struct {
	RequestID  string                                       `json:"request_id"`
	Payload    stock.Payload                                `json:"payload"`
	Valuation  valuation.Result                             `json:"valuation"`
	Evaluation map[string]map[string]evaluation.CheckResult `json:"evaluation"`
}

type pipelineResult struct {
	stock      *stock.Stock
	payload    stock.Payload
	valuation  valuation.Result
	priceNow   float64
	evaluation map[string]map[string]evaluation.CheckResult
}

func (h *Handler) runPipeline(req AnalyzeRequest) (*pipelineResult, error) {
	asOf := time.Now().UTC()
	if req.AsOf != "" {
		parsed, err := time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			return nil, &badRequestError{msg: "invalid as_of date: " + req.AsOf}
		}
		asOf = parsed
	}

	if len(req.Data) == 0 {
		return nil, &badRequestError{msg: "missing data document"}
	}
	data, prices, err := ingest.ParseRawData(req.Data)
	if err != nil {
		return nil, &badRequestError{msg: err.Error()}
	}

	s := stock.New(data, prices, asOf)

	cfg := h.cfg.Snapshot()
	macros := macro.NewContext(h.macroProvider, cfg.BaseCurrencyCountry, s.Country, cfg.MacroYears)

	valuator := valuation.New(s)
	result := valuator.Valuate(req.Overrides.toCore())

	checks, err := evaluation.New(s, macros).RunAll()
	if err != nil {
		return nil, err
	}

	return &pipelineResult{
		stock:      s,
		payload:    s.ToPayload(),
		valuation:  result,
		priceNow:   valuator.PriceNow(),
		evaluation: checks,
	}, nil
}

type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }

func (h *Handler) decodeAndRun(w http.ResponseWriter, r *http.Request) (*pipelineResult, AnalyzeRequest, bool) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return nil, AnalyzeRequest{}, false
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil, req, false
	}

	result, err := h.runPipeline(req)
	if err != nil {
		var badReq *badRequestError
		var benchErr *evaluation.UnknownBenchmarkError
		switch {
		case errors.As(err, &badReq):
			http.Error(w, badReq.msg, http.StatusBadRequest)
		case errors.As(err, &benchErr):
			http.Error(w, benchErr.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return nil, req, false
	}
	return result, req, true
}

// HandleAnalyze runs the pipeline and returns payload, valuation and
// evaluation as one JSON document.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	result, _, ok := h.decodeAndRun(w, r)
	if !ok {
		return
	}

	requestID := uuid.New().String()
	log.Printf("[analysis] %s ticker=%s", requestID, result.stock.Ticker)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AnalyzeResponse{
		RequestID:  requestID,
		Payload:    result.payload,
		Valuation:  result.valuation,
		Evaluation: result.evaluation,
	})
}

// HandlePrompt runs the pipeline and returns the initiation-report prompt
// as plain text, ready to paste into any capable model.
func (h *Handler) HandlePrompt(w http.ResponseWriter, r *http.Request) {
	result, req, ok := h.decodeAndRun(w, r)
	if !ok {
		return
	}

	text, err := report.BuildPrompt(report.Request{
		Payload:    result.payload,
		Valuation:  result.valuation,
		PriceNow:   result.priceNow,
		Evaluation: result.evaluation,
		URLs:       req.URLs,
		Notes:      req.Notes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

// ReportResponse wraps a generated report and its extracted verdict.
type ReportResponse struct {
	RequestID string         `json:"request_id"`
	Markdown  string         `json:"markdown"`
	Rating    *report.Rating `json:"rating"`
}

// HandleReport runs the pipeline and asks the configured provider to write
// the initiation report.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	result, req, ok := h.decodeAndRun(w, r)
	if !ok {
		return
	}

	cfg := h.cfg.Snapshot()
	provider, err := llm.FromName(cfg.Provider)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), reportTimeout)
	defer cancel()

	requestID := uuid.New().String()
	log.Printf("[report] %s ticker=%s provider=%s", requestID, result.stock.Ticker, cfg.Provider)

	markdown, rating, err := report.NewGenerator(provider).Generate(ctx, report.Request{
		Payload:    result.payload,
		Valuation:  result.valuation,
		PriceNow:   result.priceNow,
		Evaluation: result.evaluation,
		URLs:       req.URLs,
		Notes:      req.Notes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ReportResponse{
		RequestID: requestID,
		Markdown:  markdown,
		Rating:    rating,
	})
}

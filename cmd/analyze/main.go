// Command analyze runs the fundamental-analysis pipeline over a saved
// vendor data document and prints the result, or the initiation-report
// prompt, to stdout.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"equity_insight/pkg/core/evaluation"
	"equity_insight/pkg/core/ingest"
	"equity_insight/pkg/core/macro"
	"equity_insight/pkg/core/report"
	"equity_insight/pkg/core/stock"
	"equity_insight/pkg/core/valuation"
)

func main() {
	godotenv.Load()

	dataPath := flag.String("data", "", "path to the raw vendor data document (JSON)")
	asOfFlag := flag.String("as-of", "", "analysis date, YYYY-MM-DD (default: today)")
	baseCurrency := flag.String("base-currency", "USA", "ISO3 country of the base currency")
	emitPrompt := flag.Bool("prompt", false, "print the initiation-report prompt instead of JSON")
	tenK := flag.String("ten-k", "", "10-K URL to embed in the prompt")
	tenQ := flag.String("ten-q", "", "10-Q URL to embed in the prompt")
	flag.Parse()

	if *dataPath == "" {
		log.Fatal("usage: analyze -data <document.json> [-as-of YYYY-MM-DD] [-prompt]")
	}

	doc, err := os.ReadFile(*dataPath)
	if err != nil {
		log.Fatalf("failed to read data document: %v", err)
	}
	data, prices, err := ingest.ParseRawData(doc)
	if err != nil {
		log.Fatal(err)
	}

	asOf := time.Now().UTC()
	if *asOfFlag != "" {
		asOf, err = time.Parse("2006-01-02", *asOfFlag)
		if err != nil {
			log.Fatalf("invalid -as-of date: %v", err)
		}
	}

	s := stock.New(data, prices, asOf)
	macros := macro.NewContext(ingest.NewWorldBankClient(), *baseCurrency, s.Country, 10)

	valuator := valuation.New(s)
	result := valuator.Valuate(valuation.Overrides{})

	checks, err := evaluation.New(s, macros).RunAll()
	if err != nil {
		log.Fatal(err)
	}

	if *emitPrompt {
		text, err := report.BuildPrompt(report.Request{
			Payload:    s.ToPayload(),
			Valuation:  result,
			PriceNow:   valuator.PriceNow(),
			Evaluation: checks,
			URLs:       report.DocumentURLs{TenK: *tenK, TenQ: *tenQ},
		})
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.WriteString(text + "\n")
		return
	}

	out := struct {
		Payload    stock.Payload                                `json:"payload"`
		Valuation  valuation.Result                             `json:"valuation"`
		Evaluation map[string]map[string]evaluation.CheckResult `json:"evaluation"`
	}{s.ToPayload(), result, checks}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

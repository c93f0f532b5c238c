package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"equity_insight/pkg/api/analysis"
	"equity_insight/pkg/api/config"
	"equity_insight/pkg/core/ingest"
	"equity_insight/pkg/core/prompt"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load(filepath.Join("config", "app.yaml"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.PromptDir != "" {
		if err := prompt.LoadFromDirectory(cfg.PromptDir); err != nil {
			log.Printf("[WARNING] prompt overrides not loaded: %v", err)
		} else {
			log.Printf("[prompt] %d templates loaded", prompt.Get().Count())
		}
	}

	configHandler := config.NewHandler(cfg)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	analysisHandler := analysis.NewHandler(configHandler, ingest.NewWorldBankClient())
	http.HandleFunc("/api/analysis", analysisHandler.HandleAnalyze)
	http.HandleFunc("/api/analysis/prompt", analysisHandler.HandlePrompt)
	http.HandleFunc("/api/analysis/report", analysisHandler.HandleReport)

	log.Printf("API server starting on %s...", cfg.Port)
	log.Println("  - GET  /api/config")
	log.Println("  - POST /api/config/switch")
	log.Println("  - POST /api/analysis          (payload + fair values + evaluation)")
	log.Println("  - POST /api/analysis/prompt   (initiation-report prompt, plain text)")
	log.Println("  - POST /api/analysis/report   (model-written report with rating)")

	if err := http.ListenAndServe(cfg.Port, nil); err != nil {
		log.Printf("[FATAL] server failed to start: %v", err)
		os.Exit(1)
	}
}

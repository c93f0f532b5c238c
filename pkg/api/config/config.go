// Package config carries the server configuration and the endpoints that
// read and switch it at runtime.
package config

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"

	"gopkg.in/yaml.v2"

	"equity_insight/pkg/core/llm"
)

// Config is the server configuration, loaded from config/app.yaml.
type Config struct {
	Port                string `yaml:"port"`
	Provider            string `yaml:"provider"`
	Model               string `yaml:"model"`
	PromptDir           string `yaml:"prompt_dir"`
	BaseCurrencyCountry string `yaml:"base_currency_country"`
	MacroYears          int    `yaml:"macro_years"`
}

// Load reads the YAML config file, filling defaults for anything missing.
// A missing file yields the pure defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:                ":8080",
		Provider:            "gemini",
		BaseCurrencyCountry: "USA",
		MacroYears:          10,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

type Response struct {
	ActiveProvider      string   `json:"active_provider"`
	Model               string   `json:"model"`
	BaseCurrencyCountry string   `json:"base_currency_country"`
	Available           []string `json:"available"`
}

type SwitchRequest struct {
	Provider string `json:"provider"`
}

// Handler serves the config endpoints over a shared, mutable config.
type Handler struct {
	mu  sync.RWMutex
	cfg *Config
}

func NewHandler(cfg *Config) *Handler {
	return &Handler{cfg: cfg}
}

// Snapshot returns a copy of the current config.
func (h *Handler) Snapshot() Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return *h.cfg
}

func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	cfg := h.Snapshot()
	json.NewEncoder(w).Encode(Response{
		ActiveProvider:      cfg.Provider,
		Model:               cfg.Model,
		BaseCurrencyCountry: cfg.BaseCurrencyCountry,
		Available:           []string{"gemini", "deepseek", "qwen"},
	})
}

func (h *Handler) HandleSwitch(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req SwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if _, err := llm.FromName(req.Provider); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	h.cfg.Provider = req.Provider
	h.mu.Unlock()

	h.HandleConfig(w, r)
}

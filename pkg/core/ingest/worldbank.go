// Package ingest turns external data into the core's input types: World
// Bank macro indicators, vendor raw-data documents and HTML statement
// tables.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"equity_insight/pkg/core/macro"
)

const (
	worldBankBaseURL = "https://api.worldbank.org/v2/country/%s/indicator/%s"
	worldBankAgent   = "equity-insight/1.0"

	worldBankTimeout = 15 * time.Second
	worldBankRetries = 2
	worldBankBackoff = 600 * time.Millisecond
)

type wbCacheKey struct {
	country   string
	indicator string
	mrv       int
}

// WorldBankClient fetches most-recent-value indicator series from the World
// Bank API. Responses are cached per (country, indicator, window) and fetch
// failures degrade to an empty series, so a flaky macro feed never blocks
// an analysis.
type WorldBankClient struct {
	httpClient *http.Client
	baseURL    string

	mu    sync.Mutex
	cache map[wbCacheKey][]macro.YearValue
}

var _ macro.IndicatorProvider = (*WorldBankClient)(nil)

// NewWorldBankClient creates a client against the public World Bank API.
func NewWorldBankClient() *WorldBankClient {
	return &WorldBankClient{
		httpClient: &http.Client{Timeout: worldBankTimeout},
		baseURL:    worldBankBaseURL,
		cache:      make(map[wbCacheKey][]macro.YearValue),
	}
}

// NewWorldBankClientWithBaseURL points the client at an alternate endpoint.
// Used by tests.
func NewWorldBankClientWithBaseURL(base string) *WorldBankClient {
	c := NewWorldBankClient()
	c.baseURL = base
	return c
}

// Indicators implements macro.IndicatorProvider: one fetch per indicator
// code, each returning up to mrv most recent (year, value) observations
// sorted ascending by year.
func (c *WorldBankClient) Indicators(countryISO3 string, indicatorCodes []string, mrv int) (map[string][]macro.YearValue, error) {
	if mrv < 1 {
		mrv = 1
	}
	out := make(map[string][]macro.YearValue, len(indicatorCodes))
	for _, code := range indicatorCodes {
		out[code] = c.series(countryISO3, code, mrv)
	}
	return out, nil
}

func (c *WorldBankClient) series(countryISO3, indicator string, mrv int) []macro.YearValue {
	key := wbCacheKey{country: countryISO3, indicator: indicator, mrv: mrv}

	c.mu.Lock()
	cached, ok := c.cache[key]
	c.mu.Unlock()
	if ok {
		return cached
	}

	var rows []macro.YearValue
	for attempt := 0; attempt <= worldBankRetries; attempt++ {
		var err error
		rows, err = c.fetch(countryISO3, indicator, mrv)
		if err == nil {
			break
		}
		if attempt < worldBankRetries {
			time.Sleep(worldBankBackoff * time.Duration(attempt+1))
			continue
		}
		rows = nil
	}

	c.mu.Lock()
	c.cache[key] = rows
	c.mu.Unlock()
	return rows
}

func (c *WorldBankClient) fetch(countryISO3, indicator string, mrv int) ([]macro.YearValue, error) {
	endpoint := fmt.Sprintf(c.baseURL, countryISO3, indicator)
	params := url.Values{}
	params.Set("MRV", strconv.Itoa(mrv))
	params.Set("format", "json")

	req, err := http.NewRequest(http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", worldBankAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("world bank request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("world bank returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return parseWorldBankPayload(body)
}

// parseWorldBankPayload decodes the two-element World Bank response: page
// metadata first, observations second. A malformed or paginated-empty
// payload yields an empty series, not an error.
func parseWorldBankPayload(body []byte) ([]macro.YearValue, error) {
	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse world bank response: %w", err)
	}
	if len(envelope) < 2 {
		return nil, nil
	}

	var observations []struct {
		Date  string   `json:"date"`
		Value *float64 `json:"value"`
	}
	if err := json.Unmarshal(envelope[1], &observations); err != nil {
		return nil, nil
	}

	rows := make([]macro.YearValue, 0, len(observations))
	for _, obs := range observations {
		year, err := strconv.Atoi(obs.Date)
		if err != nil {
			continue
		}
		rows = append(rows, macro.YearValue{Year: year, Value: obs.Value})
	}
	// ascending by year
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && rows[j].Year < rows[j-1].Year; j-- {
			rows[j], rows[j-1] = rows[j-1], rows[j]
		}
	}
	return rows, nil
}

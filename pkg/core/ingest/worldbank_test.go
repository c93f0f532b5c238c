package ingest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func testWorldBankServer(t *testing.T, handler http.HandlerFunc) *WorldBankClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewWorldBankClientWithBaseURL(server.URL + "/v2/country/%s/indicator/%s")
}

func TestIndicatorsParsesAndSortsAscending(t *testing.T) {
	client := testWorldBankServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/country/USA/indicator/NY.GDP.MKTP.KD.ZG" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("MRV"); got != "3" {
			t.Errorf("expected MRV=3, got %s", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("expected format=json, got %s", got)
		}
		// Most-recent-first with a null gap, as the API serves it.
		fmt.Fprint(w, `[{"page":1},[
			{"date":"2024","value":2.8},
			{"date":"2023","value":null},
			{"date":"2022","value":2.1}
		]]`)
	})

	out, err := client.Indicators("USA", []string{"NY.GDP.MKTP.KD.ZG"}, 3)
	if err != nil {
		t.Fatal(err)
	}
	rows := out["NY.GDP.MKTP.KD.ZG"]
	if len(rows) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(rows))
	}
	if rows[0].Year != 2022 || rows[2].Year != 2024 {
		t.Errorf("expected ascending years, got %d..%d", rows[0].Year, rows[2].Year)
	}
	if rows[1].Value != nil {
		t.Errorf("expected null value for 2023, got %v", *rows[1].Value)
	}
	if rows[2].Value == nil || *rows[2].Value != 2.8 {
		t.Errorf("unexpected 2024 value: %v", rows[2].Value)
	}
}

func TestIndicatorsCachesPerSeries(t *testing.T) {
	var hits int32
	client := testWorldBankServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprint(w, `[{"page":1},[{"date":"2024","value":1.5}]]`)
	})

	for i := 0; i < 3; i++ {
		if _, err := client.Indicators("DEU", []string{"FP.CPI.TOTL.ZG"}, 5); err != nil {
			t.Fatal(err)
		}
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected a single upstream fetch, got %d", got)
	}
}

func TestIndicatorsDegradeToEmptyOnServerError(t *testing.T) {
	var hits int32
	client := testWorldBankServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	out, err := client.Indicators("JPN", []string{"FR.INR.LEND"}, 5)
	if err != nil {
		t.Fatalf("fetch failures must degrade, not error: %v", err)
	}
	if rows := out["FR.INR.LEND"]; len(rows) != 0 {
		t.Errorf("expected empty series, got %d rows", len(rows))
	}
	// Initial attempt plus two retries.
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}

	// The failure is cached too: no further upstream traffic.
	if _, err := client.Indicators("JPN", []string{"FR.INR.LEND"}, 5); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Errorf("expected failure to be cached, got %d attempts", got)
	}
}

func TestIndicatorsSkipsNonAnnualDates(t *testing.T) {
	client := testWorldBankServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"page":1},[
			{"date":"2024Q1","value":9.9},
			{"date":"2023","value":1.2}
		]]`)
	})

	out, err := client.Indicators("GBR", []string{"GC.DOD.TOTL.GD.ZS"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	rows := out["GC.DOD.TOTL.GD.ZS"]
	if len(rows) != 1 || rows[0].Year != 2023 {
		t.Fatalf("expected only the annual observation, got %+v", rows)
	}
}

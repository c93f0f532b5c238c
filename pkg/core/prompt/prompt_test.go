package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltInInitiationTemplate(t *testing.T) {
	tmpl, err := Get().Lookup("report.initiation")
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.Category != "report" {
		t.Errorf("expected category report, got %s", tmpl.Category)
	}

	rendered := tmpl.Render(map[string]string{
		"TICKER":       "ACME",
		"COMPANY_NAME": "Acme Corp",
	})
	if !strings.Contains(rendered, "Ticker: ACME") {
		t.Error("ticker placeholder not rendered")
	}
	if !strings.Contains(rendered, "# Acme Corp (ACME)") {
		t.Error("headline placeholder not rendered")
	}
	if strings.Contains(rendered, "{{TICKER}}") {
		t.Error("placeholder left behind")
	}
}

func TestRenderLeavesUnknownPlaceholders(t *testing.T) {
	tmpl := &Template{ID: "x", Body: "{{A}} and {{B}}"}
	got := tmpl.Render(map[string]string{"A": "1"})
	if got != "1 and {{B}}" {
		t.Errorf("unexpected render: %q", got)
	}
}

func TestLoadFromDirectoryOverride(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "report")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	// Hjson: comments and unquoted keys are fine.
	override := `{
  # tuned wording
  name: Custom
  body: "Say {{THING}}."
}`
	if err := os.WriteFile(filepath.Join(sub, "custom.hjson"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadFromDirectory(dir); err != nil {
		t.Fatal(err)
	}

	tmpl, err := Get().Lookup("report.custom")
	if err != nil {
		t.Fatal(err)
	}
	if tmpl.Category != "report" || tmpl.Name != "Custom" {
		t.Errorf("override misloaded: %+v", tmpl)
	}
	if got := tmpl.Render(map[string]string{"THING": "hello"}); got != "Say hello." {
		t.Errorf("unexpected render: %q", got)
	}
}

func TestLoadFromMissingDirectory(t *testing.T) {
	if err := LoadFromDirectory(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

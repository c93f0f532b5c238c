package ingest

import (
	"math"
	"testing"
	"time"
)

const balanceSheetHTML = `
<html><body>
<table>
  <tr><th>Breakdown</th><th>2024-12-31</th><th>2023-12-31</th><th>2022-12-31</th></tr>
  <tr><td>Total Assets</td><td>1,500.0</td><td>1,400.0</td><td>1,300.0</td></tr>
  <tr><td>Net Income</td><td>120.5</td><td>(35.2)</td><td>98.0</td></tr>
  <tr><td>Goodwill</td><td>--</td><td>50.0</td><td>-</td></tr>
</table>
</body></html>`

func TestParseStatementHTML(t *testing.T) {
	table, err := ParseStatementHTML(balanceSheetHTML)
	if err != nil {
		t.Fatal(err)
	}

	if len(table.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(table.Columns))
	}
	want := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	if !table.Columns[0].Equal(want) {
		t.Errorf("expected first column %v, got %v", want, table.Columns[0])
	}

	assets, ok := table.Row("Total Assets")
	if !ok {
		t.Fatal("missing Total Assets row")
	}
	if assets[0] != 1500.0 || assets[2] != 1300.0 {
		t.Errorf("comma-grouped values misparsed: %v", assets)
	}

	income, _ := table.Row("Net Income")
	if income[1] != -35.2 {
		t.Errorf("parenthesized value must be negative, got %v", income[1])
	}

	goodwill, _ := table.Row("Goodwill")
	if !math.IsNaN(goodwill[0]) || !math.IsNaN(goodwill[2]) {
		t.Errorf("dashes must read as missing, got %v", goodwill)
	}
	if goodwill[1] != 50.0 {
		t.Errorf("expected 50.0, got %v", goodwill[1])
	}
}

func TestParseStatementHTMLNoTable(t *testing.T) {
	if _, err := ParseStatementHTML("<html><body><p>maintenance</p></body></html>"); err == nil {
		t.Fatal("expected an error for a page without a statement table")
	}
}

func TestParseStatementNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1,234.5", 1234.5},
		{"(1,234.5)", -1234.5},
		{"$42", 42},
		{"0", 0},
	}
	for _, c := range cases {
		if got := parseStatementNumber(c.in); got != c.want {
			t.Errorf("parseStatementNumber(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	for _, missing := range []string{"", "-", "--", "—", "N/A", "n.m."} {
		if got := parseStatementNumber(missing); !math.IsNaN(got) {
			t.Errorf("parseStatementNumber(%q) = %v, want NaN", missing, got)
		}
	}
}

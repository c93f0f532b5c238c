package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"equity_insight/pkg/core/stock"
)

// statement pages render one table per statement: the header row carries
// report dates, each body row a line-item label followed by one cell per
// date. Numbers come comma-grouped, parenthesized when negative, with
// dashes for missing cells.
var statementDateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseStatementHTML extracts the first statement table from an HTML page.
func ParseStatementHTML(html string) (stock.StatementTable, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return stock.StatementTable{}, fmt.Errorf("failed to parse statement html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return stock.StatementTable{}, fmt.Errorf("no statement table found")
	}

	var columns []time.Time
	table.Find("tr").First().Find("th, td").Each(func(i int, cell *goquery.Selection) {
		if i == 0 {
			return // line-item header
		}
		if d, ok := parseStatementDate(cleanCell(cell.Text())); ok {
			columns = append(columns, d)
		}
	})
	if len(columns) == 0 {
		return stock.StatementTable{}, fmt.Errorf("statement table has no dated columns")
	}

	rows := make(map[string][]float64)
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := tr.Find("th, td")
		label := cleanCell(cells.First().Text())
		if label == "" {
			return
		}
		values := make([]float64, len(columns))
		for j := range values {
			values[j] = math.NaN()
			if cell := cells.Eq(j + 1); cell.Length() > 0 {
				values[j] = parseStatementNumber(cleanCell(cell.Text()))
			}
		}
		rows[label] = values
	})

	return stock.StatementTable{Columns: columns, Rows: rows}, nil
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, " ", " "))
}

func parseStatementDate(s string) (time.Time, bool) {
	for _, layout := range statementDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseStatementNumber reads one statement cell: commas stripped,
// parentheses negate, dashes and empty cells are missing.
func parseStatementNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "", "-", "--", "—", "N/A":
		return math.NaN()
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	if negative {
		v = -v
	}
	return v
}

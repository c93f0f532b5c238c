// Package prompt holds the prompt library for report generation. Templates
// ship built in and can be overridden from disk, so prompt wording can be
// tuned without code changes.
package prompt

import "strings"

// Template is a reusable prompt with metadata. Body placeholders use the
// {{NAME}} convention and are filled by Render.
type Template struct {
	ID          string     `json:"id"`          // e.g. "report.initiation"
	Name        string     `json:"name"`        // human-readable name
	Category    string     `json:"category"`    // report, rating, ...
	Description string     `json:"description"` // what the prompt produces
	System      string     `json:"system_prompt"`
	Body        string     `json:"body"`
	Variables   []Variable `json:"variables"`
	Version     string     `json:"version"`
}

// Variable documents one placeholder used in a template body.
type Variable struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Render substitutes {{NAME}} placeholders in the template body.
// Unknown placeholders are left in place so a reader can spot them.
func (t *Template) Render(vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(t.Body)
}

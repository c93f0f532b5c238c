package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
)

// LoadFromDirectory loads template overrides from a directory tree. Files
// are Hjson (plain JSON is valid Hjson), so hand-edited prompt files may
// carry comments and multiline strings:
//
//	baseDir/
//	  report/
//	    initiation.json
func LoadFromDirectory(baseDir string) error {
	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		return fmt.Errorf("prompt directory not found: %s", baseDir)
	}
	registry := Get()

	return filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		ext := filepath.Ext(path)
		if info.IsDir() || (ext != ".json" && ext != ".hjson") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var t Template
		if err := hjson.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if t.ID == "" {
			t.ID = idFromPath(path, baseDir)
		}
		if t.Category == "" {
			t.Category = categoryFromPath(path, baseDir)
		}
		return registry.Register(&t)
	})
}

// idFromPath derives "report.initiation" from "report/initiation.json".
func idFromPath(path, baseDir string) string {
	rel, _ := filepath.Rel(baseDir, path)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return strings.ReplaceAll(rel, string(filepath.Separator), ".")
}

func categoryFromPath(path, baseDir string) string {
	rel, _ := filepath.Rel(baseDir, path)
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) > 1 {
		return parts[0]
	}
	return "default"
}

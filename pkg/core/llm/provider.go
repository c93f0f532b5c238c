// Package llm abstracts the model providers used to turn an analysis
// payload into a written initiation report.
package llm

import (
	"context"
	"fmt"
)

// Provider is the interface every model backend implements.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

// FromName resolves a configured provider name to an implementation.
func FromName(name string) (Provider, error) {
	switch name {
	case "", "gemini":
		return &GeminiProvider{}, nil
	case "deepseek":
		return &DeepSeekProvider{}, nil
	case "qwen":
		return &QwenProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", name)
	}
}

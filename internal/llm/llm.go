package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// Client abstracts generative-model providers. Implementations return the
// model's raw JSON object output; schema validation happens in the flows.
type Client interface {
	GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error)
}

// ErrNotConfigured is returned by the placeholder client when no provider
// has been wired up.
var ErrNotConfigured = errors.New("no LLM provider configured")

// PlaceholderClient stands in when LLM_PROVIDER is unset; every flow call
// fails fast with ErrNotConfigured.
type PlaceholderClient struct{}

// GenerateJSON returns ErrNotConfigured.
func (PlaceholderClient) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	_ = ctx
	_ = prompt
	return nil, ErrNotConfigured
}

// CleanJSON strips the markdown code fences some models wrap around JSON.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

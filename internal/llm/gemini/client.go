package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"resume-builder-backend/internal/llm"
)

// Client implements llm.Client using Google Gemini.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// GenerateJSON sends the prompt with a JSON response MIME type and returns
// the model's JSON object.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	generativeModel := c.client.GenerativeModel(c.model)
	generativeModel.SetTemperature(0.3)
	generativeModel.ResponseMIMEType = "application/json"

	resp, err := generativeModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text, err := textFromResponse(resp)
	if err != nil {
		return nil, err
	}
	content := llm.CleanJSON(text)
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("invalid JSON from Gemini")
	}
	return json.RawMessage(content), nil
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini response empty")
	}
	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	if builder.Len() == 0 {
		return "", fmt.Errorf("gemini response has no text parts")
	}
	return builder.String(), nil
}

var _ llm.Client = (*Client)(nil)

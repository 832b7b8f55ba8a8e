package main

// Exercise a prompt flow against the configured provider:
//   go run ./cmd/prompttest -flow summary -input input.json

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"resume-builder-backend/internal/flows"
	"resume-builder-backend/internal/llm"
	"resume-builder-backend/internal/llm/gemini"
	"resume-builder-backend/internal/llm/openai"
	"resume-builder-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	flowName := flag.String("flow", "", "flow to run")
	inputPath := flag.String("input", "", "path to a JSON file with the flow input")
	outPath := flag.String("out", "", "path to write the raw JSON output (optional)")
	provider := flag.String("provider", cfg.LLMProvider, "LLM provider")
	modelName := flag.String("model", cfg.LLMModel, "LLM model")
	flag.Parse()

	if strings.TrimSpace(*flowName) == "" {
		exitErr(fmt.Sprintf("flow is required (known: %v)", flows.Names()))
	}
	flow, ok := flows.Get(*flowName)
	if !ok {
		exitErr(fmt.Sprintf("unknown flow %q (known: %v)", *flowName, flows.Names()))
	}

	input := map[string]any{}
	if strings.TrimSpace(*inputPath) != "" {
		raw, err := os.ReadFile(*inputPath)
		if err != nil {
			exitErr(fmt.Sprintf("read input: %v", err))
		}
		if err := json.Unmarshal(raw, &input); err != nil {
			exitErr(fmt.Sprintf("parse input: %v", err))
		}
	}

	client, err := buildClient(cfg, *provider, *modelName)
	if err != nil {
		exitErr(err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	out, err := flow.Run(ctx, client, input)
	if err != nil {
		exitErr(fmt.Sprintf("run flow: %v", err))
	}

	pretty, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("encode output: %v", err))
	}
	if strings.TrimSpace(*outPath) != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}
	fmt.Println(string(pretty))
}

func buildClient(cfg config.Config, provider, modelName string) (llm.Client, error) {
	switch provider {
	case "openai":
		return openai.NewClient(cfg.OpenAIAPIKey, modelName)
	case "gemini":
		return gemini.NewClient(context.Background(), cfg.GeminiAPIKey, modelName)
	default:
		return nil, fmt.Errorf("unsupported provider %q", provider)
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

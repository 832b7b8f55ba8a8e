// Package flows runs schema-checked prompt flows against an LLM client.
// Each flow is declared in defs/ as a prompt template plus JSON Schemas
// for its input and output; Run validates both sides so handlers only
// ever see well-formed results.
package flows

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"resume-builder-backend/internal/llm"
)

//go:embed defs/*.json
var defFS embed.FS

// ValidationError reports flow input that failed its schema. Handlers map
// it to a 400 instead of a 500.
type ValidationError struct {
	Flow   string
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("flow %s: invalid input: %s", e.Flow, strings.Join(e.Issues, "; "))
}

// ErrInvalidOutput marks a model response that parsed as JSON but did not
// match the flow's output schema.
type ErrInvalidOutput struct {
	Flow   string
	Issues []string
}

func (e *ErrInvalidOutput) Error() string {
	return fmt.Sprintf("flow %s: model output failed validation: %s", e.Flow, strings.Join(e.Issues, "; "))
}

type definition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Template    string          `json:"template"`
	Input       json.RawMessage `json:"input"`
	Output      json.RawMessage `json:"output"`
}

// Flow is a compiled prompt flow.
type Flow struct {
	Name        string
	Description string

	template string
	input    *gojsonschema.Schema
	output   *gojsonschema.Schema
}

var registry = map[string]*Flow{}

func init() {
	entries, err := defFS.ReadDir("defs")
	if err != nil {
		panic(fmt.Sprintf("flows: read definitions: %v", err))
	}
	for _, entry := range entries {
		raw, err := defFS.ReadFile("defs/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("flows: read %s: %v", entry.Name(), err))
		}
		var def definition
		if err := json.Unmarshal(raw, &def); err != nil {
			panic(fmt.Sprintf("flows: parse %s: %v", entry.Name(), err))
		}
		in, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(def.Input))
		if err != nil {
			panic(fmt.Sprintf("flows: compile input schema for %s: %v", def.Name, err))
		}
		out, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(def.Output))
		if err != nil {
			panic(fmt.Sprintf("flows: compile output schema for %s: %v", def.Name, err))
		}
		registry[def.Name] = &Flow{
			Name:        def.Name,
			Description: def.Description,
			template:    def.Template,
			input:       in,
			output:      out,
		}
	}
}

// Get returns the flow registered under name, or false when none is.
func Get(name string) (*Flow, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names returns the registered flow names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run validates input, renders the prompt, calls the client and validates
// the model's JSON against the flow's output schema.
func (f *Flow) Run(ctx context.Context, client llm.Client, input map[string]any) (map[string]any, error) {
	if input == nil {
		input = map[string]any{}
	}
	res, err := f.input.Validate(gojsonschema.NewGoLoader(input))
	if err != nil {
		return nil, fmt.Errorf("flow %s: validate input: %w", f.Name, err)
	}
	if !res.Valid() {
		return nil, &ValidationError{Flow: f.Name, Issues: issueStrings(res)}
	}

	prompt := f.renderPrompt(input)
	raw, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("flow %s: %w", f.Name, err)
	}

	outRes, err := f.output.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("flow %s: validate output: %w", f.Name, err)
	}
	if !outRes.Valid() {
		return nil, &ErrInvalidOutput{Flow: f.Name, Issues: issueStrings(outRes)}
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("flow %s: decode output: %w", f.Name, err)
	}
	return out, nil
}

// renderPrompt substitutes {{.field}} placeholders with input values.
// Strings are inserted verbatim; anything else is inserted as JSON.
func (f *Flow) renderPrompt(input map[string]any) string {
	prompt := f.template
	for key, value := range input {
		var text string
		switch v := value.(type) {
		case string:
			text = v
		default:
			b, err := json.Marshal(v)
			if err != nil {
				continue
			}
			text = string(b)
		}
		prompt = strings.ReplaceAll(prompt, "{{."+key+"}}", text)
	}
	// Optional fields the caller omitted leave their placeholder behind.
	for _, left := range leftoverPlaceholders(prompt) {
		prompt = strings.ReplaceAll(prompt, left, "")
	}
	return prompt
}

func leftoverPlaceholders(prompt string) []string {
	var out []string
	rest := prompt
	for {
		start := strings.Index(rest, "{{.")
		if start < 0 {
			return out
		}
		end := strings.Index(rest[start:], "}}")
		if end < 0 {
			return out
		}
		out = append(out, rest[start:start+end+2])
		rest = rest[start+end+2:]
	}
}

func issueStrings(res *gojsonschema.Result) []string {
	issues := make([]string, 0, len(res.Errors()))
	for _, issue := range res.Errors() {
		issues = append(issues, issue.String())
	}
	return issues
}

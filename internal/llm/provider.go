package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over generative content backends. The
// lesson resolver treats it as untrusted: responses are schema-validated
// here and shape-checked again by the caller.
type Provider interface {
	// Generate sends a single-turn prompt and returns the raw response
	// content. When the request carries a Schema, the provider asks for
	// structured JSON output and validates the response against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single-turn generation call.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user message.
	Prompt string

	// Schema is the JSON Schema the response must conform to. When nil,
	// the response content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (used as the structured-output name).
	Name string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output, validated JSON when a Schema was
	// requested.
	Content json.RawMessage

	// Model is the model that served the request.
	Model string
}

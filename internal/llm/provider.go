package llm

import (
	"context"
	"encoding/json"
)

// Provider is a connection to one language model. Inference here is
// strictly single turn: each call carries one prompt and expects one
// self-contained answer, so there is no conversation state to manage.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema,
	// the returned Content is JSON already validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider resolves to.
	ModelID() string
}

// Request is a single-turn completion request.
type Request struct {
	// System establishes the model's role, e.g. a compliance analyst
	// that answers only from the supplied profile.
	System string

	// Prompt is the user message: the question text, its legal answer
	// values, and the organization profile to answer from.
	Prompt string

	// Schema, when set, switches the provider to structured output and
	// gates the response through validation before it is returned.
	// When nil, Content is the raw text reply.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Schema is the JSON shape an answer must take. Name doubles as the
// provider-side identifier and the compile-cache key, so a Definition
// must not change after its first use.
type Schema struct {
	Name       string
	Definition map[string]any
}

// Response is the model's side of one completion.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// raw text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the concrete model that served the call. May be more
	// specific than the configured alias.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token bill for one completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

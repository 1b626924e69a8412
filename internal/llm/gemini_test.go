package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // literal IDs pass through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	// The inference schema shape: a constrained answer, a confidence
	// score, a free-text rationale, and a list of cited facts.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer":     map[string]any{"type": "string", "enum": []any{"yes", "no"}},
			"confidence": map[string]any{"type": "number"},
			"rationale":  map[string]any{"type": "string"},
			"citedFacts": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"answer", "confidence"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("root type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("%d properties, want 4", len(schema.Properties))
	}
	if schema.Properties["answer"].Type != "STRING" {
		t.Errorf("answer type = %s, want STRING", schema.Properties["answer"].Type)
	}
	if got := schema.Properties["answer"].Enum; len(got) != 2 || got[0] != "yes" {
		t.Errorf("answer enum = %v, want [yes no]", got)
	}
	if schema.Properties["confidence"].Type != "NUMBER" {
		t.Errorf("confidence type = %s, want NUMBER", schema.Properties["confidence"].Type)
	}
	if schema.Properties["citedFacts"].Type != "ARRAY" {
		t.Errorf("citedFacts type = %s, want ARRAY", schema.Properties["citedFacts"].Type)
	}
	if schema.Properties["citedFacts"].Items.Type != "STRING" {
		t.Errorf("citedFacts items = %s, want STRING", schema.Properties["citedFacts"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Errorf("%d required fields, want 2", len(schema.Required))
	}
}

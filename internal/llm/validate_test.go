package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// answerSchema mirrors the shape auto-population expects back from a
// model: a chosen answer, a confidence, and an optional rationale.
func answerSchema() *Schema {
	return &Schema{
		Name: "answer-validation-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer":     map[string]any{"type": "string", "enum": []any{"yes", "no"}},
				"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
				"rationale":  map[string]any{"type": "string"},
			},
			"required": []any{"answer", "confidence"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete answer", `{"answer":"yes","confidence":0.85,"rationale":"profile names a security officer"}`, false},
		{"without optional rationale", `{"answer":"no","confidence":0.3}`, false},
		{"missing confidence", `{"answer":"yes"}`, true},
		{"confidence as string", `{"answer":"yes","confidence":"high"}`, true},
		{"confidence out of range", `{"answer":"yes","confidence":1.5}`, true},
		{"answer outside enum", `{"answer":"maybe","confidence":0.5}`, true},
		{"not JSON at all", `the profile suggests yes`, true},
		{"empty output", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(answerSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("validateResponse: %v", err)
				}
				return
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %T (%v), want ErrInvalidResponse", err, err)
			}
			if string(invalid.Content) != tt.raw {
				t.Errorf("error carries %q, want the rejected output", invalid.Content)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`free text, not JSON`)); err != nil {
		t.Fatalf("nil schema must accept anything, got: %v", err)
	}
}

func TestValidateResponseNestedDefinition(t *testing.T) {
	schema := &Schema{
		Name: "profile-validation-test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"organization": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
					"required": []any{"name"},
				},
				"categoryScores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"organization", "categoryScores"},
		},
	}

	valid := json.RawMessage(`{"organization":{"name":"Acme Health"},"categoryScores":[72,85,64]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}

	invalid := json.RawMessage(`{"organization":{"name":"Acme Health"},"categoryScores":["low","high"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

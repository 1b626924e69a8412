package autopopulate

import (
	"bytes"
	"context"
	"encoding/json"
	"text/template"
	"time"

	"github.com/riskpilot/riskpilot/internal/catalog"
	"github.com/riskpilot/riskpilot/internal/llm"
)

// generativeTimeout bounds each LLM inference. Auto-population runs
// over many questions; one slow call must not stall the whole pass.
const generativeTimeout = 5 * time.Second

// GenerativeConfig holds tunables for the LLM strategy.
type GenerativeConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGenerativeConfig returns sensible defaults.
func DefaultGenerativeConfig() GenerativeConfig {
	return GenerativeConfig{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// GenerativeStrategy asks an LLM to infer an answer from the company
// profile. Last in the cascade: it only sees questions no rule-based
// strategy could answer. Restricted to questions with a closed answer
// set so the model's output can be validated against legal values.
type GenerativeStrategy struct {
	provider llm.Provider
	cfg      GenerativeConfig
}

// NewGenerativeStrategy creates the LLM-backed strategy.
func NewGenerativeStrategy(provider llm.Provider, cfg GenerativeConfig) *GenerativeStrategy {
	return &GenerativeStrategy{provider: provider, cfg: cfg}
}

func (g *GenerativeStrategy) Name() string { return "generative" }

func (g *GenerativeStrategy) Infer(ctx context.Context, q catalog.Question, in *Input) (Suggestion, bool) {
	if in.Facts == nil {
		return Suggestion{}, false
	}
	switch q.AnswerType {
	case catalog.AnswerYesNo, catalog.AnswerSingleChoice:
	default:
		return Suggestion{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, generativeTimeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, "auto-population")

	prompt, err := buildInferencePrompt(q, in.Facts)
	if err != nil {
		return Suggestion{}, false
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      inferenceSystemPrompt,
		Prompt:      prompt,
		Schema:      inferenceSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		// Provider failure is a strategy failure, never a run failure.
		return Suggestion{}, false
	}

	var out inferenceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Suggestion{}, false
	}
	if !isLegalValue(q, out.Answer) || out.Confidence < 0 || out.Confidence > 1 {
		return Suggestion{}, false
	}

	return Suggestion{
		Value:      out.Answer,
		Confidence: out.Confidence,
		Rationale:  out.Rationale,
		Sources:    []string{"ai_inference"},
	}, true
}

// inferenceOutput is the raw LLM response.
type inferenceOutput struct {
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

var inferenceSchema = &llm.Schema{
	Name: "answer-inference",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "The inferred answer. Must be one of the allowed values exactly as listed",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "How strongly the company profile supports this answer",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One sentence citing the profile facts behind the answer",
			},
		},
		"required":             []any{"answer", "confidence", "rationale"},
		"additionalProperties": false,
	},
}

const inferenceSystemPrompt = `You are a compliance analyst inferring answers to security assessment questions from a company profile.

Instructions:
- Choose the answer best supported by the profile. Use only the allowed values, exactly as listed.
- Report honest confidence (0.0-1.0). Return low confidence when the profile says little about the question.
- Keep the rationale to one sentence and cite the profile facts you relied on.`

var inferenceUserTemplate = template.Must(template.New("inference").Parse(`Question: {{.Question.Text}}
Allowed values:
{{range .Legal}}- {{.}}
{{end}}
Company profile:
{{.FactsJSON}}`))

func buildInferencePrompt(q catalog.Question, facts *CompanyFacts) (string, error) {
	factsJSON, err := json.MarshalIndent(facts, "", "  ")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = inferenceUserTemplate.Execute(&buf, struct {
		Question  catalog.Question
		Legal     []string
		FactsJSON string
	}{q, q.LegalValues(), string(factsJSON)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func isLegalValue(q catalog.Question, v string) bool {
	for _, legal := range q.LegalValues() {
		if v == legal {
			return true
		}
	}
	return false
}

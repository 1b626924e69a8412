package autopopulate

import (
	"context"

	"github.com/riskpilot/riskpilot/internal/assessment"
	"github.com/riskpilot/riskpilot/internal/catalog"
)

// minConfidence is the floor below which a strategy's inference is
// discarded rather than suggested.
const minConfidence = 0.5

// Input bundles everything strategies may draw on for one run.
type Input struct {
	// Facts is the organization profile. May be nil; fact-driven
	// strategies decline without it.
	Facts *CompanyFacts

	// Prior is the subject's most recent completed assessment, or nil
	// when none exists.
	Prior *assessment.Assessment
}

// Suggestion is one inferred answer, pending user review.
type Suggestion struct {
	QuestionID string
	Value      string
	Selected   []string
	Confidence float64
	Rationale  string
	Sources    []string
	Strategy   string
}

// Response converts the suggestion into an inferred response record.
func (s Suggestion) Response() assessment.Response {
	return assessment.Response{
		QuestionID: s.QuestionID,
		Value:      s.Value,
		Selected:   s.Selected,
		Inferred:   true,
		Confidence: s.Confidence,
	}
}

// Strategy is one inference rule for unanswered questions.
// Infer returns ok=false when the strategy has nothing to say about
// the question; a returned suggestion still competes against the
// confidence floor.
type Strategy interface {
	Name() string
	Infer(ctx context.Context, q catalog.Question, in *Input) (Suggestion, bool)
}

// runStrategies tries strategies in priority order and returns the
// first suggestion at or above the confidence floor. Lower-priority
// strategies never override an earlier acceptable answer, even with
// higher confidence.
func runStrategies(ctx context.Context, strategies []Strategy, q catalog.Question, in *Input) (Suggestion, bool) {
	for _, s := range strategies {
		sug, ok := s.Infer(ctx, q, in)
		if !ok || sug.Confidence < minConfidence {
			continue
		}
		sug.QuestionID = q.ID
		sug.Strategy = s.Name()
		return sug, true
	}
	return Suggestion{}, false
}

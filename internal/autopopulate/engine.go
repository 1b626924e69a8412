package autopopulate

import (
	"context"

	"github.com/riskpilot/riskpilot/internal/assessment"
	"github.com/riskpilot/riskpilot/internal/catalog"
	"github.com/riskpilot/riskpilot/internal/llm"
)

// Confidence bands for the run summary.
const (
	highConfidenceFloor   = 0.8
	mediumConfidenceFloor = 0.6
)

// Summary reports what one auto-population pass produced.
type Summary struct {
	Total     int // questions in scope at the assessment's tier
	Suggested int // questions that received a suggestion
	High      int // confidence >= 0.8
	Medium    int // confidence in [0.6, 0.8)
	Low       int // confidence in [0.5, 0.6)
}

// Engine runs the strategy cascade over an assessment's unanswered
// questions.
type Engine struct {
	strategies []Strategy
}

// NewEngine builds an engine with the standard cascade. The generative
// strategy joins the cascade only when a provider is configured; the
// rule-based strategies work offline.
func NewEngine(provider llm.Provider) *Engine {
	strategies := []Strategy{
		DirectFactStrategy{},
		SystemInferenceStrategy{},
		IndustryPatternStrategy{},
		HistoricalStrategy{},
	}
	if provider != nil {
		strategies = append(strategies, NewGenerativeStrategy(provider, DefaultGenerativeConfig()))
	}
	return &Engine{strategies: strategies}
}

// NewEngineWithStrategies builds an engine with an explicit cascade,
// in priority order.
func NewEngineWithStrategies(strategies ...Strategy) *Engine {
	return &Engine{strategies: strategies}
}

// Populate suggests answers for every question at the assessment's
// tier that has no human response. Existing human answers are never
// touched; existing inferences may be re-suggested. Suggestions are
// returned for review, not written to the assessment.
func (e *Engine) Populate(ctx context.Context, a *assessment.Assessment, in *Input) ([]Suggestion, Summary) {
	questions := catalog.ForTier(a.Tier)
	summary := Summary{Total: len(questions)}

	var suggestions []Suggestion
	for _, q := range questions {
		if a.HasHumanResponse(q.ID) {
			continue
		}
		sug, ok := runStrategies(ctx, e.strategies, q, in)
		if !ok {
			continue
		}
		suggestions = append(suggestions, sug)
		summary.Suggested++
		switch {
		case sug.Confidence >= highConfidenceFloor:
			summary.High++
		case sug.Confidence >= mediumConfidenceFloor:
			summary.Medium++
		default:
			summary.Low++
		}
	}
	return suggestions, summary
}

// Apply records the given suggestions on the assessment as inferred
// responses. Stops at the first write error.
func Apply(a *assessment.Assessment, suggestions []Suggestion) error {
	for _, s := range suggestions {
		if err := a.RecordResponse(s.Response()); err != nil {
			return err
		}
	}
	return nil
}

package autopopulate

import (
	"context"

	"github.com/riskpilot/riskpilot/internal/catalog"
)

// historicalConfidence applies to answers carried forward from a
// previous completed assessment. High enough to accept, low enough
// that fresher fact- and inventory-based strategies win first.
const historicalConfidence = 0.75

// HistoricalStrategy reuses answers the subject gave on their most
// recent completed assessment. Only human answers carry forward;
// re-suggesting an old inference would compound uncertainty without
// new evidence.
type HistoricalStrategy struct{}

func (HistoricalStrategy) Name() string { return "historical" }

func (HistoricalStrategy) Infer(_ context.Context, q catalog.Question, in *Input) (Suggestion, bool) {
	if in.Prior == nil {
		return Suggestion{}, false
	}
	prev, ok := in.Prior.Response(q.ID)
	if !ok || prev.Inferred || !prev.HasAnswer() {
		return Suggestion{}, false
	}
	return Suggestion{
		Value:      prev.Value,
		Selected:   append([]string(nil), prev.Selected...),
		Confidence: historicalConfidence,
		Rationale:  "Carried forward from the previous completed assessment",
		Sources:    []string{"previous_assessment"},
	}, true
}

package scoring

import (
	"github.com/riskpilot/riskpilot/internal/assessment"
	"github.com/riskpilot/riskpilot/internal/catalog"
)

// unknownAnswerRisk is the conservative default for an answer value the
// question's mapping does not recognize.
const unknownAnswerRisk = 50

// ResolveAnswer maps a response to its risk descriptor.
//
// Returns ok=false when the answer's shape does not match the
// question's declared type; such responses contribute nothing to any
// score. A recognized shape with an unknown value resolves to a neutral
// risk of 50 rather than failing.
func ResolveAnswer(q catalog.Question, r assessment.Response) (catalog.RiskDescriptor, bool) {
	switch q.AnswerType {
	case catalog.AnswerMultiChoice:
		if r.Value != "" {
			// Scalar answer on a checkbox question: type mismatch.
			return catalog.RiskDescriptor{}, false
		}
		return q.BucketFor(len(r.Selected))

	case catalog.AnswerYesNo, catalog.AnswerSingleChoice, catalog.AnswerFreeText:
		if len(r.Selected) > 0 || r.Value == "" {
			return catalog.RiskDescriptor{}, false
		}
		if d, ok := q.RiskMapping[r.Value]; ok {
			return d, true
		}
		return catalog.RiskDescriptor{
			RiskScore: unknownAnswerRisk,
			Rationale: "Unknown response",
		}, true
	}
	return catalog.RiskDescriptor{}, false
}

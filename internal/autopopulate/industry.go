package autopopulate

import (
	"context"

	"github.com/riskpilot/riskpilot/internal/catalog"
)

// smallOrgEmployeeCap bounds the "small practice" heuristic for
// industry defaults.
const smallOrgEmployeeCap = 25

// IndustryPatternStrategy falls back to what organizations of the same
// industry and size typically do. These are population-level priors,
// so confidence sits just above the acceptance floor.
type IndustryPatternStrategy struct{}

func (IndustryPatternStrategy) Name() string { return "industry_pattern" }

func (IndustryPatternStrategy) Infer(_ context.Context, q catalog.Question, in *Input) (Suggestion, bool) {
	if in.Facts == nil {
		return Suggestion{}, false
	}

	switch in.Facts.Industry {
	case "healthcare":
		switch q.ID {
		case "admin_002":
			value := "Semi-annually"
			rationale := "Larger healthcare organizations typically run semi-annual training"
			if in.Facts.EmployeeCount > 0 && in.Facts.EmployeeCount <= smallOrgEmployeeCap {
				value = "Annually"
				rationale = "Small healthcare practices typically run annual training"
			}
			return Suggestion{
				Value:      value,
				Confidence: 0.6,
				Rationale:  rationale,
				Sources:    []string{"industry_patterns"},
			}, true
		case "tech_002":
			return Suggestion{
				Value:      "AES-256 encryption",
				Confidence: 0.7,
				Rationale:  "Healthcare organizations handling PHI typically use AES-256",
				Sources:    []string{"industry_patterns"},
			}, true
		}

	case "legal":
		if q.ID == "admin_002" {
			return Suggestion{
				Value:      "Annually",
				Confidence: 0.6,
				Rationale:  "Legal practices typically run annual compliance training",
				Sources:    []string{"industry_patterns"},
			}, true
		}

	case "financial_services":
		if q.ID == "tech_002" {
			return Suggestion{
				Value:      "AES-256 encryption",
				Confidence: 0.8,
				Rationale:  "Financial services firms are held to strong encryption standards",
				Sources:    []string{"industry_patterns"},
			}, true
		}
	}

	return Suggestion{}, false
}

package progression

import (
	"time"

	"github.com/riskpilot/riskpilot/internal/assessment"
)

// NextStep is a coarse recommendation for where to focus next.
type NextStep struct {
	Action        string
	Description   string
	EstimatedTime time.Duration
	Priority      Priority
}

// Completion bands for next-step recommendations.
const (
	earlyStageBand = 25.0
	lateStageBand  = 75.0
)

// NextSteps recommends what to do next based on how far through the
// current tier the assessment is.
func NextSteps(a *assessment.Assessment) []NextStep {
	completion := Completion(a)

	switch {
	case completion < earlyStageBand:
		return []NextStep{{
			Action:        "continue_basic_questions",
			Description:   "Complete the essential questions first",
			EstimatedTime: 10 * time.Minute,
			Priority:      PriorityHigh,
		}}
	case completion < lateStageBand:
		return []NextStep{{
			Action:        "complete_current_section",
			Description:   "Finish the current section to maintain momentum",
			EstimatedTime: 5 * time.Minute,
			Priority:      PriorityMedium,
		}}
	default:
		return []NextStep{{
			Action:        "review_and_finalize",
			Description:   "Review your responses and finalize the assessment",
			EstimatedTime: 5 * time.Minute,
			Priority:      PriorityLow,
		}}
	}
}

package progression

import (
	"fmt"
	"sort"
	"time"

	"github.com/riskpilot/riskpilot/internal/assessment"
	"github.com/riskpilot/riskpilot/internal/catalog"
	"github.com/riskpilot/riskpilot/internal/scoring"
)

// Priority classifies how urgently an action item needs attention.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Resolved risk floors for each priority, and the floor below which no
// action item is generated at all.
const (
	criticalRiskFloor = 90
	highRiskFloor     = 80
	actionRiskFloor   = 70
)

// Remediation deadlines per priority.
const (
	criticalDue = 7 * 24 * time.Hour
	highDue     = 14 * 24 * time.Hour
	mediumDue   = 30 * 24 * time.Hour
)

func (p Priority) rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ActionItem is one remediation task derived from a high-risk answer.
type ActionItem struct {
	ID          string
	QuestionID  string
	Title       string
	Description string
	Priority    Priority
	RiskScore   int
	DueDate     time.Time
}

// RecommendedActions derives action items fresh from the current
// responses. Every answered question resolving to risk 70 or higher
// yields one item; nothing is persisted or deduplicated against prior
// runs. Items are sorted by priority descending, then due date
// ascending.
func RecommendedActions(a *assessment.Assessment) []ActionItem {
	return recommendedActionsAt(a, time.Now())
}

// recommendedActionsAt is the clock-injected core of
// RecommendedActions.
func recommendedActionsAt(a *assessment.Assessment, now time.Time) []ActionItem {
	var items []ActionItem
	for _, r := range a.Responses {
		q, err := catalog.Get(r.QuestionID)
		if err != nil {
			continue
		}
		d, ok := scoring.ResolveAnswer(q, r)
		if !ok || d.RiskScore < actionRiskFloor {
			continue
		}

		priority, due := classify(d.RiskScore)
		items = append(items, ActionItem{
			ID:          fmt.Sprintf("action_%s_%s", a.ID, q.ID),
			QuestionID:  q.ID,
			Title:       actionTitle(q, d),
			Description: d.Rationale,
			Priority:    priority,
			RiskScore:   d.RiskScore,
			DueDate:     now.Add(due),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority.rank() > items[j].Priority.rank()
		}
		return items[i].DueDate.Before(items[j].DueDate)
	})
	return items
}

func classify(riskScore int) (Priority, time.Duration) {
	switch {
	case riskScore >= criticalRiskFloor:
		return PriorityCritical, criticalDue
	case riskScore >= highRiskFloor:
		return PriorityHigh, highDue
	default:
		return PriorityMedium, mediumDue
	}
}

func actionTitle(q catalog.Question, d catalog.RiskDescriptor) string {
	if d.Remediation != "" {
		return d.Remediation
	}
	return fmt.Sprintf("Review response to %q", q.Text)
}

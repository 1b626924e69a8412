package progression

import (
	"time"

	"github.com/riskpilot/riskpilot/internal/assessment"
	"github.com/riskpilot/riskpilot/internal/catalog"
	"github.com/riskpilot/riskpilot/internal/scoring"
)

// Promotion gates. Each tier transition has its own completion floor
// plus one extra signal proving the tier was worked, not clicked
// through.
const (
	basicCompletionFloor        = 80.0
	intermediateCompletionFloor = 70.0
	advancedCompletionFloor     = 60.0

	engagementGate     = 0.7
	timeSpentGate      = 15 * time.Minute
	highRiskAnswerGate = 80
)

// Engagement signal weights, capped at 1.0.
const (
	aiInteractionSignal = 0.3
	timeSpentSignal     = 0.2
	commentSignal       = 0.2
	humanAnswerSignal   = 0.3

	engagementTimeFloor = 5 * time.Minute
)

// NextTier returns the tier the assessment qualifies for: either the
// current tier or the one directly above it. Promotion is strict and
// monotonic; demotion only happens through an explicit retake.
func NextTier(a *assessment.Assessment) catalog.Tier {
	completion := Completion(a)

	switch a.Tier {
	case catalog.TierBasic:
		if completion >= basicCompletionFloor && EngagementScore(a) > engagementGate {
			return catalog.TierIntermediate
		}
	case catalog.TierIntermediate:
		if completion >= intermediateCompletionFloor && a.TimeSpent >= timeSpentGate {
			return catalog.TierAdvanced
		}
	case catalog.TierAdvanced:
		if completion >= advancedCompletionFloor && hasHighRiskAnswer(a) {
			return catalog.TierComprehensive
		}
	}
	return a.Tier
}

// Completion returns the percentage of the current tier's question set
// that has an answer, inferred or human.
func Completion(a *assessment.Assessment) float64 {
	questions := catalog.ForTier(a.Tier)
	if len(questions) == 0 {
		return 0
	}
	answered := 0
	for _, q := range questions {
		if r, ok := a.Response(q.ID); ok && r.HasAnswer() {
			answered++
		}
	}
	return float64(answered) / float64(len(questions)) * 100
}

// EngagementScore sums independent engagement signals: machine
// assistance used, meaningful time invested, free-text commentary, and
// at least one human-entered answer. Capped at 1.0.
func EngagementScore(a *assessment.Assessment) float64 {
	score := 0.0
	if a.AIInteractions > 0 {
		score += aiInteractionSignal
	}
	if a.TimeSpent > engagementTimeFloor {
		score += timeSpentSignal
	}

	hasComment := false
	hasHuman := false
	for _, r := range a.Responses {
		if r.Comment != "" {
			hasComment = true
		}
		if !r.Inferred && r.HasAnswer() {
			hasHuman = true
		}
	}
	if hasComment {
		score += commentSignal
	}
	if hasHuman {
		score += humanAnswerSignal
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// hasHighRiskAnswer reports whether any answered question resolves to
// a risk score at or above the comprehensive-tier gate.
func hasHighRiskAnswer(a *assessment.Assessment) bool {
	for _, r := range a.Responses {
		q, err := catalog.Get(r.QuestionID)
		if err != nil {
			continue
		}
		d, ok := scoring.ResolveAnswer(q, r)
		if ok && d.RiskScore >= highRiskAnswerGate {
			return true
		}
	}
	return false
}

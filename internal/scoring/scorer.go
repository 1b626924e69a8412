package scoring

import (
	"math"

	"github.com/riskpilot/riskpilot/internal/assessment"
	"github.com/riskpilot/riskpilot/internal/catalog"
)

// criticalIssueFloor is the resolved risk score at or above which an
// answered question's remediation is surfaced as a critical issue.
const criticalIssueFloor = 85

// Result is the derived score report for a set of responses. It is
// recomputed on demand and never stored as authoritative state.
type Result struct {
	Overall     int
	PerCategory map[catalog.Category]int
	RiskLevel   RiskLevel

	// CriticalIssues lists remediation strings for answered questions
	// that resolved to a risk score of 85 or higher, in response order.
	CriticalIssues []string
}

// CategoryScore computes a 0-100 score for one category (higher is
// better). Questions without a response are excluded from the weighted
// average entirely; a category with no answered questions scores 0,
// signaling unknown risk rather than a clean bill.
func CategoryScore(responses []assessment.Response, cat catalog.Category) int {
	totalWeighted := 0.0
	totalWeight := 0.0

	for _, q := range catalog.ByCategory(cat) {
		r, ok := findResponse(responses, q.ID)
		if !ok {
			continue
		}
		d, ok := ResolveAnswer(q, r)
		if !ok {
			continue
		}
		totalWeighted += float64(d.RiskScore) * float64(q.Weight)
		totalWeight += float64(q.Weight)
	}

	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(100 - totalWeighted/totalWeight))
}

// Score computes the full report: per-category scores, the fixed-weight
// overall score, its risk level, and critical issues.
//
// Responses referencing unknown questions are ignored; answers whose
// shape doesn't match their question contribute nothing. Neither is an
// error; partial input yields a partial (but explicit) result.
func Score(responses []assessment.Response) Result {
	perCategory := make(map[catalog.Category]int, len(catalog.AllCategories()))
	overall := 0.0
	for _, cat := range catalog.AllCategories() {
		s := CategoryScore(responses, cat)
		perCategory[cat] = s
		overall += float64(s) * categoryWeights[cat]
	}

	rounded := int(math.Round(overall))
	return Result{
		Overall:        rounded,
		PerCategory:    perCategory,
		RiskLevel:      RiskLevelFor(rounded),
		CriticalIssues: criticalIssues(responses),
	}
}

// criticalIssues collects remediation strings for high-risk answers,
// preserving response order.
func criticalIssues(responses []assessment.Response) []string {
	var issues []string
	for _, r := range responses {
		q, err := catalog.Get(r.QuestionID)
		if err != nil {
			continue
		}
		d, ok := ResolveAnswer(q, r)
		if !ok {
			continue
		}
		if d.RiskScore >= criticalIssueFloor && d.Remediation != "" {
			issues = append(issues, d.Remediation)
		}
	}
	return issues
}

func findResponse(responses []assessment.Response, questionID string) (assessment.Response, bool) {
	for _, r := range responses {
		if r.QuestionID == questionID {
			return r, true
		}
	}
	return assessment.Response{}, false
}

package scoring

// RiskLevel classifies an overall or category score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Inclusive lower score bounds for each risk level. Every call site
// classifying a score goes through RiskLevelFor; these are the single
// source of truth.
const (
	lowFloor    = 80
	mediumFloor = 60
	highFloor   = 40
)

// RiskLevelFor returns the risk level for a 0-100 score. Higher scores
// mean lower risk.
func RiskLevelFor(score int) RiskLevel {
	switch {
	case score >= lowFloor:
		return RiskLow
	case score >= mediumFloor:
		return RiskMedium
	case score >= highFloor:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// DisplayName returns a human-readable label for the risk level.
func (l RiskLevel) DisplayName() string {
	switch l {
	case RiskLow:
		return "Low Risk"
	case RiskMedium:
		return "Medium Risk"
	case RiskHigh:
		return "High Risk"
	case RiskCritical:
		return "Critical Risk"
	default:
		return string(l)
	}
}

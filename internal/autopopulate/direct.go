package autopopulate

import (
	"context"
	"strings"

	"github.com/riskpilot/riskpilot/internal/catalog"
)

// trainingFrequencies maps profile vocabulary to catalog answer values.
var trainingFrequencies = map[string]string{
	"never":         "Never",
	"onboarding":    "Once upon hiring",
	"annually":      "Annually",
	"semi_annually": "Semi-annually",
	"quarterly":     "Quarterly",
}

// DirectFactStrategy answers questions the organization profile states
// outright. Highest priority: a stated fact beats any inference.
type DirectFactStrategy struct{}

func (DirectFactStrategy) Name() string { return "direct_fact" }

func (DirectFactStrategy) Infer(_ context.Context, q catalog.Question, in *Input) (Suggestion, bool) {
	if in.Facts == nil {
		return Suggestion{}, false
	}

	switch q.ID {
	case "admin_001":
		officer := in.Facts.CurrentSecurity.HasSecurityOfficer
		if officer == nil {
			return Suggestion{}, false
		}
		value := "no"
		if *officer {
			value = "yes"
		}
		return Suggestion{
			Value:      value,
			Confidence: 0.95,
			Rationale:  "Company profile states whether a security officer is designated",
			Sources:    []string{"company_profile"},
		}, true

	case "admin_002":
		value, ok := trainingFrequencies[in.Facts.CurrentSecurity.EmployeeTraining]
		if !ok {
			return Suggestion{}, false
		}
		return Suggestion{
			Value:      value,
			Confidence: 0.9,
			Rationale:  "Training cadence taken directly from the company profile",
			Sources:    []string{"company_profile"},
		}, true

	case "tech_001":
		if !in.Facts.hasSystems() {
			return Suggestion{}, false
		}
		value := "no"
		if hasUserManagement(in.Facts.TechnologySystems) {
			value = "yes"
		}
		return Suggestion{
			Value:      value,
			Confidence: 0.8,
			Rationale:  "Derived from user management capabilities in the technology inventory",
			Sources:    []string{"technology_inventory"},
		}, true
	}

	return Suggestion{}, false
}

// hasUserManagement reports whether any inventoried system provides
// per-user account management.
func hasUserManagement(systems []TechnologySystem) bool {
	for _, sys := range systems {
		switch strings.ToLower(sys.Type) {
		case "user_management", "ehr", "crm":
			return true
		}
		for _, f := range sys.Features {
			switch strings.ToLower(f) {
			case "user_accounts", "unique_user_ids", "role_based_access":
				return true
			}
		}
	}
	return false
}

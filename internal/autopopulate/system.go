package autopopulate

import (
	"context"
	"strings"

	"github.com/riskpilot/riskpilot/internal/catalog"
)

// SystemInferenceStrategy infers answers from the shape of the
// technology inventory: deployment models and declared security
// features. Weaker than a direct fact but grounded in real inventory
// data.
type SystemInferenceStrategy struct{}

func (SystemInferenceStrategy) Name() string { return "system_inference" }

func (SystemInferenceStrategy) Infer(_ context.Context, q catalog.Question, in *Input) (Suggestion, bool) {
	if in.Facts == nil || !in.Facts.hasSystems() {
		return Suggestion{}, false
	}

	switch q.ID {
	case "phys_001":
		dep := in.Facts.deployments()
		if dep["cloud"] && !dep["on_premise"] && !dep["hybrid"] {
			// Cloud-only shops typically keep little PHI on site but
			// still run a badged office.
			return Suggestion{
				Value:      "Key card access with logging",
				Confidence: 0.7,
				Rationale:  "All systems are cloud-hosted, suggesting standard office access controls",
				Sources:    []string{"technology_inventory"},
			}, true
		}
		if dep["on_premise"] || dep["hybrid"] {
			return Suggestion{
				Value:      "Locked doors only",
				Confidence: 0.6,
				Rationale:  "On-premise systems without stated access controls imply basic physical security",
				Sources:    []string{"technology_inventory"},
			}, true
		}
		return Suggestion{}, false

	case "tech_002":
		if hasStrongEncryption(in.Facts.TechnologySystems) {
			return Suggestion{
				Value:      "AES-256 encryption",
				Confidence: 0.75,
				Rationale:  "Inventoried systems declare encryption at rest",
				Sources:    []string{"technology_inventory"},
			}, true
		}
		return Suggestion{
			Value:      "Basic password protection",
			Confidence: 0.6,
			Rationale:  "No encryption features declared across the technology inventory",
			Sources:    []string{"technology_inventory"},
		}, true
	}

	return Suggestion{}, false
}

func hasStrongEncryption(systems []TechnologySystem) bool {
	for _, sys := range systems {
		for _, f := range sys.SecurityFeatures {
			switch strings.ToLower(f) {
			case "encryption_at_rest", "encryption_in_transit", "aes_256", "end_to_end_encryption":
				return true
			}
		}
	}
	return false
}

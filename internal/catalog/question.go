package catalog

// RiskDescriptor maps one answer value to its risk contribution.
type RiskDescriptor struct {
	// RiskScore is 0-100; higher means more risk.
	RiskScore int
	// Rationale explains why the answer carries this score.
	Rationale string
	// Remediation is the follow-up action for a risky answer.
	// Empty when the answer needs no remediation.
	Remediation string
}

// Bucket maps a contiguous range of selected-option counts to a risk
// descriptor, for multi-choice questions. Lo and Hi are inclusive.
type Bucket struct {
	Lo, Hi int
	Risk   RiskDescriptor
}

// Question is a single catalog entry. For yes_no, multiple_choice and
// text questions the RiskMapping covers every legal answer value; for
// checkbox questions the Buckets partition [0, len(Options)].
type Question struct {
	ID         string
	Category   Category
	Complexity Tier
	Text       string
	AnswerType AnswerType
	Options    []string

	// Weight is the question's relative importance within its category (1-5).
	Weight int

	RiskMapping map[string]RiskDescriptor
	Buckets     []Bucket

	HelpText            string
	RegulatoryReference string
}

// LegalValues returns the set of answer values this question accepts.
// For checkbox questions the answer is a subset of Options, so this
// returns the options themselves.
func (q Question) LegalValues() []string {
	switch q.AnswerType {
	case AnswerYesNo:
		return []string{"yes", "no"}
	case AnswerSingleChoice, AnswerMultiChoice:
		return q.Options
	case AnswerFreeText:
		keys := make([]string, 0, len(q.RiskMapping))
		for k := range q.RiskMapping {
			keys = append(keys, k)
		}
		return keys
	}
	return nil
}

// BucketFor returns the bucket containing the given selected-option
// count. Counts outside [0, len(Options)] are clamped.
func (q Question) BucketFor(count int) (RiskDescriptor, bool) {
	if len(q.Buckets) == 0 {
		return RiskDescriptor{}, false
	}
	if count < 0 {
		count = 0
	}
	if count > len(q.Options) {
		count = len(q.Options)
	}
	for _, b := range q.Buckets {
		if count >= b.Lo && count <= b.Hi {
			return b.Risk, true
		}
	}
	return RiskDescriptor{}, false
}

package catalog

// Category represents a safeguard category in the assessment framework.
type Category string

const (
	CategoryAdministrative Category = "administrative"
	CategoryPhysical       Category = "physical"
	CategoryTechnical      Category = "technical"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryAdministrative,
		CategoryPhysical,
		CategoryTechnical,
	}
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryAdministrative:
		return "Administrative Safeguards"
	case CategoryPhysical:
		return "Physical Safeguards"
	case CategoryTechnical:
		return "Technical Safeguards"
	default:
		return string(c)
	}
}

// AnswerType declares the shape of a question's answer.
type AnswerType string

const (
	AnswerYesNo        AnswerType = "yes_no"
	AnswerSingleChoice AnswerType = "multiple_choice"
	AnswerMultiChoice  AnswerType = "checkbox"
	AnswerFreeText     AnswerType = "text"
)

// Tier represents an assessment complexity tier. Tiers are ordered;
// assessments start at TierBasic and are only ever promoted one step at
// a time.
type Tier int

const (
	TierBasic Tier = iota + 1
	TierIntermediate
	TierAdvanced
	TierComprehensive
)

// AllTiers returns all tiers from lowest to highest.
func AllTiers() []Tier {
	return []Tier{TierBasic, TierIntermediate, TierAdvanced, TierComprehensive}
}

// Label returns the display label for a tier.
func (t Tier) Label() string {
	switch t {
	case TierBasic:
		return "Basic"
	case TierIntermediate:
		return "Intermediate"
	case TierAdvanced:
		return "Advanced"
	case TierComprehensive:
		return "Comprehensive"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the four defined tiers.
func (t Tier) Valid() bool {
	return t >= TierBasic && t <= TierComprehensive
}

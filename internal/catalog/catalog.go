package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// catalog holds the question set with precomputed indices.
type catalog struct {
	version    string
	questions  []Question
	byID       map[string]*Question
	byCategory map[Category][]Question
}

// active is the package-level catalog singleton, set by init() in seed.go.
var active *catalog

// build constructs and validates a catalog from a question slice.
func build(version string, questions []Question) (*catalog, error) {
	if err := validateQuestions(version, questions); err != nil {
		return nil, err
	}

	c := &catalog{
		version:    version,
		questions:  questions,
		byID:       make(map[string]*Question, len(questions)),
		byCategory: make(map[Category][]Question),
	}

	for i := range c.questions {
		c.byID[c.questions[i].ID] = &c.questions[i]
	}

	// Group by category, keeping a stable ID order within each group.
	for _, cat := range AllCategories() {
		var group []Question
		for _, q := range questions {
			if q.Category == cat {
				group = append(group, q)
			}
		}
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
		c.byCategory[cat] = group
	}

	return c, nil
}

// Version returns the catalog's semantic version string.
func Version() string {
	return active.version
}

// Get returns a question by ID, or an error if not found.
func Get(id string) (Question, error) {
	q, ok := active.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return *q, nil
}

// All returns every question in the catalog.
func All() []Question {
	return slices.Clone(active.questions)
}

// ByCategory returns all questions in a category, ordered by ID.
func ByCategory(cat Category) []Question {
	return slices.Clone(active.byCategory[cat])
}

// ForTier returns the questions visible at the given tier: those whose
// declared complexity is at or below it. TierComprehensive sees the
// full catalog.
func ForTier(t Tier) []Question {
	var out []Question
	for _, q := range active.questions {
		if q.Complexity <= t {
			out = append(out, q)
		}
	}
	return out
}

// Validate re-runs the structural checks on the active catalog.
func Validate() error {
	return validateQuestions(active.version, active.questions)
}

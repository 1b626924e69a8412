package scoring

import (
	"fmt"
	"math"

	"github.com/riskpilot/riskpilot/internal/catalog"
)

// categoryWeights fixes each category's share of the overall score.
// These are versioned constants, not derived from input; changing them
// changes every historical comparison, so treat edits as a breaking
// catalog revision.
var categoryWeights = map[catalog.Category]float64{
	catalog.CategoryAdministrative: 0.40,
	catalog.CategoryTechnical:      0.35,
	catalog.CategoryPhysical:       0.25,
}

// CategoryWeight returns the fixed overall-score weight for a category.
func CategoryWeight(cat catalog.Category) float64 {
	return categoryWeights[cat]
}

func init() {
	sum := 0.0
	for _, cat := range catalog.AllCategories() {
		w, ok := categoryWeights[cat]
		if !ok {
			panic(fmt.Sprintf("scoring: category %q has no weight", cat))
		}
		sum += w
	}
	if len(categoryWeights) != len(catalog.AllCategories()) {
		panic("scoring: weight table has entries for unknown categories")
	}
	if math.Abs(sum-1.0) > 1e-9 {
		panic(fmt.Sprintf("scoring: category weights sum to %v, want 1.0", sum))
	}
}

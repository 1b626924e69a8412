package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// validateQuestions performs all structural checks on a question set.
// Returns a combined error describing every problem found, or nil.
// A non-nil error means the catalog definition itself is corrupt and
// must refuse to load; scoring against a broken catalog is worse than
// not starting.
func validateQuestions(version string, questions []Question) error {
	var errs []string

	if !semver.IsValid(version) {
		errs = append(errs, fmt.Sprintf("catalog version %q is not a valid semantic version", version))
	}

	idSet := make(map[string]bool, len(questions))
	for _, q := range questions {
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		prefix := fmt.Sprintf("question %q", q.ID)

		switch q.Category {
		case CategoryAdministrative, CategoryPhysical, CategoryTechnical:
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown category %q", prefix, q.Category))
		}

		if !q.Complexity.Valid() {
			errs = append(errs, fmt.Sprintf("%s: invalid complexity tier %d", prefix, q.Complexity))
		}
		if q.Weight <= 0 {
			errs = append(errs, fmt.Sprintf("%s: weight must be positive, got %d", prefix, q.Weight))
		}

		switch q.AnswerType {
		case AnswerMultiChoice:
			errs = append(errs, validateBuckets(q)...)
		case AnswerYesNo, AnswerSingleChoice, AnswerFreeText:
			errs = append(errs, validateMapping(q)...)
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown answer type %q", prefix, q.AnswerType))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateMapping checks that the risk mapping covers every legal
// answer value for non-bucketed questions.
func validateMapping(q Question) []string {
	var errs []string
	prefix := fmt.Sprintf("question %q", q.ID)

	if len(q.RiskMapping) == 0 {
		return []string{fmt.Sprintf("%s: empty risk mapping", prefix)}
	}
	if len(q.Buckets) > 0 {
		errs = append(errs, fmt.Sprintf("%s: buckets declared on non-checkbox question", prefix))
	}

	switch q.AnswerType {
	case AnswerYesNo:
		for _, v := range []string{"yes", "no"} {
			if _, ok := q.RiskMapping[v]; !ok {
				errs = append(errs, fmt.Sprintf("%s: risk mapping missing %q", prefix, v))
			}
		}
	case AnswerSingleChoice:
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("%s: single-choice question has no options", prefix))
		}
		for _, opt := range q.Options {
			if _, ok := q.RiskMapping[opt]; !ok {
				errs = append(errs, fmt.Sprintf("%s: risk mapping missing option %q", prefix, opt))
			}
		}
	}

	for v, d := range q.RiskMapping {
		if d.RiskScore < 0 || d.RiskScore > 100 {
			errs = append(errs, fmt.Sprintf("%s: answer %q risk score %d outside [0, 100]", prefix, v, d.RiskScore))
		}
	}

	return errs
}

// validateBuckets checks that a checkbox question's buckets partition
// [0, len(Options)] with no gaps and no overlap.
func validateBuckets(q Question) []string {
	var errs []string
	prefix := fmt.Sprintf("question %q", q.ID)

	if len(q.Options) == 0 {
		errs = append(errs, fmt.Sprintf("%s: checkbox question has no options", prefix))
	}
	if len(q.RiskMapping) > 0 {
		errs = append(errs, fmt.Sprintf("%s: risk mapping declared on checkbox question; use buckets", prefix))
	}
	if len(q.Buckets) == 0 {
		errs = append(errs, fmt.Sprintf("%s: checkbox question has no buckets", prefix))
		return errs
	}

	buckets := make([]Bucket, len(q.Buckets))
	copy(buckets, q.Buckets)
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Lo < buckets[j].Lo })

	next := 0
	for _, b := range buckets {
		if b.Lo > b.Hi {
			errs = append(errs, fmt.Sprintf("%s: bucket [%d, %d] is inverted", prefix, b.Lo, b.Hi))
			continue
		}
		if b.Lo < next {
			errs = append(errs, fmt.Sprintf("%s: bucket [%d, %d] overlaps previous bucket", prefix, b.Lo, b.Hi))
		} else if b.Lo > next {
			errs = append(errs, fmt.Sprintf("%s: gap before bucket [%d, %d]; count %d is unmapped", prefix, b.Lo, b.Hi, next))
		}
		if b.Risk.RiskScore < 0 || b.Risk.RiskScore > 100 {
			errs = append(errs, fmt.Sprintf("%s: bucket [%d, %d] risk score %d outside [0, 100]", prefix, b.Lo, b.Hi, b.Risk.RiskScore))
		}
		if b.Hi+1 > next {
			next = b.Hi + 1
		}
	}

	if next != len(q.Options)+1 {
		errs = append(errs, fmt.Sprintf("%s: buckets cover [0, %d), want [0, %d]", prefix, next, len(q.Options)))
	}

	return errs
}

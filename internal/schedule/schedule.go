package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Frequency is the cadence of recurring compliance reviews.
type Frequency string

const (
	Monthly    Frequency = "monthly"
	Quarterly  Frequency = "quarterly"
	SemiAnnual Frequency = "semi_annual"
	Annual     Frequency = "annual"
)

// planHorizonMonths is how far ahead a plan projects reviews.
const planHorizonMonths = 24

func (f Frequency) months() (int, error) {
	switch f {
	case Monthly:
		return 1, nil
	case Quarterly:
		return 3, nil
	case SemiAnnual:
		return 6, nil
	case Annual:
		return 12, nil
	}
	return 0, fmt.Errorf("unknown review frequency %q", f)
}

func (f Frequency) estimatedDuration() time.Duration {
	switch f {
	case Monthly:
		return 10 * time.Minute
	case Quarterly:
		return 20 * time.Minute
	case SemiAnnual:
		return 30 * time.Minute
	case Annual:
		return 45 * time.Minute
	}
	return 0
}

func (f Frequency) reviewDescription() string {
	switch f {
	case Monthly:
		return "Monthly compliance review"
	case Quarterly:
		return "Quarterly compliance review"
	case SemiAnnual:
		return "Semi-annual compliance review"
	case Annual:
		return "Annual compliance review"
	}
	return "Compliance review"
}

// Preferences configures a review plan.
type Preferences struct {
	Frequency Frequency
	StartDate time.Time

	// CustomDates, when set, replaces the generated standard intervals
	// entirely.
	CustomDates []time.Time

	Triggers []Trigger
}

// Trigger describes a reminder fired some days ahead of every review.
type Trigger struct {
	Type        string
	Title       string
	Description string
	DaysBefore  int
}

// Interval is one scheduled review.
type Interval struct {
	Date              time.Time
	Type              string
	Description       string
	EstimatedDuration time.Duration
}

// Milestone is one reminder derived from a trigger and a review date.
type Milestone struct {
	ID            string
	Title         string
	Description   string
	Date          time.Time
	Type          string
	RelatedReview time.Time
}

// Plan is a generated review calendar. It is pure data; nothing in
// this package fires reminders or runs reviews.
type Plan struct {
	Subject    string
	Frequency  Frequency
	Intervals  []Interval
	Milestones []Milestone
}

// BuildPlan computes a subject's review calendar from preferences.
// Standard plans project two years ahead at the chosen cadence; custom
// dates override the cadence entirely. Milestones are sorted by date.
func BuildPlan(subject string, prefs Preferences) (Plan, error) {
	plan := Plan{Subject: subject, Frequency: prefs.Frequency}

	if len(prefs.CustomDates) > 0 {
		for _, date := range prefs.CustomDates {
			plan.Intervals = append(plan.Intervals, Interval{
				Date:        date,
				Type:        "custom_review",
				Description: "Scheduled compliance review",
			})
		}
	} else {
		increment, err := prefs.Frequency.months()
		if err != nil {
			return Plan{}, err
		}
		for i := 0; i < planHorizonMonths/increment; i++ {
			plan.Intervals = append(plan.Intervals, Interval{
				Date:              prefs.StartDate.AddDate(0, i*increment, 0),
				Type:              string(prefs.Frequency) + "_review",
				Description:       prefs.Frequency.reviewDescription(),
				EstimatedDuration: prefs.Frequency.estimatedDuration(),
			})
		}
	}

	plan.Milestones = milestones(plan.Intervals, prefs.Triggers)
	return plan, nil
}

func milestones(intervals []Interval, triggers []Trigger) []Milestone {
	var out []Milestone
	for _, trigger := range triggers {
		for _, interval := range intervals {
			out = append(out, Milestone{
				ID: fmt.Sprintf("milestone_%s_%s",
					interval.Date.Format(time.DateOnly), trigger.Type),
				Title:         trigger.Title,
				Description:   trigger.Description,
				Date:          interval.Date.AddDate(0, 0, -trigger.DaysBefore),
				Type:          trigger.Type,
				RelatedReview: interval.Date,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

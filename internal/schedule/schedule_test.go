package schedule

import (
	"testing"
	"time"
)

var start = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

func TestBuildPlan_StandardIntervals(t *testing.T) {
	tests := []struct {
		frequency    Frequency
		wantCount    int
		wantSecond   time.Time
		wantDuration time.Duration
	}{
		{Monthly, 24, start.AddDate(0, 1, 0), 10 * time.Minute},
		{Quarterly, 8, start.AddDate(0, 3, 0), 20 * time.Minute},
		{SemiAnnual, 4, start.AddDate(0, 6, 0), 30 * time.Minute},
		{Annual, 2, start.AddDate(0, 12, 0), 45 * time.Minute},
	}

	for _, tt := range tests {
		plan, err := BuildPlan("acme", Preferences{Frequency: tt.frequency, StartDate: start})
		if err != nil {
			t.Fatalf("%s: %v", tt.frequency, err)
		}
		if len(plan.Intervals) != tt.wantCount {
			t.Errorf("%s: %d intervals, want %d", tt.frequency, len(plan.Intervals), tt.wantCount)
			continue
		}
		if !plan.Intervals[0].Date.Equal(start) {
			t.Errorf("%s: first interval %v, want %v", tt.frequency, plan.Intervals[0].Date, start)
		}
		if !plan.Intervals[1].Date.Equal(tt.wantSecond) {
			t.Errorf("%s: second interval %v, want %v", tt.frequency, plan.Intervals[1].Date, tt.wantSecond)
		}
		if plan.Intervals[0].EstimatedDuration != tt.wantDuration {
			t.Errorf("%s: duration %v, want %v", tt.frequency, plan.Intervals[0].EstimatedDuration, tt.wantDuration)
		}
	}
}

func TestBuildPlan_CustomDatesOverrideCadence(t *testing.T) {
	dates := []time.Time{
		start.AddDate(0, 2, 0),
		start.AddDate(0, 5, 0),
	}
	plan, err := BuildPlan("acme", Preferences{
		Frequency:   Quarterly,
		StartDate:   start,
		CustomDates: dates,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(plan.Intervals) != 2 {
		t.Fatalf("%d intervals, want 2", len(plan.Intervals))
	}
	for i, want := range dates {
		if !plan.Intervals[i].Date.Equal(want) {
			t.Errorf("interval[%d] = %v, want %v", i, plan.Intervals[i].Date, want)
		}
		if plan.Intervals[i].Type != "custom_review" {
			t.Errorf("interval[%d] type = %q", i, plan.Intervals[i].Type)
		}
	}
}

func TestBuildPlan_MilestonesSortedByDate(t *testing.T) {
	plan, err := BuildPlan("acme", Preferences{
		Frequency: SemiAnnual,
		StartDate: start,
		Triggers: []Trigger{
			{Type: "prep", Title: "Prepare documents", DaysBefore: 14},
			{Type: "final_notice", Title: "Review tomorrow", DaysBefore: 1},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	// 4 intervals x 2 triggers.
	if len(plan.Milestones) != 8 {
		t.Fatalf("%d milestones, want 8", len(plan.Milestones))
	}
	for i := 1; i < len(plan.Milestones); i++ {
		if plan.Milestones[i].Date.Before(plan.Milestones[i-1].Date) {
			t.Fatalf("milestones out of order at %d: %v after %v",
				i, plan.Milestones[i-1].Date, plan.Milestones[i].Date)
		}
	}

	first := plan.Milestones[0]
	if first.Type != "prep" {
		t.Errorf("first milestone type = %q, want prep", first.Type)
	}
	if want := start.AddDate(0, 0, -14); !first.Date.Equal(want) {
		t.Errorf("first milestone date = %v, want %v", first.Date, want)
	}
	if !first.RelatedReview.Equal(start) {
		t.Errorf("related review = %v, want %v", first.RelatedReview, start)
	}
}

func TestBuildPlan_UnknownFrequency(t *testing.T) {
	if _, err := BuildPlan("acme", Preferences{Frequency: "fortnightly", StartDate: start}); err == nil {
		t.Error("unknown frequency accepted")
	}
}

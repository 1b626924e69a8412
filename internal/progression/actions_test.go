package progression

import (
	"fmt"
	"testing"
	"time"

	"github.com/riskpilot/riskpilot/internal/assessment"
)

func TestRecommendedActions(t *testing.T) {
	a := assessment.New("acme")
	answer(t, a, "phys_002", "no")                 // risk 75: medium
	answer(t, a, "admin_001", "no")                // risk 95: critical
	answer(t, a, "tech_001", "no")                 // risk 90: critical
	answer(t, a, "admin_002", "Once upon hiring")  // risk 70: medium
	answer(t, a, "tech_002", "AES-128 encryption") // risk 30: no action

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	items := recommendedActionsAt(a, now)

	if len(items) != 4 {
		t.Fatalf("got %d items, want 4: %+v", len(items), items)
	}

	// Critical before medium; equal priority keeps response order.
	wantOrder := []string{"admin_001", "tech_001", "phys_002", "admin_002"}
	for i, qid := range wantOrder {
		if items[i].QuestionID != qid {
			t.Errorf("item[%d] = %s, want %s", i, items[i].QuestionID, qid)
		}
	}

	first := items[0]
	if first.Priority != PriorityCritical {
		t.Errorf("priority = %q, want critical", first.Priority)
	}
	if want := fmt.Sprintf("action_%s_admin_001", a.ID); first.ID != want {
		t.Errorf("ID = %q, want %q", first.ID, want)
	}
	if first.Title != "Immediately designate a HIPAA Security Officer" {
		t.Errorf("title = %q", first.Title)
	}
	if got, want := first.DueDate, now.Add(7*24*time.Hour); !got.Equal(want) {
		t.Errorf("critical due = %v, want %v", got, want)
	}
	if got, want := items[2].DueDate, now.Add(30*24*time.Hour); !got.Equal(want) {
		t.Errorf("medium due = %v, want %v", got, want)
	}
}

func TestRecommendedActions_DueDatesByPriority(t *testing.T) {
	tests := []struct {
		questionID string
		value      string
		priority   Priority
		due        time.Duration
	}{
		{"admin_001", "no", PriorityCritical, 7 * 24 * time.Hour},
		{"tech_002", "Basic password protection", PriorityHigh, 14 * 24 * time.Hour},
		{"phys_002", "no", PriorityMedium, 30 * 24 * time.Hour},
	}

	now := time.Now()
	for _, tt := range tests {
		a := assessment.New("acme")
		answer(t, a, tt.questionID, tt.value)

		items := recommendedActionsAt(a, now)
		if len(items) != 1 {
			t.Errorf("%s: got %d items, want 1", tt.questionID, len(items))
			continue
		}
		if items[0].Priority != tt.priority {
			t.Errorf("%s: priority = %q, want %q", tt.questionID, items[0].Priority, tt.priority)
		}
		if want := now.Add(tt.due); !items[0].DueDate.Equal(want) {
			t.Errorf("%s: due = %v, want %v", tt.questionID, items[0].DueDate, want)
		}
	}
}

func TestRecommendedActions_IgnoresLowRiskAndUnknown(t *testing.T) {
	a := assessment.New("acme")
	answer(t, a, "admin_001", "yes") // risk 20
	answer(t, a, "ghost_999", "no")  // unknown question

	if items := recommendedActionsAt(a, time.Now()); len(items) != 0 {
		t.Errorf("got %d items, want 0: %+v", len(items), items)
	}
}

func TestNextSteps(t *testing.T) {
	fresh := assessment.New("acme")
	steps := NextSteps(fresh)
	if len(steps) != 1 || steps[0].Action != "continue_basic_questions" {
		t.Errorf("fresh next steps = %+v", steps)
	}

	halfway := assessment.New("acme")
	answer(t, halfway, "admin_001", "yes")
	answer(t, halfway, "admin_002", "Annually")
	answer(t, halfway, "phys_001", "Locked doors only")
	steps = NextSteps(halfway)
	if len(steps) != 1 || steps[0].Action != "complete_current_section" {
		t.Errorf("halfway next steps = %+v", steps)
	}

	nearlyDone := assessment.New("acme")
	answerBasicTier(t, nearlyDone)
	steps = NextSteps(nearlyDone)
	if len(steps) != 1 || steps[0].Action != "review_and_finalize" {
		t.Errorf("nearly-done next steps = %+v", steps)
	}
	if steps[0].Priority != PriorityLow {
		t.Errorf("finalize priority = %q, want low", steps[0].Priority)
	}
}

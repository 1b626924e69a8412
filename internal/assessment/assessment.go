package assessment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/riskpilot/riskpilot/internal/catalog"
)

// Status is the lifecycle state of an assessment.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
)

// Assessment owns a subject's responses for one pass through the
// catalog. Responses are kept in arrival order with at most one entry
// per question; recording the same question again replaces the earlier
// answer in place.
//
// The engine performs no locking: an Assessment must have a single
// writer at any time, serialized by the caller.
type Assessment struct {
	ID      string
	Subject string

	Tier   catalog.Tier
	Status Status

	Responses []Response

	TimeSpent      time.Duration
	AIInteractions int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates an empty assessment for a subject at the basic tier.
func New(subject string) *Assessment {
	now := time.Now()
	return &Assessment{
		ID:        uuid.NewString(),
		Subject:   subject,
		Tier:      catalog.TierBasic,
		Status:    StatusNotStarted,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Response returns the recorded response for a question, if any.
func (a *Assessment) Response(questionID string) (Response, bool) {
	for _, r := range a.Responses {
		if r.QuestionID == questionID {
			return r, true
		}
	}
	return Response{}, false
}

// HasHumanResponse reports whether the question has a human-entered
// (non-inferred) response.
func (a *Assessment) HasHumanResponse(questionID string) bool {
	r, ok := a.Response(questionID)
	return ok && !r.Inferred
}

// RecordResponse records or replaces the answer for a question.
// Completed assessments are immutable; use Retake to start over.
func (a *Assessment) RecordResponse(r Response) error {
	if a.Status == StatusCompleted {
		return fmt.Errorf("assessment %s is completed; retake to modify", a.ID)
	}
	if r.QuestionID == "" {
		return fmt.Errorf("response has no question ID")
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}

	if a.Status == StatusNotStarted {
		a.Status = StatusInProgress
	}

	for i := range a.Responses {
		if a.Responses[i].QuestionID == r.QuestionID {
			a.Responses[i] = r
			a.touch()
			return nil
		}
	}
	a.Responses = append(a.Responses, r)
	a.touch()
	return nil
}

// AddTime accumulates time spent on the assessment.
func (a *Assessment) AddTime(d time.Duration) {
	if d <= 0 {
		return
	}
	a.TimeSpent += d
	a.touch()
}

// RecordAIInteraction increments the machine-assistance counter.
func (a *Assessment) RecordAIInteraction() {
	a.AIInteractions++
	a.touch()
}

// Pause suspends an in-progress assessment.
func (a *Assessment) Pause() error {
	if a.Status != StatusInProgress {
		return fmt.Errorf("cannot pause assessment in status %q", a.Status)
	}
	a.Status = StatusPaused
	a.touch()
	return nil
}

// Resume continues a paused assessment.
func (a *Assessment) Resume() error {
	if a.Status != StatusPaused {
		return fmt.Errorf("cannot resume assessment in status %q", a.Status)
	}
	a.Status = StatusInProgress
	a.touch()
	return nil
}

// Complete finalizes the assessment. Completed assessments reject
// further response writes.
func (a *Assessment) Complete() error {
	if a.Status == StatusCompleted {
		return fmt.Errorf("assessment %s is already completed", a.ID)
	}
	a.Status = StatusCompleted
	a.touch()
	return nil
}

// Retake clears all responses and counters and resets the tier to
// basic. A retaken assessment scores identically to a fresh one.
func (a *Assessment) Retake() {
	a.Responses = nil
	a.Tier = catalog.TierBasic
	a.Status = StatusInProgress
	a.TimeSpent = 0
	a.AIInteractions = 0
	a.touch()
}

// PromoteTier advances the assessment to the given tier. Promotion is
// strictly one step at a time and never downward.
func (a *Assessment) PromoteTier(t catalog.Tier) error {
	if !t.Valid() {
		return fmt.Errorf("invalid tier %d", t)
	}
	if t == a.Tier {
		return nil
	}
	if t < a.Tier {
		return fmt.Errorf("cannot demote from %s to %s", a.Tier.Label(), t.Label())
	}
	if t != a.Tier+1 {
		return fmt.Errorf("cannot skip from %s to %s", a.Tier.Label(), t.Label())
	}
	a.Tier = t
	a.touch()
	return nil
}

func (a *Assessment) touch() {
	a.UpdatedAt = time.Now()
}

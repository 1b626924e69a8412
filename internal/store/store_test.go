package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskpilot/riskpilot/internal/assessment"
	"github.com/riskpilot/riskpilot/internal/catalog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAssessmentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	a := assessment.New("acme")
	if err := a.RecordResponse(assessment.Response{
		QuestionID: "admin_001",
		Value:      "yes",
		Comment:    "confirmed with leadership",
	}); err != nil {
		t.Fatal(err)
	}
	if err := a.RecordResponse(assessment.Response{
		QuestionID: "admin_003",
		Selected:   []string{"Role-based access controls", "Automatic logoff procedures"},
		Inferred:   true,
		Confidence: 0.7,
	}); err != nil {
		t.Fatal(err)
	}
	a.AddTime(7 * time.Minute)
	a.RecordAIInteraction()

	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.Subject != "acme" || got.Tier != catalog.TierBasic || got.Status != assessment.StatusInProgress {
		t.Errorf("loaded header = %+v", got)
	}
	if got.TimeSpent != 7*time.Minute || got.AIInteractions != 1 {
		t.Errorf("counters = %v / %d", got.TimeSpent, got.AIInteractions)
	}
	if len(got.Responses) != 2 {
		t.Fatalf("%d responses, want 2", len(got.Responses))
	}
	// Arrival order survives the round trip.
	if got.Responses[0].QuestionID != "admin_001" || got.Responses[1].QuestionID != "admin_003" {
		t.Errorf("response order = %s, %s", got.Responses[0].QuestionID, got.Responses[1].QuestionID)
	}
	first := got.Responses[0]
	if first.Value != "yes" || first.Comment != "confirmed with leadership" || first.Inferred {
		t.Errorf("first response = %+v", first)
	}
	second := got.Responses[1]
	if len(second.Selected) != 2 || !second.Inferred || second.Confidence != 0.7 {
		t.Errorf("second response = %+v", second)
	}
	if !first.RecordedAt.Equal(a.Responses[0].RecordedAt) {
		t.Errorf("recorded at drifted: %v vs %v", first.RecordedAt, a.Responses[0].RecordedAt)
	}
}

func TestSaveReplacesResponses(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	a := assessment.New("acme")
	if err := a.RecordResponse(assessment.Response{QuestionID: "admin_001", Value: "no"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, a); err != nil {
		t.Fatal(err)
	}

	if err := a.RecordResponse(assessment.Response{QuestionID: "admin_001", Value: "yes"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, a); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Responses) != 1 || got.Responses[0].Value != "yes" {
		t.Errorf("responses after rewrite = %+v", got.Responses)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.AssessmentRepo().Get(context.Background(), "nope"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLatestCompleted(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	older := assessment.New("acme")
	if err := older.Complete(); err != nil {
		t.Fatal(err)
	}
	older.CreatedAt = time.Now().Add(-48 * time.Hour)
	older.UpdatedAt = older.CreatedAt

	newer := assessment.New("acme")
	if err := newer.Complete(); err != nil {
		t.Fatal(err)
	}

	inProgress := assessment.New("acme")
	if err := inProgress.RecordResponse(assessment.Response{QuestionID: "admin_001", Value: "yes"}); err != nil {
		t.Fatal(err)
	}

	otherSubject := assessment.New("globex")
	if err := otherSubject.Complete(); err != nil {
		t.Fatal(err)
	}

	for _, a := range []*assessment.Assessment{older, newer, inProgress, otherSubject} {
		if err := repo.Save(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.LatestCompleted(ctx, "acme")
	if err != nil {
		t.Fatalf("latest completed: %v", err)
	}
	if got.ID != newer.ID {
		t.Errorf("latest completed = %s, want %s", got.ID, newer.ID)
	}

	latest, err := repo.Latest(ctx, "acme")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.Status == assessment.StatusCompleted && latest.ID == older.ID {
		t.Errorf("latest picked the stale assessment")
	}

	if _, err := repo.LatestCompleted(ctx, "initech"); err != ErrNotFound {
		t.Errorf("unknown subject err = %v, want ErrNotFound", err)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "auto-population",
			InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true,
			RequestBody: "[prompt]\ninfer admin_002", ResponseBody: `{"answer":"Annually"}`},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "auto-population",
			InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "analysis",
			InputTokens: 50, OutputTokens: 0, LatencyMs: 900, Success: false,
			ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("%d events, want 2", len(got))
	}
	// Newest first.
	if got[0].Purpose != "analysis" || got[0].Success {
		t.Errorf("first event = %+v", got[0])
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "auto-population"})
	if err != nil {
		t.Fatal(err)
	}
	if len(byPurpose) != 2 {
		t.Errorf("%d auto-population events, want 2", len(byPurpose))
	}

	single, err := repo.GetLLMEvent(ctx, byPurpose[1].ID)
	if err != nil {
		t.Fatal(err)
	}
	if single == nil || single.RequestBody == "" || single.ResponseBody == "" {
		t.Errorf("bodies not stored: %+v", single)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Errorf("missing event = %+v", missing)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(usage) != 2 {
		t.Fatalf("%d purposes, want 2", len(usage))
	}
	// auto-population has the larger token total, so it sorts first.
	if usage[0].Purpose != "auto-population" || usage[0].Calls != 2 ||
		usage[0].InputTokens != 220 || usage[0].OutputTokens != 100 {
		t.Errorf("purpose usage = %+v", usage[0])
	}
	if usage[0].AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", usage[0].AvgLatencyMs)
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(models) != 1 || models[0].Calls != 3 || models[0].InputTokens != 270 {
		t.Errorf("model usage = %+v", models)
	}
}

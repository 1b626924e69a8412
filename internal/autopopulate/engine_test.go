package autopopulate

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/riskpilot/riskpilot/internal/assessment"
	"github.com/riskpilot/riskpilot/internal/catalog"
	"github.com/riskpilot/riskpilot/internal/llm"
)

func boolPtr(b bool) *bool { return &b }

func mustQuestion(t *testing.T, id string) catalog.Question {
	t.Helper()
	q, err := catalog.Get(id)
	if err != nil {
		t.Fatalf("catalog.Get(%q): %v", id, err)
	}
	return q
}

func TestDirectFactStrategy(t *testing.T) {
	facts := &CompanyFacts{
		CurrentSecurity: SecurityPosture{
			HasSecurityOfficer: boolPtr(true),
			EmployeeTraining:   "quarterly",
		},
		TechnologySystems: []TechnologySystem{
			{Name: "Athena", Type: "ehr", DeploymentType: "cloud"},
		},
	}
	in := &Input{Facts: facts}
	s := DirectFactStrategy{}

	tests := []struct {
		questionID string
		wantValue  string
		wantConf   float64
	}{
		{"admin_001", "yes", 0.95},
		{"admin_002", "Quarterly", 0.9},
		{"tech_001", "yes", 0.8},
	}
	for _, tt := range tests {
		sug, ok := s.Infer(context.Background(), mustQuestion(t, tt.questionID), in)
		if !ok {
			t.Errorf("%s: no suggestion", tt.questionID)
			continue
		}
		if sug.Value != tt.wantValue || sug.Confidence != tt.wantConf {
			t.Errorf("%s: got (%q, %v), want (%q, %v)",
				tt.questionID, sug.Value, sug.Confidence, tt.wantValue, tt.wantConf)
		}
	}

	// Nothing stated means nothing suggested.
	if _, ok := s.Infer(context.Background(), mustQuestion(t, "admin_001"), &Input{Facts: &CompanyFacts{}}); ok {
		t.Error("admin_001: suggestion from empty facts")
	}
}

func TestSystemInferenceStrategy(t *testing.T) {
	cloudOnly := &Input{Facts: &CompanyFacts{
		TechnologySystems: []TechnologySystem{
			{Name: "Athena", Type: "ehr", DeploymentType: "cloud"},
			{Name: "HubSpot", Type: "crm", DeploymentType: "cloud"},
		},
	}}
	onPrem := &Input{Facts: &CompanyFacts{
		TechnologySystems: []TechnologySystem{
			{Name: "Legacy EMR", Type: "ehr", DeploymentType: "on_premise"},
		},
	}}
	encrypted := &Input{Facts: &CompanyFacts{
		TechnologySystems: []TechnologySystem{
			{Name: "Athena", Type: "ehr", DeploymentType: "cloud",
				SecurityFeatures: []string{"encryption_at_rest"}},
		},
	}}

	s := SystemInferenceStrategy{}

	sug, ok := s.Infer(context.Background(), mustQuestion(t, "phys_001"), cloudOnly)
	if !ok || sug.Value != "Key card access with logging" {
		t.Errorf("phys_001 cloud-only: got (%q, %v)", sug.Value, ok)
	}
	sug, ok = s.Infer(context.Background(), mustQuestion(t, "phys_001"), onPrem)
	if !ok || sug.Value != "Locked doors only" {
		t.Errorf("phys_001 on-premise: got (%q, %v)", sug.Value, ok)
	}
	sug, ok = s.Infer(context.Background(), mustQuestion(t, "tech_002"), encrypted)
	if !ok || sug.Value != "AES-256 encryption" {
		t.Errorf("tech_002 encrypted inventory: got (%q, %v)", sug.Value, ok)
	}
	sug, ok = s.Infer(context.Background(), mustQuestion(t, "tech_002"), onPrem)
	if !ok || sug.Value != "Basic password protection" {
		t.Errorf("tech_002 no encryption declared: got (%q, %v)", sug.Value, ok)
	}

	// No inventory, no inference.
	if _, ok := s.Infer(context.Background(), mustQuestion(t, "tech_002"), &Input{Facts: &CompanyFacts{}}); ok {
		t.Error("tech_002: suggestion without inventory")
	}
}

func TestIndustryPatternStrategy(t *testing.T) {
	s := IndustryPatternStrategy{}

	tests := []struct {
		name       string
		facts      CompanyFacts
		questionID string
		wantValue  string
		wantOK     bool
	}{
		{"small healthcare training", CompanyFacts{Industry: "healthcare", EmployeeCount: 10}, "admin_002", "Annually", true},
		{"large healthcare training", CompanyFacts{Industry: "healthcare", EmployeeCount: 200}, "admin_002", "Semi-annually", true},
		{"healthcare encryption", CompanyFacts{Industry: "healthcare"}, "tech_002", "AES-256 encryption", true},
		{"legal training", CompanyFacts{Industry: "legal"}, "admin_002", "Annually", true},
		{"financial encryption", CompanyFacts{Industry: "financial_services"}, "tech_002", "AES-256 encryption", true},
		{"unknown industry", CompanyFacts{Industry: "retail"}, "admin_002", "", false},
		{"out-of-pattern question", CompanyFacts{Industry: "healthcare"}, "admin_001", "", false},
	}
	for _, tt := range tests {
		facts := tt.facts
		sug, ok := s.Infer(context.Background(), mustQuestion(t, tt.questionID), &Input{Facts: &facts})
		if ok != tt.wantOK {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if ok && sug.Value != tt.wantValue {
			t.Errorf("%s: value = %q, want %q", tt.name, sug.Value, tt.wantValue)
		}
	}
}

func TestHistoricalStrategy(t *testing.T) {
	prior := assessment.New("acme")
	if err := prior.RecordResponse(assessment.Response{QuestionID: "phys_002", Value: "yes"}); err != nil {
		t.Fatal(err)
	}
	if err := prior.RecordResponse(assessment.Response{
		QuestionID: "tech_002", Value: "AES-256 encryption", Inferred: true, Confidence: 0.7,
	}); err != nil {
		t.Fatal(err)
	}
	if err := prior.Complete(); err != nil {
		t.Fatal(err)
	}

	s := HistoricalStrategy{}
	in := &Input{Prior: prior}

	sug, ok := s.Infer(context.Background(), mustQuestion(t, "phys_002"), in)
	if !ok {
		t.Fatal("phys_002: human answer not carried forward")
	}
	if sug.Value != "yes" || sug.Confidence != historicalConfidence {
		t.Errorf("phys_002: got (%q, %v)", sug.Value, sug.Confidence)
	}

	// Old inferences never carry forward.
	if _, ok := s.Infer(context.Background(), mustQuestion(t, "tech_002"), in); ok {
		t.Error("tech_002: inferred prior answer carried forward")
	}
	if _, ok := s.Infer(context.Background(), mustQuestion(t, "phys_002"), &Input{}); ok {
		t.Error("phys_002: suggestion without a prior assessment")
	}
}

func TestGenerativeStrategy(t *testing.T) {
	facts := &CompanyFacts{Industry: "healthcare", EmployeeCount: 12}
	question := mustQuestion(t, "tech_003")

	t.Run("valid answer accepted", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`{"answer":"Monthly","confidence":0.65,"rationale":"Small practices typically review logs monthly"}`),
		})
		g := NewGenerativeStrategy(mock, DefaultGenerativeConfig())

		sug, ok := g.Infer(context.Background(), question, &Input{Facts: facts})
		if !ok {
			t.Fatal("no suggestion")
		}
		if sug.Value != "Monthly" || sug.Confidence != 0.65 {
			t.Errorf("got (%q, %v)", sug.Value, sug.Confidence)
		}
		if mock.CallCount() != 1 {
			t.Errorf("call count = %d, want 1", mock.CallCount())
		}
	})

	t.Run("illegal answer rejected", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{
			Content: json.RawMessage(`{"answer":"Every full moon","confidence":0.9,"rationale":"x"}`),
		})
		g := NewGenerativeStrategy(mock, DefaultGenerativeConfig())
		if _, ok := g.Infer(context.Background(), question, &Input{Facts: facts}); ok {
			t.Error("answer outside the allowed values was accepted")
		}
	})

	t.Run("provider failure is strategy failure", func(t *testing.T) {
		mock := llm.NewMockProvider() // empty queue: every call errors
		g := NewGenerativeStrategy(mock, DefaultGenerativeConfig())
		if _, ok := g.Infer(context.Background(), question, &Input{Facts: facts}); ok {
			t.Error("suggestion despite provider error")
		}
	})

	t.Run("open-ended questions skipped", func(t *testing.T) {
		mock := llm.NewMockProvider()
		g := NewGenerativeStrategy(mock, DefaultGenerativeConfig())
		if _, ok := g.Infer(context.Background(), mustQuestion(t, "admin_004"), &Input{Facts: facts}); ok {
			t.Error("free-text question reached the LLM")
		}
		if mock.CallCount() != 0 {
			t.Errorf("call count = %d, want 0", mock.CallCount())
		}
	})
}

func TestRunStrategies_PriorityAndFloor(t *testing.T) {
	// Training cadence is both stated directly and covered by the
	// healthcare industry pattern; the direct fact must win.
	in := &Input{Facts: &CompanyFacts{
		Industry:      "healthcare",
		EmployeeCount: 10,
		CurrentSecurity: SecurityPosture{
			EmployeeTraining: "quarterly",
		},
	}}
	strategies := []Strategy{DirectFactStrategy{}, SystemInferenceStrategy{}, IndustryPatternStrategy{}}

	sug, ok := runStrategies(context.Background(), strategies, mustQuestion(t, "admin_002"), in)
	if !ok {
		t.Fatal("no suggestion")
	}
	if sug.Strategy != "direct_fact" || sug.Value != "Quarterly" {
		t.Errorf("got (%q via %s), want (Quarterly via direct_fact)", sug.Value, sug.Strategy)
	}
	if sug.QuestionID != "admin_002" {
		t.Errorf("question ID = %q", sug.QuestionID)
	}
}

func TestEngine_Populate(t *testing.T) {
	a := assessment.New("acme")
	if err := a.RecordResponse(assessment.Response{QuestionID: "admin_001", Value: "no"}); err != nil {
		t.Fatal(err)
	}

	in := &Input{Facts: &CompanyFacts{
		Industry:      "healthcare",
		EmployeeCount: 10,
		CurrentSecurity: SecurityPosture{
			HasSecurityOfficer: boolPtr(true),
			EmployeeTraining:   "annually",
		},
		TechnologySystems: []TechnologySystem{
			{Name: "Athena", Type: "ehr", DeploymentType: "cloud",
				SecurityFeatures: []string{"encryption_at_rest"}},
		},
	}}

	engine := NewEngine(nil)
	suggestions, summary := engine.Populate(context.Background(), a, in)

	// Basic tier scope: admin_001-002, phys_001-002, tech_001-002.
	if summary.Total != 6 {
		t.Errorf("total = %d, want 6", summary.Total)
	}

	byQuestion := make(map[string]Suggestion, len(suggestions))
	for _, s := range suggestions {
		byQuestion[s.QuestionID] = s
	}

	// The human answer stays untouched even though the profile states
	// the opposite.
	if _, ok := byQuestion["admin_001"]; ok {
		t.Error("admin_001 has a human answer but was suggested anyway")
	}

	want := map[string]string{
		"admin_002": "Annually",
		"phys_001":  "Key card access with logging",
		"tech_001":  "yes",
		"tech_002":  "AES-256 encryption",
	}
	for qid, value := range want {
		sug, ok := byQuestion[qid]
		if !ok {
			t.Errorf("%s: no suggestion", qid)
			continue
		}
		if sug.Value != value {
			t.Errorf("%s: value = %q, want %q", qid, sug.Value, value)
		}
	}

	// phys_002 has no covering strategy without an LLM or a prior
	// assessment.
	if _, ok := byQuestion["phys_002"]; ok {
		t.Error("phys_002: unexpected suggestion")
	}

	if summary.Suggested != len(suggestions) {
		t.Errorf("suggested = %d, suggestions = %d", summary.Suggested, len(suggestions))
	}
	if summary.High+summary.Medium+summary.Low != summary.Suggested {
		t.Errorf("bands %d+%d+%d != suggested %d",
			summary.High, summary.Medium, summary.Low, summary.Suggested)
	}
	if summary.Suggested > summary.Total {
		t.Errorf("suggested %d exceeds total %d", summary.Suggested, summary.Total)
	}
}

func TestApply(t *testing.T) {
	a := assessment.New("acme")
	suggestions := []Suggestion{
		{QuestionID: "admin_002", Value: "Annually", Confidence: 0.6, Strategy: "industry_pattern"},
		{QuestionID: "tech_002", Value: "AES-256 encryption", Confidence: 0.75, Strategy: "system_inference"},
	}
	if err := Apply(a, suggestions); err != nil {
		t.Fatal(err)
	}

	for _, s := range suggestions {
		r, ok := a.Response(s.QuestionID)
		if !ok {
			t.Errorf("%s: not recorded", s.QuestionID)
			continue
		}
		if !r.Inferred || r.Confidence != s.Confidence || r.Value != s.Value {
			t.Errorf("%s: recorded as %+v", s.QuestionID, r)
		}
		if a.HasHumanResponse(s.QuestionID) {
			t.Errorf("%s: applied suggestion counts as a human response", s.QuestionID)
		}
	}

	if err := a.Complete(); err != nil {
		t.Fatal(err)
	}
	if err := Apply(a, suggestions); err == nil {
		t.Error("apply succeeded on a completed assessment")
	}
}

func TestParseFacts(t *testing.T) {
	data := []byte(`{
		"business_type": "clinic",
		"industry": "healthcare",
		"employee_count": 12,
		"technology_systems": [
			{"name": "Athena", "type": "ehr", "deployment_type": "cloud",
			 "features": ["user_accounts"], "security_features": ["encryption_at_rest"]}
		],
		"current_security": {"has_security_officer": true, "employee_training": "annually"},
		"compliance_obligations": ["hipaa"]
	}`)

	facts, err := ParseFacts(data)
	if err != nil {
		t.Fatal(err)
	}
	if facts.Industry != "healthcare" || facts.EmployeeCount != 12 {
		t.Errorf("parsed facts = %+v", facts)
	}
	if facts.CurrentSecurity.HasSecurityOfficer == nil || !*facts.CurrentSecurity.HasSecurityOfficer {
		t.Error("has_security_officer not parsed")
	}

	if _, err := ParseFacts([]byte(`{"industree": "healthcare"}`)); err == nil {
		t.Error("unknown field accepted")
	}
}

package rater

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// MockProvider implements Provider for testing
type MockProvider struct {
	judgment *Judgment
	err      error
	raw      string // when set, Judge parses this as provider output
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) IsAvailable(ctx context.Context) bool { return true }

func (m *MockProvider) Judge(ctx context.Context, req JudgeRequest) (*Judgment, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.raw != "" {
		return parseJudgment(m.raw, req.Excerpt)
	}
	return m.judgment, nil
}

func testDoc(text string) *model.Document {
	return &model.Document{Title: "Test", PlainText: text}
}

func TestAugmentProviderFailureReturnsNothing(t *testing.T) {
	r := &Rater{
		provider: &MockProvider{err: errors.New("connection refused")},
		timeout:  time.Second,
	}

	signals, summaries := r.Augment(context.Background(), testDoc("some content"), "general")
	if signals != nil || summaries != nil {
		t.Fatalf("failed rater should return nothing, got %v / %v", signals, summaries)
	}
}

func TestAugmentDisabledRater(t *testing.T) {
	r, err := New(model.RaterConfig{}, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r.Enabled() {
		t.Fatal("rater with no provider should be disabled")
	}

	signals, summaries := r.Augment(context.Background(), testDoc("content"), "general")
	if signals != nil || summaries != nil {
		t.Fatal("disabled rater should return nothing")
	}
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(model.RaterConfig{Provider: "bard"}, false)
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestParseDropsHallucinatedQuotes(t *testing.T) {
	raw := `{
		"experience": {
			"signals": [
				{"name": "firsthand tone", "points": 3, "quote": "in my ten years of practice", "explanation": "sounds genuine"},
				{"name": "fabricated", "points": 4, "quote": "this text does not exist", "explanation": "made up"}
			],
			"summary": "mostly genuine"
		},
		"expertise": {"signals": [], "summary": ""},
		"authoritativeness": {"signals": [], "summary": ""},
		"trust": {"signals": [], "summary": ""}
	}`
	docText := "In my ten years of practice I have seen many cases like this one."

	judgment, err := parseJudgment(raw, docText)
	if err != nil {
		t.Fatalf("parseJudgment: %v", err)
	}
	if len(judgment.Signals) != 1 {
		t.Fatalf("expected hallucinated quote to be dropped, got %d signals", len(judgment.Signals))
	}
	sig := judgment.Signals[0]
	if sig.Name != "firsthand tone" || !sig.Soft || !sig.Found {
		t.Fatalf("unexpected surviving signal: %+v", sig)
	}
	if judgment.Summaries[model.DimensionExperience] != "mostly genuine" {
		t.Fatalf("summary not captured: %v", judgment.Summaries)
	}
}

func TestParseClampsPoints(t *testing.T) {
	raw := `{
		"trust": {
			"signals": [{"name": "measured tone", "points": 99, "quote": "we cannot promise", "explanation": ""}],
			"summary": ""
		}
	}`

	judgment, err := parseJudgment(raw, "Honestly, we cannot promise any particular outcome.")
	if err != nil {
		t.Fatalf("parseJudgment: %v", err)
	}
	if len(judgment.Signals) != 1 {
		t.Fatalf("expected one signal, got %d", len(judgment.Signals))
	}
	if judgment.Signals[0].Points != maxSoftPoints {
		t.Fatalf("points = %v, want clamp to %v", judgment.Signals[0].Points, float64(maxSoftPoints))
	}
}

func TestParseStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"experience\": {\"signals\": [], \"summary\": \"thin\"}}\n```"

	judgment, err := parseJudgment(raw, "irrelevant")
	if err != nil {
		t.Fatalf("parseJudgment: %v", err)
	}
	if judgment.Summaries[model.DimensionExperience] != "thin" {
		t.Fatalf("fenced JSON not parsed: %v", judgment.Summaries)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := parseJudgment("I think this content is pretty good!", "doc"); err == nil {
		t.Fatal("expected parse error for non-JSON output")
	}
}

func TestAugmentUsesValidatedSignals(t *testing.T) {
	raw := `{
		"expertise": {
			"signals": [{"name": "depth", "points": 2, "quote": "statute of limitations", "explanation": "correct term"}],
			"summary": "solid"
		}
	}`
	r := &Rater{provider: &MockProvider{raw: raw}, timeout: time.Second}

	signals, summaries := r.Augment(context.Background(),
		testDoc("The statute of limitations varies by state."), "legal_guide")

	if len(signals) != 1 {
		t.Fatalf("expected one soft signal, got %d", len(signals))
	}
	if signals[0].Dimension != model.DimensionExpertise || !signals[0].Soft {
		t.Fatalf("unexpected signal: %+v", signals[0])
	}
	if summaries[model.DimensionExpertise] != "solid" {
		t.Fatalf("summaries = %v", summaries)
	}
}

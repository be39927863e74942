package score

import (
	"testing"

	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/preset"
)

func testPreset(t *testing.T, name string) preset.Preset {
	t.Helper()
	registry, err := preset.Load()
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}
	return registry.Resolve(name)
}

func sig(dim model.Dimension, found bool, points, possible float64) model.Signal {
	return model.Signal{Dimension: dim, Found: found, Points: points, PointsPossible: possible}
}

func TestScoreEmptyEvidence(t *testing.T) {
	s := NewScorer()
	result := s.Score(&model.Document{}, nil, testPreset(t, preset.General))
	if result.Overall != 0 {
		t.Errorf("no evidence should score 0, got %.1f", result.Overall)
	}
	if result.Experience.Score != 0 || result.Trust.Score != 0 {
		t.Error("dimension scores should be 0 with no evidence")
	}
	if result.PresetUsed != preset.General {
		t.Errorf("PresetUsed = %q", result.PresetUsed)
	}
}

func TestScoreBounds(t *testing.T) {
	s := NewScorer()
	evidence := map[model.Dimension][]model.Signal{}
	for _, dim := range model.Dimensions() {
		// raw exceeds the pool; score must still cap at 25
		evidence[dim] = []model.Signal{
			sig(dim, true, 10, 4),
			sig(dim, true, 10, 4),
		}
	}
	result := s.Score(&model.Document{PlainText: "text"}, evidence, testPreset(t, preset.General))

	for _, dim := range model.Dimensions() {
		if got := result.ByDimension(dim).Score; got != 25 {
			t.Errorf("%s score = %.1f, want 25", dim, got)
		}
	}
	if result.Overall != 100 {
		t.Errorf("all dimensions maxed should give 100, got %.1f", result.Overall)
	}
}

func TestScoreProportional(t *testing.T) {
	s := NewScorer()
	evidence := map[model.Dimension][]model.Signal{
		model.DimensionTrust: {
			sig(model.DimensionTrust, true, 5, 5),
			sig(model.DimensionTrust, false, 0, 5),
		},
	}
	result := s.Score(&model.Document{PlainText: "text"}, evidence, testPreset(t, preset.General))
	if got := result.Trust.Score; got != 12.5 {
		t.Errorf("half the pool should score 12.5, got %.1f", got)
	}
}

func TestSoftSignalsNeverGrowPool(t *testing.T) {
	s := NewScorer()
	base := map[model.Dimension][]model.Signal{
		model.DimensionExperience: {
			sig(model.DimensionExperience, true, 4, 8),
		},
	}
	augmented := map[model.Dimension][]model.Signal{
		model.DimensionExperience: {
			sig(model.DimensionExperience, true, 4, 8),
			{Dimension: model.DimensionExperience, Found: true, Points: 2, PointsPossible: 4, Soft: true},
		},
	}
	p := testPreset(t, preset.General)

	baseScore := s.Score(&model.Document{PlainText: "t"}, base, p).Experience.Score
	augScore := s.Score(&model.Document{PlainText: "t"}, augmented, p).Experience.Score

	if augScore <= baseScore {
		t.Errorf("soft evidence should raise the score: %.1f vs %.1f", augScore, baseScore)
	}
	// pool stays 8, so 6/8*25 = 18.75 -> 18.8
	if augScore != 18.8 {
		t.Errorf("augmented score = %.1f, want 18.8", augScore)
	}
}

func TestWeightsShiftOverall(t *testing.T) {
	s := NewScorer()
	// Only expertise evidence; presets that weight expertise higher must
	// produce a higher overall from identical input.
	evidence := map[model.Dimension][]model.Signal{
		model.DimensionExpertise: {
			sig(model.DimensionExpertise, true, 4, 4),
		},
	}
	doc := &model.Document{PlainText: "t"}

	general := s.Score(doc, evidence, testPreset(t, preset.General)).Overall
	medical := s.Score(doc, evidence, testPreset(t, preset.Medical)).Overall
	if medical <= general {
		t.Errorf("expertise-heavy preset should reward expertise evidence more: %.1f vs %.1f", medical, general)
	}
}

func TestClassifyYMYL(t *testing.T) {
	strongEvidence := map[model.Dimension][]model.Signal{
		model.DimensionTrust: {
			sig(model.DimensionTrust, true, 2, 2),
			sig(model.DimensionTrust, true, 2, 2),
		},
		model.DimensionExpertise: {
			sig(model.DimensionExpertise, true, 4, 4),
		},
	}
	thinEvidence := map[model.Dimension][]model.Signal{
		model.DimensionTrust: {
			sig(model.DimensionTrust, false, 0, 2),
			sig(model.DimensionTrust, false, 0, 2),
		},
		model.DimensionExpertise: {
			sig(model.DimensionExpertise, false, 0, 4),
		},
	}

	legalDoc := &model.Document{
		Title:     "Statute of Limitations After a Crash",
		PlainText: "An attorney can file before the statute of limitations runs. Negligence and liability decide the settlement.",
	}

	if got := ClassifyYMYL(legalDoc, thinEvidence); got != model.YMYLRiskHigh {
		t.Errorf("legal topic with thin evidence = %s, want high", got)
	}
	if got := ClassifyYMYL(legalDoc, strongEvidence); got != model.YMYLRiskMedium {
		t.Errorf("legal topic with strong evidence = %s, want medium", got)
	}

	neutral := &model.Document{Title: "Sourdough Basics", PlainText: "Flour, water, salt, and patience."}
	if got := ClassifyYMYL(neutral, strongEvidence); got != model.YMYLRiskLow {
		t.Errorf("neutral topic = %s, want low", got)
	}
	if got := ClassifyYMYL(&model.Document{}, nil); got != model.YMYLRiskLow {
		t.Errorf("empty document = %s, want low", got)
	}
}

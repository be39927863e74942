package recommend

import (
	"testing"

	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/preset"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	reg, err := preset.Load()
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}
	return NewEngine(reg)
}

func scoreWithSignals(presetName string, signals ...model.Signal) model.Score {
	score := model.Score{
		PresetUsed: presetName,
		Experience: model.DimensionScore{Dimension: model.DimensionExperience},
		Expertise:  model.DimensionScore{Dimension: model.DimensionExpertise},
		Authoritativeness: model.DimensionScore{
			Dimension: model.DimensionAuthoritativeness,
		},
		Trust: model.DimensionScore{Dimension: model.DimensionTrust},
	}
	for _, sig := range signals {
		ds := score.ByDimension(sig.Dimension)
		ds.Signals = append(ds.Signals, sig)
	}
	return score
}

func TestOrderingByImpactThenEffort(t *testing.T) {
	e := newEngine(t)

	// About page: high impact, moderate effort. Contact: high impact,
	// easy effort. Terms: low impact, easy effort.
	score := scoreWithSignals(preset.General,
		model.Signal{Dimension: model.DimensionTrust, Name: model.SignalTerms, PointsPossible: 1},
		model.Signal{Dimension: model.DimensionTrust, Name: model.SignalAboutPage, PointsPossible: 2},
		model.Signal{Dimension: model.DimensionTrust, Name: model.SignalContact, PointsPossible: 2},
	)

	recs := e.Recommend(score, model.ClaimsAudit{}, nil)
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	if recs[0].Impact != model.ImpactHigh || recs[0].Effort != model.EffortEasy {
		t.Fatalf("first should be high/easy, got %s/%s", recs[0].Impact, recs[0].Effort)
	}
	if recs[1].Impact != model.ImpactHigh || recs[1].Effort != model.EffortModerate {
		t.Fatalf("second should be high/moderate, got %s/%s", recs[1].Impact, recs[1].Effort)
	}
	if recs[2].Impact != model.ImpactLow {
		t.Fatalf("last should be low impact, got %s", recs[2].Impact)
	}
}

func TestRequiredSignalPromotedToHighImpact(t *testing.T) {
	e := newEngine(t)

	// Disclaimer is required for the medical preset; terms is not.
	score := scoreWithSignals(preset.Medical,
		model.Signal{Dimension: model.DimensionTrust, Name: model.SignalDisclaimer, PointsPossible: 2},
	)

	recs := e.Recommend(score, model.ClaimsAudit{}, nil)
	if len(recs) == 0 {
		t.Fatal("expected a recommendation")
	}
	if recs[0].Impact != model.ImpactHigh {
		t.Fatalf("required signal should be high impact, got %s", recs[0].Impact)
	}
	if recs[0].PointsPotential != 4 {
		t.Fatalf("required signal should carry boosted points, got %v", recs[0].PointsPotential)
	}
}

func TestFoundSignalsProduceNothing(t *testing.T) {
	e := newEngine(t)
	score := scoreWithSignals(preset.General,
		model.Signal{Dimension: model.DimensionTrust, Name: model.SignalContact, Found: true, PointsPossible: 2},
	)

	recs := e.Recommend(score, model.ClaimsAudit{}, nil)
	if len(recs) != 0 {
		t.Fatalf("found signals should not generate recommendations, got %d", len(recs))
	}
	if recs == nil {
		t.Fatal("empty result should be non-nil")
	}
}

func TestAuditProblemsAggregated(t *testing.T) {
	e := newEngine(t)
	audit := model.ClaimsAudit{
		TotalClaims:        7,
		Unsupported:        4,
		NeedsQualification: 3,
	}

	recs := e.Recommend(scoreWithSignals(preset.General), audit, nil)
	if len(recs) != 2 {
		t.Fatalf("expected 2 aggregated claim recommendations, got %d", len(recs))
	}
	for _, rec := range recs {
		if rec.Impact != model.ImpactHigh {
			t.Fatalf("claim recommendations should be high impact, got %s", rec.Impact)
		}
	}
}

func TestComplianceFlagsGroupedByRule(t *testing.T) {
	e := newEngine(t)
	flags := []model.ComplianceFlag{
		{Rule: preset.RuleOutcomePromise, Severity: model.SeverityHigh, Text: "you will win"},
		{Rule: preset.RuleOutcomePromise, Severity: model.SeverityHigh, Text: "you will recover"},
		{Rule: preset.RuleExpertClaim, Severity: model.SeverityMedium, Text: "expert"},
	}

	recs := e.Recommend(scoreWithSignals(preset.LegalFAQ), model.ClaimsAudit{}, flags)

	ruleRecs := 0
	for _, rec := range recs {
		if rec.Dimension == model.DimensionTrust && rec.Effort == model.EffortEasy {
			ruleRecs++
		}
	}
	if ruleRecs < 2 {
		t.Fatalf("expected one recommendation per distinct rule, got %d matching", ruleRecs)
	}
}

func TestLegalPresetAddsAttorneyReview(t *testing.T) {
	e := newEngine(t)
	score := scoreWithSignals(preset.LegalPracticeArea,
		model.Signal{Dimension: model.DimensionAuthoritativeness, Name: model.SignalCredentials, PointsPossible: 3},
	)

	recs := e.Recommend(score, model.ClaimsAudit{}, nil)

	found := false
	for _, rec := range recs {
		if rec.Title == "Add an attorney-reviewed line" {
			found = true
		}
	}
	if !found {
		t.Fatal("legal preset without credentials should recommend attorney review")
	}
}

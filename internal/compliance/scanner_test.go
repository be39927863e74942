package compliance

import (
	"strings"
	"testing"

	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/preset"
)

func legalPreset(t *testing.T) preset.Preset {
	t.Helper()
	reg, err := preset.Load()
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}
	return reg.Resolve(preset.LegalPracticeArea)
}

func generalPreset(t *testing.T) preset.Preset {
	t.Helper()
	reg, err := preset.Load()
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}
	return reg.Resolve(preset.General)
}

func TestOutcomeGuaranteeFlaggedHigh(t *testing.T) {
	s := NewScanner()
	doc := &model.Document{PlainText: "Call us today. We guarantee you will win your case no matter the facts."}

	flags := s.Scan(doc, legalPreset(t))

	var found *model.ComplianceFlag
	for i := range flags {
		if flags[i].Rule == preset.RuleOutcomeGuarantee {
			found = &flags[i]
		}
	}
	if found == nil {
		t.Fatalf("expected %s flag, got %+v", preset.RuleOutcomeGuarantee, flags)
	}
	if found.Severity != model.SeverityHigh {
		t.Fatalf("severity = %s, want high", found.Severity)
	}
	if !strings.Contains(found.Location, found.Text) {
		t.Fatalf("location %q should contain matched text %q", found.Location, found.Text)
	}
}

func TestDisabledRuleNotFlagged(t *testing.T) {
	s := NewScanner()
	doc := &model.Document{PlainText: "No fee unless we win. Our clients say we are wonderful."}

	flags := s.Scan(doc, generalPreset(t))
	for _, f := range flags {
		if f.Rule == preset.RuleConditionalFee {
			t.Fatalf("conditional fee rule should be disabled for general preset: %+v", f)
		}
	}
}

func TestDuplicateMatchesDeduped(t *testing.T) {
	s := NewScanner()
	phrase := "you will win"
	doc := &model.Document{PlainText: phrase + " the case, because " + phrase + " every time."}

	flags := s.Scan(doc, legalPreset(t))

	count := 0
	for _, f := range flags {
		if f.Rule == preset.RuleOutcomePromise {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("identical matched spans should dedupe to one flag, got %d", count)
	}
}

func TestDistinctSpansKept(t *testing.T) {
	s := NewScanner()
	doc := &model.Document{PlainText: "You will win at trial. Later, you will recover every dollar."}

	flags := s.Scan(doc, legalPreset(t))

	count := 0
	for _, f := range flags {
		if f.Rule == preset.RuleOutcomePromise {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("distinct matched spans should each produce a flag, got %d", count)
	}
}

func TestEmptyDocumentNoFlags(t *testing.T) {
	s := NewScanner()
	flags := s.Scan(&model.Document{}, legalPreset(t))
	if len(flags) != 0 {
		t.Fatalf("expected no flags for empty document, got %d", len(flags))
	}
}

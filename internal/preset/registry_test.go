package preset

import (
	"testing"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

func TestLoadValidatesWeights(t *testing.T) {
	registry, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	all := registry.All()
	if len(all) != 10 {
		t.Fatalf("expected 10 built-in presets, got %d", len(all))
	}

	for _, p := range all {
		sum := 0.0
		for _, d := range model.Dimensions() {
			w, ok := p.Weights[d]
			if !ok {
				t.Errorf("preset %q missing weight for %s", p.Name, d)
			}
			sum += w
		}
		if sum != 100 {
			t.Errorf("preset %q weights sum to %.1f, want 100", p.Name, sum)
		}
	}
}

func TestResolveFallsBackToGeneral(t *testing.T) {
	registry, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cases := []struct {
		name string
		want string
	}{
		{"legal_guide", LegalGuide},
		{"  Legal_Guide  ", LegalGuide},
		{"medical", Medical},
		{"no_such_preset", General},
		{"", General},
	}
	for _, tc := range cases {
		if got := registry.Resolve(tc.name).Name; got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}

	if registry.Known("no_such_preset") {
		t.Error("Known(no_such_preset) = true, want false")
	}
	if !registry.Known("finance") {
		t.Error("Known(finance) = false, want true")
	}
}

func TestLegalPresetsCarryStricterRules(t *testing.T) {
	registry, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	legal := registry.Resolve(LegalGuide)
	if !legal.Legal() {
		t.Error("legal_guide should report Legal() = true")
	}
	general := registry.Resolve(General)
	if general.Legal() {
		t.Error("general should report Legal() = false")
	}
	if len(legal.ComplianceRules) <= len(general.ComplianceRules) {
		t.Errorf("legal preset should enable more compliance rules than general: %d vs %d",
			len(legal.ComplianceRules), len(general.ComplianceRules))
	}
}

func TestDetect(t *testing.T) {
	registry, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	cases := []struct {
		name string
		doc  *model.Document
		want string
	}{
		{
			name: "legal guide",
			doc: &model.Document{
				Title:     "A Guide to Statute of Limitations Claims",
				PlainText: "If you hire an attorney after a personal injury, the statute of limitations controls your case. This guide explains the deadlines.",
			},
			want: LegalGuide,
		},
		{
			name: "legal default subtype",
			doc: &model.Document{
				Title:     "Negligence and Liability",
				PlainText: "A plaintiff must prove the defendant's negligence caused damages.",
			},
			want: LegalPracticeArea,
		},
		{
			name: "medical",
			doc: &model.Document{
				Title:     "Managing Diabetes Symptoms",
				PlainText: "Discuss medication dosage and side effects with your physician before changing treatment.",
			},
			want: Medical,
		},
		{
			name: "product review",
			doc: &model.Document{
				Title:     "Best Standing Desks, Tested and Compared",
				PlainText: "We tested twelve desks over three months and compared build quality.",
			},
			want: ProductReview,
		},
		{
			name: "plain content",
			doc: &model.Document{
				Title:     "Our Company History",
				PlainText: "Founded in 1998, we make furniture in Vermont.",
			},
			want: General,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := registry.Detect(tc.doc).Name; got != tc.want {
				t.Errorf("Detect() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLexiconHits(t *testing.T) {
	high, medium := LexiconHits("An attorney handles your settlement while you budget for tax season.")
	if high < 2 {
		t.Errorf("expected at least 2 high-risk hits, got %d", high)
	}
	if medium < 2 {
		t.Errorf("expected at least 2 medium-risk hits, got %d", medium)
	}

	high, medium = LexiconHits("We bake sourdough bread every morning.")
	if high != 0 || medium != 0 {
		t.Errorf("expected no hits for neutral text, got high=%d medium=%d", high, medium)
	}
}

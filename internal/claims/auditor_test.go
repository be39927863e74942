package claims

import (
	"reflect"
	"testing"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

func docWithSections(sections ...model.Section) *model.Document {
	var plain string
	for _, s := range sections {
		plain += s.Text + "\n\n"
	}
	return &model.Document{PlainText: plain, Sections: sections}
}

func TestAuditEmptyDocument(t *testing.T) {
	a := NewAuditor()
	audit := a.Audit(&model.Document{})
	if audit.TotalClaims != 0 || len(audit.Claims) != 0 {
		t.Fatalf("expected empty audit, got %+v", audit)
	}
}

func TestAuditCountsSumToTotal(t *testing.T) {
	a := NewAuditor()
	doc := docWithSections(
		model.Section{Index: 0, Text: "Studies show that 75% of cases settle before trial. You must file within 30 days of the incident."},
		model.Section{Index: 1, Text: "We are the best law firm in the state. Recovery is guaranteed in every case we take."},
	)
	audit := a.Audit(doc)

	if audit.TotalClaims == 0 {
		t.Fatal("expected claims to be extracted")
	}
	sum := audit.Supported + audit.WeaklySupported + audit.Unsupported + audit.NeedsQualification
	if sum != audit.TotalClaims {
		t.Fatalf("grade counts sum %d != total %d", sum, audit.TotalClaims)
	}
}

func TestAbsoluteQualifierOverridesCitation(t *testing.T) {
	a := NewAuditor()
	doc := docWithSections(model.Section{
		Index: 0,
		Text:  "Studies show this treatment always works according to the research literature.",
	})
	doc.OutboundLinks = []model.Link{{
		URL:        "https://www.cdc.gov/treatment",
		AnchorText: "research literature",
		Domain:     "cdc.gov",
		Government: true,
		External:   true,
	}}

	audit := a.Audit(doc)
	if len(audit.Claims) != 1 {
		t.Fatalf("expected one claim, got %d", len(audit.Claims))
	}
	if got := audit.Claims[0].Grade; got != model.GradeNeedsQualification {
		t.Fatalf("absolute qualifier should force needs_qualification, got %s", got)
	}
}

func TestGradingByCitationAuthority(t *testing.T) {
	tests := []struct {
		name string
		link model.Link
		want model.EvidenceGrade
	}{
		{
			name: "government source supports claim",
			link: model.Link{URL: "https://www.nih.gov/study", AnchorText: "recent survey", Domain: "nih.gov", Government: true},
			want: model.GradeSupported,
		},
		{
			name: "low trust source weakly supports",
			link: model.Link{URL: "https://someblog.example.com/post", AnchorText: "recent survey", Domain: "someblog.example.com"},
			want: model.GradeWeaklySupported,
		},
		{
			name: "unrecognized source weakly supports",
			link: model.Link{URL: "https://example.org/page", AnchorText: "recent survey", Domain: "example.org"},
			want: model.GradeWeaklySupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAuditor()
			doc := docWithSections(model.Section{
				Index: 0,
				Text:  "A recent survey found that settlements rose sharply last year.",
			})
			doc.OutboundLinks = []model.Link{tt.link}

			audit := a.Audit(doc)
			if len(audit.Claims) != 1 {
				t.Fatalf("expected one claim, got %d", len(audit.Claims))
			}
			if got := audit.Claims[0].Grade; got != tt.want {
				t.Fatalf("grade = %s, want %s", got, tt.want)
			}
			if audit.Claims[0].NearestCitation != tt.link.URL {
				t.Fatalf("nearest citation = %q, want %q", audit.Claims[0].NearestCitation, tt.link.URL)
			}
		})
	}
}

func TestUncitedClaimIsUnsupported(t *testing.T) {
	a := NewAuditor()
	doc := docWithSections(model.Section{
		Index: 0,
		Text:  "Research indicates most plaintiffs settle out of court in these matters.",
	})

	audit := a.Audit(doc)
	if len(audit.Claims) != 1 {
		t.Fatalf("expected one claim, got %d", len(audit.Claims))
	}
	if got := audit.Claims[0].Grade; got != model.GradeUnsupported {
		t.Fatalf("grade = %s, want %s", got, model.GradeUnsupported)
	}
}

func TestClaimsInDocumentOrder(t *testing.T) {
	a := NewAuditor()
	doc := docWithSections(
		model.Section{Index: 0, Text: "You must file within 30 days of receiving the notice letter."},
		model.Section{Index: 1, Text: "Studies show that 40% of claims are denied on first submission."},
		model.Section{Index: 2, Text: "First, you must gather all the relevant medical records."},
	)

	audit := a.Audit(doc)
	if len(audit.Claims) != 3 {
		t.Fatalf("expected 3 claims, got %d", len(audit.Claims))
	}
	var order []int
	for _, c := range audit.Claims {
		order = append(order, c.SectionIndex)
	}
	if !reflect.DeepEqual(order, []int{0, 1, 2}) {
		t.Fatalf("claims out of document order: %v", order)
	}
}

func TestAuditDeterministic(t *testing.T) {
	a := NewAuditor()
	doc := docWithSections(
		model.Section{Index: 0, Text: "According to the agency, approximately 4 million filings were made last year."},
		model.Section{Index: 1, Text: "You are entitled to compensation when the other driver is liable for the crash."},
	)

	first := a.Audit(doc)
	for i := 0; i < 5; i++ {
		again := a.Audit(doc)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("audit not deterministic on run %d", i)
		}
	}
}

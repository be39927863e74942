package preset

import (
	"strings"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// Topic lexicons. A page mentioning several high-risk terms is treated
// as your-money-your-life content; the same lexicons drive preset
// auto-detection.
var (
	legalHigh = []string{
		"attorney", "lawyer", "law firm", "statute of limitations",
		"negligence", "liability", "personal injury", "medical malpractice",
		"wrongful death", "class action", "plaintiff", "defendant",
		"settlement", "verdict", "litigation", "criminal defense",
		"family law", "divorce", "custody", "immigration law",
		"dui", "dwi", "felony", "misdemeanor", "probation",
		"workers compensation", "workers' compensation", "bankruptcy",
		"foreclosure", "eviction", "tort", "damages", "indictment",
		"arraignment", "bail", "subpoena", "deposition",
	}

	medicalHigh = []string{
		"diagnosis", "treatment", "medication", "dosage", "side effects",
		"symptoms", "surgery", "prescription", "therapy", "prognosis",
		"clinical trial", "contraindication", "overdose", "emergency",
		"cancer", "diabetes", "heart disease", "stroke",
		"mental health", "depression", "anxiety", "suicid",
	}

	financeHigh = []string{
		"investment", "mortgage", "tax return", "retirement fund",
		"401k", "ira", "securities", "credit score", "debt",
		"loan", "insurance claim", "financial advisor", "fiduciary",
		"estate planning", "trust fund", "will and testament",
	}

	safetyHigh = []string{
		"child safety", "recall", "poison", "hazard", "emergency",
		"self-harm", "abuse", "trafficking", "weapon",
	}

	mediumRisk = []string{
		"health", "wellness", "nutrition", "fitness", "supplement",
		"tax", "budget", "saving", "credit card", "refinance",
		"parenting", "pregnancy", "elder care",
	}
)

// legalSubtypes maps page cues to the most specific legal preset.
// Checked in order so more specific cues win.
var legalSubtypes = []struct {
	cue  string
	name string
}{
	{"practice area", LegalPracticeArea},
	{"case results", LegalCaseResults},
	{"testimonial", LegalCaseResults},
	{"faq", LegalFAQ},
	{"frequently asked", LegalFAQ},
	{"guide", LegalGuide},
	{"overview", LegalGuide},
	{"location", LegalLocation},
	{"serving", LegalLocation},
}

func countHits(text string, terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.Contains(text, t) {
			n++
		}
	}
	return n
}

// LexiconHits counts high-risk and medium-risk topic terms in text.
// The text is expected to include the title.
func LexiconHits(text string) (high, medium int) {
	t := strings.ToLower(text)
	high = countHits(t, legalHigh) + countHits(t, medicalHigh) +
		countHits(t, financeHigh) + countHits(t, safetyHigh)
	medium = countHits(t, mediumRisk)
	return high, medium
}

// Detect picks the best-fitting preset from page cues. It is only a
// suggestion; an explicit preset name always wins.
func (r *Registry) Detect(doc *model.Document) Preset {
	text := strings.ToLower(doc.PlainText + " " + doc.Title)

	if countHits(text, legalHigh) >= 2 {
		for _, sub := range legalSubtypes {
			if strings.Contains(text, sub.cue) {
				return r.Resolve(sub.name)
			}
		}
		return r.Resolve(LegalPracticeArea)
	}

	if countHits(text, medicalHigh) >= 3 {
		return r.Resolve(Medical)
	}
	if countHits(text, financeHigh) >= 3 {
		return r.Resolve(Finance)
	}

	reviewCues := []string{"review", "tested", "compared", "best", "top", "vs", "rating"}
	if countHits(text, reviewCues) >= 2 {
		return r.Resolve(ProductReview)
	}
	diyCues := []string{"how to", "step by step", "tutorial", "diy", "guide", "instructions"}
	if countHits(text, diyCues) >= 2 {
		return r.Resolve(DIYTutorial)
	}

	return r.Resolve(General)
}

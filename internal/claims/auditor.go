// Package claims extracts candidate factual and directive claims from
// a document and grades each one against nearby citations.
package claims

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/eeatgrade/eeatgrade/internal/authority"
	"github.com/eeatgrade/eeatgrade/internal/model"
)

// Claim sentences shorter than this are noise, longer ones are usually
// extraction artifacts.
const (
	minSentenceLen = 20
	maxSentenceLen = 500
)

// typePatterns pairs a claim type with its indicator patterns. Order
// matters: the first type whose pattern hits classifies the sentence.
var typePatterns = []struct {
	claimType model.ClaimType
	patterns  []*regexp.Regexp
}{
	{model.ClaimTypeStatistic, compile(
		`\d+\s*%`,
		`\$[\d,]+`,
		`studies?\s+show`,
		`research\s+(shows?|indicates?|suggests?|found)`,
		`according\s+to`,
		`data\s+(shows?|indicates?|suggests?)`,
		`survey`,
		`on\s+average`,
		`approximately\s+\d`,
		`estimated\s+\d`,
	)},
	{model.ClaimTypeLegalDirective, compile(
		`statute\s+of\s+limitations?\s+is\s+\d`,
		`you\s+(must|have\s+to|are\s+required\s+to)\s+file`,
		`deadline\s+(is|of)\s+\d`,
		`within\s+\d+\s+(days?|months?|years?)`,
		`notice\s+requirement`,
		`you\s+(can|may)\s+sue`,
		`liable\s+for`,
		`entitled\s+to`,
		`burden\s+of\s+proof`,
		`comparative\s+fault`,
		`contributory\s+negligence`,
	)},
	{model.ClaimTypeMedicalDirective, compile(
		`you\s+should\s+(take|stop|avoid|consult)`,
		`recommended\s+dosage`,
		`side\s+effects?\s+include`,
		`(safe|unsafe)\s+to`,
	)},
	{model.ClaimTypeOutcome, compile(
		`you\s+will\s+(get|receive|win|recover|obtain)`,
		`guaranteed?\s+`,
		`always\s+results?\s+in`,
		`average\s+settlement`,
		`typical\s+(recovery|verdict|settlement)`,
		`you\s+can\s+expect\s+to\s+(receive|recover)`,
	)},
	{model.ClaimTypeComparative, compile(
		`\b(best|top|most|leading|#\s*1|number\s*one|premier)\b`,
		`better\s+than`,
		`more\s+effective\s+than`,
		`outperforms?`,
		`superior\s+to`,
	)},
	{model.ClaimTypeProcedural, compile(
		`(first|then|next),?\s+you\s+(must|should|need\s+to|will)`,
		`step\s+\d`,
		`file\s+(a|the|your)\s+`,
		`serve\s+(the|a)\s+`,
		`appeal\s+(the|a|within)`,
	)},
}

// Absolute qualifiers that force needs_qualification regardless of any
// nearby citation.
var overbroadPatterns = compile(
	`\balways\b`, `\bnever\b`, `\beveryone\b`, `\bno one\b`,
	`\bguaranteed?\b`, `\b100\s*%\b`, `\ball\s+cases?\b`,
	`\bwithout\s+exception\b`,
)

// Textual citation markers matched when no hyperlink is nearby
var textualCitation = regexp.MustCompile(`(?i)\b(?:according\s+to|as\s+reported\s+by|per)\s+((?:the\s+)?[A-Z][\w&.'-]*(?:\s+[A-Z][\w&.'-]*){0,4})`)

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile("(?i)" + p)
	}
	return out
}

// Auditor extracts and grades claims. Pure function of the document.
type Auditor struct {
	classifier *authority.Classifier
}

// NewAuditor creates a claims auditor
func NewAuditor() *Auditor {
	return &Auditor{classifier: authority.NewClassifier()}
}

type candidate struct {
	text    string
	lower   string
	ctype   model.ClaimType
	section int
}

// Audit runs claim extraction, citation proximity search, and evidence
// grading. Claims come back in document order; the four grade counters
// always sum to TotalClaims. An empty document yields an empty audit.
func (a *Auditor) Audit(doc *model.Document) model.ClaimsAudit {
	audit := model.ClaimsAudit{Claims: []model.Claim{}}
	if doc.Empty() {
		return audit
	}

	sectionLinks := linksBySection(doc)

	var cands []candidate
	for _, sec := range doc.Sections {
		for _, sentence := range sentences(sec.Text) {
			if ctype, ok := classify(sentence); ok {
				cands = append(cands, candidate{
					text:    sentence,
					lower:   strings.ToLower(sentence),
					ctype:   ctype,
					section: sec.Index,
				})
			}
		}
	}
	cands = mergeContained(cands)

	lowTrust := map[string]bool{}
	for _, cand := range cands {
		claim := model.Claim{
			Text:         cand.text,
			Type:         cand.ctype,
			SectionIndex: cand.section,
		}
		claim.Grade, claim.NearestCitation, claim.Explanation =
			a.grade(cand, sectionLinks)

		if claim.Grade == model.GradeWeaklySupported && claim.NearestCitation != "" {
			lowTrust[claim.NearestCitation] = true
		}

		audit.Claims = append(audit.Claims, claim)
		switch claim.Grade {
		case model.GradeSupported:
			audit.Supported++
		case model.GradeWeaklySupported:
			audit.WeaklySupported++
		case model.GradeUnsupported:
			audit.Unsupported++
		case model.GradeNeedsQualification:
			audit.NeedsQualification++
		}
	}
	audit.TotalClaims = len(audit.Claims)

	for src := range lowTrust {
		audit.LowTrustSources = append(audit.LowTrustSources, src)
	}
	sort.Strings(audit.LowTrustSources)

	return audit
}

// grade applies the evidence-grading policy. The absolute-qualifier
// override wins over any citation-based grade.
func (a *Auditor) grade(cand candidate, sectionLinks map[int][]model.Link) (model.EvidenceGrade, string, string) {
	if overbroad(cand.lower) {
		return model.GradeNeedsQualification, nearestLinkURL(cand, sectionLinks),
			"This claim uses absolute language and should be scoped with conditions or jurisdiction."
	}

	// Same section first, then adjacent sections.
	for _, idx := range []int{cand.section, cand.section - 1, cand.section + 1} {
		for _, link := range sectionLinks[idx] {
			return a.gradeLink(link)
		}
	}

	// Fall back to textual citation markers in the sentence itself.
	if m := textualCitation.FindStringSubmatch(cand.text); m != nil {
		source := strings.TrimSpace(m[1])
		return model.GradeWeaklySupported, source,
			fmt.Sprintf("Cites %q in text without a verifiable link.", source)
	}

	return model.GradeUnsupported, "", "No citation found near this claim."
}

func (a *Auditor) gradeLink(link model.Link) (model.EvidenceGrade, string, string) {
	if link.Broken {
		return model.GradeWeaklySupported, link.URL,
			fmt.Sprintf("Citation link is dead (%s).", link.Domain)
	}
	if link.Government || link.Educational {
		return model.GradeSupported, link.URL,
			fmt.Sprintf("Supported by authoritative source (%s).", link.Domain)
	}
	switch a.classifier.Classify(link.URL) {
	case authority.TierPrimary, authority.TierSecondary:
		return model.GradeSupported, link.URL,
			fmt.Sprintf("Supported by recognized source (%s).", link.Domain)
	}
	if a.classifier.LowTrust(link.URL) {
		return model.GradeWeaklySupported, link.URL,
			fmt.Sprintf("Citation present but source may lack authority (%s).", link.Domain)
	}
	return model.GradeWeaklySupported, link.URL,
		fmt.Sprintf("Citation present but source is unrecognized (%s).", link.Domain)
}

func classify(sentence string) (model.ClaimType, bool) {
	lower := strings.ToLower(sentence)
	for _, tp := range typePatterns {
		for _, pat := range tp.patterns {
			if pat.MatchString(lower) {
				return tp.claimType, true
			}
		}
	}
	return "", false
}

func overbroad(lower string) bool {
	for _, pat := range overbroadPatterns {
		if pat.MatchString(lower) {
			return true
		}
	}
	return false
}

// mergeContained drops near-duplicate candidates: when one claim's text
// contains another's, the longest span survives at the earlier claim's
// position.
func mergeContained(cands []candidate) []candidate {
	var kept []candidate
	for _, cand := range cands {
		replaced := false
		skip := false
		for i, k := range kept {
			if strings.Contains(k.lower, cand.lower) {
				skip = true
				break
			}
			if strings.Contains(cand.lower, k.lower) {
				kept[i] = cand
				replaced = true
				break
			}
		}
		if !skip && !replaced {
			kept = append(kept, cand)
		}
	}
	return kept
}

// linksBySection assigns outbound links to the sections whose text
// contains their anchor text.
func linksBySection(doc *model.Document) map[int][]model.Link {
	byIndex := make(map[int][]model.Link)
	for _, link := range doc.OutboundLinks {
		if link.AnchorText == "" {
			continue
		}
		anchor := strings.ToLower(link.AnchorText)
		for _, sec := range doc.Sections {
			if strings.Contains(strings.ToLower(sec.Text), anchor) {
				byIndex[sec.Index] = append(byIndex[sec.Index], link)
			}
		}
	}
	return byIndex
}

func nearestLinkURL(cand candidate, sectionLinks map[int][]model.Link) string {
	for _, idx := range []int{cand.section, cand.section - 1, cand.section + 1} {
		if links := sectionLinks[idx]; len(links) > 0 {
			return links[0].URL
		}
	}
	return ""
}

// sentences splits text on terminators, keeping only spans in the
// plausible claim-length window.
func sentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var out []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if len(s) >= minSentenceLen && len(s) <= maxSentenceLen {
			out = append(out, s)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if i+1 >= len(text) || text[i+1] == ' ' || text[i+1] == '\t' {
				flush()
			}
		}
	}
	flush()

	return out
}

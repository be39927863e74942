// Package compliance scans document text against advertising-rule
// patterns. The rule catalog is declarative; which rules run is decided
// by the preset.
package compliance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/preset"
)

const contextRadius = 50

// Rule pairs a pattern with its severity and remediation text. Severity
// is fixed per rule, not per match.
type Rule struct {
	ID          string
	Pattern     *regexp.Regexp
	Severity    model.Severity
	Explanation string
	Fix         string
}

var catalog = []Rule{
	{
		ID:          preset.RuleOutcomeGuarantee,
		Pattern:     regexp.MustCompile(`(?i)\bguarantee[ds]?\b.{0,40}\b(win|result|outcome|recovery|settlement|compensation)`),
		Severity:    model.SeverityHigh,
		Explanation: "Guaranteeing an outcome is prohibited under most professional advertising rules.",
		Fix:         "Remove the guarantee. Describe your process and track record without promising results.",
	},
	{
		ID:          preset.RuleSuperlativeClaim,
		Pattern:     regexp.MustCompile(`(?i)\b(best|top|#\s*1|number\s*one|premier|leading|most\s+successful)\b.{0,30}\b(lawyer|attorney|firm|doctor|clinic|advisor)`),
		Severity:    model.SeverityMedium,
		Explanation: "Unverifiable superlatives about a professional or firm invite regulatory scrutiny.",
		Fix:         "Replace the superlative with a verifiable fact, such as years in practice or a named award.",
	},
	{
		ID:          preset.RuleExpertClaim,
		Pattern:     regexp.MustCompile(`(?i)\b(expert|specialist|specializ(?:es?|ing))\b`),
		Severity:    model.SeverityMedium,
		Explanation: "Claiming expert or specialist status may require a recognized certification.",
		Fix:         "State the certification that backs the claim, or describe the practice focus without the label.",
	},
	{
		ID:          preset.RuleResultsNoDisclaimer,
		Pattern:     regexp.MustCompile(`(?i)(recovered|won|secured|obtained)\s+\$[\d,.]+(\s*(million|thousand|billion|[mk]))?`),
		Severity:    model.SeverityMedium,
		Explanation: "Past-results figures shown without a disclaimer imply similar outcomes for new clients.",
		Fix:         "Add a disclaimer near the figure: past results do not guarantee a similar outcome.",
	},
	{
		ID:          preset.RuleConditionalFee,
		Pattern:     regexp.MustCompile(`(?i)\b(no\s+fee\s+unless|no\s+win,?\s+no\s+fee|free\s+unless\s+we\s+win)\b`),
		Severity:    model.SeverityLow,
		Explanation: "Conditional-fee advertising usually requires disclosure of costs the client may still owe.",
		Fix:         "Add a note clarifying which costs and expenses remain the client's responsibility.",
	},
	{
		ID:          preset.RuleOutcomePromise,
		Pattern:     regexp.MustCompile(`(?i)\byou\s+will\s+(win|recover|receive|get|obtain)\b`),
		Severity:    model.SeverityHigh,
		Explanation: "Promising a specific outcome to the reader is treated as a guarantee.",
		Fix:         "Rephrase as a possibility: \"you may be able to recover\" with the conditions that apply.",
	},
	{
		ID:          preset.RuleAbsoluteOutcome,
		Pattern:     regexp.MustCompile(`(?i)\b(always|never)\s+(wins?|loses?|succeeds?|fails?|results?)\b`),
		Severity:    model.SeverityMedium,
		Explanation: "Absolute outcome language overstates what any practitioner can deliver.",
		Fix:         "Qualify the statement with the circumstances under which the outcome typically holds.",
	},
	{
		ID:          preset.RuleTestimonialNoDisclaimer,
		Pattern:     regexp.MustCompile(`(?i)\b(client\s+(said|told|testimonial)|our\s+clients?\s+say|"[^"]{20,200}"\s*[-–—]\s*(a\s+)?(former\s+)?client)`),
		Severity:    model.SeverityLow,
		Explanation: "Testimonials generally need a disclaimer that results vary by case.",
		Fix:         "Append a testimonial disclaimer: individual results depend on the facts of each matter.",
	},
	{
		ID:          preset.RuleCourtInfluence,
		Pattern:     regexp.MustCompile(`(?i)\b(connections?\s+(at|with|in)\s+the\s+court|know\s+the\s+judges?|influence\s+(the|with)\s+(court|judge))\b`),
		Severity:    model.SeverityHigh,
		Explanation: "Implying influence over a court or judge violates professional conduct rules.",
		Fix:         "Delete the statement entirely. Describe courtroom experience without implying influence.",
	},
}

// Scanner evaluates the compliance catalog against a document.
type Scanner struct {
	rules []Rule
}

// NewScanner creates a scanner over the builtin rule catalog
func NewScanner() *Scanner {
	return &Scanner{rules: catalog}
}

// Scan runs every rule the preset enables against the document text and
// returns one flag per distinct (rule, matched span) pair, in rule
// order. An empty document produces no flags.
func (s *Scanner) Scan(doc *model.Document, p preset.Preset) []model.ComplianceFlag {
	flags := []model.ComplianceFlag{}
	if doc.Empty() {
		return flags
	}

	text := doc.PlainText
	seen := map[string]bool{}

	for _, rule := range s.rules {
		if !p.RuleEnabled(rule.ID) {
			continue
		}
		for _, loc := range rule.Pattern.FindAllStringIndex(text, -1) {
			matched := text[loc[0]:loc[1]]
			key := rule.ID + "\x00" + matched
			if seen[key] {
				continue
			}
			seen[key] = true

			flags = append(flags, model.ComplianceFlag{
				Rule:        rule.ID,
				Severity:    rule.Severity,
				Text:        matched,
				Location:    surrounding(text, loc[0], loc[1]),
				Explanation: rule.Explanation,
				Fix:         rule.Fix,
			})
		}
	}
	return flags
}

// surrounding returns the match with up to contextRadius characters of
// text on each side, ellipsized at cut boundaries.
func surrounding(text string, start, end int) string {
	left := start - contextRadius
	if left < 0 {
		left = 0
	}
	right := end + contextRadius
	if right > len(text) {
		right = len(text)
	}
	// don't split multi-byte runes at the cut points
	for left > 0 && !utf8RuneStart(text[left]) {
		left--
	}
	for right < len(text) && !utf8RuneStart(text[right]) {
		right++
	}

	snippet := strings.TrimSpace(text[left:right])
	if left > 0 {
		snippet = "…" + snippet
	}
	if right < len(text) {
		snippet += "…"
	}
	return snippet
}

func utf8RuneStart(b byte) bool { return b&0xC0 != 0x80 }

// Describe returns a short human label for a rule id, used by renderers.
func Describe(ruleID string) string {
	for _, rule := range catalog {
		if rule.ID == ruleID {
			return rule.Explanation
		}
	}
	return fmt.Sprintf("rule %s", ruleID)
}

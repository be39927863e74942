// Package rules is the deterministic signal detector: an ordered
// catalog of named checks per dimension, each a pure predicate over the
// normalized document paired with a point value and an explanation.
// Given the same document and catalog version the output is exactly
// reproducible.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// maxQuoteLen bounds evidence quotes for display
const maxQuoteLen = 300

// match is what a check's predicate reports back
type match struct {
	found    bool
	points   float64 // graded checks set this; 0 means full check points
	quote    string
	location string
}

// Check is one declarative rule-catalog entry
type Check struct {
	Name        string
	Dimension   model.Dimension
	Points      float64 // maximum contribution to the dimension's pool
	Explanation string
	Run         func(d *model.Document) match
}

var firsthandPatterns = compile(
	`\b(I|we)\s+(tested|tried|used|measured|compared|built|installed|configured)\b`,
	`\b(in\s+my|in\s+our)\s+experience\b`,
	`\bwhat\s+(surprised|failed|worked|broke)\b`,
	`\bwhat\s+I('d| would)\s+do\s+differently\b`,
	`\bafter\s+\d+\s+(hours?|days?|weeks?|months?|years?)\s+of\s+(using|testing)\b`,
)

var proceduralPatterns = compile(
	`\bstep\s+\d\b`,
	`\b(first|then|next|finally),?\s+(I|we|you)\b`,
	`\b(setup|configuration|install)\s+(took|required|involved)\b`,
)

var caveatPatterns = compile(
	`\b(caveat|downside|limitation|drawback|trade.?off)\b`,
	`\b(however|but|on the other hand|that said)\b`,
	`\b(didn't work|wasn't ideal|could be better)\b`,
)

var scopePatterns = compile(
	`\bthis\s+(applies|is\s+for|covers)\b`,
	`\b(consult|talk\s+to|speak\s+with)\s+(a|an|your)\s+(attorney|lawyer|doctor|advisor|professional)\b`,
	`\b(may\s+not\s+apply|varies\s+by|depends\s+on)\b`,
	`\b(in\s+\w+\s+state|under\s+\w+\s+law)\b`,
	`\b(who\s+this\s+is\s+for|who\s+should)\b`,
)

var domainTerms = []string{
	// legal
	"statute", "regulation", "jurisdiction", "negligence", "liability",
	"comparative fault", "damages", "burden of proof", "discovery",
	"motion", "pleading", "tort", "breach", "fiduciary",
	// medical
	"diagnosis", "prognosis", "contraindication", "etiology",
	"pathology", "protocol", "clinical",
	// finance
	"amortization", "portfolio", "diversification",
	"yield", "liquidity", "collateral",
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile("(?i)" + p)
	}
	return out
}

// scanPatterns counts how many patterns hit and captures context around
// the first hit as a quote.
func scanPatterns(text string, patterns []*regexp.Regexp, before, after int) (int, string) {
	hits := 0
	sample := ""
	for _, pat := range patterns {
		loc := pat.FindStringIndex(text)
		if loc == nil {
			continue
		}
		hits++
		if sample == "" {
			start := loc[0] - before
			if start < 0 {
				start = 0
			}
			end := loc[1] + after
			if end > len(text) {
				end = len(text)
			}
			// don't split multi-byte runes at the window edges
			for start > 0 && !runeStart(text[start]) {
				start--
			}
			for end < len(text) && !runeStart(text[end]) {
				end++
			}
			sample = strings.TrimSpace(text[start:end])
		}
	}
	return hits, sample
}

func trimQuote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxQuoteLen {
		return s
	}
	cut := maxQuoteLen
	for cut > 0 && !runeStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func runeStart(b byte) bool { return b&0xC0 != 0x80 }

func capPoints(pts, cap float64) float64 {
	if pts > cap {
		return cap
	}
	return pts
}

// catalog is the full check table, evaluated uniformly and in order.
var catalog = []Check{
	// ── Trust ─────────────────────────────────────────────────────
	{
		Name: model.SignalAboutPage, Dimension: model.DimensionTrust, Points: 2,
		Explanation: "An 'About' page establishes site identity and ownership.",
		Run: func(d *model.Document) match {
			return match{found: d.SiteSignals.HasAboutPage}
		},
	},
	{
		Name: model.SignalContact, Dimension: model.DimensionTrust, Points: 2,
		Explanation: "Reachable contact info builds reader trust.",
		Run: func(d *model.Document) match {
			paths := d.SiteSignals.ContactPaths
			if len(paths) > 3 {
				paths = paths[:3]
			}
			return match{
				found: d.SiteSignals.HasContactPage || len(d.SiteSignals.ContactPaths) > 0,
				quote: strings.Join(paths, ", "),
			}
		},
	},
	{
		Name: model.SignalPrivacy, Dimension: model.DimensionTrust, Points: 1,
		Explanation: "A privacy policy is a baseline trust signal for any website.",
		Run: func(d *model.Document) match {
			return match{found: d.SiteSignals.HasPrivacyPolicy}
		},
	},
	{
		Name: model.SignalTerms, Dimension: model.DimensionTrust, Points: 1,
		Explanation: "Terms of service clarify the relationship between site and user.",
		Run: func(d *model.Document) match {
			return match{found: d.SiteSignals.HasTerms}
		},
	},
	{
		Name: model.SignalEditorial, Dimension: model.DimensionTrust, Points: 2,
		Explanation: "An editorial policy signals content review processes.",
		Run: func(d *model.Document) match {
			return match{found: d.SiteSignals.HasEditorialPolicy}
		},
	},
	{
		Name: model.SignalDates, Dimension: model.DimensionTrust, Points: 2,
		Explanation: "Visible dates let readers judge freshness and maintenance.",
		Run: func(d *model.Document) match {
			var detail []string
			if d.Dates.Published != "" {
				detail = append(detail, "Published: "+d.Dates.Published)
			}
			if d.Dates.Updated != "" {
				detail = append(detail, "Updated: "+d.Dates.Updated)
			}
			return match{found: len(detail) > 0, quote: strings.Join(detail, "; ")}
		},
	},
	{
		Name: model.SignalCitations, Dimension: model.DimensionTrust, Points: 3,
		Explanation: "Credible outbound citations support claims and build trust.",
		Run: func(d *model.Document) match {
			count := len(d.OutboundLinks)
			quality := 0
			for _, l := range d.OutboundLinks {
				if l.Government || l.Educational {
					quality++
				}
			}
			return match{
				found:  count > 0,
				points: capPoints(float64(count)*0.3+float64(quality)*0.5, 3),
				quote:  fmt.Sprintf("%d outbound links, %d high-authority", count, quality),
			}
		},
	},
	{
		Name: model.SignalDisclaimer, Dimension: model.DimensionTrust, Points: 2,
		Explanation: "Disclaimers set expectations and reduce misleading impressions.",
		Run: func(d *model.Document) match {
			if len(d.Disclaimers) == 0 {
				return match{}
			}
			return match{found: true, quote: d.Disclaimers[0]}
		},
	},
	{
		Name: model.SignalDisclosure, Dimension: model.DimensionTrust, Points: 1.5,
		Explanation: "Disclosures are required when content is monetized.",
		Run: func(d *model.Document) match {
			if len(d.Disclosures) == 0 {
				return match{}
			}
			return match{found: true, quote: d.Disclosures[0]}
		},
	},
	{
		Name: model.SignalSchemaOrg, Dimension: model.DimensionTrust, Points: 1.5,
		Explanation: "Schema markup helps search engines understand the page's purpose.",
		Run: func(d *model.Document) match {
			types := d.SchemaTypes
			if len(types) > 5 {
				types = types[:5]
			}
			return match{found: len(d.SchemaTypes) > 0, quote: strings.Join(types, ", ")}
		},
	},

	// ── Experience ────────────────────────────────────────────────
	{
		Name: model.SignalFirsthand, Dimension: model.DimensionExperience, Points: 4,
		Explanation: "First-person procedural language signals real experience.",
		Run: func(d *model.Document) match {
			hits, sample := scanPatterns(d.PlainText, firsthandPatterns, 30, 30)
			return match{
				found:    hits > 0,
				points:   capPoints(float64(hits), 4),
				quote:    sample,
				location: "Body text",
			}
		},
	},
	{
		Name: model.SignalProcedural, Dimension: model.DimensionExperience, Points: 3,
		Explanation: "Step-by-step detail suggests the author has performed the process.",
		Run: func(d *model.Document) match {
			hits, sample := scanPatterns(d.PlainText, proceduralPatterns, 30, 50)
			return match{found: hits > 0, points: capPoints(float64(hits), 3), quote: sample}
		},
	},
	{
		Name: model.SignalCaveats, Dimension: model.DimensionExperience, Points: 3,
		Explanation: "Acknowledging limitations signals honest, real-world experience.",
		Run: func(d *model.Document) match {
			hits, sample := scanPatterns(d.PlainText, caveatPatterns, 40, 60)
			return match{found: hits > 0, points: capPoints(float64(hits)*0.75, 3), quote: sample}
		},
	},
	{
		Name: model.SignalOriginalMedia, Dimension: model.DimensionExperience, Points: 3,
		Explanation: "Original photos or screenshots support first-hand experience.",
		Run: func(d *model.Document) match {
			count := len(d.Images)
			return match{
				found:  count > 0,
				points: capPoints(float64(count)*0.5, 3),
				quote:  fmt.Sprintf("%d images found", count),
			}
		},
	},

	// ── Expertise ─────────────────────────────────────────────────
	{
		Name: model.SignalTerminology, Dimension: model.DimensionExpertise, Points: 4,
		Explanation: "Correct specialist terminology signals subject expertise.",
		Run: func(d *model.Document) match {
			text := strings.ToLower(d.PlainText)
			var hits []string
			for _, term := range domainTerms {
				if strings.Contains(text, term) {
					hits = append(hits, term)
				}
			}
			sample := hits
			if len(sample) > 8 {
				sample = sample[:8]
			}
			return match{
				found:  len(hits) >= 2,
				points: capPoints(float64(len(hits))*0.5, 4),
				quote:  strings.Join(sample, ", "),
			}
		},
	},
	{
		Name: model.SignalScoping, Dimension: model.DimensionExpertise, Points: 4,
		Explanation: "Scoping advice to the right audience and referring to professionals when appropriate signals expertise.",
		Run: func(d *model.Document) match {
			hits, sample := scanPatterns(d.PlainText, scopePatterns, 30, 50)
			return match{found: hits >= 1, points: capPoints(float64(hits), 4), quote: sample}
		},
	},
	{
		Name: model.SignalDepth, Dimension: model.DimensionExpertise, Points: 2,
		Explanation: "Sufficient depth with clear structure shows topical command.",
		Run: func(d *model.Document) match {
			wc, sec := d.WordCount, len(d.Sections)
			good := wc >= 800 && sec >= 3
			great := wc >= 1500 && sec >= 5
			pts := 0.0
			if great {
				pts = 2
			} else if good {
				pts = 1
			}
			return match{
				found:  good,
				points: pts,
				quote:  fmt.Sprintf("%d words, %d sections", wc, sec),
			}
		},
	},
	{
		Name: model.SignalConsistency, Dimension: model.DimensionExpertise, Points: 1.5,
		Explanation: "No obvious contradictions detected (deep check deferred to the soft rater).",
		Run: func(d *model.Document) match {
			return match{found: true}
		},
	},

	// ── Authoritativeness ─────────────────────────────────────────
	{
		Name: model.SignalAuthorName, Dimension: model.DimensionAuthoritativeness, Points: 2,
		Explanation: "Named authorship establishes accountability.",
		Run: func(d *model.Document) match {
			return match{found: d.Author.Name != "", quote: d.Author.Name}
		},
	},
	{
		Name: model.SignalAuthorBio, Dimension: model.DimensionAuthoritativeness, Points: 3,
		Explanation: "A bio with relevant background signals authority on the topic.",
		Run: func(d *model.Document) match {
			return match{found: d.Author.Bio != "", quote: d.Author.Bio}
		},
	},
	{
		Name: model.SignalAuthorPage, Dimension: model.DimensionAuthoritativeness, Points: 2.5,
		Explanation: "A dedicated author page lets readers verify credentials.",
		Run: func(d *model.Document) match {
			return match{found: d.Author.HasAuthorPage, quote: d.Author.ProfileURL}
		},
	},
	{
		Name: model.SignalCredentials, Dimension: model.DimensionAuthoritativeness, Points: 3,
		Explanation: "Explicit credentials (bar admissions, degrees, certifications) strengthen authority.",
		Run: func(d *model.Document) match {
			return match{found: d.Author.Credentials != "", quote: d.Author.Credentials}
		},
	},
	{
		Name: model.SignalInternalLinking, Dimension: model.DimensionAuthoritativeness, Points: 3,
		Explanation: "Strong internal linking to related content shows topical ownership.",
		Run: func(d *model.Document) match {
			count := len(d.InternalLinks)
			return match{
				found:  count >= 3,
				points: capPoints(float64(count)*0.3, 3),
				quote:  fmt.Sprintf("%d internal links", count),
			}
		},
	},
	{
		Name: model.SignalTeamRoster, Dimension: model.DimensionAuthoritativeness, Points: 2,
		Explanation: "A team roster with profile pages establishes organizational credibility.",
		Run: func(d *model.Document) match {
			return match{found: d.SiteSignals.HasTeamRoster}
		},
	},
}

// Package authority classifies citation sources into trust tiers.
// The claims auditor uses tiers to grade evidentiary support and the
// recommendation engine to suggest source upgrades.
package authority

import (
	"net/url"
	"strings"
)

// Tier is a coarse source-authority classification
type Tier int

const (
	TierUnknown   Tier = 0 // not classified
	TierPrimary   Tier = 1 // statutes, courts, government, academic institutions
	TierSecondary Tier = 2 // encyclopedias, major publishers, standards bodies
	TierTertiary  Tier = 3 // blogs, forums, personal and commercial sites
)

func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierSecondary:
		return "secondary"
	case TierTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// Classifier maps hosts to authority tiers using domain tables and TLD
// heuristics. Instances are immutable after construction.
type Classifier struct {
	primary   map[string]bool
	secondary map[string]bool
}

// Domains widely accepted as directly authoritative for YMYL topics
var defaultPrimary = []string{
	"nih.gov", "cdc.gov", "fda.gov", "who.int",
	"law.cornell.edu", "uscourts.gov", "supremecourt.gov",
	"irs.gov", "sec.gov", "consumerfinance.gov", "ftc.gov",
}

var defaultSecondary = []string{
	"mayoclinic.org", "clevelandclinic.org", "webmd.com",
	"americanbar.org", "nolo.com", "justia.com",
	"investopedia.com", "britannica.com",
}

// Hosts or URL fragments that indicate a low-authority source
var lowTrustIndicators = []string{
	"blog", "forum", "reddit", "quora", "medium.com", "wikipedia",
}

// NewClassifier builds a classifier over the default domain tables plus
// any extra primary domains (e.g. from configuration).
func NewClassifier(extraPrimary ...string) *Classifier {
	c := &Classifier{
		primary:   make(map[string]bool),
		secondary: make(map[string]bool),
	}
	for _, d := range defaultPrimary {
		c.primary[d] = true
	}
	for _, d := range extraPrimary {
		c.primary[d] = true
	}
	for _, d := range defaultSecondary {
		c.secondary[d] = true
	}
	return c
}

// Classify returns the authority tier for a URL or bare host
func (c *Classifier) Classify(rawURL string) Tier {
	host := hostOf(rawURL)
	if host == "" {
		return TierTertiary
	}

	for domain := range c.primary {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return TierPrimary
		}
	}
	for domain := range c.secondary {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return TierSecondary
		}
	}

	// Government and academic TLDs are primary by default
	for _, suffix := range []string{".gov", ".mil", ".edu", ".ac.uk", ".gov.uk", ".gc.ca"} {
		if strings.HasSuffix(host, suffix) {
			return TierPrimary
		}
	}

	return TierTertiary
}

// LowTrust reports whether the URL looks like a low-authority source
// (blog, forum, user-generated content).
func (c *Classifier) LowTrust(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, ind := range lowTrustIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

func hostOf(rawURL string) string {
	if !strings.Contains(rawURL, "://") {
		return strings.ToLower(strings.TrimSpace(rawURL))
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Host)
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}

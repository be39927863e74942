package authority

import "testing"

func TestClassify(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		url  string
		want Tier
	}{
		{"https://www.cdc.gov/flu/index.html", TierPrimary},
		{"https://law.cornell.edu/uscode/text/28", TierPrimary},
		{"https://www.michigan.gov/sos", TierPrimary},
		{"https://www.stanford.edu/research", TierPrimary},
		{"https://www.mayoclinic.org/diseases", TierSecondary},
		{"https://www.nolo.com/legal-encyclopedia", TierSecondary},
		{"https://www.example.com/article", TierTertiary},
		{"nih.gov", TierPrimary},
		{"", TierTertiary},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.url); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.url, got, tc.want)
		}
	}
}

func TestClassifySubdomainsAndPorts(t *testing.T) {
	c := NewClassifier()

	if got := c.Classify("https://travel.cdc.gov:443/page"); got != TierPrimary {
		t.Errorf("subdomain with port = %s, want primary", got)
	}
	// Lookalike domains must not inherit the tier
	if got := c.Classify("https://cdc.gov.example.com/page"); got != TierTertiary {
		t.Errorf("lookalike domain = %s, want tertiary", got)
	}
}

func TestExtraPrimaryDomains(t *testing.T) {
	c := NewClassifier("statutes.example.org")
	if got := c.Classify("https://statutes.example.org/title-12"); got != TierPrimary {
		t.Errorf("configured domain = %s, want primary", got)
	}
}

func TestLowTrust(t *testing.T) {
	c := NewClassifier()

	if !c.LowTrust("https://someones-blog.example.com/post") {
		t.Error("blog URL should be low trust")
	}
	if !c.LowTrust("https://www.reddit.com/r/legaladvice") {
		t.Error("forum URL should be low trust")
	}
	if c.LowTrust("https://www.courts.ca.gov/selfhelp") {
		t.Error("court site should not be low trust")
	}
}

func TestTierString(t *testing.T) {
	if TierPrimary.String() != "primary" || TierUnknown.String() != "unknown" {
		t.Error("tier labels are wrong")
	}
}

package extract

import (
	"strings"
	"testing"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>Car Accident Claims in Ohio</title>
<meta name="description" content="What to know before filing.">
<meta name="author" content="Jane Roe">
<meta property="og:site_name" content="Roe Law">
<meta property="article:published_time" content="2024-03-10T08:00:00Z">
<script type="application/ld+json">{"@context":"https://schema.org","@type":"Article","author":{"@type":"Person","name":"Jane Roe"}}</script>
</head>
<body>
<nav><a href="/about">About</a> <a href="/contact">Contact Us</a> <a href="/privacy-policy">Privacy</a></nav>
<h1>Car Accident Claims in Ohio</h1>
<p class="byline">By Jane Roe, J.D.</p>
<p>In my 12 years of experience handling crash cases, deadlines matter most.</p>
<h2>Filing Deadlines</h2>
<p>Ohio law gives you two years, according to the
<a href="https://www.law.cornell.edu/statutes">statute text</a>.</p>
<h2>What to Expect</h2>
<p>This article is for informational purposes only and is not legal advice.</p>
<img src="/images/intake-form.jpg">
</body>
</html>`

func TestFromHTMLBuildsDocument(t *testing.T) {
	e := NewExtractor()
	doc, err := e.FromHTML(samplePage, "https://www.roelaw.com/car-accidents")
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}

	if doc.Title != "Car Accident Claims in Ohio" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Domain != "roelaw.com" {
		t.Errorf("domain = %q", doc.Domain)
	}
	if doc.SiteName != "Roe Law" {
		t.Errorf("site name = %q", doc.SiteName)
	}
	if doc.WordCount == 0 {
		t.Error("word count should be non-zero")
	}
	if doc.Dates.Published != "2024-03-10" {
		t.Errorf("published date = %q, want 2024-03-10", doc.Dates.Published)
	}
	if len(doc.SchemaTypes) == 0 || doc.SchemaTypes[0] != "Article" {
		t.Errorf("schema types = %v", doc.SchemaTypes)
	}
	if len(doc.Disclaimers) == 0 {
		t.Error("disclaimer cue not detected")
	}
	if len(doc.Images) != 1 {
		t.Errorf("images = %v", doc.Images)
	}
}

func TestFromHTMLSections(t *testing.T) {
	e := NewExtractor()
	doc, err := e.FromHTML(samplePage, "https://www.roelaw.com/car-accidents")
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}

	if len(doc.Sections) < 3 {
		t.Fatalf("expected at least 3 sections, got %d: %+v", len(doc.Sections), doc.Sections)
	}
	var deadlines *model.Section
	for i := range doc.Sections {
		if doc.Sections[i].Heading == "Filing Deadlines" {
			deadlines = &doc.Sections[i]
		}
	}
	if deadlines == nil {
		t.Fatal("Filing Deadlines section not found")
	}
	if deadlines.Level != 2 {
		t.Errorf("section level = %d, want 2", deadlines.Level)
	}
	if !strings.Contains(deadlines.Text, "two years") {
		t.Errorf("section text = %q", deadlines.Text)
	}
	for i, sec := range doc.Sections {
		if sec.Index != i {
			t.Errorf("section %d has index %d", i, sec.Index)
		}
	}
}

func TestFromHTMLLinks(t *testing.T) {
	e := NewExtractor()
	doc, err := e.FromHTML(samplePage, "https://www.roelaw.com/car-accidents")
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}

	if len(doc.OutboundLinks) != 1 {
		t.Fatalf("outbound links = %+v", doc.OutboundLinks)
	}
	out := doc.OutboundLinks[0]
	if out.Domain != "law.cornell.edu" || !out.Educational {
		t.Errorf("outbound link misclassified: %+v", out)
	}
	if out.AnchorText != "statute text" {
		t.Errorf("anchor text = %q", out.AnchorText)
	}
	if len(doc.InternalLinks) != 3 {
		t.Errorf("internal links = %+v", doc.InternalLinks)
	}
}

func TestFromHTMLAuthorAndSiteSignals(t *testing.T) {
	e := NewExtractor()
	doc, err := e.FromHTML(samplePage, "https://www.roelaw.com/car-accidents")
	if err != nil {
		t.Fatalf("FromHTML: %v", err)
	}

	if doc.Author.Name != "Jane Roe" {
		t.Errorf("author = %q", doc.Author.Name)
	}
	if !strings.Contains(doc.Author.Credentials, "J.D.") {
		t.Errorf("credentials = %q, want J.D. detected", doc.Author.Credentials)
	}
	if !strings.Contains(doc.Author.Credentials, "12 years of experience") {
		t.Errorf("credentials = %q, want years of experience detected", doc.Author.Credentials)
	}
	if !doc.SiteSignals.HasAboutPage || !doc.SiteSignals.HasContactPage || !doc.SiteSignals.HasPrivacyPolicy {
		t.Errorf("site signals = %+v", doc.SiteSignals)
	}
}

func TestFromHTMLEmptyInput(t *testing.T) {
	e := NewExtractor()
	_, err := e.FromHTML("   ", "https://example.com")
	if err == nil {
		t.Fatal("expected error for empty HTML")
	}
	if !model.IsInputError(err) {
		t.Fatalf("expected input error, got %v", err)
	}
}

func TestFromText(t *testing.T) {
	e := NewExtractor()
	doc, err := e.FromText("Filing a Claim\n\nBy John Doe, CPA\n\nFirst, you must gather every receipt from the tax year in question.")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}

	if doc.Title != "Filing a Claim" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Sections) != 3 {
		t.Errorf("sections = %d", len(doc.Sections))
	}
	if doc.Author.Name != "John Doe" {
		t.Errorf("author = %q", doc.Author.Name)
	}
	if doc.Author.Credentials != "CPA" {
		t.Errorf("credentials = %q, want CPA", doc.Author.Credentials)
	}
}

func TestFromTextEmpty(t *testing.T) {
	e := NewExtractor()
	if _, err := e.FromText("\n\n  \n"); !model.IsInputError(err) {
		t.Fatalf("expected input error, got %v", err)
	}
}

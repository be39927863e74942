// Package extract builds a structured Document from raw HTML or plain
// text. The extractor is lossy on purpose: it keeps only what the
// signal detector and auditors consume.
package extract

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// Extractor converts HTML into a model.Document
type Extractor struct{}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

var (
	credentialPattern = regexp.MustCompile(`(?i)\b(J\.?D\.?|Esq\.?|M\.?D\.?|Ph\.?D\.?|D\.?O\.?|R\.?N\.?|CPA|CFP|CFA|licensed\s+(attorney|physician))\b`)
	yearsExpPattern   = regexp.MustCompile(`(?i)\b(\d{1,2}\+?\s+years?\s+(of\s+)?experience)\b`)
	schemaTypePattern = regexp.MustCompile(`"@type"\s*:\s*"([^"]+)"`)
	phonePattern      = regexp.MustCompile(`\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}`)
	bylinePattern     = regexp.MustCompile(`(?im)^\s*(?:by|written\s+by|author:)\s+([A-Z][\w.'-]+(?:\s+[A-Z][\w.'-]+){0,3})`)
)

var disclaimerCues = []string{
	"not legal advice", "not medical advice", "not financial advice",
	"informational purposes only", "consult a", "consult your",
	"does not constitute", "attorney-client relationship",
	"results may vary", "past results do not guarantee",
}

var disclosureCues = []string{
	"affiliate", "commission", "sponsored", "we may earn",
	"paid partnership", "advertiser disclosure",
}

var govTLDs = []string{".gov", ".mil", ".gov.uk", ".gc.ca", ".gov.au"}
var eduTLDs = []string{".edu", ".ac.uk", ".edu.au"}

// skip subtrees that never contain article content
var skipElements = map[string]bool{
	"script": true, "style": true, "noscript": true,
	"svg": true, "iframe": true,
}

// FromHTML parses HTML and assembles a Document. Empty input is an
// input error, not a zero document: the caller asked us to analyze
// something and gave us nothing.
func (e *Extractor) FromHTML(htmlContent, sourceURL string) (*model.Document, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return nil, model.NewInputError("empty HTML content", nil)
	}

	root, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, model.NewInputError("parse HTML", err)
	}

	base, _ := url.Parse(sourceURL)

	w := &walker{base: base}
	w.walk(root)

	title := w.title
	if title == "" {
		title = w.ogTitle
	}

	doc := &model.Document{
		Title:           title,
		MetaDescription: w.metaDescription,
		URL:             sourceURL,
		SiteName:        w.siteName,
		Images:          w.images,
	}
	if base != nil {
		doc.Domain = strings.TrimPrefix(base.Hostname(), "www.")
	}

	doc.PlainText = strings.TrimSpace(w.text.String())
	doc.WordCount = len(strings.Fields(doc.PlainText))
	doc.Sections = buildSections(doc.PlainText, w.headings)

	for _, link := range w.links {
		if link.External {
			doc.OutboundLinks = append(doc.OutboundLinks, link)
		} else {
			doc.InternalLinks = append(doc.InternalLinks, link)
		}
	}

	doc.Author = e.detectAuthor(w, doc.PlainText)
	doc.Dates = w.dates
	doc.SchemaTypes = schemaTypes(w.jsonLD)
	doc.Disclaimers = cueMatches(doc.PlainText, disclaimerCues)
	doc.Disclosures = cueMatches(doc.PlainText, disclosureCues)
	doc.SiteSignals = siteSignals(w.links, doc.PlainText)

	return doc, nil
}

// walker accumulates everything in one pass over the node tree
type walker struct {
	base *url.URL

	title           string
	ogTitle         string
	metaDescription string
	siteName        string
	metaAuthor      string

	text     strings.Builder
	headings []heading
	links    []model.Link
	images   []string
	jsonLD   []string
	bylines  []string
	dates    model.DateInfo
}

type heading struct {
	text   string
	level  int
	offset int
}

func (w *walker) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		if skipElements[n.Data] {
			if n.Data == "script" && attrVal(n, "type") == "application/ld+json" {
				if n.FirstChild != nil {
					w.jsonLD = append(w.jsonLD, n.FirstChild.Data)
				}
			}
			return
		}

		switch n.Data {
		case "title":
			if w.title == "" && n.FirstChild != nil {
				w.title = strings.TrimSpace(n.FirstChild.Data)
			}
		case "meta":
			w.meta(n)
		case "h1", "h2", "h3", "h4", "h5", "h6":
			text := strings.TrimSpace(textContent(n))
			if text != "" {
				w.headings = append(w.headings, heading{
					text:   text,
					level:  int(n.Data[1] - '0'),
					offset: w.text.Len(),
				})
			}
		case "a":
			w.link(n)
		case "img":
			if src := attrVal(n, "src"); src != "" && !strings.HasPrefix(src, "data:") {
				w.images = append(w.images, src)
			}
		case "time":
			w.timestamp(n)
		}

		if isBylineClass(attrVal(n, "class")) {
			if text := strings.TrimSpace(textContent(n)); text != "" && len(text) < 200 {
				w.bylines = append(w.bylines, text)
			}
		}
	}

	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			w.text.WriteString(text)
			w.text.WriteString(" ")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}

	// paragraph boundaries keep sections splittable
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "br", "section", "article",
			"h1", "h2", "h3", "h4", "h5", "h6":
			w.text.WriteString("\n")
		}
	}
}

func (w *walker) meta(n *html.Node) {
	name := attrVal(n, "name")
	property := attrVal(n, "property")
	content := strings.TrimSpace(attrVal(n, "content"))
	if content == "" {
		return
	}

	switch {
	case name == "description":
		w.metaDescription = content
	case name == "author":
		w.metaAuthor = content
	case property == "og:title":
		w.ogTitle = content
	case property == "og:site_name":
		w.siteName = content
	case property == "article:published_time":
		w.dates.Published = normalizeDate(content)
	case property == "article:modified_time":
		w.dates.Updated = normalizeDate(content)
	}
}

func (w *walker) link(n *html.Node) {
	href := strings.TrimSpace(attrVal(n, "href"))
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "mailto:") {
		return
	}

	resolved := href
	if w.base != nil {
		if parsed, err := url.Parse(href); err == nil {
			resolved = w.base.ResolveReference(parsed).String()
		}
	}
	parsed, err := url.Parse(resolved)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return
	}

	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	external := w.base == nil || host != strings.TrimPrefix(w.base.Hostname(), "www.")

	w.links = append(w.links, model.Link{
		URL:         resolved,
		AnchorText:  strings.TrimSpace(textContent(n)),
		External:    external,
		Domain:      host,
		Government:  hasSuffixAny(host, govTLDs),
		Educational: hasSuffixAny(host, eduTLDs),
	})
}

func (w *walker) timestamp(n *html.Node) {
	raw := attrVal(n, "datetime")
	if raw == "" && n.FirstChild != nil {
		raw = n.FirstChild.Data
	}
	parsed := normalizeDate(raw)
	if parsed == "" {
		return
	}
	if w.dates.Published == "" {
		w.dates.Published = parsed
	} else if w.dates.Updated == "" {
		w.dates.Updated = parsed
	}
}

// detectAuthor combines meta tags, byline elements, and credential
// patterns in the surrounding text.
func (e *Extractor) detectAuthor(w *walker, plainText string) model.AuthorInfo {
	author := model.AuthorInfo{Name: w.metaAuthor}

	if author.Name == "" {
		for _, byline := range w.bylines {
			if m := bylinePattern.FindStringSubmatch(byline); m != nil {
				author.Name = m[1]
				break
			}
			// byline element without a "By" prefix: take it as-is when short
			if len(byline) < 60 && !strings.ContainsAny(byline, "|•\n") {
				author.Name = byline
			}
		}
	}
	if author.Name == "" {
		if m := bylinePattern.FindStringSubmatch(plainText); m != nil {
			author.Name = m[1]
		}
	}

	var creds []string
	if m := credentialPattern.FindAllString(plainText, 3); m != nil {
		creds = dedupeStrings(m)
	}
	if m := yearsExpPattern.FindString(plainText); m != "" {
		creds = append(creds, m)
	}
	author.Credentials = strings.Join(creds, ", ")

	// an author page link makes the byline verifiable
	for _, link := range w.links {
		path := strings.ToLower(link.URL)
		if strings.Contains(path, "/author/") || strings.Contains(path, "/attorneys/") ||
			strings.Contains(path, "/team/") || strings.Contains(path, "/staff/") {
			author.HasAuthorPage = true
			author.ProfileURL = link.URL
			break
		}
	}

	if author.Name != "" {
		// bio: a sentence near the name mentioning credentials or experience
		if idx := strings.Index(plainText, author.Name); idx >= 0 {
			window := plainText[idx:min(idx+400, len(plainText))]
			if credentialPattern.MatchString(window) || yearsExpPattern.MatchString(window) {
				author.Bio = strings.TrimSpace(window[:min(300, len(window))])
			}
		}
	}

	return author
}

// buildSections slices the plain text at heading offsets. Text before
// the first heading becomes an untitled section 0.
func buildSections(plainText string, headings []heading) []model.Section {
	if plainText == "" {
		return nil
	}
	if len(headings) == 0 {
		return []model.Section{{Text: plainText, Index: 0}}
	}

	var sections []model.Section
	add := func(h *heading, start, end int) {
		if start > len(plainText) {
			start = len(plainText)
		}
		if end > len(plainText) || end <= 0 {
			end = len(plainText)
		}
		text := strings.TrimSpace(plainText[start:end])
		if text == "" {
			return
		}
		sec := model.Section{Text: text, Index: len(sections), Offset: start}
		if h != nil {
			sec.Heading = h.text
			sec.Level = h.level
		}
		sections = append(sections, sec)
	}

	if headings[0].offset > 0 {
		add(nil, 0, headings[0].offset)
	}
	for i := range headings {
		end := len(plainText)
		if i+1 < len(headings) {
			end = headings[i+1].offset
		}
		add(&headings[i], headings[i].offset, end)
	}
	return sections
}

func siteSignals(links []model.Link, plainText string) model.SiteSignals {
	var sig model.SiteSignals
	lowerText := strings.ToLower(plainText)

	for _, link := range links {
		if link.External {
			continue
		}
		path := strings.ToLower(link.URL)
		anchor := strings.ToLower(link.AnchorText)
		switch {
		case strings.Contains(path, "/about") || anchor == "about" || anchor == "about us":
			sig.HasAboutPage = true
		case strings.Contains(path, "/contact") || anchor == "contact" || anchor == "contact us":
			sig.HasContactPage = true
			sig.ContactPaths = append(sig.ContactPaths, link.URL)
		case strings.Contains(path, "/privacy") || strings.Contains(anchor, "privacy"):
			sig.HasPrivacyPolicy = true
		case strings.Contains(path, "/terms") || strings.Contains(anchor, "terms"):
			sig.HasTerms = true
		case strings.Contains(path, "/editorial") || strings.Contains(anchor, "editorial policy"):
			sig.HasEditorialPolicy = true
		case strings.Contains(path, "/team") || strings.Contains(path, "/attorneys") ||
			strings.Contains(path, "/our-people"):
			sig.HasTeamRoster = true
		}
	}

	// a visible phone number counts as a reachable contact path
	if phonePattern.MatchString(plainText) && strings.Contains(lowerText, "contact") {
		sig.HasContactPage = true
	}

	return sig
}

func cueMatches(plainText string, cues []string) []string {
	lower := strings.ToLower(plainText)
	var found []string
	for _, cue := range cues {
		if strings.Contains(lower, cue) {
			found = append(found, cue)
		}
	}
	return found
}

func schemaTypes(blocks []string) []string {
	seen := map[string]bool{}
	var types []string
	for _, block := range blocks {
		for _, m := range schemaTypePattern.FindAllStringSubmatch(block, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				types = append(types, m[1])
			}
		}
	}
	return types
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// normalizeDate parses raw in any known layout and reformats it as
// YYYY-MM-DD. Unparsable input yields "".
func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func isBylineClass(class string) bool {
	if class == "" {
		return false
	}
	lower := strings.ToLower(class)
	return strings.Contains(lower, "byline") || strings.Contains(lower, "author")
}

func attrVal(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

func hasSuffixAny(host string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(host, s) {
			return true
		}
	}
	return false
}

func dedupeStrings(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}

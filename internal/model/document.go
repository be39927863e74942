package model

// InputType identifies how content was supplied for analysis
type InputType string

const (
	InputTypeURL  InputType = "url"
	InputTypeHTML InputType = "html"
	InputTypeText InputType = "text"
)

// Section is a located block of document text with a stable index and
// character offset into the plain text. Offsets are used for quoting
// evidence and citation-proximity search only.
type Section struct {
	Heading string `json:"heading,omitempty"` // Heading text, empty for unheaded blocks
	Text    string `json:"text"`              // Body text of the section
	Level   int    `json:"level,omitempty"`   // Heading level (1-6), 0 if none
	Index   int    `json:"index"`             // Position in document order
	Offset  int    `json:"offset"`            // Rune offset into PlainText
}

// AuthorInfo holds everything the page reveals about its author
type AuthorInfo struct {
	Name          string `json:"name,omitempty"`
	Bio           string `json:"bio,omitempty"`
	Credentials   string `json:"credentials,omitempty"`
	ProfileURL    string `json:"profile_url,omitempty"`
	HasAuthorPage bool   `json:"has_author_page"`
}

// DateInfo holds publication metadata found on the page
type DateInfo struct {
	Published string `json:"published,omitempty"`
	Updated   string `json:"updated,omitempty"`
	Reviewed  string `json:"reviewed,omitempty"`
}

// Link is an anchor extracted from the document
type Link struct {
	URL         string `json:"url"`
	AnchorText  string `json:"anchor_text,omitempty"`
	External    bool   `json:"is_external"`
	Domain      string `json:"domain,omitempty"`
	Government  bool   `json:"is_government"`
	Educational bool   `json:"is_educational"`
	Broken      bool   `json:"is_broken"`
}

// SiteSignals records trust pages discovered from on-page navigation
type SiteSignals struct {
	HasAboutPage       bool     `json:"has_about_page"`
	HasContactPage     bool     `json:"has_contact_page"`
	HasPrivacyPolicy   bool     `json:"has_privacy_policy"`
	HasTerms           bool     `json:"has_terms"`
	HasEditorialPolicy bool     `json:"has_editorial_policy"`
	HasTeamRoster      bool     `json:"has_team_roster"`
	ContactPaths       []string `json:"contact_paths,omitempty"`
}

// Document is the normalized, immutable view of the analyzed content.
// It is produced once per request by the extractor and read-only to
// every analysis component.
type Document struct {
	Title           string      `json:"title,omitempty"`
	MetaDescription string      `json:"meta_description,omitempty"`
	URL             string      `json:"url,omitempty"`
	Domain          string      `json:"domain,omitempty"`
	SiteName        string      `json:"site_name,omitempty"`
	PlainText       string      `json:"plain_text"`
	WordCount       int         `json:"word_count"`
	Sections        []Section   `json:"sections"`
	Author          AuthorInfo  `json:"author"`
	Dates           DateInfo    `json:"dates"`
	OutboundLinks   []Link      `json:"outbound_links,omitempty"`
	InternalLinks   []Link      `json:"internal_links,omitempty"`
	Images          []string    `json:"images,omitempty"`
	SiteSignals     SiteSignals `json:"site_signals"`
	SchemaTypes     []string    `json:"schema_types,omitempty"`
	Disclaimers     []string    `json:"disclaimers,omitempty"`
	Disclosures     []string    `json:"disclosures,omitempty"`
}

// Empty reports whether the document carries no analyzable text
func (d *Document) Empty() bool {
	return d == nil || len(d.PlainText) == 0
}

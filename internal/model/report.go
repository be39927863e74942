package model

// Severity indicates how serious a compliance finding is. It is fixed
// per rule, never computed from content.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ComplianceFlag is one pattern match against a compliance rule
type ComplianceFlag struct {
	Rule        string   `json:"rule"`
	Severity    Severity `json:"severity"`
	Text        string   `json:"text"`
	Location    string   `json:"location,omitempty"`
	Explanation string   `json:"explanation"`
	Fix         string   `json:"fix"`
}

// ImpactLevel ranks how much a fix is expected to move the score
type ImpactLevel string

const (
	ImpactHigh   ImpactLevel = "high"
	ImpactMedium ImpactLevel = "medium"
	ImpactLow    ImpactLevel = "low"
)

// EffortLevel estimates the work a fix requires
type EffortLevel string

const (
	EffortEasy     EffortLevel = "easy"
	EffortModerate EffortLevel = "moderate"
	EffortHeavy    EffortLevel = "heavy"
)

// FixScope says where the fix lands
type FixScope string

const (
	ScopePage    FixScope = "page_level"
	ScopeGlobal  FixScope = "global_fix"
	ScopeNewPage FixScope = "new_page"
)

// Recommendation is one concrete, ranked fix with ready-to-paste copy
type Recommendation struct {
	Title           string      `json:"title"`
	WhyItMatters    string      `json:"why_it_matters"`
	Where           string      `json:"where,omitempty"`
	CopyBlock       string      `json:"copy_block,omitempty"`
	Dimension       Dimension   `json:"dimension,omitempty"`
	Impact          ImpactLevel `json:"impact"`
	Effort          EffortLevel `json:"effort"`
	Scope           FixScope    `json:"scope"`
	PointsPotential float64     `json:"points_potential,omitempty"`
}

// ExtractedMeta is the slice of extraction metadata echoed in reports
type ExtractedMeta struct {
	URL       string `json:"url,omitempty"`
	Title     string `json:"title,omitempty"`
	Domain    string `json:"domain,omitempty"`
	Author    string `json:"author,omitempty"`
	WordCount int    `json:"word_count"`
}

// AnalysisReport is the complete output of one analysis request.
// Every entity in it is created fresh per request and discarded once
// the response is returned.
type AnalysisReport struct {
	Summary         string           `json:"summary"`
	Score           Score            `json:"score"`
	Recommendations []Recommendation `json:"recommendations"`
	CitationAudit   ClaimsAudit      `json:"citation_audit"`
	Extracted       ExtractedMeta    `json:"extracted"`
}

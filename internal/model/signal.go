package model

// Dimension is one of the four quality dimensions a page is graded on
type Dimension string

const (
	DimensionExperience        Dimension = "experience"
	DimensionExpertise         Dimension = "expertise"
	DimensionAuthoritativeness Dimension = "authoritativeness"
	DimensionTrust             Dimension = "trust"
)

// Dimensions returns the four dimensions in canonical order
func Dimensions() []Dimension {
	return []Dimension{
		DimensionExperience,
		DimensionExpertise,
		DimensionAuthoritativeness,
		DimensionTrust,
	}
}

// Label returns the display form of the dimension
func (d Dimension) Label() string {
	switch d {
	case DimensionExperience:
		return "Experience"
	case DimensionExpertise:
		return "Expertise"
	case DimensionAuthoritativeness:
		return "Authoritativeness"
	case DimensionTrust:
		return "Trust"
	default:
		return string(d)
	}
}

// Signal is one check result from the rules engine or the soft rater.
// Points are only credited when Found is true. PointsPossible is the
// check's maximum contribution and is what the recommendation engine
// uses to size missing-signal fixes.
type Signal struct {
	Dimension      Dimension `json:"dimension"`
	Name           string    `json:"name"`
	Found          bool      `json:"found"`
	Points         float64   `json:"points"`
	PointsPossible float64   `json:"points_possible"`
	Quote          string    `json:"quote,omitempty"`
	Location       string    `json:"location,omitempty"`
	Explanation    string    `json:"explanation"`
	Soft           bool      `json:"soft,omitempty"` // true for rater-contributed evidence
}

// DimensionScore is the 0-25 score for one dimension plus its evidence
type DimensionScore struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	Signals   []Signal  `json:"signals"`
	Summary   string    `json:"summary,omitempty"`
}

// YMYLRisk labels how much reader harm inaccurate content could cause
type YMYLRisk string

const (
	YMYLRiskLow    YMYLRisk = "low"
	YMYLRiskMedium YMYLRisk = "medium"
	YMYLRiskHigh   YMYLRisk = "high"
)

// Score is the complete grading result for one document
type Score struct {
	Overall           float64          `json:"overall"`
	Experience        DimensionScore   `json:"experience"`
	Expertise         DimensionScore   `json:"expertise"`
	Authoritativeness DimensionScore   `json:"authoritativeness"`
	Trust             DimensionScore   `json:"trust"`
	YMYLRisk          YMYLRisk         `json:"ymyl_risk"`
	PresetUsed        string           `json:"preset_used"`
	ComplianceFlags   []ComplianceFlag `json:"compliance_flags"`
}

// ByDimension returns a pointer to the named dimension's score
func (s *Score) ByDimension(d Dimension) *DimensionScore {
	switch d {
	case DimensionExperience:
		return &s.Experience
	case DimensionExpertise:
		return &s.Expertise
	case DimensionAuthoritativeness:
		return &s.Authoritativeness
	case DimensionTrust:
		return &s.Trust
	default:
		return nil
	}
}

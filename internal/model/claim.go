package model

// ClaimType categorizes the nature of an extracted claim
type ClaimType string

const (
	ClaimTypeStatistic        ClaimType = "statistic"
	ClaimTypeLegalDirective   ClaimType = "legal_directive"
	ClaimTypeMedicalDirective ClaimType = "medical_directive"
	ClaimTypeOutcome          ClaimType = "outcome_claim"
	ClaimTypeComparative      ClaimType = "comparative_claim"
	ClaimTypeProcedural       ClaimType = "procedural_claim"
)

// EvidenceGrade rates how well a claim is backed by a nearby citation
type EvidenceGrade string

const (
	GradeSupported          EvidenceGrade = "supported"
	GradeWeaklySupported    EvidenceGrade = "weakly_supported"
	GradeUnsupported        EvidenceGrade = "unsupported"
	GradeNeedsQualification EvidenceGrade = "needs_qualification"
)

// Claim is one factual or directive assertion pulled from the document
type Claim struct {
	Text            string        `json:"text"`
	Type            ClaimType     `json:"claim_type"`
	SectionIndex    int           `json:"section_index"`
	NearestCitation string        `json:"nearest_citation,omitempty"`
	Grade           EvidenceGrade `json:"evidence_grade"`
	Explanation     string        `json:"explanation,omitempty"`
}

// ClaimsAudit aggregates all graded claims for one document.
// The four counters always sum to TotalClaims.
type ClaimsAudit struct {
	TotalClaims        int      `json:"total_claims"`
	Supported          int      `json:"supported"`
	WeaklySupported    int      `json:"weakly_supported"`
	Unsupported        int      `json:"unsupported"`
	NeedsQualification int      `json:"needs_qualification"`
	Claims             []Claim  `json:"claims"`
	LowTrustSources    []string `json:"low_trust_sources,omitempty"`
}

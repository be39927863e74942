package preset

import "github.com/eeatgrade/eeatgrade/internal/model"

// Compliance rule ids shared with internal/compliance
const (
	RuleOutcomeGuarantee        = "outcome_guarantee"
	RuleSuperlativeClaim        = "superlative_claim"
	RuleExpertClaim             = "expert_claim"
	RuleResultsNoDisclaimer     = "results_without_disclaimer"
	RuleConditionalFee          = "conditional_fee"
	RuleOutcomePromise          = "outcome_promise"
	RuleAbsoluteOutcome         = "absolute_outcome"
	RuleTestimonialNoDisclaimer = "testimonial_without_disclaimer"
	RuleCourtInfluence          = "court_influence"
)

// generalRules apply to every content type; legalRules add the
// rules that only make sense for legal service pages.
var generalRules = []string{
	RuleOutcomeGuarantee,
	RuleSuperlativeClaim,
	RuleExpertClaim,
	RuleOutcomePromise,
	RuleAbsoluteOutcome,
	RuleTestimonialNoDisclaimer,
}

var legalRules = append([]string{
	RuleResultsNoDisclaimer,
	RuleConditionalFee,
	RuleCourtInfluence,
}, generalRules...)

func weights(experience, expertise, authoritativeness, trust float64) map[model.Dimension]float64 {
	return map[model.Dimension]float64{
		model.DimensionExperience:        experience,
		model.DimensionExpertise:         expertise,
		model.DimensionAuthoritativeness: authoritativeness,
		model.DimensionTrust:             trust,
	}
}

// builtin is the full preset table. Weights for each preset must sum
// to exactly 100; Load enforces this at startup.
var builtin = []Preset{
	{
		Name:            General,
		Label:           "General content",
		Weights:         weights(20, 25, 25, 30),
		ComplianceRules: generalRules,
	},
	{
		Name:    LegalPracticeArea,
		Label:   "Legal — Practice Area Page",
		Weights: weights(15, 25, 20, 40),
		RequiredSignals: []string{
			model.SignalDisclaimer,
			model.SignalAuthorBio,
			model.SignalCredentials,
			model.SignalDates,
			model.SignalCitations,
			model.SignalScoping,
		},
		ComplianceRules: legalRules,
	},
	{
		Name:    LegalLocation,
		Label:   "Legal — Location Page",
		Weights: weights(10, 25, 25, 40),
		RequiredSignals: []string{
			model.SignalDisclaimer,
			model.SignalContact,
			model.SignalAuthorBio,
		},
		ComplianceRules: legalRules,
	},
	{
		Name:    LegalFAQ,
		Label:   "Legal — FAQ",
		Weights: weights(10, 30, 20, 40),
		RequiredSignals: []string{
			model.SignalDisclaimer,
			model.SignalScoping,
			model.SignalDates,
		},
		ComplianceRules: legalRules,
	},
	{
		Name:    LegalGuide,
		Label:   "Legal — Long Guide",
		Weights: weights(15, 25, 20, 40),
		RequiredSignals: []string{
			model.SignalDisclaimer,
			model.SignalCitations,
			model.SignalAuthorBio,
			model.SignalDates,
			model.SignalScoping,
		},
		ComplianceRules: legalRules,
	},
	{
		Name:    LegalCaseResults,
		Label:   "Legal — Case Results / Testimonials",
		Weights: weights(10, 20, 25, 45),
		RequiredSignals: []string{
			model.SignalDisclaimer,
			model.SignalAuthorBio,
		},
		ComplianceRules: legalRules,
	},
	{
		Name:    Medical,
		Label:   "Medical content",
		Weights: weights(15, 30, 15, 40),
		RequiredSignals: []string{
			model.SignalDisclaimer,
			model.SignalAuthorBio,
			model.SignalCitations,
			model.SignalDates,
			model.SignalScoping,
		},
		ComplianceRules: generalRules,
	},
	{
		Name:    Finance,
		Label:   "Financial content",
		Weights: weights(15, 30, 20, 35),
		RequiredSignals: []string{
			model.SignalAuthorBio,
			model.SignalCitations,
			model.SignalDates,
		},
		ComplianceRules: generalRules,
	},
	{
		Name:    ProductReview,
		Label:   "Product Review",
		Weights: weights(35, 20, 15, 30),
		RequiredSignals: []string{
			model.SignalFirsthand,
			model.SignalOriginalMedia,
			model.SignalDisclosure,
		},
		ComplianceRules: generalRules,
	},
	{
		Name:    DIYTutorial,
		Label:   "DIY Tutorial",
		Weights: weights(35, 25, 10, 30),
		RequiredSignals: []string{
			model.SignalFirsthand,
			model.SignalProcedural,
			model.SignalOriginalMedia,
		},
		ComplianceRules: generalRules,
	},
}

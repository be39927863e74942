package model

// Canonical signal names. Each dimension has a fixed, known catalog;
// presets reference these to mark required signals and the
// recommendation engine keys its fix templates on them.
const (
	// Trust
	SignalAboutPage  = "About page linked"
	SignalContact    = "Contact information present"
	SignalPrivacy    = "Privacy policy linked"
	SignalTerms      = "Terms of service linked"
	SignalEditorial  = "Editorial / review policy"
	SignalDates      = "Dates shown (published / updated)"
	SignalCitations  = "Outbound citation count and quality"
	SignalDisclaimer = "Disclaimer / legal notice present"
	SignalDisclosure = "Affiliate / advertising disclosure"
	SignalSchemaOrg  = "Structured data (schema.org)"

	// Experience
	SignalFirsthand     = "First-hand experience language"
	SignalProcedural    = "Procedural / step-by-step detail"
	SignalCaveats       = "Real-world caveats and limitations"
	SignalOriginalMedia = "Original images / media"

	// Expertise
	SignalTerminology = "Domain-specific terminology"
	SignalScoping     = "Proper scoping and pro referrals"
	SignalDepth       = "Content depth (word count + structure)"
	SignalConsistency = "Internal consistency"

	// Authoritativeness
	SignalAuthorName      = "Author name present"
	SignalAuthorBio       = "Author bio with credentials"
	SignalAuthorPage      = "Dedicated author page"
	SignalCredentials     = "Professional credentials listed"
	SignalInternalLinking = "Internal linking depth"
	SignalTeamRoster      = "Team / attorney roster page"
)

package recommend

import "github.com/eeatgrade/eeatgrade/internal/model"

// template carries the fix copy for a missing signal. PointsPotential
// comes from the signal itself at build time.
type template struct {
	Title  string
	Why    string
	Where  string
	Copy   string
	Effort model.EffortLevel
	Impact model.ImpactLevel
	Scope  model.FixScope
}

// templates maps canonical signal names to their remediation copy.
// Signals without an entry fall back to a generic template.
var templates = map[string]template{
	model.SignalAboutPage: {
		Title:  "Publish and link an About page",
		Why:    "Readers and raters look for who stands behind the content. A reachable About page is the cheapest trust signal a site can add.",
		Where:  "Site footer and header navigation",
		Copy:   "About [Site Name]: founded in [year], we [mission]. Our team of [credentials] reviews every article before publication.",
		Effort: model.EffortModerate,
		Impact: model.ImpactHigh,
		Scope:  model.ScopeNewPage,
	},
	model.SignalContact: {
		Title:  "Add a contact page with a real address and phone",
		Why:    "A physical address and phone number distinguish an accountable business from an anonymous content site.",
		Where:  "Footer of every page",
		Copy:   "Contact us: [street address], [city, state]. Phone: [number]. Email: [address].",
		Effort: model.EffortEasy,
		Impact: model.ImpactHigh,
		Scope:  model.ScopeGlobal,
	},
	model.SignalPrivacy: {
		Title:  "Link a privacy policy",
		Why:    "A missing privacy policy is a baseline trust failure and a legal exposure in most jurisdictions.",
		Where:  "Site footer",
		Copy:   "",
		Effort: model.EffortEasy,
		Impact: model.ImpactMedium,
		Scope:  model.ScopeGlobal,
	},
	model.SignalTerms: {
		Title:  "Link terms of service",
		Why:    "Terms of service round out the legal page set raters expect on a commercial site.",
		Where:  "Site footer",
		Copy:   "",
		Effort: model.EffortEasy,
		Impact: model.ImpactLow,
		Scope:  model.ScopeGlobal,
	},
	model.SignalEditorial: {
		Title:  "Publish an editorial or review policy",
		Why:    "An editorial policy explains how content is produced, reviewed, and corrected, which directly supports trustworthiness.",
		Where:  "Linked from the footer and from article bylines",
		Copy:   "Editorial policy: every article is written by [role], reviewed by [role], and updated when [trigger]. Corrections are noted inline.",
		Effort: model.EffortModerate,
		Impact: model.ImpactMedium,
		Scope:  model.ScopeNewPage,
	},
	model.SignalDates: {
		Title:  "Show published and updated dates",
		Why:    "Visible dates let readers judge freshness. Content without dates reads as stale or evasive.",
		Where:  "Under the article title",
		Copy:   "Published [date]. Last updated [date].",
		Effort: model.EffortEasy,
		Impact: model.ImpactMedium,
		Scope:  model.ScopePage,
	},
	model.SignalCitations: {
		Title:  "Cite authoritative sources for factual statements",
		Why:    "Claims without citations read as opinion. Linking primary sources is the strongest expertise signal available.",
		Where:  "Inline, next to each statistic or factual claim",
		Copy:   "According to [source name]([link]), [restated fact].",
		Effort: model.EffortModerate,
		Impact: model.ImpactHigh,
		Scope:  model.ScopePage,
	},
	model.SignalDisclaimer: {
		Title:  "Add a topic-appropriate disclaimer",
		Why:    "Legal, medical, and financial content needs a disclaimer scoping what the content is and is not.",
		Where:  "Top or bottom of the article",
		Copy:   "This article is for general information only and is not [legal/medical/financial] advice. Consult a licensed professional about your situation.",
		Effort: model.EffortEasy,
		Impact: model.ImpactHigh,
		Scope:  model.ScopePage,
	},
	model.SignalDisclosure: {
		Title:  "Disclose affiliate or sponsorship relationships",
		Why:    "Undisclosed commercial relationships undermine every other trust signal on the page.",
		Where:  "Top of the article, before the first link",
		Copy:   "Disclosure: we may earn a commission when you buy through links on this page. This does not affect our recommendations.",
		Effort: model.EffortEasy,
		Impact: model.ImpactMedium,
		Scope:  model.ScopePage,
	},
	model.SignalSchemaOrg: {
		Title:  "Add schema.org structured data",
		Why:    "Article, Person, and Organization markup makes authorship and provenance machine-readable.",
		Where:  "JSON-LD block in the page head",
		Copy:   `{"@context":"https://schema.org","@type":"Article","author":{"@type":"Person","name":"[author]"},"datePublished":"[date]"}`,
		Effort: model.EffortModerate,
		Impact: model.ImpactLow,
		Scope:  model.ScopeGlobal,
	},
	model.SignalFirsthand: {
		Title:  "Add first-hand experience language",
		Why:    "Phrases like \"in our testing\" or \"I handled a case where\" show the author has done the thing, not just read about it.",
		Where:  "Introduction and key how-to sections",
		Copy:   "In my [N] years handling [topic], the pattern I see most often is [observation].",
		Effort: model.EffortModerate,
		Impact: model.ImpactHigh,
		Scope:  model.ScopePage,
	},
	model.SignalProcedural: {
		Title:  "Include concrete procedural details",
		Why:    "Specific steps, forms, costs, and timelines separate lived experience from generic summaries.",
		Where:  "Body sections covering the process",
		Copy:   "Step 1: file [form name] with [office] within [deadline]. Expect a filing fee of about [amount].",
		Effort: model.EffortModerate,
		Impact: model.ImpactMedium,
		Scope:  model.ScopePage,
	},
	model.SignalCaveats: {
		Title:  "Acknowledge exceptions and edge cases",
		Why:    "Real practitioners know where the general rule breaks. Stating caveats signals depth, not weakness.",
		Where:  "After each general statement of the rule",
		Copy:   "However, this does not apply when [exception]. In [jurisdiction/case], the outcome depends on [factor].",
		Effort: model.EffortModerate,
		Impact: model.ImpactMedium,
		Scope:  model.ScopePage,
	},
	model.SignalOriginalMedia: {
		Title:  "Add original photos or screenshots",
		Why:    "Stock imagery signals nothing. Original media proves presence and first-hand work.",
		Where:  "Alongside the steps or findings they illustrate",
		Copy:   "",
		Effort: model.EffortHeavy,
		Impact: model.ImpactLow,
		Scope:  model.ScopePage,
	},
	model.SignalTerminology: {
		Title:  "Use correct domain terminology",
		Why:    "Precise terms of art show subject-matter fluency to both readers and expert reviewers.",
		Where:  "Throughout the body",
		Copy:   "",
		Effort: model.EffortModerate,
		Impact: model.ImpactMedium,
		Scope:  model.ScopePage,
	},
	model.SignalScoping: {
		Title:  "Scope the advice and refer out where appropriate",
		Why:    "Telling readers when to consult a professional is itself an expertise signal, and a safety requirement on YMYL topics.",
		Where:  "Conclusion and any high-stakes sections",
		Copy:   "This overview covers [scope] only. For [situation], consult a licensed [professional] in your state.",
		Effort: model.EffortEasy,
		Impact: model.ImpactHigh,
		Scope:  model.ScopePage,
	},
	model.SignalDepth: {
		Title:  "Deepen coverage of the topic",
		Why:    "Thin content loses to competitors that answer the follow-up questions too.",
		Where:  "New body sections",
		Copy:   "",
		Effort: model.EffortHeavy,
		Impact: model.ImpactMedium,
		Scope:  model.ScopePage,
	},
	model.SignalAuthorName: {
		Title:  "Add a named author byline",
		Why:    "Anonymous content cannot carry authoritativeness. A real name is the prerequisite for every other author signal.",
		Where:  "Directly under the title",
		Copy:   "By [Full Name], [credential]",
		Effort: model.EffortEasy,
		Impact: model.ImpactHigh,
		Scope:  model.ScopePage,
	},
	model.SignalAuthorBio: {
		Title:  "Add an author bio",
		Why:    "A two-sentence bio connecting the author to the topic converts a name into a credential.",
		Where:  "End of the article or beside the byline",
		Copy:   "[Name] is a [credential] with [N] years of experience in [field]. [One relevant accomplishment].",
		Effort: model.EffortEasy,
		Impact: model.ImpactHigh,
		Scope:  model.ScopePage,
	},
	model.SignalAuthorPage: {
		Title:  "Create a dedicated author profile page",
		Why:    "An author page aggregating credentials and prior work is what raters use to verify the byline.",
		Where:  "Linked from every byline",
		Copy:   "",
		Effort: model.EffortModerate,
		Impact: model.ImpactMedium,
		Scope:  model.ScopeNewPage,
	},
	model.SignalCredentials: {
		Title:  "State the author's credentials",
		Why:    "Degrees, licenses, and certifications are the verifiable core of expertise on YMYL topics.",
		Where:  "Byline and author bio",
		Copy:   "[Name], [J.D./M.D./CPA], licensed in [state] since [year].",
		Effort: model.EffortEasy,
		Impact: model.ImpactHigh,
		Scope:  model.ScopePage,
	},
	model.SignalInternalLinking: {
		Title:  "Link related content on your own site",
		Why:    "Internal links show topical depth and keep readers inside the site's coverage.",
		Where:  "Inline where related topics are mentioned",
		Copy:   "",
		Effort: model.EffortEasy,
		Impact: model.ImpactLow,
		Scope:  model.ScopePage,
	},
	model.SignalTeamRoster: {
		Title:  "Publish a team or attorney roster page",
		Why:    "A roster with photos and credentials proves the organization is staffed by identifiable professionals.",
		Where:  "Linked from the main navigation",
		Copy:   "",
		Effort: model.EffortHeavy,
		Impact: model.ImpactMedium,
		Scope:  model.ScopeNewPage,
	},
}

// genericFor covers signals without a bespoke template.
func genericFor(sig model.Signal) template {
	return template{
		Title:  "Address missing signal: " + sig.Name,
		Why:    sig.Explanation,
		Where:  "Article body",
		Effort: model.EffortModerate,
		Impact: model.ImpactMedium,
		Scope:  model.ScopePage,
	}
}

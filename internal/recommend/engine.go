// Package recommend turns missing signals, claim audit results, and
// compliance flags into an ordered, deduplicated fix list.
package recommend

import (
	"fmt"
	"sort"

	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/preset"
)

var impactRank = map[model.ImpactLevel]int{
	model.ImpactHigh:   0,
	model.ImpactMedium: 1,
	model.ImpactLow:    2,
}

var effortRank = map[model.EffortLevel]int{
	model.EffortEasy:     0,
	model.EffortModerate: 1,
	model.EffortHeavy:    2,
}

// Engine builds recommendations. It resolves the preset named in the
// score to decide which signals are required for the content type.
type Engine struct {
	registry *preset.Registry
}

func NewEngine(registry *preset.Registry) *Engine {
	return &Engine{registry: registry}
}

// Recommend assembles recommendations from all three inputs, dedupes
// them by fix, and orders them by impact (high first) then effort
// (easy first). Ties keep detection order. A perfect input yields an
// empty, non-nil slice.
func (e *Engine) Recommend(score model.Score, audit model.ClaimsAudit, flags []model.ComplianceFlag) []model.Recommendation {
	p := e.registry.Resolve(score.PresetUsed)

	recs := []model.Recommendation{}
	recs = append(recs, e.fromSignals(score, p)...)
	recs = append(recs, fromAudit(audit)...)
	recs = append(recs, fromFlags(flags)...)
	if p.Legal() {
		recs = append(recs, legalExtras(score)...)
	}

	recs = dedupe(recs)

	sort.SliceStable(recs, func(i, j int) bool {
		if impactRank[recs[i].Impact] != impactRank[recs[j].Impact] {
			return impactRank[recs[i].Impact] < impactRank[recs[j].Impact]
		}
		return effortRank[recs[i].Effort] < effortRank[recs[j].Effort]
	})
	return recs
}

// fromSignals emits one recommendation per missing signal worth points.
// Signals the preset marks as required get promoted to high impact.
func (e *Engine) fromSignals(score model.Score, p preset.Preset) []model.Recommendation {
	var recs []model.Recommendation
	for _, dim := range model.Dimensions() {
		ds := score.ByDimension(dim)
		if ds == nil {
			continue
		}
		for _, sig := range ds.Signals {
			if sig.Found || sig.Soft || sig.PointsPossible <= 0 {
				continue
			}
			tpl, ok := templates[sig.Name]
			if !ok {
				tpl = genericFor(sig)
			}
			rec := model.Recommendation{
				Title:           tpl.Title,
				WhyItMatters:    tpl.Why,
				Where:           tpl.Where,
				CopyBlock:       tpl.Copy,
				Dimension:       sig.Dimension,
				Impact:          tpl.Impact,
				Effort:          tpl.Effort,
				Scope:           tpl.Scope,
				PointsPotential: sig.PointsPossible,
			}
			if p.Required(sig.Name) {
				rec.Impact = model.ImpactHigh
				rec.PointsPotential += 2
				rec.WhyItMatters += " This signal is required for this content type."
			}
			recs = append(recs, rec)
		}
	}
	return recs
}

// fromAudit aggregates claim problems into at most three recommendations
// instead of one per claim.
func fromAudit(audit model.ClaimsAudit) []model.Recommendation {
	var recs []model.Recommendation

	if audit.Unsupported > 0 {
		recs = append(recs, model.Recommendation{
			Title:           fmt.Sprintf("Add citations for %d unsupported claim(s)", audit.Unsupported),
			WhyItMatters:    "Factual statements without a nearby source read as opinion and drag down trust.",
			Where:           "Inline, next to each flagged claim",
			CopyBlock:       "According to [authoritative source]([link]), [restated claim].",
			Dimension:       model.DimensionTrust,
			Impact:          model.ImpactHigh,
			Effort:          model.EffortModerate,
			Scope:           model.ScopePage,
			PointsPotential: float64(audit.Unsupported),
		})
	}
	if audit.WeaklySupported > 0 {
		recs = append(recs, model.Recommendation{
			Title:           fmt.Sprintf("Upgrade %d weakly supported citation(s) to primary sources", audit.WeaklySupported),
			WhyItMatters:    "Blogs and forums do not carry the claim. Replace them with government, academic, or recognized references.",
			Where:           "The existing citation links",
			Dimension:       model.DimensionTrust,
			Impact:          model.ImpactMedium,
			Effort:          model.EffortModerate,
			Scope:           model.ScopePage,
			PointsPotential: float64(audit.WeaklySupported) * 0.5,
		})
	}
	if audit.NeedsQualification > 0 {
		recs = append(recs, model.Recommendation{
			Title:           fmt.Sprintf("Qualify %d overbroad claim(s)", audit.NeedsQualification),
			WhyItMatters:    "Absolute words like \"always\" and \"guaranteed\" overstate what is true and create compliance exposure.",
			Where:           "Each flagged sentence",
			CopyBlock:       "In most cases, [claim], though outcomes depend on [conditions].",
			Dimension:       model.DimensionTrust,
			Impact:          model.ImpactHigh,
			Effort:          model.EffortEasy,
			Scope:           model.ScopePage,
			PointsPotential: float64(audit.NeedsQualification) * 0.5,
		})
	}
	return recs
}

// fromFlags emits one recommendation per distinct compliance rule hit.
// Impact follows the rule's severity.
func fromFlags(flags []model.ComplianceFlag) []model.Recommendation {
	byRule := map[string]int{}
	var order []model.ComplianceFlag
	for _, f := range flags {
		if byRule[f.Rule] == 0 {
			order = append(order, f)
		}
		byRule[f.Rule]++
	}

	var recs []model.Recommendation
	for _, f := range order {
		impact := model.ImpactMedium
		switch f.Severity {
		case model.SeverityHigh:
			impact = model.ImpactHigh
		case model.SeverityLow:
			impact = model.ImpactLow
		}
		title := "Fix compliance issue: " + f.Rule
		if n := byRule[f.Rule]; n > 1 {
			title = fmt.Sprintf("Fix compliance issue: %s (%d occurrences)", f.Rule, n)
		}
		recs = append(recs, model.Recommendation{
			Title:        title,
			WhyItMatters: f.Explanation,
			Where:        f.Location,
			CopyBlock:    f.Fix,
			Dimension:    model.DimensionTrust,
			Impact:       impact,
			Effort:       model.EffortEasy,
			Scope:        model.ScopePage,
		})
	}
	return recs
}

// legalExtras are additions specific to legal content types.
func legalExtras(score model.Score) []model.Recommendation {
	var recs []model.Recommendation

	if ds := score.ByDimension(model.DimensionAuthoritativeness); ds != nil {
		reviewed := false
		for _, sig := range ds.Signals {
			if sig.Name == model.SignalCredentials && sig.Found {
				reviewed = true
			}
		}
		if !reviewed {
			recs = append(recs, model.Recommendation{
				Title:           "Add an attorney-reviewed line",
				WhyItMatters:    "Legal content reviewed by a licensed attorney carries materially more weight with readers and raters.",
				Where:           "Under the byline",
				CopyBlock:       "Reviewed by [Attorney Name], licensed in [state], [bar number].",
				Dimension:       model.DimensionAuthoritativeness,
				Impact:          model.ImpactHigh,
				Effort:          model.EffortEasy,
				Scope:           model.ScopePage,
				PointsPotential: 2,
			})
		}
	}

	if ds := score.ByDimension(model.DimensionExperience); ds != nil && ds.Score < 15 {
		recs = append(recs, model.Recommendation{
			Title:           "Add a \"How we built this guide\" note",
			WhyItMatters:    "Explaining that the guide draws on real matters the firm handled converts generic legal summary into first-hand experience.",
			Where:           "Introduction or a short sidebar",
			CopyBlock:       "This guide draws on [N] [matter type] cases our attorneys have handled in [jurisdiction] since [year].",
			Dimension:       model.DimensionExperience,
			Impact:          model.ImpactMedium,
			Effort:          model.EffortModerate,
			Scope:           model.ScopePage,
			PointsPotential: 1.5,
		})
	}
	return recs
}

// dedupe collapses recommendations that prescribe the same fix, keeping
// the highest-impact copy at the first occurrence's position.
func dedupe(recs []model.Recommendation) []model.Recommendation {
	index := map[string]int{}
	out := recs[:0:0]
	for _, rec := range recs {
		key := rec.Title + "\x00" + rec.Where
		if i, ok := index[key]; ok {
			if impactRank[rec.Impact] < impactRank[out[i].Impact] {
				out[i] = rec
			}
			continue
		}
		index[key] = len(out)
		out = append(out, rec)
	}
	return out
}

package score

import (
	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/preset"
)

// ClassifyYMYL labels the document's your-money-your-life risk.
//
// Legal, medical, financial, or safety directives with thin trust and
// expertise evidence are high risk; the same topics with most of those
// signals present drop to medium; everything else is low unless the
// softer lexicon fires. The classification feeds preset suggestions
// and recommendation framing; it never alters the score itself.
func ClassifyYMYL(doc *model.Document, evidence map[model.Dimension][]model.Signal) model.YMYLRisk {
	if doc.Empty() {
		return model.YMYLRiskLow
	}

	high, medium := preset.LexiconHits(doc.PlainText + " " + doc.Title)

	if high >= 3 {
		if signalDensity(evidence) < 0.5 {
			return model.YMYLRiskHigh
		}
		return model.YMYLRiskMedium
	}
	if medium >= 2 || high >= 1 {
		return model.YMYLRiskMedium
	}
	return model.YMYLRiskLow
}

// signalDensity is the found ratio across trust and expertise evidence
func signalDensity(evidence map[model.Dimension][]model.Signal) float64 {
	total, found := 0, 0
	for _, dim := range []model.Dimension{model.DimensionTrust, model.DimensionExpertise} {
		for _, sig := range evidence[dim] {
			total++
			if sig.Found {
				found++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(found) / float64(total)
}

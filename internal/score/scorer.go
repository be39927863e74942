// Package score combines deterministic and soft evidence into
// dimension scores and the weighted overall score.
package score

import (
	"math"

	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/preset"
)

// Scorer turns per-dimension evidence into a Score. It never branches
// on whether a signal came from the rules engine or the soft rater.
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the four dimension scores and the weighted overall.
//
// Per dimension: raw = sum of points of found signals, capped at the
// dimension's point pool (the sum of PointsPossible across its
// deterministic checks); score = min(25, raw/pool*25). Soft signals add
// raw points but never grow the pool, so a rater failure degrades to
// the rules-only score.
//
// Overall = sum over dimensions of score * weight/25, clamped to
// [0,100]. Weights partition 100, so a 40-weight dimension's 25-point
// band is worth 40 of the 100 overall points.
func (s *Scorer) Score(doc *model.Document, evidence map[model.Dimension][]model.Signal, p preset.Preset) model.Score {
	result := model.Score{
		PresetUsed: p.Name,
		YMYLRisk:   ClassifyYMYL(doc, evidence),
	}

	overall := 0.0
	for _, dim := range model.Dimensions() {
		ds := scoreDimension(dim, evidence[dim])
		*result.ByDimension(dim) = ds
		overall += ds.Score * p.Weights[dim] / 25.0
	}

	result.Overall = round1(clamp(overall, 0, 100))
	return result
}

func scoreDimension(dim model.Dimension, signals []model.Signal) model.DimensionScore {
	ds := model.DimensionScore{Dimension: dim, Signals: signals}

	pool := 0.0
	raw := 0.0
	for _, sig := range signals {
		if !sig.Soft {
			pool += sig.PointsPossible
		}
		if sig.Found {
			raw += sig.Points
		}
	}
	if pool <= 0 {
		return ds
	}
	if raw > pool {
		raw = pool
	}

	ds.Score = round1(math.Min(25, raw/pool*25))
	return ds
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

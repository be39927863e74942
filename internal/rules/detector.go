package rules

import "github.com/eeatgrade/eeatgrade/internal/model"

// Detector evaluates the fixed check catalog against a document.
// It is a pure function of its input: no network, no randomness.
type Detector struct {
	checks []Check
}

// NewDetector returns a detector over the built-in catalog
func NewDetector() *Detector {
	return &Detector{checks: catalog}
}

// Detect runs every check in catalog order and returns one Signal per
// check. A signal's points are only credited when the check matched.
// An empty document yields no signals at all, not an error.
func (det *Detector) Detect(doc *model.Document) []model.Signal {
	if doc.Empty() {
		return nil
	}
	signals := make([]model.Signal, 0, len(det.checks))
	for _, c := range det.checks {
		m := c.Run(doc)
		points := 0.0
		if m.found {
			points = m.points
			if points == 0 {
				points = c.Points
			}
		}
		signals = append(signals, model.Signal{
			Dimension:      c.Dimension,
			Name:           c.Name,
			Found:          m.found,
			Points:         points,
			PointsPossible: c.Points,
			Quote:          trimQuote(m.quote),
			Location:       m.location,
			Explanation:    c.Explanation,
		})
	}
	return signals
}

// MaxPoints returns the maximum raw point pool of a dimension's catalog
func (det *Detector) MaxPoints(dim model.Dimension) float64 {
	total := 0.0
	for _, c := range det.checks {
		if c.Dimension == dim {
			total += c.Points
		}
	}
	return total
}

// Package preset holds the content-type profiles that drive scoring.
// Presets are declarative data loaded into an immutable registry at
// startup; adding one never requires scorer changes.
package preset

import (
	"math"
	"strings"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// Preset names
const (
	General           = "general"
	LegalPracticeArea = "legal_practice_area"
	LegalLocation     = "legal_location"
	LegalFAQ          = "legal_faq"
	LegalGuide        = "legal_guide"
	LegalCaseResults  = "legal_case_results"
	Medical           = "medical"
	Finance           = "finance"
	ProductReview     = "product_review"
	DIYTutorial       = "diy_tutorial"
)

// Preset is one content-type profile: how the four dimensions are
// weighted in the overall score, which signals the content type cannot
// score well without, and which compliance rules apply.
type Preset struct {
	Name            string
	Label           string
	Weights         map[model.Dimension]float64 // sums to exactly 100
	RequiredSignals []string                    // signal names that get an impact boost when missing
	ComplianceRules []string                    // enabled compliance rule ids
}

// Legal reports whether the preset is one of the legal content types
func (p Preset) Legal() bool {
	return strings.HasPrefix(p.Name, "legal")
}

// RuleEnabled reports whether the compliance rule id applies
func (p Preset) RuleEnabled(id string) bool {
	for _, r := range p.ComplianceRules {
		if r == id {
			return true
		}
	}
	return false
}

// Required reports whether the signal name is required by this preset
func (p Preset) Required(signal string) bool {
	for _, s := range p.RequiredSignals {
		if s == signal {
			return true
		}
	}
	return false
}

// Registry is the immutable preset table. Build it once with Load.
type Registry struct {
	presets map[string]Preset
	order   []string
}

// Load builds the registry from the built-in table and validates the
// startup invariants. A preset whose weights do not sum to 100 is a
// ConfigError, never a per-request failure.
func Load() (*Registry, error) {
	r := &Registry{presets: make(map[string]Preset, len(builtin))}
	for _, p := range builtin {
		sum := 0.0
		for _, d := range model.Dimensions() {
			w, ok := p.Weights[d]
			if !ok {
				return nil, model.NewConfigError("preset %q missing weight for %s", p.Name, d)
			}
			if w < 0 {
				return nil, model.NewConfigError("preset %q has negative weight for %s", p.Name, d)
			}
			sum += w
		}
		if math.Abs(sum-100) > 1e-9 {
			return nil, model.NewConfigError("preset %q weights sum to %.1f, want 100", p.Name, sum)
		}
		if _, dup := r.presets[p.Name]; dup {
			return nil, model.NewConfigError("duplicate preset %q", p.Name)
		}
		r.presets[p.Name] = p
		r.order = append(r.order, p.Name)
	}
	return r, nil
}

// Resolve returns the named preset, falling back to "general" for an
// unknown or absent name.
func (r *Registry) Resolve(name string) Preset {
	if p, ok := r.presets[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return r.presets[General]
}

// Known reports whether name resolves to a real preset
func (r *Registry) Known(name string) bool {
	_, ok := r.presets[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// All returns the presets in declaration order
func (r *Registry) All() []Preset {
	out := make([]Preset, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.presets[name])
	}
	return out
}

// Package analyze orchestrates one grading run: signal detection,
// claims audit, compliance scan, optional soft-signal rating, scoring,
// and recommendation assembly.
package analyze

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/eeatgrade/eeatgrade/internal/claims"
	"github.com/eeatgrade/eeatgrade/internal/compliance"
	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/preset"
	"github.com/eeatgrade/eeatgrade/internal/rater"
	"github.com/eeatgrade/eeatgrade/internal/recommend"
	"github.com/eeatgrade/eeatgrade/internal/rules"
	"github.com/eeatgrade/eeatgrade/internal/score"
)

// Options are per-request inputs that override what extraction found.
type Options struct {
	// PresetName forces a preset; empty means auto-detect
	PresetName string

	// AuthorName and SiteName fill gaps the extractor could not
	AuthorName string
	SiteName   string
}

// Analyzer wires the pipeline stages together. It is safe for
// concurrent use; all per-request state lives in the call.
type Analyzer struct {
	registry *preset.Registry
	detector *rules.Detector
	auditor  *claims.Auditor
	scanner  *compliance.Scanner
	scorer   *score.Scorer
	engine   *recommend.Engine
	rater    *rater.Rater
}

// New builds an analyzer. The rater may be nil or disabled; analysis
// then runs on deterministic signals only.
func New(registry *preset.Registry, r *rater.Rater) *Analyzer {
	return &Analyzer{
		registry: registry,
		detector: rules.NewDetector(),
		auditor:  claims.NewAuditor(),
		scanner:  compliance.NewScanner(),
		scorer:   score.NewScorer(),
		engine:   recommend.NewEngine(registry),
		rater:    r,
	}
}

// Analyze grades a document. An empty document is not an error: it
// produces a zero score with no signals, claims, flags, or
// recommendations. Rejecting empty input is the extractor's job.
func (a *Analyzer) Analyze(ctx context.Context, doc *model.Document, opts Options) (*model.AnalysisReport, error) {
	if doc == nil {
		doc = &model.Document{}
	}
	applyOverrides(doc, opts)

	p := a.resolvePreset(doc, opts.PresetName)

	// The three deterministic stages and the rater only read the
	// document, so they run concurrently.
	var (
		wg        sync.WaitGroup
		signals   []model.Signal
		audit     model.ClaimsAudit
		flags     []model.ComplianceFlag
		soft      []model.Signal
		summaries map[model.Dimension]string
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		signals = a.detector.Detect(doc)
	}()
	go func() {
		defer wg.Done()
		audit = a.auditor.Audit(doc)
	}()
	go func() {
		defer wg.Done()
		flags = a.scanner.Scan(doc, p)
	}()

	if a.rater.Enabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			soft, summaries = a.rater.Augment(ctx, doc, p.Name)
		}()
	}
	wg.Wait()

	evidence := groupByDimension(append(signals, soft...))

	result := a.scorer.Score(doc, evidence, p)
	result.ComplianceFlags = flags
	applySummaries(&result, summaries)

	recs := a.engine.Recommend(result, audit, flags)

	report := &model.AnalysisReport{
		Summary:         buildSummary(result, audit, flags),
		Score:           result,
		Recommendations: recs,
		CitationAudit:   audit,
		Extracted: model.ExtractedMeta{
			URL:       doc.URL,
			Title:     doc.Title,
			Domain:    doc.Domain,
			Author:    doc.Author.Name,
			WordCount: doc.WordCount,
		},
	}
	return report, nil
}

func (a *Analyzer) resolvePreset(doc *model.Document, name string) preset.Preset {
	if name != "" {
		return a.registry.Resolve(name)
	}
	return a.registry.Detect(doc)
}

func applyOverrides(doc *model.Document, opts Options) {
	if opts.AuthorName != "" {
		doc.Author.Name = opts.AuthorName
	}
	if opts.SiteName != "" {
		doc.SiteName = opts.SiteName
	}
}

func groupByDimension(signals []model.Signal) map[model.Dimension][]model.Signal {
	grouped := make(map[model.Dimension][]model.Signal, 4)
	for _, sig := range signals {
		grouped[sig.Dimension] = append(grouped[sig.Dimension], sig)
	}
	return grouped
}

func applySummaries(result *model.Score, summaries map[model.Dimension]string) {
	for dim, summary := range summaries {
		if ds := result.ByDimension(dim); ds != nil {
			ds.Summary = summary
		}
	}
}

// buildSummary writes the two-to-four sentence overview at the top of
// every report.
func buildSummary(result model.Score, audit model.ClaimsAudit, flags []model.ComplianceFlag) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Overall %.1f/100 (%s preset, %s YMYL risk).", result.Overall, result.PresetUsed, result.YMYLRisk)

	weakest := weakestDimension(result)
	fmt.Fprintf(&sb, " Dimension scores: experience %.1f, expertise %.1f, authoritativeness %.1f, trust %.1f; %s is the weakest.",
		result.Experience.Score, result.Expertise.Score,
		result.Authoritativeness.Score, result.Trust.Score, weakest.Label())

	if audit.TotalClaims > 0 {
		fmt.Fprintf(&sb, " Of %d claims audited, %d lack support and %d need qualification.",
			audit.TotalClaims, audit.Unsupported, audit.NeedsQualification)
	}
	if len(flags) > 0 {
		fmt.Fprintf(&sb, " %d compliance issue(s) flagged.", len(flags))
	}

	return sb.String()
}

func weakestDimension(result model.Score) model.Dimension {
	weakest := model.DimensionExperience
	low := result.Experience.Score
	for _, dim := range model.Dimensions() {
		if ds := result.ByDimension(dim); ds != nil && ds.Score < low {
			low = ds.Score
			weakest = dim
		}
	}
	return weakest
}

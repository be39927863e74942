// Package pipeline wires fetching, extraction, link validation, and
// analysis into the end-to-end grading flow shared by the CLI, the
// batch worker, and the HTTP server.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/eeatgrade/eeatgrade/internal/analyze"
	"github.com/eeatgrade/eeatgrade/internal/extract"
	"github.com/eeatgrade/eeatgrade/internal/fetch"
	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/preset"
	"github.com/eeatgrade/eeatgrade/internal/rater"
	"github.com/eeatgrade/eeatgrade/internal/validate"
)

// Pipeline orchestrates the complete grading process
type Pipeline struct {
	registry  *preset.Registry
	fetcher   *fetch.Fetcher
	extractor *extract.Extractor
	validator *validate.Validator
	analyzer  *analyze.Analyzer
	renderer  *analyze.Renderer
	config    *model.Config
}

// New creates a pipeline from configuration. An unusable rater
// configuration is a startup error; a rater that fails later is not.
func New(cfg *model.Config) (*Pipeline, error) {
	registry, err := preset.Load()
	if err != nil {
		return nil, err
	}

	r, err := rater.New(cfg.Rater, cfg.Output.Verbose)
	if err != nil {
		return nil, model.NewConfigError("configure rater: %v", err)
	}

	return &Pipeline{
		registry:  registry,
		fetcher:   fetch.New(cfg),
		extractor: extract.NewExtractor(),
		validator: validate.New(cfg),
		analyzer:  analyze.New(registry, r),
		renderer:  analyze.NewRenderer(cfg.Output.IncludeFooter),
		config:    cfg,
	}, nil
}

// Registry exposes the loaded preset registry
func (p *Pipeline) Registry() *preset.Registry {
	return p.registry
}

// GradeURL fetches, extracts, and grades a URL
func (p *Pipeline) GradeURL(ctx context.Context, url string) (*model.AnalysisReport, error) {
	return p.GradeURLWithOptions(ctx, url, analyze.Options{})
}

// GradeURLWithOptions fetches, extracts, and grades a URL with
// per-request overrides
func (p *Pipeline) GradeURLWithOptions(ctx context.Context, url string, opts analyze.Options) (*model.AnalysisReport, error) {
	result, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	doc, err := p.extractor.FromHTML(result.HTML, result.FinalURL)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	p.maybeValidate(ctx, doc)

	return p.analyzer.Analyze(ctx, doc, opts)
}

// GradeHTML extracts and grades raw HTML
func (p *Pipeline) GradeHTML(ctx context.Context, html, sourceURL string, opts analyze.Options) (*model.AnalysisReport, error) {
	doc, err := p.extractor.FromHTML(html, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	p.maybeValidate(ctx, doc)

	return p.analyzer.Analyze(ctx, doc, opts)
}

// GradeText grades plain text
func (p *Pipeline) GradeText(ctx context.Context, text string, opts analyze.Options) (*model.AnalysisReport, error) {
	doc, err := p.extractor.FromText(text)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	return p.analyzer.Analyze(ctx, doc, opts)
}

// maybeValidate probes outbound links when validation is enabled.
// It mutates link Broken flags in place before the claims audit runs.
func (p *Pipeline) maybeValidate(ctx context.Context, doc *model.Document) {
	if p.config.Validation.Enabled {
		p.validator.MarkBroken(ctx, doc)
	}
}

// RenderReport writes the report to the requested outputs and prints
// the terminal summary
func (p *Pipeline) RenderReport(report *model.AnalysisReport, jsonPath, mdPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}

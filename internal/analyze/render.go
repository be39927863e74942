package analyze

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// Renderer writes analysis reports as JSON files, Markdown files, and
// terminal summaries.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.AnalysisReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as a Markdown document
func (r *Renderer) RenderMarkdown(report *model.AnalysisReport, path string) error {
	if err := os.WriteFile(path, []byte(r.Markdown(report)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Markdown builds the full Markdown body
func (r *Renderer) Markdown(report *model.AnalysisReport) string {
	var sb strings.Builder

	title := report.Extracted.Title
	if title == "" {
		title = "Untitled content"
	}
	fmt.Fprintf(&sb, "# Content Grade: %s\n\n", title)
	if report.Extracted.URL != "" {
		fmt.Fprintf(&sb, "Source: %s\n\n", report.Extracted.URL)
	}
	fmt.Fprintf(&sb, "%s\n\n", report.Summary)

	fmt.Fprintf(&sb, "## Score: %.1f/100\n\n", report.Score.Overall)
	fmt.Fprintf(&sb, "| Dimension | Score | Signals found |\n")
	fmt.Fprintf(&sb, "|-----------|-------|---------------|\n")
	for _, dim := range model.Dimensions() {
		ds := report.Score.ByDimension(dim)
		if ds == nil {
			continue
		}
		found := 0
		for _, sig := range ds.Signals {
			if sig.Found {
				found++
			}
		}
		fmt.Fprintf(&sb, "| %s | %.1f/25 | %d of %d |\n", dim.Label(), ds.Score, found, len(ds.Signals))
	}
	fmt.Fprintf(&sb, "\nPreset: %s · YMYL risk: %s\n\n", report.Score.PresetUsed, report.Score.YMYLRisk)

	if len(report.Score.ComplianceFlags) > 0 {
		fmt.Fprintf(&sb, "## Compliance Flags\n\n")
		for _, flag := range report.Score.ComplianceFlags {
			fmt.Fprintf(&sb, "- **%s** (%s): %q — %s\n", flag.Rule, flag.Severity, flag.Text, flag.Explanation)
		}
		sb.WriteString("\n")
	}

	audit := report.CitationAudit
	if audit.TotalClaims > 0 {
		fmt.Fprintf(&sb, "## Claims Audit\n\n")
		fmt.Fprintf(&sb, "%d claims: %d supported, %d weakly supported, %d unsupported, %d need qualification.\n\n",
			audit.TotalClaims, audit.Supported, audit.WeaklySupported,
			audit.Unsupported, audit.NeedsQualification)
		for _, claim := range audit.Claims {
			fmt.Fprintf(&sb, "- [%s] (%s) %q", claim.Grade, claim.Type, claim.Text)
			if claim.NearestCitation != "" {
				fmt.Fprintf(&sb, " → %s", claim.NearestCitation)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(report.Recommendations) > 0 {
		fmt.Fprintf(&sb, "## Recommendations\n\n")
		for i, rec := range report.Recommendations {
			fmt.Fprintf(&sb, "### %d. %s\n\n", i+1, rec.Title)
			fmt.Fprintf(&sb, "Impact: %s · Effort: %s · Scope: %s", rec.Impact, rec.Effort, rec.Scope)
			if rec.PointsPotential > 0 {
				fmt.Fprintf(&sb, " · Up to %.1f points", rec.PointsPotential)
			}
			sb.WriteString("\n\n")
			fmt.Fprintf(&sb, "%s\n\n", rec.WhyItMatters)
			if rec.Where != "" {
				fmt.Fprintf(&sb, "Where: %s\n\n", rec.Where)
			}
			if rec.CopyBlock != "" {
				fmt.Fprintf(&sb, "```\n%s\n```\n\n", rec.CopyBlock)
			}
		}
	}

	if r.includeFooter {
		sb.WriteString("---\n\nGenerated by eeatgrade\n")
	}
	return sb.String()
}

// RenderSummary prints the short terminal summary to stdout
func (r *Renderer) RenderSummary(report *model.AnalysisReport) {
	fmt.Printf("\nOverall: %.1f/100  (preset: %s, YMYL risk: %s)\n",
		report.Score.Overall, report.Score.PresetUsed, report.Score.YMYLRisk)
	for _, dim := range model.Dimensions() {
		if ds := report.Score.ByDimension(dim); ds != nil {
			fmt.Printf("  %-18s %5.1f/25\n", dim.Label()+":", ds.Score)
		}
	}
	if n := len(report.Score.ComplianceFlags); n > 0 {
		fmt.Printf("  Compliance flags:  %d\n", n)
	}
	if report.CitationAudit.TotalClaims > 0 {
		fmt.Printf("  Claims:            %d audited, %d unsupported\n",
			report.CitationAudit.TotalClaims, report.CitationAudit.Unsupported)
	}
	if n := len(report.Recommendations); n > 0 {
		fmt.Printf("  Recommendations:   %d (top: %s)\n", n, report.Recommendations[0].Title)
	}
	fmt.Println()
}

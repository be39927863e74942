package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/eeatgrade/eeatgrade/internal/analyze"
	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	htmlFile      string
	textFile      string
	sourceURL     string
	outJSON       string
	outMD         string
	presetName    string
	authorName    string
	siteName      string
	timeout       time.Duration
	userAgent     string
	maxBytes      int64
	noCache       bool
	noRobots      bool
	noFooter      bool
	insecureTLS   bool
	httpProxy     string
	httpsProxy    string
	noProxy       string
	validateLinks bool
	llmEnabled    bool
	llmProvider   string
	llmModel      string
)

// gradeCmd represents the grade command
var gradeCmd = &cobra.Command{
	Use:   "grade [url]",
	Short: "Grade a page or document and generate an E-E-A-T report",
	Long: `Grade analyzes a single page or document to:
- Extract title, author, sections, and outbound links
- Detect concrete E-E-A-T quality signals
- Audit factual claims against their citations
- Scan for compliance problems (guarantees, fake urgency, undisclosed affiliate content)
- Score each dimension 0-25 and the page 0-100
- Generate prioritized, copy-ready recommendations

Input is a URL argument, an HTML file (--html), or a plain-text file
(--text). Pass "-" as the file to read from stdin.

Example:
  eeatgrade grade https://example.com/personal-injury-guide
  eeatgrade grade https://example.com --json report.json --md report.md
  eeatgrade grade --html page.html --preset legal_guide
  eeatgrade grade --text - --author "Jane Roe" < draft.txt
  eeatgrade grade https://example.com --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGrade,
}

func init() {
	rootCmd.AddCommand(gradeCmd)

	// Input flags
	gradeCmd.Flags().StringVar(&htmlFile, "html", "", "grade a local HTML file instead of a URL (\"-\" for stdin)")
	gradeCmd.Flags().StringVar(&textFile, "text", "", "grade a plain-text file instead of a URL (\"-\" for stdin)")
	gradeCmd.Flags().StringVar(&sourceURL, "source-url", "", "original URL of a local HTML file (for domain signals)")

	// Output flags
	gradeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	gradeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Analysis flags
	gradeCmd.Flags().StringVar(&presetName, "preset", "", "force a content-type preset (default: auto-detect)")
	gradeCmd.Flags().StringVar(&authorName, "author", "", "author name when the page does not state one")
	gradeCmd.Flags().StringVar(&siteName, "site", "", "site name when the page does not state one")
	gradeCmd.Flags().BoolVar(&validateLinks, "validate-links", false, "probe outbound links so dead citations downgrade claim grades")

	// HTTP flags
	gradeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall grade timeout")
	gradeCmd.Flags().StringVar(&userAgent, "ua", "eeatgrade/1.0 (+https://github.com/eeatgrade/eeatgrade)", "HTTP User-Agent")
	gradeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	gradeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	gradeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	gradeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	gradeCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	gradeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	gradeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	gradeCmd.Flags().StringVar(&noProxy, "no-proxy", "", "comma-separated hosts to connect to directly (overrides NO_PROXY env var)")

	// LLM flags
	gradeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM soft-signal rating")
	gradeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	gradeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runGrade(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && htmlFile == "" && textFile == "" {
		return fmt.Errorf("provide a URL argument, --html, or --text")
	}
	if len(args) > 0 && (htmlFile != "" || textFile != "") {
		return fmt.Errorf("URL argument and --html/--text are mutually exclusive")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := gradeConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	opts := analyze.Options{
		PresetName: presetName,
		AuthorName: authorName,
		SiteName:   siteName,
	}
	if presetName != "" && !p.Registry().Known(presetName) {
		return fmt.Errorf("unknown preset %q (run 'eeatgrade presets' to list them)", presetName)
	}

	var report *model.AnalysisReport
	switch {
	case htmlFile != "":
		content, err := readInput(htmlFile)
		if err != nil {
			return err
		}
		report, err = p.GradeHTML(ctx, string(content), sourceURL, opts)
		if err != nil {
			return fmt.Errorf("grade failed: %w", err)
		}
	case textFile != "":
		content, err := readInput(textFile)
		if err != nil {
			return err
		}
		report, err = p.GradeText(ctx, string(content), opts)
		if err != nil {
			return fmt.Errorf("grade failed: %w", err)
		}
	default:
		url := args[0]
		if verbose {
			fmt.Fprintf(os.Stderr, "Grading: %s\n", url)
			fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
			fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
			fmt.Fprintln(os.Stderr)
		}
		report, err = p.GradeURLWithOptions(ctx, url, opts)
		if err != nil {
			return fmt.Errorf("grade failed: %w", err)
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Preset: %s\n", report.Score.PresetUsed)
		fmt.Fprintf(os.Stderr, "✓ Overall score: %.1f/100\n", report.Score.Overall)
		fmt.Fprintf(os.Stderr, "✓ %d recommendations\n", len(report.Recommendations))
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// gradeConfig builds the process configuration from the grade flags
func gradeConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.HTTP.NoProxy = noProxy
	cfg.Cache.Enabled = !noCache
	cfg.Fetch.RespectRobots = !noRobots
	cfg.Validation.Enabled = validateLinks
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if err := applyRaterFlags(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyRaterFlags wires the LLM flags and API keys into the config
func applyRaterFlags(cfg *model.Config) error {
	if !llmEnabled {
		return nil
	}

	cfg.Rater.Provider = llmProvider
	cfg.Rater.Model = llmModel

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.Rater.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Rater.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.Rater.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.Rater.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		baseURL := os.Getenv("OLLAMA_BASE_URL")
		if baseURL != "" {
			cfg.Rater.BaseURL = baseURL
		}
	}

	return nil
}

// readInput reads a file, or stdin when the path is "-"
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return data, nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/pipeline"
	"github.com/eeatgrade/eeatgrade/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Long: `Serve starts an HTTP server exposing the grading pipeline:

  POST /api/analyze   grade a URL, HTML document, or plain text
  GET  /api/presets   list the built-in content-type presets
  GET  /api/health    liveness check

Example:
  eeatgrade serve
  eeatgrade serve --addr :9000
  eeatgrade serve --llm openai`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	serveCmd.Flags().BoolVar(&validateLinks, "validate-links", false, "probe outbound links so dead citations downgrade claim grades")

	// LLM flags
	serveCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM soft-signal rating")
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Validation.Enabled = validateLinks
	cfg.Output.Verbose = verbose
	if err := applyRaterFlags(cfg); err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	fmt.Fprintf(os.Stderr, "eeatgrade v%s listening on %s\n", version, serveAddr)
	if llmEnabled {
		fmt.Fprintf(os.Stderr, "LLM rater: %s/%s\n", llmProvider, llmModel)
	}

	srv := server.New(p, version)
	return srv.ListenAndServe(serveAddr)
}

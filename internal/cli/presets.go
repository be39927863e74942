package cli

import (
	"fmt"
	"strings"

	"github.com/eeatgrade/eeatgrade/internal/model"
	"github.com/eeatgrade/eeatgrade/internal/preset"
	"github.com/spf13/cobra"
)

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in content-type presets",
	Long: `List every built-in content-type preset with its dimension weights.

A preset decides how the four E-E-A-T dimensions are weighted and which
compliance rules apply. Pass one to 'grade --preset'; without it the
content type is auto-detected from the page.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	registry, err := preset.Load()
	if err != nil {
		return fmt.Errorf("load presets: %w", err)
	}

	fmt.Printf("%-22s %-28s %5s %5s %5s %5s\n", "NAME", "LABEL", "EXP", "EXPT", "AUTH", "TRUST")
	for _, p := range registry.All() {
		fmt.Printf("%-22s %-28s %5.0f %5.0f %5.0f %5.0f\n",
			p.Name, p.Label,
			p.Weights[model.DimensionExperience],
			p.Weights[model.DimensionExpertise],
			p.Weights[model.DimensionAuthoritativeness],
			p.Weights[model.DimensionTrust])
		if verbose && len(p.RequiredSignals) > 0 {
			fmt.Printf("%-22s   required: %s\n", "", strings.Join(p.RequiredSignals, ", "))
		}
	}

	return nil
}

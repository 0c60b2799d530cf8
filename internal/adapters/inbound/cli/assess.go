package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/tui"
	"github.com/tamylaa/clodo-framework-sub007/internal/domain/capability"
)

func newAssessCmd() *cobra.Command {
	var (
		jsonOutput      bool
		minCompleteness int
	)

	cmd := &cobra.Command{
		Use:   "assess [path]",
		Short: "Score a project's capability completeness and maturity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			model := newDiscoveryService().Discover(absPath)
			assessment := capability.Assess(model)

			if jsonOutput {
				data, err := json.MarshalIndent(assessment, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling assessment: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAssessment(model, assessment))
			}

			if minCompleteness > 0 && assessment.Completeness < minCompleteness {
				return fmt.Errorf("completeness %d is below required minimum %d", assessment.Completeness, minCompleteness)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the assessment as JSON")
	cmd.Flags().IntVar(&minCompleteness, "min-completeness", 0, "Fail when completeness is below this value (CI gate)")
	return cmd
}

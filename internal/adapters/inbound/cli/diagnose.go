package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/tui"
)

func newDiagnoseCmd() *cobra.Command {
	var (
		jsonOutput bool
		deep       bool
	)

	cmd := &cobra.Command{
		Use:   "diagnose [path]",
		Short: "Diagnose a project: errors, warnings, and recommendations",
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

			diagnosis := newValidateService().Diagnose(absPath, deep)

			if jsonOutput {
				data, err := json.MarshalIndent(diagnosis, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling diagnosis: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDiagnosis(diagnosis))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the diagnosis as JSON")
	cmd.Flags().BoolVar(&deep, "deep", false, "Append best-practice recommendations (never new errors)")
	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/tui"
	"github.com/tamylaa/clodo-framework-sub007/internal/domain/capability"
)

func newDiscoverCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "discover [path]",
		Short: "Discover what capabilities a project already has",
		Long:  "Inspect a project's deployment descriptor, dependencies, layout, and credential permissions to infer its capability model. Discovery is advisory and never fails.",
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

			if jsonOutput {
				data, err := json.MarshalIndent(model, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling model: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderAssessment(model, capability.Assess(model)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the capability model as JSON")
	return cmd
}

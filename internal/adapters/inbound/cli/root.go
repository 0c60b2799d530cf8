package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "clodo",
		Short:         "Scaffold and assess edge services",
		Long:          "Clodo derives a full service configuration from a handful of facts, generates a consistent project, and can reverse-engineer what an existing project already has.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newDiscoverCmd())
	cmd.AddCommand(newAssessCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newDiagnoseCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

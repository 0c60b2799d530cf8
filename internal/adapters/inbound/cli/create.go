package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/fsio"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/generators"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/gitinfo"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/manifeststore"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/prompt"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/tui"
	"github.com/tamylaa/clodo-framework-sub007/internal/application"
	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

func newCreateCmd() *cobra.Command {
	var (
		serviceName string
		serviceType string
		domainName  string
		credential  string
		accountID   string
		zoneID      string
		environment string
		output      string
		overwrite   bool
		interactive bool
		overrides   []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Generate a new service project",
		Long:  "Collect the 7 core facts, derive the full configuration, confirm or override each value, and generate a complete project with a service manifest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				in     domain.CoreInputs
				values map[string]domain.DerivedValue
				mods   []domain.Modification
			)

			if interactive {
				session := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
				intake := application.NewIntakeService(session)
				defer intake.Close()

				collected, err := intake.Collect()
				if err != nil {
					return reportClassified(cmd, err, "create")
				}
				in = collected
				values = domain.Derive(in)

				var rejections []string
				mods, rejections, err = intake.Confirm(values)
				if err != nil {
					return reportClassified(cmd, err, "create")
				}
				for _, r := range rejections {
					fmt.Fprintf(cmd.ErrOrStderr(), "rejected override: %s\n", r)
				}
			} else {
				in = domain.CoreInputs{
					ServiceName:   serviceName,
					ServiceType:   domain.ServiceType(serviceType),
					DomainName:    domainName,
					APICredential: credential,
					AccountID:     accountID,
					ZoneID:        zoneID,
					Environment:   domain.Environment(environment),
				}
				if err := in.Validate(); err != nil {
					return reportClassified(cmd, err, "create")
				}
				values = domain.Derive(in)

				for _, kv := range overrides {
					id, val, ok := strings.Cut(kv, "=")
					if !ok {
						return fmt.Errorf("malformed --set %q (want id=value)", kv)
					}
					mod, err := domain.ApplyOverride(values, id, val)
					if err != nil {
						return reportClassified(cmd, err, "create")
					}
					mods = append(mods, mod)
				}
			}

			targetRoot := output
			if targetRoot == "" {
				targetRoot = in.ServiceName
			}
			absRoot, err := filepath.Abs(targetRoot)
			if err != nil {
				return fmt.Errorf("resolving target path: %w", err)
			}

			registry, err := generators.Registry()
			if err != nil {
				return err
			}
			svc := application.NewScaffoldService(
				registry,
				fsio.New(),
				manifeststore.New(),
				gitinfo.New(),
				nil,
				version,
			)

			manifest, err := svc.Generate(in, values, mods, absRoot, overwrite)
			if err != nil {
				return reportClassified(cmd, err, "create")
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderManifest(manifest))
			return nil
		},
	}

	cmd.Flags().StringVar(&serviceName, "name", "", "Service name (3-50 char slug)")
	cmd.Flags().StringVar(&serviceType, "type", "generic", "Service type (data-service, auth-service, content-service, api-gateway, generic)")
	cmd.Flags().StringVar(&domainName, "domain", "", "Domain name the service lives under")
	cmd.Flags().StringVar(&credential, "credential", "", "Platform API credential (never echoed or stored in full)")
	cmd.Flags().StringVar(&accountID, "account-id", "", "Platform account ID (32 hex chars)")
	cmd.Flags().StringVar(&zoneID, "zone-id", "", "Platform zone ID (32 hex chars)")
	cmd.Flags().StringVar(&environment, "env", "development", "Target environment (development, staging, production)")
	cmd.Flags().StringVar(&output, "output", "", "Target directory (defaults to the service name)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite files that already exist")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Collect inputs and confirm derived values interactively")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "Override a derived value (id=value, repeatable)")

	return cmd
}

// reportClassified prints the classifier's suggestions to stderr and
// returns the original error for the exit code.
func reportClassified(cmd *cobra.Command, err error, operation string) error {
	classified := domain.Classify(err, domain.ErrorContext{Operation: operation})
	var inputErr *domain.InputError
	if errors.As(err, &inputErr) {
		for _, f := range inputErr.Fields {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", f.Error())
		}
	}
	for _, hint := range classified.Suggestions {
		fmt.Fprintf(cmd.ErrOrStderr(), "  hint: %s\n", hint)
	}
	return err
}

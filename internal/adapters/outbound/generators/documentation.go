package generators

import (
	"fmt"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// Readme emits the project README.
type Readme struct{}

func (g *Readme) Name() string { return "readme" }
func (g *Readme) Category() domain.GeneratorCategory { return domain.CategoryDocumentation }
func (g *Readme) Requires() []string {
	return []string{"wrangler-config", "package-manifest"}
}

func (g *Readme) Generate(ctx *domain.GenContext) error {
	content := fmt.Sprintf(`# %s

A %s for %s, scaffolded with clodo.

## Endpoints

| Environment | URL |
|-------------|-----|
| production  | %s |
| staging     | %s |
| development | %s |

Health check: `+"`%s`"+`, API base: `+"`%s`"+`

## Develop

    npm install
    npm run dev

## Deploy

Deployments run from the `+"`%s`"+` branch via the bundled workflow,
or manually with `+"`npm run deploy`"+`.
`,
		ctx.Value("display-name"),
		ctx.Inputs.ServiceType,
		ctx.Inputs.DomainName,
		ctx.Value("production-url"),
		ctx.Value("staging-url"),
		ctx.Value("development-url"),
		ctx.Value("health-endpoint"),
		ctx.Value("api-base-path"),
		ctx.Value("deploy-branch"),
	)
	return ctx.Out.Emit("README.md", content)
}

package generators

import (
	"fmt"
	"strings"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// EnvFiles emits the environment variable templates. Real secrets
// never appear here; placeholders mark what the operator must supply.
type EnvFiles struct{}

func (g *EnvFiles) Name() string { return "env-files" }
func (g *EnvFiles) Category() domain.GeneratorCategory { return domain.CategoryEnvironment }
func (g *EnvFiles) Requires() []string { return []string{"wrangler-config"} }

func (g *EnvFiles) Generate(ctx *domain.GenContext) error {
	var example strings.Builder
	fmt.Fprintf(&example, "SERVICE_NAME=%s\n", ctx.Inputs.ServiceName)
	fmt.Fprintf(&example, "ENVIRONMENT=%s\n", ctx.Inputs.Environment)
	fmt.Fprintf(&example, "DOMAIN=%s\n", ctx.Inputs.DomainName)
	fmt.Fprintf(&example, "LOG_LEVEL=%s\n", ctx.Value("log-level"))
	fmt.Fprintf(&example, "API_BASE_PATH=%s\n", ctx.Value("api-base-path"))
	fmt.Fprintf(&example, "CORS_ORIGINS=%s\n", ctx.Value("cors-origins"))
	example.WriteString("API_TOKEN=changeme\n")
	if ctx.Inputs.ServiceType == domain.ServiceTypeAuth {
		example.WriteString("AUTH_SIGNING_KEY=changeme\n")
	}
	if err := ctx.Out.Emit(".env.example", example.String()); err != nil {
		return err
	}

	devVars := fmt.Sprintf("LOG_LEVEL=debug\nENVIRONMENT=development\nAPI_BASE_PATH=%s\n",
		ctx.Value("api-base-path"))
	return ctx.Out.Emit(".dev.vars", devVars)
}

package generators

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// WranglerConfig emits the deployment descriptor. The bindings follow
// the service type so the scaffold is re-discoverable as what it
// claims to be.
type WranglerConfig struct{}

func (g *WranglerConfig) Name() string { return "wrangler-config" }
func (g *WranglerConfig) Category() domain.GeneratorCategory { return domain.CategoryCore }
func (g *WranglerConfig) Requires() []string { return nil }

func (g *WranglerConfig) Generate(ctx *domain.GenContext) error {
	var b strings.Builder

	fmt.Fprintf(&b, "name = %q\n", ctx.Value("worker-name"))
	b.WriteString("main = \"src/index.js\"\n")
	fmt.Fprintf(&b, "compatibility_date = %q\n", compatibilityDate)
	fmt.Fprintf(&b, "account_id = %q\n", ctx.Inputs.AccountID)
	fmt.Fprintf(&b, "routes = [%q]\n", ctx.Value("route-pattern"))

	b.WriteString("\n[vars]\n")
	fmt.Fprintf(&b, "ENVIRONMENT = %q\n", ctx.Inputs.Environment)
	fmt.Fprintf(&b, "LOG_LEVEL = %q\n", ctx.Value("log-level"))
	fmt.Fprintf(&b, "API_BASE_PATH = %q\n", ctx.Value("api-base-path"))
	fmt.Fprintf(&b, "CORS_ORIGINS = %q\n", ctx.Value("cors-origins"))
	if ctx.Inputs.ServiceType == domain.ServiceTypeAuth {
		fmt.Fprintf(&b, "AUTH_ISSUER = %q\n", ctx.Value("production-url"))
		b.WriteString("AUTH_TOKEN_TTL = \"3600\"\n")
	}

	switch ctx.Inputs.ServiceType {
	case domain.ServiceTypeData:
		b.WriteString("\n[[d1_databases]]\n")
		b.WriteString("binding = \"DB\"\n")
		fmt.Fprintf(&b, "database_name = %q\n", ctx.Value("database-name"))
		b.WriteString("database_id = \"placeholder-set-by-deploy\"\n")
		b.WriteString("\n[[kv_namespaces]]\n")
		fmt.Fprintf(&b, "binding = %q\n", ctx.Value("kv-namespace"))
		b.WriteString("id = \"placeholder-set-by-deploy\"\n")
	case domain.ServiceTypeAuth:
		b.WriteString("\n[[kv_namespaces]]\n")
		fmt.Fprintf(&b, "binding = %q\n", ctx.Value("kv-namespace"))
		b.WriteString("id = \"placeholder-set-by-deploy\"\n")
	case domain.ServiceTypeContent:
		b.WriteString("\n[[r2_buckets]]\n")
		b.WriteString("binding = \"ASSETS\"\n")
		fmt.Fprintf(&b, "bucket_name = %q\n", ctx.Value("storage-bucket"))
	case domain.ServiceTypeGateway:
		b.WriteString("\n[[queues.producers]]\n")
		b.WriteString("binding = \"UPSTREAM\"\n")
		fmt.Fprintf(&b, "queue = \"%s-requests\"\n", ctx.Inputs.ServiceName)
	}

	return ctx.Out.Emit("wrangler.toml", b.String())
}

// PackageManifest emits package.json with the runtime stack implied
// by the service type.
type PackageManifest struct{}

func (g *PackageManifest) Name() string { return "package-manifest" }
func (g *PackageManifest) Category() domain.GeneratorCategory { return domain.CategoryCore }
func (g *PackageManifest) Requires() []string { return nil }

type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func (g *PackageManifest) Generate(ctx *domain.GenContext) error {
	deps := map[string]string{"hono": "^4.6.0"}
	if ctx.Inputs.ServiceType == domain.ServiceTypeAuth {
		deps["jose"] = "^5.9.0"
	}

	pkg := packageJSON{
		Name:    ctx.Value("package-name"),
		Version: "0.1.0",
		Private: true,
		Scripts: map[string]string{
			"dev":    "wrangler dev",
			"deploy": "wrangler deploy",
			"test":   "vitest run",
		},
		Dependencies: deps,
		DevDependencies: map[string]string{
			"wrangler": "^3.80.0",
			"vitest":   "^2.1.0",
		},
	}

	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling package.json: %w", err)
	}
	return ctx.Out.Emit("package.json", string(data)+"\n")
}

// ProjectMeta emits repository housekeeping files.
type ProjectMeta struct{}

func (g *ProjectMeta) Name() string { return "project-meta" }
func (g *ProjectMeta) Category() domain.GeneratorCategory { return domain.CategoryCore }
func (g *ProjectMeta) Requires() []string { return nil }

func (g *ProjectMeta) Generate(ctx *domain.GenContext) error {
	gitignore := strings.Join([]string{
		"node_modules/",
		".wrangler/",
		".dev.vars",
		".env",
		".env.*",
		"!.env.example",
		"dist/",
		"",
	}, "\n")
	return ctx.Out.Emit(".gitignore", gitignore)
}

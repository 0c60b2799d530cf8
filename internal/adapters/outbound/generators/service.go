package generators

import (
	"fmt"
	"strings"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// DomainConfig emits the per-environment endpoint configuration the
// runtime code reads.
type DomainConfig struct{}

func (g *DomainConfig) Name() string { return "domain-config" }
func (g *DomainConfig) Category() domain.GeneratorCategory { return domain.CategoryService }
func (g *DomainConfig) Requires() []string { return []string{"wrangler-config"} }

func (g *DomainConfig) Generate(ctx *domain.GenContext) error {
	content := fmt.Sprintf(`// Environment endpoints for %s. Generated; edit via regeneration.
export const domains = {
  production: %q,
  staging: %q,
  development: %q,
};

export const activeEnvironment = %q;

export const corsOrigins = %q.split(',');
`,
		ctx.Value("display-name"),
		ctx.Value("production-url"),
		ctx.Value("staging-url"),
		ctx.Value("development-url"),
		ctx.Inputs.Environment,
		ctx.Value("cors-origins"),
	)
	return ctx.Out.Emit("src/config/domains.js", content)
}

// WorkerEntry emits the runtime entry point: a hono app with the
// health route and the type-specific handler mounted.
type WorkerEntry struct{}

func (g *WorkerEntry) Name() string { return "worker-entry" }
func (g *WorkerEntry) Category() domain.GeneratorCategory { return domain.CategoryService }
func (g *WorkerEntry) Requires() []string { return []string{"domain-config"} }

func (g *WorkerEntry) Generate(ctx *domain.GenContext) error {
	stem := handlerStem(ctx.Inputs.ServiceType)
	content := fmt.Sprintf(`import { Hono } from 'hono';
import { handler } from './handlers/%s.js';
import { activeEnvironment } from './config/domains.js';

const app = new Hono();

app.get(%q, (c) =>
  c.json({ status: 'ok', service: %q, environment: activeEnvironment })
);

app.route(%q, handler);

export default app;
`, stem, ctx.Value("health-endpoint"), ctx.Inputs.ServiceName, ctx.Value("api-base-path"))
	return ctx.Out.Emit("src/index.js", content)
}

// ServiceLogic emits the type-specific request handler skeleton.
type ServiceLogic struct{}

func (g *ServiceLogic) Name() string { return "service-logic" }
func (g *ServiceLogic) Category() domain.GeneratorCategory { return domain.CategoryService }
func (g *ServiceLogic) Requires() []string { return []string{"worker-entry"} }

func (g *ServiceLogic) Generate(ctx *domain.GenContext) error {
	stem := handlerStem(ctx.Inputs.ServiceType)

	var routes strings.Builder
	switch ctx.Inputs.ServiceType {
	case domain.ServiceTypeData:
		routes.WriteString(`handler.get('/records', async (c) => {
  const rows = await c.env.DB.prepare('SELECT 1 AS ok').all();
  return c.json(rows);
});
`)
	case domain.ServiceTypeAuth:
		routes.WriteString(`handler.post('/token', async (c) => {
  // TODO: issue a signed token with jose once key material is provisioned.
  return c.json({ error: 'not implemented' }, 501);
});
`)
	case domain.ServiceTypeContent:
		routes.WriteString(`handler.get('/assets/:key', async (c) => {
  const object = await c.env.ASSETS.get(c.req.param('key'));
  if (!object) return c.notFound();
  return new Response(object.body);
});
`)
	case domain.ServiceTypeGateway:
		routes.WriteString(`handler.all('/*', async (c) => {
  await c.env.UPSTREAM.send({ path: c.req.path, at: Date.now() });
  return c.json({ forwarded: true });
});
`)
	default:
		routes.WriteString(`handler.get('/', (c) => c.json({ service: 'ready' }));
`)
	}

	content := fmt.Sprintf(`import { Hono } from 'hono';

export const handler = new Hono();

%s`, routes.String())
	return ctx.Out.Emit(fmt.Sprintf("src/handlers/%s.js", stem), content)
}

package generators

import (
	"fmt"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// TestScaffold emits a vitest suite exercising the health route.
type TestScaffold struct{}

func (g *TestScaffold) Name() string { return "test-scaffold" }
func (g *TestScaffold) Category() domain.GeneratorCategory { return domain.CategoryTesting }
func (g *TestScaffold) Requires() []string { return []string{"worker-entry"} }

func (g *TestScaffold) Generate(ctx *domain.GenContext) error {
	content := fmt.Sprintf(`import { describe, it, expect } from 'vitest';
import app from '../src/index.js';

describe(%q, () => {
  it('answers the health check', async () => {
    const res = await app.request(%q);
    expect(res.status).toBe(200);
    const body = await res.json();
    expect(body.service).toBe(%q);
  });
});
`, ctx.Value("display-name"), ctx.Value("health-endpoint"), ctx.Inputs.ServiceName)
	return ctx.Out.Emit("test/index.test.js", content)
}

package generators

import (
	"fmt"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// CIPipeline emits the deploy workflow for the derived branch.
type CIPipeline struct{}

func (g *CIPipeline) Name() string { return "ci-pipeline" }
func (g *CIPipeline) Category() domain.GeneratorCategory { return domain.CategoryAutomation }
func (g *CIPipeline) Requires() []string { return []string{"package-manifest"} }

func (g *CIPipeline) Generate(ctx *domain.GenContext) error {
	content := fmt.Sprintf(`name: deploy

on:
  push:
    branches: [%s]

jobs:
  deploy:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-node@v4
        with:
          node-version: 20
      - run: npm ci
      - run: npm test
      - run: npx wrangler deploy
        env:
          CLOUDFLARE_API_TOKEN: ${{ secrets.CLOUDFLARE_API_TOKEN }}
          CLOUDFLARE_ACCOUNT_ID: %s
`, ctx.Value("deploy-branch"), ctx.Inputs.AccountID)
	return ctx.Out.Emit(".github/workflows/deploy.yml", content)
}

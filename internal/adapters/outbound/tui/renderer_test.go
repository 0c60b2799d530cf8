package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/tui"
	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
	"github.com/tamylaa/clodo-framework-sub007/internal/domain/capability"
)

func sampleModel() capability.Model {
	m := capability.NewModel()
	m[capability.Deployment] = capability.State{Configured: true, Provider: "cloudflare", Quantity: 1}
	m[capability.Storage] = capability.State{Configured: true, Provider: "kv", Quantity: 2}
	m[capability.Database] = capability.State{Possible: true}
	return m
}

func TestRenderAssessment_ContainsScoreAndMaturity(t *testing.T) {
	model := sampleModel()
	output := tui.RenderAssessment(model, capability.Assess(model))

	assert.Contains(t, output, "50 / 100")
	assert.Contains(t, output, "developing")
	assert.Contains(t, output, "missing required: framework")
}

func TestRenderAssessment_ContainsAllSlots(t *testing.T) {
	model := sampleModel()
	output := tui.RenderAssessment(model, capability.Assess(model))

	for _, slot := range capability.Slots {
		assert.Contains(t, output, string(slot))
	}
	assert.Contains(t, output, "cloudflare")
	assert.Contains(t, output, "kv ×2")
}

func TestRenderAssessment_ContainsRecommendations(t *testing.T) {
	model := sampleModel()
	a := capability.Assess(model)
	output := tui.RenderAssessment(model, a)

	for _, rec := range a.Recommendations {
		assert.Contains(t, output, rec.Message)
	}
}

func TestRenderManifest_ListsFilesByCategory(t *testing.T) {
	m := &domain.ServiceManifest{
		Service: domain.ManifestService{Name: "billing-api"},
		Files: map[string][]string{
			"core":    {"wrangler.toml", "package.json"},
			"service": {"src/index.js"},
		},
		Checksum: "abcdef0123456789",
	}

	output := tui.RenderManifest(m)
	assert.Contains(t, output, "billing-api")
	assert.Contains(t, output, "wrangler.toml")
	assert.Contains(t, output, "src/index.js")
	assert.Contains(t, output, "abcdef012345", "checksum is shortened, not omitted")
}

func TestRenderManifest_ShowsSkipsAndOverrides(t *testing.T) {
	m := &domain.ServiceManifest{
		Service:      domain.ManifestService{Name: "billing-api"},
		SkippedFiles: []string{"README.md"},
		Modifications: []domain.Modification{
			{Field: "api-base-path", Assumed: "/api/v1", Chosen: "/api/v2"},
		},
	}

	output := tui.RenderManifest(m)
	assert.Contains(t, output, "README.md")
	assert.Contains(t, output, "--overwrite")
	assert.Contains(t, output, "api-base-path")
	assert.Contains(t, output, "/api/v2")
}

func TestRenderValidation_Valid(t *testing.T) {
	output := tui.RenderValidation(&domain.ValidationReport{Valid: true})
	assert.Contains(t, output, "valid")
}

func TestRenderValidation_Issues(t *testing.T) {
	output := tui.RenderValidation(&domain.ValidationReport{
		Valid:  false,
		Issues: []string{"required file package.json is missing"},
	})
	assert.Contains(t, output, "1 issue")
	assert.Contains(t, output, "package.json")
}

func TestRenderDiagnosis_Sections(t *testing.T) {
	output := tui.RenderDiagnosis(&domain.Diagnosis{
		Errors:          []string{"broken descriptor"},
		Warnings:        []string{"uncommitted changes"},
		Recommendations: []string{"[setup] Add a wrangler.toml deployment descriptor"},
	})

	assert.Contains(t, output, "Errors")
	assert.Contains(t, output, "broken descriptor")
	assert.Contains(t, output, "Warnings")
	assert.Contains(t, output, "uncommitted changes")
	assert.Contains(t, output, "Recommendations")
}

func TestRenderDiagnosis_NothingToReport(t *testing.T) {
	output := tui.RenderDiagnosis(&domain.Diagnosis{})
	assert.Contains(t, output, "nothing to report")
}

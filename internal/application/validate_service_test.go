package application_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/descriptor"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/envfile"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/fsio"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/manifeststore"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/npm"
	"github.com/tamylaa/clodo-framework-sub007/internal/application"
)

func newValidator() *application.ValidateService {
	return application.NewValidateService(
		fsio.New(),
		npm.New(),
		descriptor.New(),
		manifeststore.New(),
		newDiscovery(),
		envfile.New(),
		nil,
	)
}

func containsMatch(items []string, substrs ...string) bool {
	for _, item := range items {
		ok := true
		for _, sub := range substrs {
			if !strings.Contains(item, sub) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func TestValidate_GeneratedProjectIsValid(t *testing.T) {
	dir := t.TempDir()
	generateProject(t, validInputs(), dir)

	report := newValidator().Validate(dir)
	assert.True(t, report.Valid, "issues: %v", report.Issues)
	assert.Empty(t, report.Issues)
}

func TestValidate_DeletedDependencyManifestIsExactlyOneIssue(t *testing.T) {
	dir := t.TempDir()
	generateProject(t, validInputs(), dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "package.json")))

	report := newValidator().Validate(dir)

	assert.False(t, report.Valid)
	require.Len(t, report.Issues, 1, "one missing file is one issue, not a cascade")
	assert.Contains(t, report.Issues[0], "package.json")
}

func TestValidate_EmptyDirectoryReportsAllRequiredFiles(t *testing.T) {
	report := newValidator().Validate(t.TempDir())

	assert.False(t, report.Valid)
	require.Len(t, report.Issues, 3)
	assert.True(t, containsMatch(report.Issues, "package.json"))
	assert.True(t, containsMatch(report.Issues, "wrangler.toml"))
	assert.True(t, containsMatch(report.Issues, "src/index.js"))
}

func TestValidate_MalformedDependencyManifest(t *testing.T) {
	dir := t.TempDir()
	generateProject(t, validInputs(), dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{oops"), 0644))

	report := newValidator().Validate(dir)
	assert.False(t, report.Valid)
	assert.True(t, containsMatch(report.Issues, "package.json is not parsable"), "issues: %v", report.Issues)
}

func TestValidate_ManifestExpectationMismatch(t *testing.T) {
	dir := t.TempDir()
	generateProject(t, validInputs(), dir)

	// Gut the descriptor: deployment survives but the promised database
	// and storage bindings disappear.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrangler.toml"),
		[]byte("name = \"billing-api\"\nmain = \"src/index.js\"\n"), 0644))

	report := newValidator().Validate(dir)
	assert.False(t, report.Valid)
	assert.Contains(t, report.Issues,
		"configuration mismatch: manifest expects database configured, discovery reports it absent")
	assert.Contains(t, report.Issues,
		"configuration mismatch: manifest expects storage configured, discovery reports it absent")
}

func TestValidate_DriftDetectsDeletedArtifact(t *testing.T) {
	dir := t.TempDir()
	generateProject(t, validInputs(), dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "README.md")))

	report := newValidator().Validate(dir)
	assert.False(t, report.Valid)
	assert.True(t, containsMatch(report.Issues, "drift", "README.md"), "issues: %v", report.Issues)
}

func TestDiagnose_HandBuiltProjectWarnsAboutMissingManifest(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "package.json", `{"name": "svc", "version": "0.1.0"}`)
	write(t, dir, "wrangler.toml", "name = \"svc\"\n")
	write(t, dir, "src/index.js", "export default {}\n")

	d := newValidator().Diagnose(dir, false)

	assert.Empty(t, d.Errors)
	assert.True(t, containsMatch(d.Warnings, "no service manifest found"), "warnings: %v", d.Warnings)
}

func TestDiagnose_GeneratedProjectHasNoWarnings(t *testing.T) {
	dir := t.TempDir()
	generateProject(t, validInputs(), dir)

	d := newValidator().Diagnose(dir, false)
	assert.Empty(t, d.Errors)
	assert.Empty(t, d.Warnings, "a fresh scaffold diagnoses clean: %v", d.Warnings)
}

func TestDiagnose_CommittedSecretWarning(t *testing.T) {
	dir := t.TempDir()
	generateProject(t, validInputs(), dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.example"),
		[]byte("AUTH_SECRET=sk-live-9f8e7d6c5b4a39281706f5e4d3c2b1a0\n"), 0644))

	d := newValidator().Diagnose(dir, false)
	assert.True(t, containsMatch(d.Warnings, "AUTH_SECRET", "placeholder"), "warnings: %v", d.Warnings)
}

func TestDiagnose_DeepAddsRecommendationsNeverErrors(t *testing.T) {
	dir := t.TempDir()
	generateProject(t, validInputs(), dir)

	shallow := newValidator().Diagnose(dir, false)
	deep := newValidator().Diagnose(dir, true)

	assert.Equal(t, shallow.Errors, deep.Errors, "deep scan never adds hard errors")
	assert.NotEmpty(t, deep.Recommendations)
	assert.Empty(t, shallow.Recommendations)
}

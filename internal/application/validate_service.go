package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
	"github.com/tamylaa/clodo-framework-sub007/internal/domain/capability"
)

// requiredFiles are the top-level artifacts every project must carry.
var requiredFiles = []string{
	"package.json",
	"wrangler.toml",
	"src/index.js",
}

// ValidateService checks a project's artifacts against its declared
// manifest and a fresh discovery run. Purely advisory: it reports and
// never mutates the project.
type ValidateService struct {
	fs         domain.FileSystem
	deps       domain.DependencyReader
	descriptor domain.DescriptorReader
	store      domain.ManifestStore
	discovery  *DiscoveryService
	env        domain.EnvReader
	git        domain.GitInfo
}

func NewValidateService(
	fs domain.FileSystem,
	deps domain.DependencyReader,
	descriptor domain.DescriptorReader,
	store domain.ManifestStore,
	discovery *DiscoveryService,
	env domain.EnvReader,
	git domain.GitInfo,
) *ValidateService {
	return &ValidateService{
		fs: fs, deps: deps, descriptor: descriptor,
		store: store, discovery: discovery, env: env, git: git,
	}
}

// Validate runs the ordered checks. A missing required file
// short-circuits the deeper checks: everything after it would only
// re-report the same root cause.
func (s *ValidateService) Validate(projectPath string) *domain.ValidationReport {
	var issues []string

	// 1. Required top-level files.
	for _, f := range requiredFiles {
		if !s.fs.Exists(filepath.Join(projectPath, f)) {
			issues = append(issues, fmt.Sprintf("required file %s is missing", f))
		}
	}
	if len(issues) > 0 {
		return &domain.ValidationReport{Valid: false, Issues: issues}
	}

	// 2. Dependency manifest parses and has mandatory fields.
	man, err := s.deps.Read(projectPath)
	switch {
	case err != nil:
		issues = append(issues, fmt.Sprintf("package.json is not parsable: %v", err))
	case man.Name == "":
		issues = append(issues, "package.json is missing the name field")
	case man.Version == "":
		issues = append(issues, "package.json is missing the version field")
	}

	// 3. Deployment descriptor is well-formed.
	desc, err := s.descriptor.Read(projectPath)
	if err != nil {
		issues = append(issues, fmt.Sprintf("wrangler.toml is not parsable: %v", err))
	} else if desc != nil && desc.Name == "" {
		issues = append(issues, "wrangler.toml is missing the name field")
	}

	// 4. Manifest cross-check against fresh discovery. This is the one
	// place the forward and backward paths meet.
	if manifest, err := s.store.Load(projectPath); err == nil && manifest != nil {
		model := s.discovery.Discover(projectPath)
		for _, slotName := range manifest.ExpectedCapabilities {
			if !model[capability.Slot(slotName)].Configured {
				issues = append(issues, fmt.Sprintf(
					"configuration mismatch: manifest expects %s configured, discovery reports it absent", slotName))
			}
		}
		issues = append(issues, s.driftIssues(projectPath, manifest)...)
	}

	return &domain.ValidationReport{Valid: len(issues) == 0, Issues: issues}
}

// driftIssues reports manifest-declared files missing on disk.
func (s *ValidateService) driftIssues(projectPath string, manifest *domain.ServiceManifest) []string {
	var issues []string
	for category, paths := range manifest.Files {
		for _, p := range paths {
			if !s.fs.Exists(filepath.Join(projectPath, filepath.FromSlash(p))) {
				issues = append(issues, fmt.Sprintf("drift: %s file %s declared in manifest but missing on disk", category, p))
			}
		}
	}
	return issues
}

// Diagnose layers warnings and recommendations over Validate. Deep
// scan adds best-practice recommendations but never new hard errors.
func (s *ValidateService) Diagnose(projectPath string, deep bool) *domain.Diagnosis {
	d := &domain.Diagnosis{}
	d.Errors = s.Validate(projectPath).Issues

	manifest, err := s.store.Load(projectPath)
	if err != nil || manifest == nil {
		d.Warnings = append(d.Warnings, "no service manifest found (.clodo/manifest.yaml); drift checks are unavailable for hand-built projects")
	}

	if !s.fs.Exists(filepath.Join(projectPath, ".env.example")) {
		d.Warnings = append(d.Warnings, "no .env.example documents the required environment variables")
	}
	s.warnOnCommittedSecrets(projectPath, d)

	if s.git != nil && s.git.IsRepo(projectPath) {
		if clean, err := s.git.IsClean(projectPath); err == nil && !clean {
			d.Warnings = append(d.Warnings, "working tree has uncommitted changes; commit the scaffold before deploying")
		}
	}

	if deep {
		model := s.discovery.Discover(projectPath)
		for _, rec := range capability.Assess(model).Recommendations {
			d.Recommendations = append(d.Recommendations, fmt.Sprintf("[%s] %s", rec.Priority, rec.Message))
		}
		if !s.fs.Exists(filepath.Join(projectPath, ".github/workflows")) {
			d.Recommendations = append(d.Recommendations, "[enhancement] Add a CI workflow to deploy from a fixed branch")
		}
	}

	return d
}

// warnOnCommittedSecrets flags env template values that look like
// real credentials instead of placeholders.
func (s *ValidateService) warnOnCommittedSecrets(projectPath string, d *domain.Diagnosis) {
	vars, err := s.env.Read(filepath.Join(projectPath, ".env.example"))
	if err != nil {
		return
	}
	for k, v := range vars {
		if !looksSecretKey(k) || isPlaceholder(v) {
			continue
		}
		d.Warnings = append(d.Warnings, fmt.Sprintf(".env.example value for %s looks like a real credential; use a placeholder", k))
	}
}

func looksSecretKey(k string) bool {
	k = strings.ToUpper(k)
	return strings.Contains(k, "TOKEN") || strings.Contains(k, "SECRET") || strings.Contains(k, "KEY") || strings.Contains(k, "PASSWORD")
}

func isPlaceholder(v string) bool {
	switch strings.ToLower(v) {
	case "", "changeme", "placeholder", "xxx", "todo", "example":
		return true
	}
	return len(v) < 12
}

package application

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/camelcase"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
	"github.com/tamylaa/clodo-framework-sub007/internal/domain/capability"
)

// DiscoveryService infers a capability model from a project's
// artifacts. It never fails: every per-analysis problem degrades that
// analysis to no contribution, and the worst case is a fully
// defaulted model. Discovery is advisory, not load-bearing.
type DiscoveryService struct {
	descriptor domain.DescriptorReader
	deps       domain.DependencyReader
	layout     domain.LayoutScanner
	env        domain.EnvReader
	perms      domain.PermissionReader
}

func NewDiscoveryService(
	descriptor domain.DescriptorReader,
	deps domain.DependencyReader,
	layout domain.LayoutScanner,
	env domain.EnvReader,
	perms domain.PermissionReader,
) *DiscoveryService {
	return &DiscoveryService{
		descriptor: descriptor, deps: deps,
		layout: layout, env: env, perms: perms,
	}
}

// Discover runs the four analyses concurrently and merges them by the
// declared precedence, so the result is independent of scheduling.
func (s *DiscoveryService) Discover(projectPath string) capability.Model {
	results := make([]capability.AnalysisResult, len(capability.Precedence))

	analyses := []func(string) capability.AnalysisResult{
		s.analyzeDescriptor,
		s.analyzeDependencies,
		s.analyzeLayout,
		s.analyzePermissions,
	}

	var wg sync.WaitGroup
	for i, analyze := range analyses {
		wg.Add(1)
		go func(i int, analyze func(string) capability.AnalysisResult) {
			defer wg.Done()
			results[i] = analyze(projectPath)
		}(i, analyze)
	}
	wg.Wait()

	return capability.Merge(results)
}

// analyzeDescriptor maps wrangler.toml bindings to capability slots.
func (s *DiscoveryService) analyzeDescriptor(projectPath string) capability.AnalysisResult {
	result := capability.AnalysisResult{Name: "descriptor"}

	desc, err := s.descriptor.Read(projectPath)
	if err != nil || desc == nil {
		return result
	}

	add := func(c capability.Contribution) {
		result.Contributions = append(result.Contributions, c)
	}

	add(capability.Contribution{
		Slot: capability.Deployment, Configured: true,
		Provider: "cloudflare", Quantity: 1,
	})
	if desc.D1Databases > 0 {
		add(capability.Contribution{
			Slot: capability.Database, Configured: true,
			Provider: "d1", Quantity: desc.D1Databases,
		})
	}
	if desc.KVNamespaces > 0 {
		add(capability.Contribution{
			Slot: capability.Storage, Configured: true,
			Provider: "kv", Quantity: desc.KVNamespaces,
		})
	}
	if desc.R2Buckets > 0 {
		add(capability.Contribution{
			Slot: capability.Storage, Configured: true,
			Provider: "r2", Quantity: desc.R2Buckets,
		})
	}
	if n := desc.QueueProducers + desc.QueueConsumers; n > 0 {
		add(capability.Contribution{
			Slot: capability.Messaging, Configured: true,
			Provider: "queues", Quantity: n,
		})
	}
	if desc.AnalyticsDatasets > 0 {
		add(capability.Contribution{
			Slot: capability.Monitoring, Configured: true,
			Provider: "analytics-engine", Quantity: desc.AnalyticsDatasets,
		})
	}

	authVars := 0
	for k := range desc.Vars {
		if strings.HasPrefix(k, "AUTH_") {
			authVars++
		}
	}
	if authVars > 0 {
		add(capability.Contribution{
			Slot: capability.Authentication, Configured: true,
			Provider: "token", Quantity: authVars,
		})
	}

	return result
}

// analyzeDependencies maps package.json entries to slots via the
// declarative tables.
func (s *DiscoveryService) analyzeDependencies(projectPath string) capability.AnalysisResult {
	result := capability.AnalysisResult{Name: "dependencies"}

	man, err := s.deps.Read(projectPath)
	if err != nil || man == nil {
		return result
	}

	for name := range man.Dependencies {
		if target, ok := capability.RuntimeDependencies[name]; ok {
			result.Contributions = append(result.Contributions, capability.Contribution{
				Slot: target.Slot, Configured: true, Provider: target.Provider, Quantity: 1,
			})
		}
	}
	for name := range man.DevDependencies {
		if target, ok := capability.DevDependencies[name]; ok {
			result.Contributions = append(result.Contributions, capability.Contribution{
				Slot: target.Slot, Possible: true, Provider: target.Provider,
			})
		}
	}

	return result
}

// analyzeLayout maps the directory structure to slots: directories
// count as configured, words split out of file names only as possible.
func (s *DiscoveryService) analyzeLayout(projectPath string) capability.AnalysisResult {
	result := capability.AnalysisResult{Name: "layout"}

	scan, err := s.layout.Scan(projectPath)
	if err != nil || scan == nil {
		return result
	}

	for _, dir := range scan.Dirs {
		if slot, ok := capability.LayoutDirSlots[filepath.Base(dir)]; ok {
			result.Contributions = append(result.Contributions, capability.Contribution{
				Slot: slot, Configured: true, Quantity: 1,
			})
		}
	}

	for _, file := range scan.Files {
		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		for _, word := range splitWords(base) {
			if slot, ok := capability.LayoutWordSlots[word]; ok {
				result.Contributions = append(result.Contributions, capability.Contribution{
					Slot: slot, Possible: true,
				})
			}
		}
	}

	if scan.HasSrcEntry {
		result.Contributions = append(result.Contributions, capability.Contribution{
			Slot: capability.Framework, Possible: true,
		})
	}

	// Env files hint at capabilities through their keys.
	for _, envPath := range scan.EnvFiles {
		vars, err := s.env.Read(filepath.Join(scan.RootPath, filepath.FromSlash(envPath)))
		if err != nil {
			continue
		}
		for k := range vars {
			if strings.HasPrefix(k, "AUTH_") {
				result.Contributions = append(result.Contributions, capability.Contribution{
					Slot: capability.Authentication, Possible: true,
				})
			}
		}
	}

	return result
}

// analyzePermissions maps the cached credential permission set to
// possible slots. Permissions never configure anything on their own.
func (s *DiscoveryService) analyzePermissions(projectPath string) capability.AnalysisResult {
	result := capability.AnalysisResult{Name: "permissions"}

	perms, err := s.perms.Permissions(projectPath)
	if err != nil || len(perms) == 0 {
		return result
	}

	for _, p := range perms {
		if slot, ok := capability.SlotForPermission(p); ok {
			result.Contributions = append(result.Contributions, capability.Contribution{
				Slot: slot, Possible: true,
			})
		}
	}

	return result
}

// splitWords lowercases and splits an identifier on camel humps and
// common separators.
func splitWords(name string) []string {
	var words []string
	for _, chunk := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	}) {
		for _, w := range camelcase.Split(chunk) {
			words = append(words, strings.ToLower(w))
		}
	}
	return words
}

package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
	"github.com/tamylaa/clodo-framework-sub007/internal/domain/capability"
)

// skeletonDirs is the fixed directory skeleton created before any
// generator runs. Creation is idempotent.
var skeletonDirs = []string{
	"src",
	"src/config",
	"src/handlers",
	"test",
	".github/workflows",
	".clodo",
}

// ScaffoldService is the Tier-3 generation coordinator:
// skeleton dirs -> generators in dependency order -> manifest last.
type ScaffoldService struct {
	registry    *domain.Registry
	fs          domain.FileSystem
	store       domain.ManifestStore
	git         domain.GitInfo
	clock       domain.Clock
	toolVersion string
}

func NewScaffoldService(
	registry *domain.Registry,
	fs domain.FileSystem,
	store domain.ManifestStore,
	git domain.GitInfo,
	clock domain.Clock,
	toolVersion string,
) *ScaffoldService {
	if clock == nil {
		clock = time.Now
	}
	return &ScaffoldService{
		registry: registry, fs: fs, store: store,
		git: git, clock: clock, toolVersion: toolVersion,
	}
}

// Generate runs the full pipeline into targetRoot. Any generator
// error aborts the run wrapped with the generator's name; files
// already written stay on disk (no rollback), and no manifest is
// written for a partial run.
func (s *ScaffoldService) Generate(
	in domain.CoreInputs,
	values map[string]domain.DerivedValue,
	mods []domain.Modification,
	targetRoot string,
	overwrite bool,
) (*domain.ServiceManifest, error) {
	// 1. Inputs must be valid before anything touches disk.
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// 2. Directory skeleton (idempotent).
	for _, dir := range skeletonDirs {
		if err := s.fs.MkdirAll(filepath.Join(targetRoot, dir)); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	// 3. Generators in declared dependency order.
	ordered, err := s.registry.Ordered()
	if err != nil {
		return nil, fmt.Errorf("resolving generator order: %w", err)
	}

	emitter := &domain.Emitter{FS: s.fs, Root: targetRoot, Overwrite: overwrite}
	filesByCategory := make(map[string][]string)

	for _, gen := range ordered {
		before := len(emitter.Written)
		ctx := &domain.GenContext{
			Inputs:     in,
			Values:     values,
			TargetPath: targetRoot,
			Out:        emitter,
		}
		if err := gen.Generate(ctx); err != nil {
			return nil, fmt.Errorf("generator %q: %w", gen.Name(), err)
		}
		cat := string(gen.Category())
		filesByCategory[cat] = append(filesByCategory[cat], emitter.Written[before:]...)
	}

	// 4. Manifest, written last.
	manifest := &domain.ServiceManifest{
		GeneratedAt: s.clock(),
		ToolVersion: s.toolVersion,
		Service: domain.ManifestService{
			Name:        in.ServiceName,
			Type:        in.ServiceType,
			Domain:      in.DomainName,
			AccountID:   in.AccountID,
			ZoneID:      in.ZoneID,
			Environment: in.Environment,
			Credential:  in.RedactedCredential(),
		},
		DerivedValues:        domain.OrderedDerivedValues(values),
		Modifications:        mods,
		Files:                filesByCategory,
		SkippedFiles:         emitter.Skipped,
		Checksum:             domain.PathChecksum(allPaths(filesByCategory, emitter.Skipped)),
		ExpectedCapabilities: capability.SlotNames(capability.ExpectedFor(in.ServiceType)),
	}

	if s.git != nil && s.git.IsRepo(targetRoot) {
		if hash, err := s.git.CommitHash(targetRoot); err == nil {
			manifest.CommitHash = hash
		}
	}

	if err := s.store.Save(targetRoot, manifest); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}
	return manifest, nil
}

// allPaths merges written and skipped paths: the checksum tracks the
// artifact set a run covered, whether or not each file was rewritten,
// so re-running with overwrite off keeps the checksum stable.
func allPaths(byCategory map[string][]string, skipped []string) []string {
	var all []string
	for _, paths := range byCategory {
		all = append(all, paths...)
	}
	all = append(all, skipped...)
	return all
}

package domain

import (
	"errors"
	"fmt"
	"path/filepath"
)

// GeneratorCategory groups generators for the manifest file listing.
type GeneratorCategory string

const (
	CategoryCore          GeneratorCategory = "core"
	CategoryService       GeneratorCategory = "service"
	CategoryEnvironment   GeneratorCategory = "environment"
	CategoryTesting       GeneratorCategory = "testing"
	CategoryDocumentation GeneratorCategory = "documentation"
	CategoryAutomation    GeneratorCategory = "automation"
)

// GeneratorCategories in declaration order, used for manifest grouping.
var GeneratorCategories = []GeneratorCategory{
	CategoryCore,
	CategoryService,
	CategoryEnvironment,
	CategoryTesting,
	CategoryDocumentation,
	CategoryAutomation,
}

// ErrExists is returned by the emitter when a file would be clobbered
// and overwrite is off. The emitter absorbs it into the skip list;
// it is exported for adapters that guard writes themselves.
var ErrExists = errors.New("file already exists")

// Emitter is the write-side of a generation run: it applies the
// per-file overwrite policy and records what was written or skipped.
type Emitter struct {
	FS        FileSystem
	Root      string
	Overwrite bool

	Written []string
	Skipped []string
}

// Emit writes one artifact at a path relative to the target root.
// When the file exists and overwrite is off it records a skip instead.
func (e *Emitter) Emit(relPath, content string) error {
	abs := filepath.Join(e.Root, relPath)
	if !e.Overwrite && e.FS.Exists(abs) {
		e.Skipped = append(e.Skipped, relPath)
		return nil
	}
	if err := e.FS.MkdirAll(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("creating directory for %s: %w", relPath, err)
	}
	if err := e.FS.WriteFile(abs, []byte(content)); err != nil {
		return fmt.Errorf("writing %s: %w", relPath, err)
	}
	e.Written = append(e.Written, relPath)
	return nil
}

// GenContext is the uniform contract every generator receives.
// Generators share in-memory inputs only; they never read each
// other's on-disk output.
type GenContext struct {
	Inputs     CoreInputs
	Values     map[string]DerivedValue
	TargetPath string
	Out        *Emitter
}

// Value returns the current derived value for id.
func (c *GenContext) Value(id string) string { return Value(c.Values, id) }

// Generator is one artifact-producing unit. Requires declares
// ordering-only dependencies on other generators by name.
type Generator interface {
	Name() string
	Category() GeneratorCategory
	Requires() []string
	Generate(ctx *GenContext) error
}

// Registry holds generators and resolves their run order with a
// deterministic topological sort (ties broken by registration order).
type Registry struct {
	generators []Generator
	byName     map[string]Generator
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Generator)}
}

// Register adds a generator; duplicate names are a defect.
func (r *Registry) Register(g Generator) error {
	if _, dup := r.byName[g.Name()]; dup {
		return fmt.Errorf("generator %q registered twice", g.Name())
	}
	r.byName[g.Name()] = g
	r.generators = append(r.generators, g)
	return nil
}

// Lookup returns the generator registered under name, if any.
func (r *Registry) Lookup(name string) (Generator, bool) {
	g, ok := r.byName[name]
	return g, ok
}

// Names returns registered generator names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.generators))
	for i, g := range r.generators {
		names[i] = g.Name()
	}
	return names
}

// Ordered returns generators in dependency order. Kahn's algorithm
// over declared requires; among ready generators, registration order
// wins so the result is stable across runs.
func (r *Registry) Ordered() ([]Generator, error) {
	indegree := make(map[string]int, len(r.generators))
	for _, g := range r.generators {
		indegree[g.Name()] = 0
	}
	for _, g := range r.generators {
		for _, req := range g.Requires() {
			if _, ok := r.byName[req]; !ok {
				return nil, fmt.Errorf("generator %q requires unknown generator %q", g.Name(), req)
			}
			indegree[g.Name()]++
		}
	}

	var order []Generator
	done := make(map[string]bool, len(r.generators))
	for len(order) < len(r.generators) {
		progressed := false
		for _, g := range r.generators {
			if done[g.Name()] || indegree[g.Name()] != 0 {
				continue
			}
			order = append(order, g)
			done[g.Name()] = true
			progressed = true
			for _, other := range r.generators {
				for _, req := range other.Requires() {
					if req == g.Name() {
						indegree[other.Name()]--
					}
				}
			}
		}
		if !progressed {
			return nil, errors.New("generator dependency cycle detected")
		}
	}
	return order, nil
}

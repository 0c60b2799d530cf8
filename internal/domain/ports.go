package domain

import "time"

// FileSystem is the outbound port for all artifact I/O. Generators and
// services never touch the os package directly.
type FileSystem interface {
	MkdirAll(path string) error
	WriteFile(path string, data []byte) error
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
	ListDir(path string) ([]string, error)
}

// PromptSession is the interactive collection collaborator. The core
// only needs a question/answer exchange plus a lifecycle close.
type PromptSession interface {
	Question(prompt string) (string, error)
	Close() error
}

// Descriptor is the parsed shape of a deployment descriptor
// (wrangler.toml). Only what discovery needs: binding counts and vars.
type Descriptor struct {
	Name              string
	Main              string
	CompatibilityDate string
	Routes            []string
	D1Databases       int
	KVNamespaces      int
	R2Buckets         int
	QueueProducers    int
	QueueConsumers    int
	AnalyticsDatasets int
	Vars              map[string]string
}

// DependencyManifest is the parsed shape of a package.json.
type DependencyManifest struct {
	Name            string
	Version         string
	Dependencies    map[string]string
	DevDependencies map[string]string
	Scripts         map[string]string
}

// DescriptorReader parses the deployment descriptor of a project.
// A missing descriptor returns (nil, nil): absence is not an error.
type DescriptorReader interface {
	Read(projectPath string) (*Descriptor, error)
}

// DependencyReader parses the dependency manifest of a project.
// A missing manifest returns (nil, nil).
type DependencyReader interface {
	Read(projectPath string) (*DependencyManifest, error)
}

// EnvReader reads a dotenv-style file into key/value pairs.
// A missing file returns an empty map.
type EnvReader interface {
	Read(path string) (map[string]string, error)
}

// PermissionReader returns the credential permission set cached for a
// project, e.g. ["database:edit", "workers:deploy"]. Best-effort: a
// missing or unreadable set returns (nil, nil).
type PermissionReader interface {
	Permissions(projectPath string) ([]string, error)
}

// GitInfo exposes the little repository metadata generation stamps
// into the manifest.
type GitInfo interface {
	IsRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	IsClean(projectPath string) (bool, error)
}

// ManifestStore persists and loads the Service Manifest.
// Load returns (nil, nil) when no manifest exists.
type ManifestStore interface {
	Load(projectPath string) (*ServiceManifest, error)
	Save(projectPath string, m *ServiceManifest) error
	Path(projectPath string) string
}

// Clock supplies "now" so manifests are testable.
type Clock func() time.Time

// LayoutScan is the directory-layout view of a project used by
// discovery. Paths are relative to the project root, slash-separated.
type LayoutScan struct {
	RootPath    string
	Dirs        []string
	Files       []string
	EnvFiles    []string
	HasSrcEntry bool
	HasTests    bool
	HasCI       bool
}

// LayoutScanner walks a project directory for discovery.
type LayoutScanner interface {
	Scan(projectPath string) (*LayoutScan, error)
}

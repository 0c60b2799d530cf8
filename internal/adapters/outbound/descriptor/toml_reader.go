// Package descriptor parses the wrangler.toml deployment descriptor.
package descriptor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

const fileName = "wrangler.toml"

// TOMLReader implements domain.DescriptorReader.
type TOMLReader struct{}

func New() *TOMLReader { return &TOMLReader{} }

type binding struct {
	Binding      string `toml:"binding"`
	DatabaseName string `toml:"database_name"`
	DatabaseID   string `toml:"database_id"`
	ID           string `toml:"id"`
	BucketName   string `toml:"bucket_name"`
	Dataset      string `toml:"dataset"`
	Queue        string `toml:"queue"`
}

type queuesSection struct {
	Producers []binding `toml:"producers"`
	Consumers []binding `toml:"consumers"`
}

type wranglerFile struct {
	Name              string            `toml:"name"`
	Main              string            `toml:"main"`
	CompatibilityDate string            `toml:"compatibility_date"`
	Route             string            `toml:"route"`
	Routes            []string          `toml:"routes"`
	Vars              map[string]string `toml:"vars"`
	D1Databases       []binding         `toml:"d1_databases"`
	KVNamespaces      []binding         `toml:"kv_namespaces"`
	R2Buckets         []binding         `toml:"r2_buckets"`
	Queues            queuesSection     `toml:"queues"`
	Analytics         []binding         `toml:"analytics_engine_datasets"`
}

// Read parses projectPath/wrangler.toml. A missing descriptor returns
// (nil, nil): absence is a discovery signal, not a failure.
func (r *TOMLReader) Read(projectPath string) (*domain.Descriptor, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var wf wranglerFile
	if err := toml.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	routes := wf.Routes
	if wf.Route != "" {
		routes = append([]string{wf.Route}, routes...)
	}

	return &domain.Descriptor{
		Name:              wf.Name,
		Main:              wf.Main,
		CompatibilityDate: wf.CompatibilityDate,
		Routes:            routes,
		D1Databases:       len(wf.D1Databases),
		KVNamespaces:      len(wf.KVNamespaces),
		R2Buckets:         len(wf.R2Buckets),
		QueueProducers:    len(wf.Queues.Producers),
		QueueConsumers:    len(wf.Queues.Consumers),
		AnalyticsDatasets: len(wf.Analytics),
		Vars:              wf.Vars,
	}, nil
}

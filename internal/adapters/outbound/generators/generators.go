// Package generators holds the artifact-producing units behind the
// generation coordinator. Each generator writes minimal working
// templates through the emitter; the coordinator only ever sees the
// returned path lists, never file contents.
package generators

import (
	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// compatibilityDate is pinned per tool release so generation stays
// deterministic for identical inputs.
const compatibilityDate = "2024-11-06"

// Registry builds the full generator registry in declaration order.
func Registry() (*domain.Registry, error) {
	r := domain.NewRegistry()
	all := []domain.Generator{
		&WranglerConfig{},
		&PackageManifest{},
		&ProjectMeta{},
		&DomainConfig{},
		&WorkerEntry{},
		&ServiceLogic{},
		&EnvFiles{},
		&TestScaffold{},
		&Readme{},
		&CIPipeline{},
	}
	for _, g := range all {
		if err := r.Register(g); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// handlerStem maps a service type to its handler file stem.
func handlerStem(t domain.ServiceType) string {
	switch t {
	case domain.ServiceTypeData:
		return "data"
	case domain.ServiceTypeAuth:
		return "auth"
	case domain.ServiceTypeContent:
		return "content"
	case domain.ServiceTypeGateway:
		return "gateway"
	default:
		return "service"
	}
}

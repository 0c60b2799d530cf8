package cli

import (
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/descriptor"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/envfile"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/fsio"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/gitinfo"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/layout"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/manifeststore"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/npm"
	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/permissions"
	"github.com/tamylaa/clodo-framework-sub007/internal/application"
)

// newDiscoveryService wires the standard outbound adapters.
func newDiscoveryService() *application.DiscoveryService {
	return application.NewDiscoveryService(
		descriptor.New(),
		npm.New(),
		layout.New(),
		envfile.New(),
		permissions.New(),
	)
}

func newValidateService() *application.ValidateService {
	return application.NewValidateService(
		fsio.New(),
		npm.New(),
		descriptor.New(),
		manifeststore.New(),
		newDiscoveryService(),
		envfile.New(),
		gitinfo.New(),
	)
}

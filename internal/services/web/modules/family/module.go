// Package family serves the family sync connect and disconnect page.
package family

import (
	"net/http"

	module "github.com/homeoinvent/homeoinvent/internal/services/web/module"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

// Module provides family sync routes.
type Module struct {
	sync SyncGateway
}

// New returns a family module backed by sync.
func New(sync SyncGateway) Module {
	return Module{sync: sync}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "family" }

// Healthy reports whether a sync service is attached.
func (m Module) Healthy() bool { return m.sync != nil }

// Mount wires family route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.sync)))
	return module.Mount{Prefix: routepath.FamilyPrefix, Handler: mux}, nil
}

// Package public serves unauthenticated operational endpoints.
package public

import (
	"context"
	"net/http"

	module "github.com/homeoinvent/homeoinvent/internal/services/web/module"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Module provides the health route.
type Module struct {
	pinger  Pinger
	modules []module.Module
}

// New returns a public module. pinger may be nil; modules are polled for
// HealthReporter status on every health request.
func New(pinger Pinger, modules ...module.Module) Module {
	return Module{pinger: pinger, modules: modules}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.pinger, m.modules)))
	return module.Mount{Prefix: routepath.Health + "/", Handler: mux}, nil
}

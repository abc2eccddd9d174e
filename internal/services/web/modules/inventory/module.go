// Package inventory serves the remedy list and the add, edit and delete flows.
package inventory

import (
	"net/http"
	"time"

	module "github.com/homeoinvent/homeoinvent/internal/services/web/module"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

const defaultPageSize = 25

// Options tunes the inventory listing.
type Options struct {
	PageSize          int
	LowStockThreshold int
	Now               func() time.Time
}

// Module provides the inventory routes.
type Module struct {
	gateway MedicineGateway
	opts    Options
}

// New returns an inventory module backed by gateway.
func New(gateway MedicineGateway, opts Options) Module {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return Module{gateway: gateway, opts: opts}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "inventory" }

// Healthy reports whether the module has a backing store.
func (m Module) Healthy() bool { return m.gateway != nil }

// Mount wires inventory route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.opts.Now), m.opts)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

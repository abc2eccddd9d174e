// Package analytics serves the inventory summary page.
package analytics

import (
	"net/http"
	"time"

	inventoryanalytics "github.com/homeoinvent/homeoinvent/internal/services/inventory/analytics"
	module "github.com/homeoinvent/homeoinvent/internal/services/web/module"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

// Options tunes the stock and expiry thresholds.
type Options struct {
	LowStockThreshold int
	ExpiryWindow      time.Duration
	Now               func() time.Time
}

// Module provides analytics routes.
type Module struct {
	gateway InventoryGateway
	opts    Options
}

// New returns an analytics module reading from gateway.
func New(gateway InventoryGateway, opts Options) Module {
	if opts.LowStockThreshold <= 0 {
		opts.LowStockThreshold = inventoryanalytics.DefaultLowStockThreshold
	}
	if opts.ExpiryWindow <= 0 {
		opts.ExpiryWindow = inventoryanalytics.DefaultExpiryWindow
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return Module{gateway: gateway, opts: opts}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "analytics" }

// Healthy reports whether the module has a backing store.
func (m Module) Healthy() bool { return m.gateway != nil }

// Mount wires analytics route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway, m.opts)))
	return module.Mount{Prefix: routepath.AnalyticsPrefix, Handler: mux}, nil
}

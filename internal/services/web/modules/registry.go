// Package modules assembles the feature modules served by the web process.
package modules

import (
	"time"

	"github.com/homeoinvent/homeoinvent/internal/services/familysync"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/storage"
	module "github.com/homeoinvent/homeoinvent/internal/services/web/module"
	"github.com/homeoinvent/homeoinvent/internal/services/web/modules/analytics"
	"github.com/homeoinvent/homeoinvent/internal/services/web/modules/family"
	"github.com/homeoinvent/homeoinvent/internal/services/web/modules/inventory"
	"github.com/homeoinvent/homeoinvent/internal/services/web/modules/public"
)

// Dependencies carries the backing services shared by modules.
type Dependencies struct {
	Store             storage.MedicineStore
	Pinger            public.Pinger
	FamilySync        *familysync.Service
	PageSize          int
	LowStockThreshold int
	ExpiryWindow      time.Duration
	Now               func() time.Time
}

// Default returns the stable module set in mount order.
func Default(deps Dependencies) []module.Module {
	var (
		inventoryGateway inventory.MedicineGateway
		analyticsGateway analytics.InventoryGateway
		syncGateway      family.SyncGateway
	)
	if deps.Store != nil {
		inventoryGateway = deps.Store
		analyticsGateway = deps.Store
	}
	if deps.FamilySync != nil {
		syncGateway = deps.FamilySync
	}

	features := []module.Module{
		inventory.New(inventoryGateway, inventory.Options{
			PageSize:          deps.PageSize,
			LowStockThreshold: deps.LowStockThreshold,
			Now:               deps.Now,
		}),
		analytics.New(analyticsGateway, analytics.Options{
			LowStockThreshold: deps.LowStockThreshold,
			ExpiryWindow:      deps.ExpiryWindow,
			Now:               deps.Now,
		}),
		family.New(syncGateway),
	}
	return append(features, public.New(deps.Pinger, features...))
}

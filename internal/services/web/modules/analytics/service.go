package analytics

import (
	"context"
	"time"

	inventoryanalytics "github.com/homeoinvent/homeoinvent/internal/services/inventory/analytics"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/domain"
	apperrors "github.com/homeoinvent/homeoinvent/internal/services/web/platform/errors"
)

// InventoryGateway reads the full remedy inventory.
type InventoryGateway interface {
	ListAllMedicines(ctx context.Context) ([]domain.Medicine, error)
}

type service struct {
	gateway InventoryGateway
	opts    Options
}

func newService(gateway InventoryGateway, opts Options) service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return service{gateway: gateway, opts: opts}
}

func (s service) summarize(ctx context.Context) (inventoryanalytics.Summary, error) {
	if s.gateway == nil {
		return inventoryanalytics.Summary{}, apperrors.EK(apperrors.KindUnavailable, "error.storage_unavailable", "inventory storage is not configured")
	}
	medicines, err := s.gateway.ListAllMedicines(ctx)
	if err != nil {
		return inventoryanalytics.Summary{}, err
	}
	return inventoryanalytics.Summarize(medicines, inventoryanalytics.Options{
		Now:               s.opts.Now(),
		LowStockThreshold: s.opts.LowStockThreshold,
		ExpiryWindow:      s.opts.ExpiryWindow,
	}), nil
}

// Package analytics summarizes an inventory snapshot for the analytics page.
package analytics

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/homeoinvent/homeoinvent/internal/services/inventory/domain"
	"github.com/samber/lo"
)

const (
	// DefaultLowStockThreshold marks remedies with two or fewer units.
	DefaultLowStockThreshold = 2
	// DefaultExpiryWindow is the look-ahead for the expiring-soon list.
	DefaultExpiryWindow = 30 * 24 * time.Hour
)

// Options tunes a summary.
type Options struct {
	Now               time.Time
	LowStockThreshold int
	ExpiryWindow      time.Duration
}

// FormCount is the number of remedies kept in one preparation.
type FormCount struct {
	Form  domain.Form
	Count int
}

// ScaleCount is the number of remedies on one dilution scale.
type ScaleCount struct {
	Scale domain.Scale
	Count int
}

// LocationCount is the number of remedies stored at one location. An empty
// Location groups remedies with no recorded place.
type LocationCount struct {
	Location string
	Count    int
}

// Summary is the aggregate view of an inventory.
type Summary struct {
	TotalRemedies int
	TotalUnits    int
	ByForm        []FormCount
	ByScale       []ScaleCount
	Locations     []LocationCount
	LowStock      []domain.Medicine
	ExpiringSoon  []domain.Medicine
	Expired       []domain.Medicine
}

// Summarize aggregates medicines. Forms follow domain.Forms order and scales
// follow domain.Scales order; both omit empty groups.
func Summarize(medicines []domain.Medicine, opts Options) Summary {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	window := max(opts.ExpiryWindow, 0)

	forms := lo.CountValuesBy(medicines, func(m domain.Medicine) domain.Form { return m.Form })
	scales := lo.CountValuesBy(medicines, func(m domain.Medicine) domain.Scale { return m.Potency.Scale })
	places := lo.CountValuesBy(medicines, func(m domain.Medicine) string { return strings.TrimSpace(m.Location) })

	summary := Summary{
		TotalRemedies: len(medicines),
		TotalUnits:    lo.SumBy(medicines, func(m domain.Medicine) int { return max(m.Quantity, 0) }),
		ByForm:        make([]FormCount, 0, len(forms)),
		ByScale:       make([]ScaleCount, 0, len(scales)),
		Locations:     make([]LocationCount, 0, len(places)),
		LowStock: lo.Filter(medicines, func(m domain.Medicine, _ int) bool {
			return m.IsLowStock(opts.LowStockThreshold)
		}),
		ExpiringSoon: lo.Filter(medicines, func(m domain.Medicine, _ int) bool {
			return m.ExpiresWithin(now, window)
		}),
		Expired: lo.Filter(medicines, func(m domain.Medicine, _ int) bool {
			return m.IsExpired(now)
		}),
	}

	for _, form := range domain.Forms {
		if n := forms[form]; n > 0 {
			summary.ByForm = append(summary.ByForm, FormCount{Form: form, Count: n})
		}
	}
	for _, scale := range domain.Scales {
		if n := scales[scale]; n > 0 {
			summary.ByScale = append(summary.ByScale, ScaleCount{Scale: scale, Count: n})
		}
	}

	summary.Locations = append(summary.Locations, lo.MapToSlice(places, func(location string, n int) LocationCount {
		return LocationCount{Location: location, Count: n}
	})...)
	slices.SortFunc(summary.Locations, func(a, b LocationCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Location, b.Location)
	})

	slices.SortStableFunc(summary.LowStock, func(a, b domain.Medicine) int {
		if a.Quantity != b.Quantity {
			return cmp.Compare(a.Quantity, b.Quantity)
		}
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	slices.SortStableFunc(summary.ExpiringSoon, byExpiry)
	slices.SortStableFunc(summary.Expired, byExpiry)
	return summary
}

func byExpiry(a, b domain.Medicine) int {
	return a.ExpiresAt.Compare(b.ExpiresAt)
}

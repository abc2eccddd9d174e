package analytics

import (
	inventoryanalytics "github.com/homeoinvent/homeoinvent/internal/services/inventory/analytics"
	"github.com/homeoinvent/homeoinvent/internal/services/inventory/domain"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
	webtemplates "github.com/homeoinvent/homeoinvent/internal/services/web/templates"
	"github.com/samber/lo"
)

func mapAnalyticsView(summary inventoryanalytics.Summary, loc webtemplates.Localizer) webtemplates.AnalyticsView {
	return webtemplates.AnalyticsView{
		TotalRemedies: summary.TotalRemedies,
		TotalUnits:    summary.TotalUnits,
		ByForm: lo.Map(summary.ByForm, func(c inventoryanalytics.FormCount, _ int) webtemplates.StatRow {
			return webtemplates.StatRow{LabelKey: c.Form.MessageKey(), Count: c.Count}
		}),
		ByScale: lo.Map(summary.ByScale, func(c inventoryanalytics.ScaleCount, _ int) webtemplates.StatRow {
			return webtemplates.StatRow{Label: string(c.Scale), Count: c.Count}
		}),
		Locations: lo.Map(summary.Locations, func(c inventoryanalytics.LocationCount, _ int) webtemplates.StatRow {
			if c.Location == "" {
				return webtemplates.StatRow{LabelKey: "analytics.location_unassigned", Count: c.Count}
			}
			return webtemplates.StatRow{Label: c.Location, Count: c.Count}
		}),
		LowStock: lo.Map(summary.LowStock, func(m domain.Medicine, _ int) webtemplates.RemedyItem {
			return remedyItem(m, webtemplates.T(loc, "analytics.units_left", m.Quantity))
		}),
		ExpiringSoon: lo.Map(summary.ExpiringSoon, func(m domain.Medicine, _ int) webtemplates.RemedyItem {
			return remedyItem(m, expiryDetail(m, loc))
		}),
		Expired: lo.Map(summary.Expired, func(m domain.Medicine, _ int) webtemplates.RemedyItem {
			return remedyItem(m, expiryDetail(m, loc))
		}),
	}
}

func remedyItem(m domain.Medicine, detail string) webtemplates.RemedyItem {
	return webtemplates.RemedyItem{Label: m.Label(), Detail: detail, URL: routepath.Medicine(m.ID)}
}

func expiryDetail(m domain.Medicine, loc webtemplates.Localizer) string {
	return webtemplates.T(loc, "analytics.expires_on", m.ExpiresAt.UTC().Format(domain.DateLayout))
}

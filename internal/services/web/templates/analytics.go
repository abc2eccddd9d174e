package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// StatRow is a labelled count. LabelKey is localized; Label is shown as is
// when LabelKey is empty.
type StatRow struct {
	LabelKey string
	Label    string
	Count    int
}

// RemedyItem is one remedy listed in an analytics panel.
type RemedyItem struct {
	Label  string
	Detail string
	URL    string
}

// AnalyticsView is the analytics page content.
type AnalyticsView struct {
	TotalRemedies int
	TotalUnits    int
	ByForm        []StatRow
	ByScale       []StatRow
	Locations     []StatRow
	LowStock      []RemedyItem
	ExpiringSoon  []RemedyItem
	Expired       []RemedyItem
}

// AnalyticsPage renders the inventory summary.
func AnalyticsPage(view AnalyticsView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="analytics"><h1>`)
		h.text(T(loc, "analytics.heading"))
		h.raw(`</h1><dl class="totals"><div><dt>`)
		h.text(T(loc, "analytics.total_remedies"))
		h.raw(`</dt><dd>`)
		h.text(Count(loc, view.TotalRemedies))
		h.raw(`</dd></div><div><dt>`)
		h.text(T(loc, "analytics.total_units"))
		h.raw(`</dt><dd>`)
		h.text(Count(loc, view.TotalUnits))
		h.raw(`</dd></div></dl><div class="panels">`)
		statPanel(h, "analytics.by_form", view.ByForm, loc)
		statPanel(h, "analytics.by_scale", view.ByScale, loc)
		statPanel(h, "analytics.locations", view.Locations, loc)
		remedyPanel(h, "analytics.low_stock", view.LowStock, loc)
		remedyPanel(h, "analytics.expiring_soon", view.ExpiringSoon, loc)
		remedyPanel(h, "analytics.expired", view.Expired, loc)
		h.raw(`</div></section>`)
		return h.err
	})
}

func statPanel(h *htmlWriter, headingKey string, rows []StatRow, loc Localizer) {
	h.raw(`<article class="panel"><h2>`)
	h.text(T(loc, headingKey))
	h.raw(`</h2>`)
	if len(rows) == 0 {
		emptyPanel(h, loc)
		return
	}
	h.raw(`<ul class="stat-list">`)
	for _, row := range rows {
		label := row.Label
		if row.LabelKey != "" {
			label = T(loc, row.LabelKey)
		}
		h.raw(`<li><span>`)
		h.text(label)
		h.raw(`</span><span class="count">`)
		h.text(Count(loc, row.Count))
		h.raw(`</span></li>`)
	}
	h.raw(`</ul></article>`)
}

func remedyPanel(h *htmlWriter, headingKey string, items []RemedyItem, loc Localizer) {
	h.raw(`<article class="panel"><h2>`)
	h.text(T(loc, headingKey))
	h.raw(`</h2>`)
	if len(items) == 0 {
		emptyPanel(h, loc)
		return
	}
	h.raw(`<ul class="remedy-list">`)
	for _, item := range items {
		h.raw(`<li><a`)
		h.href(item.URL)
		h.raw(`>`)
		h.text(item.Label)
		h.raw(`</a>`)
		if item.Detail != "" {
			h.raw(` <span class="detail">`)
			h.text(item.Detail)
			h.raw(`</span>`)
		}
		h.raw(`</li>`)
	}
	h.raw(`</ul></article>`)
}

func emptyPanel(h *htmlWriter, loc Localizer) {
	h.raw(`<p class="empty">`)
	h.text(T(loc, "analytics.none"))
	h.raw(`</p></article>`)
}

package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

// TabItem is one link of the tab navigation bar.
type TabItem struct {
	LabelKey string
	Href     string
	Active   bool
}

// TabItems returns the navigation tabs for currentPath. A tab is active only
// when its path equals currentPath exactly.
func TabItems(currentPath string) []TabItem {
	items := []TabItem{
		{LabelKey: "nav.inventory", Href: routepath.Inventory},
		{LabelKey: "nav.analytics", Href: routepath.Analytics},
	}
	for i := range items {
		items[i].Active = items[i].Href == currentPath
	}
	return items
}

// TabNav renders the tab navigation bar for currentPath.
func TabNav(currentPath string, loc Localizer) templ.Component {
	return tabNav(currentPath, loc, false)
}

// TabNavSwap renders the tab navigation bar marked for an HTMX out-of-band
// swap, replacing the header bar after a boosted navigation.
func TabNavSwap(currentPath string, loc Localizer) templ.Component {
	return tabNav(currentPath, loc, true)
}

func tabNav(currentPath string, loc Localizer, oob bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<nav id="tab-nav" class="tab-nav"`)
		if oob {
			h.raw(` hx-swap-oob="true"`)
		}
		h.attr("aria-label", T(loc, "nav.main_label"))
		h.raw(`>`)
		for _, item := range TabItems(currentPath) {
			h.raw(`<a class="`)
			if item.Active {
				h.raw(`tab tab-active" aria-current="page"`)
			} else {
				h.raw(`tab"`)
			}
			h.href(item.Href)
			h.raw(`>`)
			h.text(T(loc, item.LabelKey))
			h.raw(`</a>`)
		}
		h.raw(`</nav>`)
		return h.err
	})
}

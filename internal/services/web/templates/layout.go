package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/homeoinvent/homeoinvent/internal/platform/branding"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

// LanguageLink is one entry of the header language switcher.
type LanguageLink struct {
	LabelKey string
	URL      string
	Active   bool
}

// LayoutOptions configures the shared page chrome.
type LayoutOptions struct {
	Title       string
	Lang        string
	CurrentPath string
	Languages   []LanguageLink
	Loc         Localizer
}

// ComposePageTitle appends the product name to a page title.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	suffix := " | " + branding.AppName
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, suffix) {
		return title
	}
	return title + suffix
}

// Layout renders the full document: header with the tab navigation, the
// children as main content, and the footer.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en-US"
		}
		h := newHTMLWriter(w)
		h.raw(`<!DOCTYPE html><html`)
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(ComposePageTitle(opts.Title))
		h.raw(`</title><link rel="stylesheet"`)
		h.href(routepath.Static("app.css"))
		h.raw(`><script defer src="https://unpkg.com/htmx.org@2.0.4"></script></head><body hx-boost="true" hx-target="#main" hx-select="#main" hx-swap="outerHTML">`)
		h.raw(`<header class="app-header"><a class="brand"`)
		h.href(routepath.Root)
		h.raw(`>`)
		h.text(branding.AppName)
		h.raw(`</a>`)
		h.component(ctx, TabNav(opts.CurrentPath, opts.Loc))
		h.raw(`<div class="header-links"><a class="family-link"`)
		h.href(routepath.Family)
		h.raw(`>`)
		h.text(T(opts.Loc, "nav.family"))
		h.raw(`</a>`)
		for _, language := range opts.Languages {
			h.raw(`<a class="lang-link"`)
			if language.Active {
				h.raw(` aria-current="true"`)
			}
			h.href(language.URL)
			h.raw(`>`)
			h.text(T(opts.Loc, language.LabelKey))
			h.raw(`</a>`)
		}
		h.raw(`</div></header>`)
		h.component(ctx, MainContent())
		h.component(ctx, Footer())
		h.raw(`</body></html>`)
		return h.err
	})
}

// Fragment renders the response to a boosted HTMX navigation: the document
// title, the main region, and the tab bar for CurrentPath as an out-of-band
// swap.
func Fragment(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<title>`)
		h.text(ComposePageTitle(opts.Title))
		h.raw(`</title>`)
		h.component(ctx, MainContent())
		h.component(ctx, TabNavSwap(opts.CurrentPath, opts.Loc))
		return h.err
	})
}

// MainContent wraps the children in the swappable main region.
func MainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<main id="main" class="app-main">`)
		h.component(templ.ClearChildren(ctx), templ.GetChildren(ctx))
		h.raw(`</main>`)
		return h.err
	})
}

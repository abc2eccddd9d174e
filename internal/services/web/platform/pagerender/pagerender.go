// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/homeoinvent/homeoinvent/internal/services/web/i18n"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/httpx"
	webtemplates "github.com/homeoinvent/homeoinvent/internal/services/web/templates"
)

// Page describes a module page response for both full-page and HTMX flows.
// When Loc is nil the request language is resolved here.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
	Loc        webtemplates.Localizer
	Lang       string
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders the page inside the shared layout. HTMX requests get the
// main fragment with the title and an out-of-band tab bar.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	loc, lang := page.Loc, page.Lang
	if loc == nil {
		loc, lang = webi18n.ResolveLocalizer(w, r)
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	opts := webtemplates.LayoutOptions{
		Title:       page.Title,
		Lang:        lang,
		CurrentPath: currentPath(r),
		Loc:         loc,
	}
	var component templ.Component
	if httpx.IsHTMXRequest(r) {
		component = webtemplates.Fragment(opts)
	} else {
		opts.Languages = languageLinks(r, lang)
		component = webtemplates.Layout(opts)
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func currentPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}

func languageLinks(r *http.Request, lang string) []webtemplates.LanguageLink {
	options := webi18n.LanguageOptions(r, lang)
	links := make([]webtemplates.LanguageLink, 0, len(options))
	for _, option := range options {
		links = append(links, webtemplates.LanguageLink{
			LabelKey: option.Label,
			URL:      option.URL,
			Active:   option.Active,
		})
	}
	return links
}

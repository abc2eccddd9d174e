package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/homeoinvent/homeoinvent/internal/platform/branding"
)

// FooterText is the fixed informational line shown under every page.
const FooterText = branding.AppName + " · " + branding.Tagline

// Footer renders the static page footer.
func Footer() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<footer class="app-footer"><p>`)
		h.text(FooterText)
		h.raw(`</p></footer>`)
		return h.err
	})
}

package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

const (
	errorPageTitleNotFoundKey  = "error.page_title_not_found"
	errorPageTitleServerErrKey = "error.page_title_server_error"
	errorHeadingNotFoundKey    = "error.title_not_found"
	errorHeadingServerErrKey   = "error.title_server_error"
	errorMessageNotFoundKey    = "error.message_not_found"
	errorMessageServerErrKey   = "error.message_server_error"
	errorBackTextKey           = "error.action_back"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorPageTitleNotFoundKey)
	}
	return T(loc, errorPageTitleServerErrKey)
}

// ErrorState renders the in-layout error message for 404 and 5xx responses.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		headingKey, messageKey := errorHeadingServerErrKey, errorMessageServerErrKey
		if normalizeErrorStatus(statusCode) == http.StatusNotFound {
			headingKey, messageKey = errorHeadingNotFoundKey, errorMessageNotFoundKey
		}
		h := newHTMLWriter(w)
		h.raw(`<section class="error-state"><h1>`)
		h.text(T(loc, headingKey))
		h.raw(`</h1><p>`)
		h.text(T(loc, messageKey))
		h.raw(`</p><a`)
		h.href(routepath.Inventory)
		h.raw(`>`)
		h.text(T(loc, errorBackTextKey))
		h.raw(`</a></section>`)
		return h.err
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

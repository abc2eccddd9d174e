// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	webi18n "github.com/homeoinvent/homeoinvent/internal/services/web/i18n"
	apperrors "github.com/homeoinvent/homeoinvent/internal/services/web/platform/errors"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/httpx"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/pagerender"
	webtemplates "github.com/homeoinvent/homeoinvent/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the in-layout error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorState(statusCode, loc),
		Loc:        loc,
		Lang:       lang,
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response. Not-found
// and server failures use the error page; other failures answer with text.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		path := "-"
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		log.Printf("web request failed status=%d path=%s request_id=%s err=%v", statusCode, path, httpx.RequestIDFrom(r), err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

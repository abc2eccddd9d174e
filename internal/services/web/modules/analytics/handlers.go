package analytics

import (
	"context"
	"net/http"

	inventoryanalytics "github.com/homeoinvent/homeoinvent/internal/services/inventory/analytics"
	webi18n "github.com/homeoinvent/homeoinvent/internal/services/web/i18n"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/httpx"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/pagerender"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/weberror"
	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
	webtemplates "github.com/homeoinvent/homeoinvent/internal/services/web/templates"
)

type analyticsService interface {
	summarize(ctx context.Context) (inventoryanalytics.Summary, error)
}

type handlers struct {
	service analyticsService
}

func newHandlers(s analyticsService) handlers {
	return handlers{service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.summarize(httpx.RequestContext(r))
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err = pagerender.WritePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "title.analytics"),
		Fragment: webtemplates.AnalyticsPage(mapAnalyticsView(summary, loc), loc),
		Loc:      loc,
		Lang:     lang,
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err)
	}
}

func (h handlers) redirectIndex(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.Analytics)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

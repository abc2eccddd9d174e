package analytics

import (
	"net/http"

	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Analytics, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AnalyticsPrefix+"{$}", h.redirectIndex)
	mux.HandleFunc(routepath.AnalyticsPrefix, h.handleNotFound)
}

package public

import (
	"net/http"

	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(routepath.Health+"/", h.handleNotFound)
}

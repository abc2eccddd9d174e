package family

import (
	"net/http"

	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Family, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.FamilyPrefix+"{$}", h.redirectIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.FamilyConnect, h.handleConnect)
	mux.HandleFunc(http.MethodPost+" "+routepath.FamilyDisconnect, h.handleDisconnect)
	mux.HandleFunc(routepath.FamilyPrefix, h.handleNotFound)
}

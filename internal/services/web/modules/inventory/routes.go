package inventory

import (
	"net/http"

	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Inventory+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.Medicines, h.handleCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.MedicinePattern, h.handleEdit)
	mux.HandleFunc(http.MethodPost+" "+routepath.MedicinePattern, h.handleUpdate)
	mux.HandleFunc(http.MethodPost+" "+routepath.MedicineDeletePattern, h.handleDelete)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}

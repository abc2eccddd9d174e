package inventory

import (
	"net/http"
	"testing"

	"github.com/homeoinvent/homeoinvent/internal/services/web/routepath"
)

func TestRoutesMethodAndPathTable(t *testing.T) {
	t.Parallel()

	handler := mountHandler(t, newFakeGateway(arnica()))
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: routepath.Inventory, want: http.StatusOK},
		{method: http.MethodGet, path: routepath.Medicine(arnicaID), want: http.StatusOK},
		{method: http.MethodGet, path: "/unknown", want: http.StatusNotFound},
		{method: http.MethodGet, path: routepath.Medicines, want: http.StatusNotFound},
		{method: http.MethodPost, path: routepath.Inventory, want: http.StatusNotFound},
		{method: http.MethodGet, path: routepath.MedicineDelete(arnicaID), want: http.StatusNotFound},
		{method: http.MethodDelete, path: routepath.Medicine(arnicaID), want: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			t.Parallel()
			rr := serve(handler, tc.method, tc.path, nil)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

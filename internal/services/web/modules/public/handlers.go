package public

import (
	"context"
	"log"
	"net/http"

	"github.com/homeoinvent/homeoinvent/internal/platform/timeouts"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/httpx"
	"github.com/homeoinvent/homeoinvent/internal/services/web/platform/weberror"
)

type publicService interface {
	check(ctx context.Context) (healthReport, bool)
}

type handlers struct {
	service publicService
}

func newHandlers(s publicService) handlers {
	return handlers{service: s}
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(httpx.RequestContext(r), timeouts.Request)
	defer cancel()
	report, ok := h.service.check(ctx)
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
		log.Printf("health check failed unhealthy=%v err=%q", report.Unhealthy, report.Error)
	}
	w.Header().Set("Cache-Control", "no-store")
	_ = httpx.WriteJSON(w, status, report)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

package public

import (
	"context"
	"fmt"

	module "github.com/homeoinvent/homeoinvent/internal/services/web/module"
	"github.com/samber/lo"
)

// healthReport is the JSON body of the health endpoint.
type healthReport struct {
	Status    string   `json:"status"`
	Unhealthy []string `json:"unhealthy,omitempty"`
	Error     string   `json:"error,omitempty"`
}

type service struct {
	pinger  Pinger
	modules []module.Module
}

func newService(pinger Pinger, modules []module.Module) service {
	return service{pinger: pinger, modules: modules}
}

// check pings storage and collects modules that report themselves unhealthy.
func (s service) check(ctx context.Context) (healthReport, bool) {
	report := healthReport{Status: "ok"}
	report.Unhealthy = lo.FilterMap(s.modules, func(m module.Module, _ int) (string, bool) {
		reporter, ok := m.(module.HealthReporter)
		if !ok || reporter.Healthy() {
			return "", false
		}
		return m.ID(), true
	})
	if s.pinger != nil {
		if err := s.pinger.Ping(ctx); err != nil {
			report.Error = fmt.Sprintf("storage: %v", err)
		}
	}
	if report.Error != "" || len(report.Unhealthy) > 0 {
		report.Status = "unavailable"
		return report, false
	}
	report.Unhealthy = nil
	return report, true
}

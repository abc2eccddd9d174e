package modules

import (
	"testing"

	"github.com/homeoinvent/homeoinvent/internal/services/familysync"
	module "github.com/homeoinvent/homeoinvent/internal/services/web/module"
)

func TestDefaultModuleOrderAndPrefixes(t *testing.T) {
	t.Parallel()

	features := Default(Dependencies{FamilySync: familysync.New(nil)})
	want := []struct {
		id     string
		prefix string
	}{
		{id: "inventory", prefix: "/"},
		{id: "analytics", prefix: "/analytics/"},
		{id: "family", prefix: "/family/"},
		{id: "public", prefix: "/up/"},
	}
	if len(features) != len(want) {
		t.Fatalf("len(Default()) = %d, want %d", len(features), len(want))
	}
	for i, feature := range features {
		if feature.ID() != want[i].id {
			t.Fatalf("features[%d].ID() = %q, want %q", i, feature.ID(), want[i].id)
		}
		mount, err := feature.Mount()
		if err != nil {
			t.Fatalf("%s Mount() error = %v", feature.ID(), err)
		}
		if mount.Prefix != want[i].prefix {
			t.Fatalf("%s prefix = %q, want %q", feature.ID(), mount.Prefix, want[i].prefix)
		}
	}
}

func TestDefaultWithoutStoreLeavesModulesUnhealthy(t *testing.T) {
	t.Parallel()

	for _, feature := range Default(Dependencies{}) {
		reporter, ok := feature.(module.HealthReporter)
		if !ok {
			continue
		}
		if reporter.Healthy() {
			t.Fatalf("%s Healthy() = true without dependencies", feature.ID())
		}
	}
}

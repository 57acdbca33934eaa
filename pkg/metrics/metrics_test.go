package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/tvkit/tvdb-client/pkg/tokenstore"
	_ "github.com/tvkit/tvdb-client/pkg/tvdb"
)

func TestRegistry(t *testing.T) {
	if Registry == nil {
		t.Error("Registry should not be nil")
	}

	if Registry != prometheus.DefaultRegisterer {
		t.Error("Registry should be the default Prometheus registerer")
	}
}

// TestMetricsRegistered verifies that importing the owning packages is
// enough to register their metrics with the default registry.
func TestMetricsRegistered(t *testing.T) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() failed: %v", err)
	}

	registered := make(map[string]bool, len(families))
	for _, family := range families {
		registered[family.GetName()] = true
	}

	// Plain counters appear in the gather output without any increments.
	// Labeled vectors only show up after first use, so they are covered
	// by the behavioral tests in their owning packages.
	for _, name := range []string{
		"tvdb_pages_fetched_total",
		"tvdb_token_store_hits_total",
		"tvdb_token_store_misses_total",
	} {
		if !registered[name] {
			t.Errorf("Metric %s not registered", name)
		}
	}
}

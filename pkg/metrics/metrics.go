// Package metrics documents the Prometheus metrics exported by the TVDB
// client. All metrics are defined in their owning packages (tvdb,
// tokenstore) to maintain modularity and avoid circular dependencies.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the TVDB client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/tvdb):
//   - tvdb_requests_total{endpoint, status} (Counter): Page fetches by endpoint and HTTP status
//   - tvdb_request_duration_seconds{endpoint} (Histogram): Logical call duration, all pages included
//   - tvdb_errors_total{class} (Counter): Errors by class (auth, transport, http, parse, api)
//   - tvdb_logins_total{outcome} (Counter): Credential exchanges (success, failure, store_hit)
//   - tvdb_pages_fetched_total (Counter): Additional pages fetched by the aggregator
//
// Token Store Metrics (pkg/tokenstore):
//   - tvdb_token_store_hits_total (Counter): Logins avoided by a stored token
//   - tvdb_token_store_misses_total (Counter): Lookups that required a fresh login
//   - tvdb_token_store_errors_total{operation} (Counter): Store operation errors
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(tvdb_errors_total[5m])
//
//   # P95 Logical Call Latency
//   histogram_quantile(0.95, rate(tvdb_request_duration_seconds_bucket[5m]))
//
//   # Login Reuse Rate
//   rate(tvdb_token_store_hits_total[1h]) /
//   (rate(tvdb_token_store_hits_total[1h]) + rate(tvdb_token_store_misses_total[1h]))

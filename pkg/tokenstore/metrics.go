package tokenstore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TokenHits tracks logins avoided by a stored token.
	TokenHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tvdb_token_store_hits_total",
			Help: "Total number of token store hits",
		},
	)

	// TokenMisses tracks store lookups that required a fresh login.
	TokenMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tvdb_token_store_misses_total",
			Help: "Total number of token store misses",
		},
	)

	// TokenErrors tracks store operation errors.
	TokenErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvdb_token_store_errors_total",
			Help: "Total number of token store operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)

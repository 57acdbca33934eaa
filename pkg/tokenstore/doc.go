// Package tokenstore shares the TVDB bearer token across processes via
// a Redis backend.
//
// The TVDB client performs exactly one credential exchange per client
// lifetime and memoizes the result. With a token store configured, that
// single exchange first looks for a token another process already
// acquired and writes fresh tokens back with a 24h-aligned TTL, so a
// fleet of short-lived processes does not hammer the login endpoint.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	store := tokenstore.NewStore(redisClient)
//
//	cfg := tvdb.DefaultConfig(apiKey)
//	cfg.TokenStore = store
//
// # Metrics
//
// The store exports Prometheus metrics:
//
//   - tvdb_token_store_hits_total - logins avoided by a stored token
//   - tvdb_token_store_misses_total - lookups that required a fresh login
//   - tvdb_token_store_errors_total{operation} - store operation errors
package tokenstore

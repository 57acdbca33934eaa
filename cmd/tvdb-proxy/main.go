// Command tvdb-proxy exposes the TVDB client as a local HTTP service:
// one shared login, classified errors, and pre-aggregated pagination for
// anything that can speak plain JSON over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tvkit/tvdb-client/internal/config"
	"github.com/tvkit/tvdb-client/pkg/logging"
	"github.com/tvkit/tvdb-client/pkg/tokenstore"
	"github.com/tvkit/tvdb-client/pkg/tvdb"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tvdb-proxy",
	Short: "Local HTTP proxy in front of the TheTVDB v2 API",
	Long: `tvdb-proxy serves TheTVDB resources over a local HTTP endpoint.
It handles the credential exchange once, classifies errors, merges
paginated collections, and exports Prometheus metrics on /metrics.`,
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Pretty,
	}).With().Str("component", "tvdb-proxy").Logger()

	clientCfg := tvdb.DefaultConfig(cfg.TVDB.APIKey)
	clientCfg.Language = cfg.TVDB.Language
	clientCfg.BaseURL = cfg.TVDB.BaseURL

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(cmd.Context()).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		clientCfg.TokenStore = tokenstore.NewStore(redisClient)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("Shared token store enabled")
	}

	client, err := tvdb.New(clientCfg)
	if err != nil {
		return fmt.Errorf("failed to create TVDB client: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", readyHandler(redisClient))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/", apiHandler(client, logger))

	addr := fmt.Sprintf(":%d", cfg.Proxy.Port)
	logger.Info().Str("addr", addr).Msg("Starting TVDB proxy server")

	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// readyHandler reports readiness. Without a token store there is nothing
// to probe beyond the process itself.
func readyHandler(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()).Err(); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				fmt.Fprintf(w, "redis unavailable: %v", err)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	}
}

// apiHandler forwards /api/<path>?<query> through the request pipeline
// and writes the aggregated data payload. The Accept-Language header is
// passed through as the per-request language override.
func apiHandler(client *tvdb.Client, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/")
		if path == "" {
			http.Error(w, "missing resource path", http.StatusBadRequest)
			return
		}

		opts := &tvdb.RequestOptions{
			Query:    url.Values(r.URL.Query()),
			Language: r.Header.Get("Accept-Language"),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()

		data, err := client.ExecuteRequest(ctx, path, opts)
		if err != nil {
			status := proxyStatus(err)
			logger.Warn().Err(err).Str("endpoint", path).Int("status", status).Msg("Upstream request failed")
			http.Error(w, err.Error(), status)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			logger.Warn().Err(err).Msg("Failed to write response")
		}
	}
}

// proxyStatus maps a classified client error to the status the proxy
// answers with.
func proxyStatus(err error) int {
	var httpErr *tvdb.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}

	var authErr *tvdb.AuthError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized
	}

	var apiErr *tvdb.APIError
	if errors.As(err, &apiErr) {
		return http.StatusNotFound
	}

	return http.StatusBadGateway
}

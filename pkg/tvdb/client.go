// Package tvdb provides a typed client for the TheTVDB v2 JSON API with
// memoized authentication, layered error classification, and transparent
// pagination aggregation.
package tvdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tvkit/tvdb-client/pkg/tokenstore"
)

// Prometheus metrics for TVDB client operations.
var (
	tvdbRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tvdb_requests_total",
		Help: "Total TVDB requests by endpoint and status",
	}, []string{"endpoint", "status"})

	tvdbRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tvdb_request_duration_seconds",
		Help:    "TVDB logical request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	tvdbErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tvdb_errors_total",
		Help: "Total TVDB errors by class",
	}, []string{"class"})

	tvdbLoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tvdb_logins_total",
		Help: "Total TVDB credential exchanges by outcome",
	}, []string{"outcome"})

	tvdbPagesFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tvdb_pages_fetched_total",
		Help: "Total additional pages fetched by the pagination aggregator",
	})
)

const (
	// DefaultBaseURL is the TheTVDB v2 API root.
	DefaultBaseURL = "https://api.thetvdb.com"

	// DefaultLanguage is the Accept-Language value used when neither the
	// client nor the request options set one.
	DefaultLanguage = "en"

	// acceptHeader is the fixed versioned media type the API expects.
	acceptHeader = "application/vnd.thetvdb.v2.2.0"
)

// Client is a TheTVDB API client. It is safe for concurrent use; in-flight
// calls share only the memoized auth token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	store      *tokenstore.Store
	logger     zerolog.Logger

	auth *tokenProvider
}

// Config holds the client configuration.
type Config struct {
	// APIKey is the TheTVDB API key exchanged for a bearer token (REQUIRED).
	APIKey string

	// Language is the default Accept-Language value (default: "en").
	Language string

	// BaseURL overrides the API root, mainly for tests.
	BaseURL string

	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client

	// TokenStore is an optional shared token store so that multiple
	// processes reuse one login. The per-client memoization is unchanged.
	TokenStore *tokenstore.Store
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:   apiKey,
		Language: DefaultLanguage,
		BaseURL:  DefaultBaseURL,
	}
}

// New creates a new TVDB client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	logger := log.With().Str("component", "tvdb-client").Logger()

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		language:   cfg.Language,
		store:      cfg.TokenStore,
		logger:     logger,
		auth:       newTokenProvider(),
	}, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// ExecuteRequest performs one logical GET against a resource path and
// returns the fully aggregated data payload. This is the single entry
// point all endpoint methods route through: token acquisition, transport,
// two-stage validation, and pagination merging happen here.
func (c *Client) ExecuteRequest(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error) {
	startTime := time.Now()
	defer func() {
		tvdbRequestDuration.WithLabelValues(path).Observe(time.Since(startTime).Seconds())
	}()

	params := c.resolve(opts)

	env, err := c.fetchEnvelope(ctx, path, params)
	if err != nil {
		return nil, err
	}

	data, err := c.aggregatePages(ctx, env, path, params)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// fetchEnvelope issues one authenticated page fetch: token, transport,
// then the two validation stages.
func (c *Client) fetchEnvelope(ctx context.Context, path string, params requestParams) (*Envelope, error) {
	token, err := c.auth.token(ctx, c)
	if err != nil {
		tvdbErrorsTotal.WithLabelValues(string(ErrorClassAuth)).Inc()
		return nil, err
	}

	statusCode, status, body, err := c.get(ctx, c.requestURL(path, params.query), params, token)
	if err != nil {
		tvdbErrorsTotal.WithLabelValues(string(classify(err))).Inc()
		tvdbRequestsTotal.WithLabelValues(path, "network_error").Inc()
		return nil, err
	}

	tvdbRequestsTotal.WithLabelValues(path, fmt.Sprintf("%d", statusCode)).Inc()

	env, err := validateResponse(statusCode, status, body)
	if err != nil {
		tvdbErrorsTotal.WithLabelValues(string(classify(err))).Inc()
		c.logger.Warn().
			Str("endpoint", path).
			Int("status", statusCode).
			Str("error_class", string(classify(err))).
			Msg("TVDB request error")
		return nil, err
	}

	return env, nil
}

// requestURL builds base URL + path + encoded query string.
func (c *Client) requestURL(path string, query url.Values) string {
	requestURL := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}
	return requestURL
}

// get performs a single GET round trip and returns the raw status and
// body. No retries; connection failures surface as TransportError.
//
// Header precedence is fixed here: Accept and Accept-Language first,
// then caller headers (which may override them), then Authorization,
// which always wins.
func (c *Client) get(ctx context.Context, requestURL string, params requestParams, token string) (int, string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return 0, "", nil, &TransportError{Err: err}
	}

	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", params.language)
	for name, value := range params.headers {
		req.Header.Set(name, value)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	c.logger.Debug().
		Str("url", requestURL).
		Str("language", params.language).
		Msg("Executing TVDB request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", requestURL).Msg("HTTP request failed")
		return 0, "", nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", nil, &TransportError{Err: err}
	}

	return resp.StatusCode, resp.Status, body, nil
}

// validateResponse runs the two ordered checks: the transport-level
// status check, then the payload-level application error check. Only a
// body passing both becomes an Envelope.
func validateResponse(statusCode int, status string, body []byte) (*Envelope, error) {
	if statusCode < 200 || statusCode > 299 {
		return nil, &HTTPError{StatusCode: statusCode, Status: status}
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ParseError{Err: err}
	}

	if env.Error != "" {
		return nil, &APIError{Message: env.Error}
	}

	return &env, nil
}

// execute runs the pipeline and decodes the aggregated data into T. The
// declared type is a contract the caller trusts; there is no runtime
// schema validation beyond JSON decoding.
func execute[T any](ctx context.Context, c *Client, path string, opts *RequestOptions) (T, error) {
	var out T

	data, err := c.ExecuteRequest(ctx, path, opts)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(data, &out); err != nil {
		tvdbErrorsTotal.WithLabelValues(string(ErrorClassParse)).Inc()
		return out, &ParseError{Err: err}
	}

	return out, nil
}

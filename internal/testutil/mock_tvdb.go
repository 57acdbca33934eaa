// Package testutil provides testing utilities for the TVDB client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock TVDB endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockTVDB is a configurable mock TVDB API server for testing.
type MockTVDB struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount      int
	LoginCount        int
	LastRequestHeader http.Header
	RequestedPaths    []string
}

// NewMockTVDB creates a new mock TVDB server with a default login
// handler that issues the token "test-token".
func NewMockTVDB() *MockTVDB {
	mock := &MockTVDB{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestHeader = r.Header.Clone()
		mock.RequestedPaths = append(mock.RequestedPaths, r.URL.RequestURI())
		if r.URL.Path == "/login" {
			mock.LoginCount++
		}
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockTVDB) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockTVDB) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockTVDB) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LoginCount = 0
	m.LastRequestHeader = nil
	m.RequestedPaths = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockTVDB) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockTVDB) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetLoginResponse overrides the default login behavior.
func (m *MockTVDB) SetLoginResponse(resp MockResponse) {
	m.SetResponse("/login", resp)
}

// SetPagedResponse configures a paginated list endpoint. Each element of
// pages is the JSON array served as that page's data; links are derived
// from the requested page number.
func (m *MockTVDB) SetPagedResponse(path string, pages []string) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			fmt.Sscanf(p, "%d", &page)
		}
		if page < 1 || page > len(pages) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"Error": "page out of range"}`))
			return
		}

		first, last := 1, len(pages)
		links := map[string]any{"first": first, "last": last}
		if page < last {
			links["next"] = page + 1
		}
		if page > first {
			links["prev"] = page - 1
		}

		body, _ := json.Marshal(map[string]any{
			"data":  json.RawMessage(pages[page-1]),
			"links": links,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockTVDB) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetLoginCount returns the number of credential exchanges performed.
func (m *MockTVDB) GetLoginCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LoginCount
}

// GetRequestedPaths returns the request URIs seen, in order.
func (m *MockTVDB) GetRequestedPaths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.RequestedPaths...)
}

// defaultHandler provides default TVDB-like responses.
func (m *MockTVDB) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if r.URL.Path == "/login" {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"token": "test-token"}`))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"data": {"status": "ok"}}`))
}

// NewDataResponse creates a 200 OK envelope around the given data JSON.
func NewDataResponse(data string) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       fmt.Sprintf(`{"data": %s}`, data),
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		},
	}
}

// NewAPIErrorResponse creates a 200 OK envelope carrying an application
// error.
func NewAPIErrorResponse(message string) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       fmt.Sprintf(`{"data": null, "Error": %q}`, message),
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		},
	}
}

// NewNotFoundResponse creates a 404 response.
func NewNotFoundResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusNotFound,
		Body:       `{"Error": "ID not found"}`,
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		},
	}
}

// NewUnauthorizedResponse creates a 401 response.
func NewUnauthorizedResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusUnauthorized,
		Body:       `{"Error": "Not Authorized"}`,
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		},
	}
}

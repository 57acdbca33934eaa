package tvdb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/tvkit/tvdb-client/internal/testutil"
)

func newTestClient(t *testing.T, mock *testutil.MockTVDB) *Client {
	t.Helper()

	cfg := DefaultConfig("test-api-key")
	cfg.BaseURL = mock.URL()

	client, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid config",
			config:      Config{APIKey: "abc123"},
			expectError: false,
		},
		{
			name:        "empty api key",
			config:      Config{},
			expectError: true,
			errorMsg:    "api key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.config)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got nil")
					return
				}
				if tt.errorMsg != "" && err.Error() != tt.errorMsg {
					t.Errorf("Error message = %q, want %q", err.Error(), tt.errorMsg)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
					return
				}
				if client == nil {
					t.Error("Client is nil")
				}
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("abc123")

	if cfg.APIKey != "abc123" {
		t.Errorf("APIKey = %q, want %q", cfg.APIKey, "abc123")
	}
	if cfg.Language != DefaultLanguage {
		t.Errorf("Language = %q, want %q", cfg.Language, DefaultLanguage)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
}

func TestExecuteRequest_Headers(t *testing.T) {
	mock := testutil.NewMockTVDB()
	defer mock.Close()

	mock.SetResponse("/languages", testutil.NewDataResponse(`[]`))

	client := newTestClient(t, mock)

	if _, err := client.ExecuteRequest(context.Background(), "languages", nil); err != nil {
		t.Fatalf("ExecuteRequest() failed: %v", err)
	}

	headers := mock.LastRequestHeader
	if got := headers.Get("Accept"); got != "application/vnd.thetvdb.v2.2.0" {
		t.Errorf("Accept = %q, want the versioned media type", got)
	}
	if got := headers.Get("Accept-Language"); got != "en" {
		t.Errorf("Accept-Language = %q, want %q", got, "en")
	}
	if got := headers.Get("Authorization"); got != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer test-token")
	}
}

func TestExecuteRequest_HeaderPrecedence(t *testing.T) {
	mock := testutil.NewMockTVDB()
	defer mock.Close()

	mock.SetResponse("/languages", testutil.NewDataResponse(`[]`))

	client := newTestClient(t, mock)

	// Caller headers may override Accept and Accept-Language, but never
	// Authorization: it is applied last.
	opts := &RequestOptions{
		Headers: map[string]string{
			"Accept":        "application/json",
			"Authorization": "Bearer forged",
			"X-Custom":      "yes",
		},
		Language: "de",
	}

	if _, err := client.ExecuteRequest(context.Background(), "languages", opts); err != nil {
		t.Fatalf("ExecuteRequest() failed: %v", err)
	}

	headers := mock.LastRequestHeader
	if got := headers.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q, caller override should win", got)
	}
	if got := headers.Get("Accept-Language"); got != "de" {
		t.Errorf("Accept-Language = %q, want %q", got, "de")
	}
	if got := headers.Get("Authorization"); got != "Bearer test-token" {
		t.Errorf("Authorization = %q, computed header must win", got)
	}
	if got := headers.Get("X-Custom"); got != "yes" {
		t.Errorf("X-Custom = %q, want %q", got, "yes")
	}
}

func TestExecuteRequest_HTTPError(t *testing.T) {
	mock := testutil.NewMockTVDB()
	defer mock.Close()

	// The 401 body is deliberately not JSON: the transport-level check
	// must fail before any payload parsing happens.
	mock.SetResponse("/series/1", testutil.MockResponse{
		StatusCode: 401,
		Body:       "<html>not json</html>",
	})

	client := newTestClient(t, mock)

	_, err := client.ExecuteRequest(context.Background(), "series/1", nil)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	httpErr, ok := err.(*HTTPError)
	if !ok {
		t.Fatalf("Error type = %T, want *HTTPError", err)
	}
	if httpErr.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", httpErr.StatusCode)
	}
	if !httpErr.IsUnauthorized() {
		t.Error("IsUnauthorized() = false, want true")
	}
}

func TestExecuteRequest_APIError(t *testing.T) {
	mock := testutil.NewMockTVDB()
	defer mock.Close()

	mock.SetResponse("/series/999999", testutil.NewAPIErrorResponse("ID not found"))

	client := newTestClient(t, mock)

	_, err := client.ExecuteRequest(context.Background(), "series/999999", nil)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Error type = %T, want *APIError", err)
	}
	if apiErr.Message != "ID not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "ID not found")
	}
}

func TestExecuteRequest_ParseError(t *testing.T) {
	mock := testutil.NewMockTVDB()
	defer mock.Close()

	mock.SetResponse("/series/1", testutil.MockResponse{
		StatusCode: 200,
		Body:       "{truncated",
	})

	client := newTestClient(t, mock)

	_, err := client.ExecuteRequest(context.Background(), "series/1", nil)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("Error type = %T, want *ParseError", err)
	}
}

func TestExecuteRequest_TransportError(t *testing.T) {
	mock := testutil.NewMockTVDB()

	client := newTestClient(t, mock)

	// Acquire the token while the server is still up, then kill it so
	// the resource fetch itself fails at the connection level.
	if _, err := client.ExecuteRequest(context.Background(), "languages", nil); err != nil {
		t.Fatalf("Warm-up request failed: %v", err)
	}
	mock.Close()

	_, err := client.ExecuteRequest(context.Background(), "languages", nil)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if _, ok := err.(*TransportError); !ok {
		t.Errorf("Error type = %T, want *TransportError", err)
	}
}

func TestExecuteRequest_Idempotent(t *testing.T) {
	mock := testutil.NewMockTVDB()
	defer mock.Close()

	mock.SetResponse("/series/42/actors", testutil.NewDataResponse(`[{"id": 1, "name": "A"}, {"id": 2, "name": "B"}]`))

	client := newTestClient(t, mock)
	ctx := context.Background()

	first, err := client.ExecuteRequest(ctx, "series/42/actors", nil)
	if err != nil {
		t.Fatalf("First request failed: %v", err)
	}

	second, err := client.ExecuteRequest(ctx, "series/42/actors", nil)
	if err != nil {
		t.Fatalf("Second request failed: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("Results differ:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestExecuteRequest_QueryEncoding(t *testing.T) {
	mock := testutil.NewMockTVDB()
	defer mock.Close()

	mock.SetResponse("/search/series", testutil.NewDataResponse(`[]`))

	client := newTestClient(t, mock)

	opts := &RequestOptions{}
	if _, err := client.GetSeriesByName(context.Background(), "Twin Peaks", opts); err != nil {
		t.Fatalf("GetSeriesByName() failed: %v", err)
	}

	paths := mock.GetRequestedPaths()
	last := paths[len(paths)-1]
	if last != "/search/series?name=Twin+Peaks" {
		t.Errorf("Request URI = %q, want encoded name parameter", last)
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantErr    any
	}{
		{"success object", 200, `{"data": {"id": 1}}`, nil},
		{"success array", 200, `{"data": [1, 2]}`, nil},
		{"http error", 404, `ignored`, &HTTPError{}},
		{"parse error", 200, `not json`, &ParseError{}},
		{"api error", 200, `{"data": null, "Error": "ID not found"}`, &APIError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := validateResponse(tt.statusCode, "status", []byte(tt.body))

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if env == nil {
					t.Fatal("Envelope is nil")
				}
				return
			}

			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			switch tt.wantErr.(type) {
			case *HTTPError:
				if _, ok := err.(*HTTPError); !ok {
					t.Errorf("Error type = %T, want *HTTPError", err)
				}
			case *ParseError:
				if _, ok := err.(*ParseError); !ok {
					t.Errorf("Error type = %T, want *ParseError", err)
				}
			case *APIError:
				if _, ok := err.(*APIError); !ok {
					t.Errorf("Error type = %T, want *APIError", err)
				}
			}
		})
	}
}

func TestIsJSONArray(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{`[1, 2]`, true},
		{`  [ ]`, true},
		{`{"a": 1}`, false},
		{`null`, false},
		{`"text"`, false},
		{``, false},
	}

	for _, tt := range tests {
		if got := isJSONArray(json.RawMessage(tt.raw)); got != tt.expected {
			t.Errorf("isJSONArray(%q) = %v, want %v", tt.raw, got, tt.expected)
		}
	}
}

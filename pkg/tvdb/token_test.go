package tvdb

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/tvkit/tvdb-client/internal/testutil"
)

func TestToken_SingleLoginUnderConcurrency(t *testing.T) {
	mock := testutil.NewMockTVDB()
	defer mock.Close()

	mock.SetResponse("/languages", testutil.NewDataResponse(`[]`))

	client := newTestClient(t, mock)
	ctx := context.Background()

	const callers = 25

	var wg sync.WaitGroup
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.GetLanguages(ctx, nil); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Concurrent call failed: %v", err)
	}

	if got := mock.GetLoginCount(); got != 1 {
		t.Errorf("Login count = %d, want exactly 1 regardless of concurrency", got)
	}
}

func TestToken_ReusedAcrossSequentialCalls(t *testing.T) {
	mock := testutil.NewMockTVDB()
	defer mock.Close()

	mock.SetResponse("/languages", testutil.NewDataResponse(`[]`))

	client := newTestClient(t, mock)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := client.GetLanguages(ctx, nil); err != nil {
			t.Fatalf("Call %d failed: %v", i, err)
		}
	}

	if got := mock.GetLoginCount(); got != 1 {
		t.Errorf("Login count = %d, want 1", got)
	}
}

func TestToken_LoginRejected(t *testing.T) {
	mock := testutil.NewMockTVDB()
	defer mock.Close()

	mock.SetLoginResponse(testutil.MockResponse{
		StatusCode: http.StatusUnauthorized,
		Body:       `{"Error": "API Key Required"}`,
	})

	client := newTestClient(t, mock)
	ctx := context.Background()

	_, err := client.GetLanguages(ctx, nil)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("Error type = %T, want *AuthError", err)
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatal("AuthError should wrap the underlying HTTPError")
	}
	if httpErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", httpErr.StatusCode)
	}
}

func TestToken_LoginFailureMemoized(t *testing.T) {
	mock := testutil.NewMockTVDB()
	defer mock.Close()

	mock.SetLoginResponse(testutil.MockResponse{
		StatusCode: http.StatusUnauthorized,
		Body:       `{"Error": "API Key Required"}`,
	})

	client := newTestClient(t, mock)
	ctx := context.Background()

	var authErr *AuthError
	for i := 0; i < 3; i++ {
		_, err := client.GetLanguages(ctx, nil)
		if !errors.As(err, &authErr) {
			t.Fatalf("Call %d error type = %T, want *AuthError", i, err)
		}
	}

	// The failed exchange is memoized like a success: one login, ever.
	if got := mock.GetLoginCount(); got != 1 {
		t.Errorf("Login count = %d, want 1", got)
	}
}

func TestToken_MalformedLoginResponse(t *testing.T) {
	tests := []struct {
		name string
		resp testutil.MockResponse
	}{
		{
			name: "not json",
			resp: testutil.MockResponse{StatusCode: 200, Body: "oops"},
		},
		{
			name: "missing token",
			resp: testutil.MockResponse{StatusCode: 200, Body: `{}`},
		},
		{
			name: "application error",
			resp: testutil.MockResponse{StatusCode: 200, Body: `{"Error": "invalid key"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockTVDB()
			defer mock.Close()

			mock.SetLoginResponse(tt.resp)

			client := newTestClient(t, mock)

			_, err := client.GetLanguages(context.Background(), nil)
			var authErr *AuthError
			if !errors.As(err, &authErr) {
				t.Errorf("Error type = %T, want *AuthError", err)
			}
		})
	}
}

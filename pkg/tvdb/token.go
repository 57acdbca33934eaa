package tvdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tvkit/tvdb-client/pkg/tokenstore"
)

// loginPath is the credential exchange endpoint.
const loginPath = "/login"

// tokenProvider memoizes the one-time credential exchange. The first
// caller claims the started slot and performs the exchange; everyone
// else waits on the completion channel and observes the same result. At
// most one login request ever leaves one Client, success or failure.
type tokenProvider struct {
	done    chan struct{}
	started chan struct{}

	// Written once before done is closed, read-only afterwards.
	value string
	err   error
}

func newTokenProvider() *tokenProvider {
	p := &tokenProvider{
		done:    make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	p.started <- struct{}{}
	return p
}

// token returns the memoized bearer token, performing the exchange on
// first use. The token is never refreshed: once the server-side expiry
// lapses, calls on a long-lived Client fail with an authentication
// flavored HTTPError until the Client is reconstructed. This mirrors the
// one-shot login semantics of the API's reference clients and is a
// documented limitation, not a retry candidate.
func (p *tokenProvider) token(ctx context.Context, c *Client) (string, error) {
	select {
	case <-p.started:
		p.value, p.err = c.login(ctx)
		close(p.done)
		return p.value, p.err
	default:
	}

	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return "", &TransportError{Err: ctx.Err()}
	}
}

// loginRequest is the credential exchange payload.
type loginRequest struct {
	APIKey string `json:"apikey"`
}

// loginResponse is the credential exchange result.
type loginResponse struct {
	Token string `json:"token"`
	Error string `json:"Error"`
}

// login exchanges the API key for a bearer token. When a token store is
// configured, the store is consulted first and a fresh token is written
// back, so that separate processes share one login.
func (c *Client) login(ctx context.Context) (string, error) {
	if c.store != nil {
		if token, err := c.store.Get(ctx, c.apiKey); err == nil {
			c.logger.Debug().Msg("Using shared token from store")
			tvdbLoginsTotal.WithLabelValues("store_hit").Inc()
			return token, nil
		} else if !errors.Is(err, tokenstore.ErrTokenNotFound) {
			c.logger.Warn().Err(err).Msg("Token store get error")
		}
	}

	token, err := c.exchange(ctx)
	if err != nil {
		tvdbLoginsTotal.WithLabelValues("failure").Inc()
		c.logger.Error().Err(err).Msg("Credential exchange failed")
		return "", err
	}

	tvdbLoginsTotal.WithLabelValues("success").Inc()
	c.logger.Debug().Msg("Credential exchange succeeded")

	if c.store != nil {
		if err := c.store.Set(ctx, c.apiKey, token); err != nil {
			c.logger.Warn().Err(err).Msg("Token store set error")
		}
	}

	return token, nil
}

// exchange posts the API key to the login endpoint.
func (c *Client) exchange(ctx context.Context) (string, error) {
	payload, err := json.Marshal(loginRequest{APIKey: c.apiKey})
	if err != nil {
		return "", &AuthError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(payload))
	if err != nil {
		return "", &AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &AuthError{Err: &TransportError{Err: err}}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &AuthError{Err: &TransportError{Err: err}}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &AuthError{Err: &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}}
	}

	var decoded loginResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", &AuthError{Err: &ParseError{Err: err}}
	}

	if decoded.Error != "" {
		return "", &AuthError{Err: &APIError{Message: decoded.Error}}
	}

	if decoded.Token == "" {
		return "", &AuthError{Err: fmt.Errorf("login response carried no token")}
	}

	return decoded.Token, nil
}

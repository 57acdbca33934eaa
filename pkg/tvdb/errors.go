package tvdb

import (
	"fmt"
	"net/http"
)

// ErrorClass represents a classification of request failures.
type ErrorClass string

const (
	// ErrorClassAuth represents a rejected credential exchange.
	ErrorClassAuth ErrorClass = "auth"

	// ErrorClassTransport represents network/connection errors.
	ErrorClassTransport ErrorClass = "transport"

	// ErrorClassHTTP represents non-2xx HTTP status errors.
	ErrorClassHTTP ErrorClass = "http"

	// ErrorClassParse represents undecodable response bodies.
	ErrorClassParse ErrorClass = "parse"

	// ErrorClassAPI represents application-level errors carried in a 2xx payload.
	ErrorClassAPI ErrorClass = "api"
)

// AuthError is returned when the API key exchange at the login endpoint
// is rejected, either with a non-success status or a malformed response.
type AuthError struct {
	Err error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("tvdb authentication failed: %v", e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// TransportError is returned when the request never produced an HTTP
// response (connection refused, DNS failure, cancelled context).
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("tvdb request failed: %v", e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError is returned for any non-2xx response. The body is not parsed.
type HTTPError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("tvdb HTTP error: %s", e.Status)
}

// IsNotFound reports whether the error is a 404 response.
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether the error is an authentication failure.
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ParseError is returned when a 2xx response body is not valid JSON or
// does not match the expected shape.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("tvdb response parse error: %v", e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// APIError is returned when the server answered 2xx but the payload
// carries an application error (the envelope's Error field is set).
type APIError struct {
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("tvdb API error: %s", e.Message)
}

// classify maps an error to its class for metrics and logging.
func classify(err error) ErrorClass {
	switch err.(type) {
	case *AuthError:
		return ErrorClassAuth
	case *TransportError:
		return ErrorClassTransport
	case *HTTPError:
		return ErrorClassHTTP
	case *ParseError:
		return ErrorClassParse
	case *APIError:
		return ErrorClassAPI
	default:
		return ""
	}
}

package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrorKind classifies provider failures for retry decisions.
type ErrorKind int

const (
	KindUnavailable     ErrorKind = iota // Network failure or 5xx
	KindRateLimited                      // 429
	KindAuth                             // 401, 403
	KindBadRequest                       // Other 4xx; the request itself is wrong
	KindInvalidResponse                  // Content does not match the schema
	KindTruncated                        // Output hit MaxTokens
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRateLimited:
		return "rate_limited"
	case KindAuth:
		return "auth"
	case KindBadRequest:
		return "bad_request"
	case KindInvalidResponse:
		return "invalid_response"
	case KindTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Error is returned by every provider in this package.
type Error struct {
	Kind     ErrorKind
	Provider string

	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	// RetryAfter is the server-requested delay for KindRateLimited.
	RetryAfter time.Duration

	// Content holds the rejected output for KindInvalidResponse and
	// KindTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.Status)
	}
	if e.Kind == KindRateLimited && e.RetryAfter > 0 {
		msg += fmt.Sprintf(", retry after %s", e.RetryAfter)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Temporary reports whether repeating the same request may succeed.
func (e *Error) Temporary() bool {
	switch e.Kind {
	case KindUnavailable, KindRateLimited, KindInvalidResponse:
		return true
	default:
		return false
	}
}

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// classifyStatus builds an *Error from an HTTP status. A zero status means
// the request never got a response.
func classifyStatus(provider string, status int, err error) *Error {
	e := &Error{Provider: provider, Status: status, Err: err}
	switch {
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimited
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		e.Kind = KindAuth
	case status >= 400 && status < 500:
		e.Kind = KindBadRequest
	default:
		e.Kind = KindUnavailable
	}
	return e
}

// parseRetryAfter reads a Retry-After header given in seconds.
func parseRetryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

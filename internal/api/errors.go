package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a structured failure returned by the backend, e.g. a
// validation rejection or a missing resource. The request reached the
// server; retrying without changing the input will not help.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend error (HTTP %d)", e.StatusCode)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsValidation reports whether err is a backend rejection of the input
// (4xx other than 404), e.g. a duplicate username.
func IsValidation(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 && apiErr.StatusCode != http.StatusNotFound
}

// ErrNetwork wraps transport-level failures where no response arrived.
// The request may or may not have reached the backend; mutating calls
// must not be retried automatically after one of these.
type ErrNetwork struct {
	Op  string
	Err error
}

func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *ErrNetwork) Unwrap() error { return e.Err }

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	var netErr *ErrNetwork
	return errors.As(err, &netErr)
}

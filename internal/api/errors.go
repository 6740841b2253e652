package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized - please login again")
	ErrNotFound     = errors.New("resource not found")
)

// ServerError is any non-2xx status other than 401 and 404.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d: %s", e.Status, e.Body)
}

// NetworkError covers transport failures and timeouts.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// InvalidResponseError means the body could not be decoded.
type InvalidResponseError struct {
	Err error
}

func (e *InvalidResponseError) Error() string { return "invalid response: " + e.Err.Error() }
func (e *InvalidResponseError) Unwrap() error { return e.Err }

func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

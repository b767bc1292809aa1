package api

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Error is a non-2xx response from the backend.
type Error struct {
	Status  int
	Message string // Detail when the server sent one, otherwise a generic status message
	Detail  string // Server supplied detail, "" when absent
	Data    any    // Decoded body, an empty map when the body was not JSON
}

func (e *Error) Error() string {
	return e.Message
}

// NetworkError is a request that never produced an HTTP response.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// newError builds an *Error from a failed response body.
func newError(status int, body []byte) *Error {
	e := &Error{Status: status, Data: map[string]any{}}

	if v, err := decodeAny(jx.DecodeBytes(body)); err == nil && v != nil {
		e.Data = v
	}
	e.Detail = detailOf(e.Data)

	if e.Detail != "" {
		e.Message = e.Detail
	} else {
		e.Message = fmt.Sprintf(statusErrorFormat, status)
	}
	return e
}

// detailOf extracts the FastAPI style detail: a string, or the first msg of a validation list.
func detailOf(data any) string {
	m, ok := data.(map[string]any)
	if !ok {
		return ""
	}
	switch d := m["detail"].(type) {
	case string:
		return d
	case []any:
		for _, item := range d {
			if obj, ok := item.(map[string]any); ok {
				if msg, ok := obj["msg"].(string); ok && msg != "" {
					return msg
				}
			}
		}
	}
	return ""
}

// DetailOr returns the server detail carried by err, or fallback when there is none.
func DetailOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// IsStatus reports whether err is an *Error with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

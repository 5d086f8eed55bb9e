package handler

import (
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

var (
	ErrNilResponse       = errors.New("handler returned nil response")
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError is an error with an HTTP status and a translation key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "error.bad_request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "error.not_found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "error.internal")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "error.internal")
)

// ValidationError maps field names to translation keys of failed rules.
type ValidationError url.Values

// NewValidationError creates an empty ValidationError.
func NewValidationError() ValidationError {
	return ValidationError{}
}

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	var sb strings.Builder
	sb.WriteString("validation failed: ")
	first := true
	for _, field := range e.Fields() {
		if !first {
			sb.WriteString("; ")
		}
		first = false
		sb.WriteString(field)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(e[field], ", "))
	}
	return sb.String()
}

// Add appends a key to a field.
func (e ValidationError) Add(field, key string) {
	url.Values(e).Add(field, key)
}

// Fields returns the field names in sorted order.
func (e ValidationError) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

package errors

import "net/http"

// Machine-readable error kinds exposed alongside the message so API
// consumers never have to parse free text.
const (
	KindUpstream         = "upstream"
	KindConfiguration    = "configuration"
	KindNotFound         = "not_found"
	KindMethodNotAllowed = "method_not_allowed"
	KindInvalidRequest   = "invalid_request"
	KindInternal         = "internal"
)

// HTTPError represents an error with an associated HTTP status code and kind.
type HTTPError struct {
	Code    int
	Kind    string
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code, kind and message.
func NewHTTPError(code int, kind, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Helpers for common errors
var (
	ErrNotFound = func() *HTTPError {
		return NewHTTPError(http.StatusNotFound, KindNotFound, "Not found")
	}
	ErrConfiguration = func(msg string) *HTTPError {
		return NewHTTPError(http.StatusInternalServerError, KindConfiguration, msg)
	}
)

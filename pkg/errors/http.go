package errors

import "net/http"

// HTTPError is an error that carries the HTTP status and message shown to the client.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewBadRequest creates a 400 HTTPError.
func NewBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

func (e *HTTPError) Error() string {
	return e.Message
}

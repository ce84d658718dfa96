package errors

import "fmt"

// HTTPError carries a status code alongside a user-facing message. Delivery
// layers create these in mapError; pkg/response picks the status from Code.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

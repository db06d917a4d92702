package client

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the stats service.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected response"
	}
	if e.RequestID != "" {
		return fmt.Sprintf("%s (status=%d, request_id=%s)", msg, e.StatusCode, e.RequestID)
	}
	return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

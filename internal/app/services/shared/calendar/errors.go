package calendar

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// RemoteServiceError is returned for every failure after input validation:
// authorization, transport, remote status and malformed responses.
type RemoteServiceError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("calendar request failed (status %d): %s", e.StatusCode, e.Message)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

func newRemoteServiceError(err error) *RemoteServiceError {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = http.StatusText(apiErr.Code)
		}
		return &RemoteServiceError{StatusCode: apiErr.Code, Message: message, Err: err}
	}
	return &RemoteServiceError{StatusCode: http.StatusBadGateway, Message: err.Error(), Err: err}
}

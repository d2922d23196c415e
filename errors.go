package rroute

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ApplicationError is the error an endpoint returns to send a specific
// status code and message back to the client.
type ApplicationError struct {
	Status  int
	Message string
	Err     error // optional cause, never sent to the client
}

// NewError creates an ApplicationError with the given status and message.
func NewError(status int, message string) *ApplicationError {
	return &ApplicationError{Status: status, Message: message}
}

// Errorf creates an ApplicationError with a formatted message.
// A %w verb in format is kept as the error's cause.
func Errorf(status int, format string, args ...any) *ApplicationError {
	err := fmt.Errorf(format, args...)
	return &ApplicationError{Status: status, Message: err.Error(), Err: errors.Unwrap(err)}
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *ApplicationError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status to respond with.
func (e *ApplicationError) StatusCode() int {
	return e.Status
}

// errorBody is the JSON shape of every error response: {"message": "..."}.
type errorBody struct {
	Message string `json:"message"`
}

const internalErrorMessage = "internal server error"

// MapError turns an endpoint failure into a status code and JSON body.
// An *ApplicationError anywhere in err's chain with a 4xx or 5xx status is
// used verbatim and recognized is true. Any other error is a defect: the
// result is a generic 500 and recognized is false, so the caller can log it.
func MapError(err error) (status int, body []byte, recognized bool) {
	var appErr *ApplicationError
	if errors.As(err, &appErr) && appErr != nil && isErrorStatus(appErr.Status) {
		return appErr.Status, encodeErrorBody(appErr.Message), true
	}

	return http.StatusInternalServerError, encodeErrorBody(internalErrorMessage), false
}

func encodeErrorBody(message string) []byte {
	body, err := json.Marshal(errorBody{Message: message})
	if err != nil { // a string field always marshals
		return []byte(`{"message":""}`)
	}
	return body
}

func isErrorStatus(status int) bool {
	return status >= 400 && status <= 599
}

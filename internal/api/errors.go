package api

import "fmt"

// Error is a server-reported failure from the reporting API. It carries the
// HTTP status and the message the backend attached, so handlers can surface
// it to the user verbatim.
type Error struct {
	StatusCode int
	Message    string
}

// Error renders the server-supplied message.
func (e *Error) Error() string {
	return e.Message
}

// newStatusError builds an Error from a non-2xx response body. The backend
// reports failures as {"error": "..."}; when the field is absent the message
// falls back to the numeric status code.
func newStatusError(statusCode int, serverMessage string) *Error {
	if serverMessage == "" {
		serverMessage = fmt.Sprintf("request failed with status %d", statusCode)
	}
	return &Error{StatusCode: statusCode, Message: serverMessage}
}

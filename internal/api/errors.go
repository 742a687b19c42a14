package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// User-facing messages for the fixed error taxonomy.
const (
	MsgNotAuthenticated = "Not authenticated. Please log in."
	MsgAccessDenied     = "Access denied."
	MsgNotFound         = "Resource not found."
	MsgServerError      = "Server error. Please try again later."
	MsgGeneric          = "An unexpected error occurred."
)

// APIError is the normalized error produced by the request pipeline. It
// carries only a human-readable message and the HTTP status that produced
// it. Status is 0 for transport-level failures.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// serverErrorBody is the shape of error payloads returned by the API.
type serverErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// normalizeStatus classifies an HTTP failure status into the fixed error
// taxonomy. Unrecognized statuses fall back to the server-provided message
// when one is present.
func normalizeStatus(status int, body []byte) *APIError {
	switch {
	case status == http.StatusUnauthorized:
		return &APIError{Status: status, Message: MsgNotAuthenticated}
	case status == http.StatusForbidden:
		return &APIError{Status: status, Message: MsgAccessDenied}
	case status == http.StatusNotFound:
		return &APIError{Status: status, Message: MsgNotFound}
	case status >= http.StatusInternalServerError:
		return &APIError{Status: status, Message: MsgServerError}
	default:
		var parsed serverErrorBody
		if err := json.Unmarshal(body, &parsed); err == nil {
			if parsed.Message != "" {
				return &APIError{Status: status, Message: parsed.Message}
			}
			if parsed.Error != "" {
				return &APIError{Status: status, Message: parsed.Error}
			}
		}
		return &APIError{Status: status, Message: MsgGeneric}
	}
}

// normalizeTransport classifies client-side (network/transport) failures,
// which carry a distinct message prefix and no HTTP status.
func normalizeTransport(err error) *APIError {
	return &APIError{Message: fmt.Sprintf("Network error: %v", err)}
}

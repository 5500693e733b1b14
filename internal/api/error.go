package api

import (
	"encoding/json"
	"fmt"
)

// Error is a non-2xx server response: the HTTP status plus the raw body.
// Transport failures are ordinary wrapped errors, not *Error.
type Error struct {
	Status int
	Data   json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message())
}

// Message digs the human-readable text out of the error body. Backends
// in this family are inconsistent about the field name, so the lookup
// order is error, message, detail, then a generic fallback.
func (e *Error) Message() string {
	var body struct {
		Err     string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(e.Data, &body); err == nil {
		switch {
		case body.Err != "":
			return body.Err
		case body.Message != "":
			return body.Message
		case body.Detail != "":
			return body.Detail
		}
	}
	return "request failed"
}

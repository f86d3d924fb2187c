package remote

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StatusError indicates a collaborator answered with a non-2xx status.
type StatusError struct {
	Service    string
	Method     string
	Path       string
	StatusCode int
	Status     string
	Message    string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s %s: %s", e.Service, e.Method, e.Path, e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// AsStatusError returns the StatusError wrapped in err, if any.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// extractMessage pulls a human readable message out of an error body.
// Supported shapes: {"error":{"message":..}}, {"error":".."}, {"detail":".."}, {"message":".."}.
func extractMessage(body []byte) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if raw, ok := payload["error"]; ok {
		var nested struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &nested); err == nil && nested.Message != "" {
			return nested.Message
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	for _, key := range []string{"detail", "message"} {
		var s string
		if err := json.Unmarshal(payload[key], &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

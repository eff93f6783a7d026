package serviceclient

import (
	"encoding/json"
	"fmt"
)

// StatusUnreachable is reported when no HTTP response was received.
const StatusUnreachable = 0

// Result is the outcome of one call: the HTTP status and the raw body.
type Result struct {
	Status  int
	Payload []byte
}

// OK reports whether status is a 2xx code.
func OK(status int) bool {
	return status >= 200 && status < 300
}

// OK reports whether the call succeeded.
func (r Result) OK() bool { return OK(r.Status) }

// Decode unmarshals the JSON payload into v.
func (r Result) Decode(v any) error {
	if len(r.Payload) == 0 {
		return fmt.Errorf("serviceclient: empty payload")
	}
	if err := json.Unmarshal(r.Payload, v); err != nil {
		return fmt.Errorf("serviceclient: decode payload: %w", err)
	}
	return nil
}

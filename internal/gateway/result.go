package gateway

import (
	"encoding/json"
	"fmt"
)

// Result is the normalized outcome of one gateway request. Every call yields
// a well-formed Result; the gateway never lets a failure escape as anything
// else. Exactly one of Data/Err is set on any terminal result, except a 2xx
// response with an empty or non-JSON body, which is success with no data.
type Result struct {
	// Data is the raw JSON response body on success, nil otherwise.
	Data json.RawMessage

	// Err is a human-readable failure message, "" on success.
	Err string

	// Status is the HTTP status code, or 0 when the request never
	// produced a response (DNS failure, connection refused, timeout).
	Status int

	// SessionExpired is true iff Status is 401 or 403.
	SessionExpired bool
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Err == "" && r.Status >= 200 && r.Status < 300
}

// Decode unmarshals the result's data into v.
func (r Result) Decode(v any) error {
	if r.Data == nil {
		return fmt.Errorf("no data in result (status %d)", r.Status)
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

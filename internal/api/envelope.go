package api

import (
	"encoding/json"
	"io"
)

// The backend wraps every JSON body in a success/error envelope. The client
// only ever needs the data payload and, on failure, the error message for
// the log.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Meta    json.RawMessage `json:"meta,omitempty"`
	Error   *envelopeError  `json:"error,omitempty"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// decodeEnvelope reads a success envelope and unmarshals its data payload
// into out. A nil out discards the payload.
func decodeEnvelope(r io.Reader, out any) error {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return err
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// errorMessage extracts the backend's error message from a failure body,
// best effort. Used for logging only; callers see the collapsed error.
func errorMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		return ""
	}
	return env.Error.Message
}

package api

import (
	"encoding/json"
	"fmt"

	"github.com/kochabx/slydepay/errors"
)

// ErrRejected is returned by Result.Err when the gateway reports success=false.
var ErrRejected = errors.New(409, "request rejected by gateway")

// Result is the decoded JSON object returned by the gateway, unchanged.
type Result map[string]any

// Success reports the gateway "success" flag.
func (r Result) Success() bool {
	ok, _ := r["success"].(bool)
	return ok
}

// ErrorCode returns "errorCode" as a string, empty when absent.
func (r Result) ErrorCode() string {
	return stringify(r["errorCode"])
}

// ErrorMessage returns "errorMessage", empty when absent.
func (r Result) ErrorMessage() string {
	return stringify(r["errorMessage"])
}

// Value returns the "result" payload.
func (r Result) Value() any {
	return r["result"]
}

// Decode unmarshals the "result" payload into v.
func (r Result) Decode(v any) error {
	raw, err := json.Marshal(r.Value())
	if err != nil {
		return errors.Decode(err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.Decode(err)
	}
	return nil
}

// Err returns ErrRejected with the gateway code and message when the body
// carries success=false, nil otherwise.
func (r Result) Err() error {
	ok, present := r["success"].(bool)
	if !present || ok {
		return nil
	}
	return ErrRejected.WithMetadata(map[string]string{
		"errorCode":    r.ErrorCode(),
		"errorMessage": r.ErrorMessage(),
	})
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

package errors

import (
	goerrors "errors"
	"strconv"
	"strings"
)

const (
	CodeInvalidConfiguration = 400
	CodeMissingParameter     = 422
	CodeDecode               = 502
	CodeUnexpectedStatus     = 502
	CodeTransport            = 503

	// FieldsKey is the metadata key listing the offending field names.
	FieldsKey = "fields"
	// StatusKey is the metadata key holding an HTTP status code.
	StatusKey = "status"
)

// Sentinels of the SDK error taxonomy. Match them with errors.Is.
var (
	ErrInvalidConfiguration = New(CodeInvalidConfiguration, "invalid configuration")
	ErrMissingParameter     = New(CodeMissingParameter, "missing required parameters")
	ErrTransport            = New(CodeTransport, "transport failure")
	ErrDecode               = New(CodeDecode, "invalid response body")
	ErrUnexpectedStatus     = New(CodeUnexpectedStatus, "unexpected response status")
)

// InvalidConfiguration reports missing or malformed credentials.
func InvalidConfiguration(fields ...string) *Error {
	return withFields(ErrInvalidConfiguration, fields)
}

// MissingParameter reports every required parameter absent from an operation.
func MissingParameter(fields ...string) *Error {
	return withFields(ErrMissingParameter, fields)
}

// Transport wraps a failure surfaced by the HTTP transport.
func Transport(cause error) *Error {
	return ErrTransport.WithCause(cause)
}

// Decode wraps a response body that could not be decoded.
func Decode(cause error) *Error {
	return ErrDecode.WithCause(cause)
}

// UnexpectedStatus reports a non-2xx response.
func UnexpectedStatus(status int) *Error {
	return ErrUnexpectedStatus.WithMetadata(map[string]string{StatusKey: strconv.Itoa(status)})
}

// Is reports whether err matches target, comparing *Error values by code and message.
func Is(err, target error) bool {
	return goerrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return goerrors.As(err, target)
}

// Fields returns the field names attached to err, if any.
func Fields(err error) []string {
	var e *Error
	if !As(err, &e) {
		return nil
	}
	v := e.Metadata[FieldsKey]
	if v == "" {
		return nil
	}
	return strings.Split(v, MetadataSeparator)
}

func withFields(sentinel *Error, fields []string) *Error {
	if len(fields) == 0 {
		return sentinel
	}
	return sentinel.WithMetadata(map[string]string{FieldsKey: strings.Join(fields, MetadataSeparator)})
}

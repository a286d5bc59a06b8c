package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	UnknownCode       = 500
	MetadataSeparator = ", "
	MetadataPrefix    = "metadata={"
	MetadataSuffix    = "}"
	CausePrefix       = "cause="
)

// Status carries the code, message and metadata of an SDK error
type Status struct {
	Code     int               `json:"code,omitempty"`
	Message  string            `json:"message,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Error is the structured error returned by every package of the SDK
type Error struct {
	Status
	cause error
}

// Error renders code, message, metadata (sorted by key) and cause
func (e *Error) Error() string {
	var msg strings.Builder

	msg.WriteString("code=")
	msg.WriteString(strconv.Itoa(e.Code))
	msg.WriteString(MetadataSeparator)
	msg.WriteString("message=")
	msg.WriteString(e.Message)

	if len(e.Metadata) > 0 {
		msg.WriteString(MetadataSeparator)
		msg.WriteString(MetadataPrefix)
		for i, k := range slices.Sorted(maps.Keys(e.Metadata)) {
			if i > 0 {
				msg.WriteString(", ")
			}
			msg.WriteString(k)
			msg.WriteByte('=')
			msg.WriteString(e.Metadata[k])
		}
		msg.WriteString(MetadataSuffix)
	}

	if e.cause != nil {
		msg.WriteString(MetadataSeparator)
		msg.WriteString(CausePrefix)
		msg.WriteString(e.cause.Error())
	}

	return msg.String()
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithMetadata returns a copy of e with m merged into its metadata.
func (e *Error) WithMetadata(m map[string]string) *Error {
	if len(m) == 0 {
		return e
	}

	err := e.clone()
	if err.Metadata == nil {
		err.Metadata = make(map[string]string, len(m))
	}
	maps.Copy(err.Metadata, m)
	return err
}

// WithCause returns a copy of e carrying cause.
func (e *Error) WithCause(cause error) *Error {
	if cause == nil {
		return e
	}

	err := e.clone()
	err.cause = cause
	return err
}

func (e *Error) clone() *Error {
	return &Error{
		Status: Status{
			Code:     e.Code,
			Message:  e.Message,
			Metadata: maps.Clone(e.Metadata),
		},
		cause: e.cause,
	}
}

// Is reports whether err is an *Error with the same code and message, so every
// error derived from a sentinel through WithMetadata/WithCause matches it.
func (e *Error) Is(err error) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return e.Code == ge.Code && e.Message == ge.Message
	}
	return false
}

// MarshalZerologObject logs e as code, message, metadata and cause fields.
func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	ev.Int("code", e.Code).Str("message", e.Message)
	if len(e.Metadata) > 0 {
		d := zerolog.Dict()
		for _, k := range slices.Sorted(maps.Keys(e.Metadata)) {
			d.Str(k, e.Metadata[k])
		}
		ev.Dict("metadata", d)
	}
	if e.cause != nil {
		ev.Str("cause", e.cause.Error())
	}
}

// GetCode returns the error code
func (e *Error) GetCode() int {
	return e.Code
}

// GetMessage returns the error message
func (e *Error) GetMessage() string {
	return e.Message
}

// GetMetadata returns a copy of the metadata
func (e *Error) GetMetadata() map[string]string {
	if len(e.Metadata) == 0 {
		return nil
	}
	return maps.Clone(e.Metadata)
}

// GetCause returns the underlying cause of the error
func (e *Error) GetCause() error {
	return e.cause
}

// New creates a new error with the given code and formatted message
func New(code int, format string, args ...any) *Error {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	return &Error{
		Status: Status{
			Code:    code,
			Message: message,
		},
	}
}

// FromError converts a generic error to *Error, keeping it as the cause.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}

	return New(UnknownCode, "%v", err).WithCause(err)
}

// Wrap wraps err with a new code and message. Returns nil if err is nil.
func Wrap(err error, code int, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return New(code, format, args...).WithCause(err)
}

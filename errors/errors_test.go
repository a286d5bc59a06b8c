package errors

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	err := New(401, "unauthorized access")
	if err.GetCode() != 401 {
		t.Errorf("expected code 401, got %d", err.GetCode())
	}
	if err.GetMessage() != "unauthorized access" {
		t.Errorf("expected message 'unauthorized access', got %s", err.GetMessage())
	}
}

func TestWithMetadata(t *testing.T) {
	err := New(401, "unauthorized")

	if err2 := err.WithMetadata(map[string]string{}); err != err2 {
		t.Error("WithMetadata with empty map should return same instance")
	}

	err3 := err.WithMetadata(map[string]string{"user": "john", "action": "login"})
	if err == err3 {
		t.Error("WithMetadata should return new instance")
	}
	if err.GetMetadata() != nil {
		t.Error("WithMetadata must not modify the receiver")
	}

	metadata := err3.GetMetadata()
	if metadata["user"] != "john" || metadata["action"] != "login" {
		t.Errorf("metadata not set correctly: %v", metadata)
	}

	want := "code=401, message=unauthorized, metadata={action=login, user=john}"
	if got := err3.Error(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWithCause(t *testing.T) {
	originalErr := errors.New("connection refused")
	err := New(503, "transport failure").WithCause(originalErr)

	if err.GetCause() != originalErr {
		t.Error("cause not set correctly")
	}
	if !errors.Is(err, originalErr) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestFromError(t *testing.T) {
	stdErr := errors.New("standard error")
	wrappedErr := FromError(stdErr)

	if wrappedErr.GetCode() != UnknownCode {
		t.Errorf("expected code %d, got %d", UnknownCode, wrappedErr.GetCode())
	}
	if wrappedErr.GetCause() != stdErr {
		t.Error("FromError should keep the original error as cause")
	}

	existingErr := New(404, "not found")
	if FromError(existingErr) != existingErr {
		t.Error("FromError should return same instance for *Error")
	}
	if FromError(nil) != nil {
		t.Error("FromError(nil) should be nil")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, 500, "ignored") != nil {
		t.Error("Wrap(nil) should be nil")
	}

	cause := errors.New("dial tcp: timeout")
	err := Wrap(cause, 503, "gateway %s", "down")
	if err.GetMessage() != "gateway down" {
		t.Errorf("unexpected message %q", err.GetMessage())
	}
	if err.Unwrap() != cause {
		t.Error("Wrap should keep the cause")
	}
}

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel *Error
		others   []*Error
	}{
		{
			name:     "invalid configuration",
			err:      InvalidConfiguration("merchantKey"),
			sentinel: ErrInvalidConfiguration,
			others:   []*Error{ErrMissingParameter, ErrTransport},
		},
		{
			name:     "missing parameter",
			err:      MissingParameter("payoption", "paytoken"),
			sentinel: ErrMissingParameter,
			others:   []*Error{ErrInvalidConfiguration, ErrTransport},
		},
		{
			name:     "transport",
			err:      Transport(errors.New("connection reset")),
			sentinel: ErrTransport,
			others:   []*Error{ErrDecode, ErrMissingParameter},
		},
		{
			name:     "decode",
			err:      Decode(errors.New("invalid character")),
			sentinel: ErrDecode,
			others:   []*Error{ErrUnexpectedStatus, ErrTransport},
		},
		{
			name:     "unexpected status",
			err:      UnexpectedStatus(500),
			sentinel: ErrUnexpectedStatus,
			others:   []*Error{ErrDecode},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.sentinel) {
				t.Errorf("expected %v to match %v", tt.err, tt.sentinel)
			}
			for _, other := range tt.others {
				if Is(tt.err, other) {
					t.Errorf("%v must not match %v", tt.err, other)
				}
			}
		})
	}
}

func TestFields(t *testing.T) {
	err := MissingParameter("payoption", "customerName", "customerEmail")

	fields := Fields(err)
	if len(fields) != 3 || fields[0] != "payoption" || fields[2] != "customerEmail" {
		t.Errorf("unexpected fields %v", fields)
	}

	if Fields(errors.New("plain")) != nil {
		t.Error("plain errors carry no fields")
	}
	if Fields(ErrMissingParameter) != nil {
		t.Error("sentinel carries no fields")
	}
	if got := UnexpectedStatus(404).GetMetadata()[StatusKey]; got != "404" {
		t.Errorf("expected status 404, got %q", got)
	}
}

func BenchmarkErrorString(b *testing.B) {
	err := MissingParameter("payoption", "paytoken").WithCause(errors.New("boom"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = err.Error()
	}
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	err := MissingParameter("paytoken", "customerName").WithCause(errors.New("empty"))
	logger := zerolog.New(&buf)
	logger.Info().Object("error", err).Send()

	want := `{"level":"info","error":{"code":422,"message":"missing required parameters",` +
		`"metadata":{"fields":"paytoken, customerName"},"cause":"empty"}}`
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("unexpected log line\n got: %s\nwant: %s", got, want)
	}
}

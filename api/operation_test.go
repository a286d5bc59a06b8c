package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/slydepay"
	"github.com/kochabx/slydepay/errors"
	"github.com/kochabx/slydepay/log"
	"github.com/kochabx/slydepay/transport"
)

func TestInjectConfig(t *testing.T) {
	op := NewListPayOptions()

	err := op.InjectConfig(nil)
	assert.ErrorIs(t, err, errors.ErrInvalidConfiguration)

	err = op.InjectConfig(&slydepay.Config{})
	assert.ErrorIs(t, err, errors.ErrInvalidConfiguration)
	assert.Nil(t, op.Config())

	cfg := newConfig(t)
	require.NoError(t, op.InjectConfig(cfg))
	assert.Same(t, cfg, op.Config())
}

func TestRunStatusPolicy(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		response transport.MockResponse
		want     Result
		wantErr  error
		state    State
	}{
		{
			name:     "lenient non-2xx returns body",
			response: transport.MockResponse{Status: http.StatusBadRequest, Body: `{"success":false,"errorCode":"01"}`},
			want:     Result{"success": false, "errorCode": "01"},
			state:    StateExecuted,
		},
		{
			name:     "strict non-2xx",
			opts:     []Option{WithStrictStatus()},
			response: transport.MockResponse{Status: http.StatusBadRequest, Body: `{"success":false}`},
			want:     Result{"success": false},
			wantErr:  errors.ErrUnexpectedStatus,
			state:    StateUnvalidated,
		},
		{
			name:     "strict non-2xx non-json",
			opts:     []Option{WithStrictStatus()},
			response: transport.MockResponse{Status: http.StatusBadGateway, Body: `<html>`},
			wantErr:  errors.ErrUnexpectedStatus,
			state:    StateUnvalidated,
		},
		{
			name:     "non-json body",
			response: transport.MockResponse{Status: http.StatusOK, Body: `<html>`},
			wantErr:  errors.ErrDecode,
			state:    StateUnvalidated,
		},
		{
			name:     "transport failure",
			response: transport.MockResponse{Err: errors.New(500, "connection reset")},
			wantErr:  errors.ErrTransport,
			state:    StateUnvalidated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder(tt.response)
			opts := append([]Option{WithHandlerFactory(rec.factory), WithLogger(log.Nop())}, tt.opts...)
			op := NewListPayOptions(opts...)
			require.NoError(t, op.InjectConfig(newConfig(t)))

			result, err := op.Run(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, result)
			assert.Equal(t, tt.state, op.State())
			assert.Equal(t, 1, rec.mock.Calls())
		})
	}
}

func TestRunStrictStatusMetadata(t *testing.T) {
	rec := newRecorder(transport.MockResponse{Status: http.StatusUnauthorized, Body: `{}`})
	op := NewListPayOptions(WithHandlerFactory(rec.factory), WithLogger(log.Nop()), WithStrictStatus())
	require.NoError(t, op.InjectConfig(newConfig(t)))

	_, err := op.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, "401", errors.FromError(err).GetMetadata()[errors.StatusKey])
}

func TestRunCanceledContext(t *testing.T) {
	rec := newRecorder(transport.MockResponse{Body: `{}`})
	op := NewListPayOptions(WithHandlerFactory(rec.factory), WithLogger(log.Nop()))
	require.NoError(t, op.InjectConfig(newConfig(t)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := op.Run(ctx)
	assert.ErrorIs(t, err, errors.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	rec := newRecorder(transport.MockResponse{Status: http.StatusBadGateway, Body: `<html>`})
	op := NewListPayOptions(WithHandlerFactory(rec.factory), WithLogger(log.NewWithWriter(&buf)), WithStrictStatus())
	require.NoError(t, op.InjectConfig(newConfig(t)))

	_, err := op.Run(context.Background())
	require.ErrorIs(t, err, errors.ErrUnexpectedStatus)

	var entry struct {
		Operation string `json:"operation"`
		Error     struct {
			Code     int               `json:"code"`
			Metadata map[string]string `json:"metadata"`
			Cause    string            `json:"cause"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ListPayOptions", entry.Operation)
	assert.Equal(t, errors.CodeUnexpectedStatus, entry.Error.Code)
	assert.Equal(t, "502", entry.Error.Metadata[errors.StatusKey])
	assert.NotEmpty(t, entry.Error.Cause)
}

func TestRunIsReExecutable(t *testing.T) {
	rec := newRecorder(
		transport.MockResponse{Body: `{"n":1}`},
		transport.MockResponse{Body: `{"n":2}`},
	)
	op := NewListPayOptions(WithHandlerFactory(rec.factory), WithLogger(log.Nop()))
	require.NoError(t, op.InjectConfig(newConfig(t)))

	first, err := op.Run(context.Background())
	require.NoError(t, err)
	second, err := op.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(1), first["n"])
	assert.Equal(t, float64(2), second["n"])
	assert.Equal(t, 2, rec.mock.Calls())
}

func TestState(t *testing.T) {
	assert.Equal(t, "unvalidated", StateUnvalidated.String())
	assert.Equal(t, "executed", StateExecuted.String())
	assert.Equal(t, "unknown", State(9).String())
}

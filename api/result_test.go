package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/slydepay/errors"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name    string
		result  Result
		success bool
		code    string
		message string
		wantErr bool
	}{
		{"success", Result{"success": true, "result": "ok"}, true, "", "", false},
		{"rejected", Result{"success": false, "errorCode": "13", "errorMessage": "invalid pay token"}, false, "13", "invalid pay token", true},
		{"numeric code", Result{"success": false, "errorCode": float64(2)}, false, "2", "", true},
		{"no flag", Result{"X-Foo": "Bar"}, false, "", "", false},
		{"nil", nil, false, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.success, tt.result.Success())
			assert.Equal(t, tt.code, tt.result.ErrorCode())
			assert.Equal(t, tt.message, tt.result.ErrorMessage())

			err := tt.result.Err()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrRejected)
			assert.Equal(t, tt.code, errors.FromError(err).GetMetadata()["errorCode"])
		})
	}
}

func TestResultDecode(t *testing.T) {
	var invoice Invoice
	require.NoError(t, Result{"result": map[string]any{"payToken": "pt"}}.Decode(&invoice))
	assert.Equal(t, "pt", invoice.PayToken)

	var n int
	err := Result{"result": "text"}.Decode(&n)
	assert.ErrorIs(t, err, errors.ErrDecode)
}

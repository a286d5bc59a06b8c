package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/slydepay/core/crypto/hmac"
	"github.com/kochabx/slydepay/errors"
	"github.com/kochabx/slydepay/transport"
)

type creds struct {
	account string
	key     string
}

func (c creds) AccountIdentifier() string { return c.account }
func (c creds) MerchantKey() string       { return c.key }

var merchant = creds{account: "1234567890", key: "some-valid-merchantKey"}

func fixedClock(ts int64) func() time.Time {
	return func() time.Time { return time.Unix(ts, 0) }
}

func TestHMACSigner(t *testing.T) {
	signer := NewHMACSigner(WithHMACClock(fixedClock(1700000000)))

	header, err := signer.Sign(merchant, "pay-token")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(header, "Slydepay-HMAC-SHA256 Account=1234567890, Timestamp=1700000000, Signature="))

	again, err := signer.Sign(merchant, "pay-token")
	require.NoError(t, err)
	assert.Equal(t, header, again)

	other, err := signer.Sign(merchant, "other-token")
	require.NoError(t, err)
	assert.NotEqual(t, header, other)

	tests := []struct {
		name    string
		cfg     Credentials
		token   string
		header  string
		wantErr error
	}{
		{"valid", merchant, "pay-token", header, nil},
		{"wrong token", merchant, "other-token", header, hmac.ErrMismatch},
		{"wrong key", creds{account: "1234567890", key: "k"}, "pay-token", header, hmac.ErrMismatch},
		{"wrong account", creds{account: "1", key: merchant.key}, "pay-token", header, hmac.ErrMismatch},
		{"wrong scheme", merchant, "pay-token", "Bearer abc", hmac.ErrInvalidFormat},
		{"missing signature", merchant, "pay-token", "Slydepay-HMAC-SHA256 Account=1234567890, Timestamp=1700000000", hmac.ErrInvalidFormat},
		{"bad timestamp", merchant, "pay-token", "Slydepay-HMAC-SHA256 Account=1234567890, Timestamp=x, Signature=ab", hmac.ErrInvalidTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyHMAC(tt.cfg, tt.token, tt.header, hmac.WithClock(fixedClock(1700000060)))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	err = VerifyHMAC(merchant, "pay-token", header, hmac.WithClock(fixedClock(1700000000+3600)))
	assert.ErrorIs(t, err, hmac.ErrExpired)
}

func TestSignInvalidCredentials(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Credentials
		fields []string
	}{
		{"nil", nil, []string{"accountIdentifier", "merchantKey"}},
		{"blank account", creds{account: " ", key: "k"}, []string{"accountIdentifier"}},
		{"empty key", creds{account: "1"}, []string{"merchantKey"}},
	}

	signers := map[string]Signer{"hmac": NewHMACSigner(), "jwt": NewJWTSigner()}
	for name, signer := range signers {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				_, err := signer.Sign(tt.cfg, "")
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidConfiguration)
				assert.Equal(t, tt.fields, errors.Fields(err))
			})
		}
	}
}

func TestJWTSigner(t *testing.T) {
	now := time.Unix(1700000000, 0)
	signer := NewJWTSigner(WithJWTIssuer("slydepay-go"), WithJWTTTL(time.Minute), WithJWTClock(func() time.Time { return now }))

	header, err := signer.Sign(merchant, "pay-token")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(header, "Bearer "))

	claims, err := signer.Parse(merchant, header)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", claims.Subject)
	assert.Equal(t, "pay-token", claims.Token)
	assert.Equal(t, "slydepay-go", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, now.Add(time.Minute).Unix(), claims.ExpiresAt.Unix())

	second, err := signer.Sign(merchant, "pay-token")
	require.NoError(t, err)
	assert.NotEqual(t, header, second, "jti makes every token unique")

	_, err = signer.Parse(creds{account: "1234567890", key: "other"}, header)
	assert.ErrorIs(t, err, ErrInvalidJWT)

	_, err = signer.Parse(merchant, "Basic abc")
	assert.ErrorIs(t, err, ErrInvalidJWT)

	expired := NewJWTSigner(WithJWTClock(func() time.Time { return now.Add(time.Hour) }))
	_, err = expired.Parse(merchant, header)
	assert.ErrorIs(t, err, ErrInvalidJWT)
}

func TestTokenContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TokenFrom(ctx))
	assert.Equal(t, "t-1", TokenFrom(WithToken(ctx, "t-1")))
}

func TestMiddleware(t *testing.T) {
	var history []transport.Transaction
	signer := NewHMACSigner(WithHMACClock(fixedClock(1700000000)))
	stack := transport.NewStack(transport.NewMock(transport.MockResponse{})).
		Push(Middleware(merchant, signer), transport.History(&history))

	req := httptest.NewRequest(http.MethodPost, "https://app.slydepay.com.gh/api/merchant/invoice/send", nil)
	req = req.WithContext(WithToken(req.Context(), "pay-token"))

	resp, err := stack.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Len(t, history, 1)
	value := history[0].Request.Header.Get(AuthorizationHeader)
	require.NotEmpty(t, value)
	assert.NoError(t, VerifyHMAC(merchant, "pay-token", value, hmac.WithClock(fixedClock(1700000000))))
	assert.Empty(t, req.Header.Get(AuthorizationHeader), "caller request is not mutated")
}

func TestMiddlewareSignError(t *testing.T) {
	mock := transport.NewMock(transport.MockResponse{})
	failing := SignerFunc(func(Credentials, string) (string, error) {
		return "", errors.InvalidConfiguration("merchantKey")
	})
	stack := transport.NewStack(mock).Push(Middleware(merchant, failing))

	_, err := stack.RoundTrip(httptest.NewRequest(http.MethodPost, "https://app.slydepay.com.gh/", nil))
	assert.ErrorIs(t, err, errors.ErrInvalidConfiguration)
	assert.Zero(t, mock.Calls())
}

// Package auth signs gateway requests with the merchant credentials.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/kochabx/slydepay/errors"
	"github.com/kochabx/slydepay/transport"
)

// AuthorizationHeader is the header carrying the signature.
const AuthorizationHeader = "Authorization"

// Credentials identify a merchant. *slydepay.Config satisfies it.
type Credentials interface {
	AccountIdentifier() string
	MerchantKey() string
}

// Signer produces the Authorization header value for a request bound to token.
// token is the operation's pay-token and may be empty.
type Signer interface {
	Sign(cfg Credentials, token string) (string, error)
}

// SignerFunc adapts a function to Signer.
type SignerFunc func(cfg Credentials, token string) (string, error)

func (f SignerFunc) Sign(cfg Credentials, token string) (string, error) {
	return f(cfg, token)
}

func checkCredentials(cfg Credentials) error {
	if cfg == nil {
		return errors.InvalidConfiguration("accountIdentifier", "merchantKey")
	}
	var fields []string
	if strings.TrimSpace(cfg.AccountIdentifier()) == "" {
		fields = append(fields, "accountIdentifier")
	}
	if cfg.MerchantKey() == "" {
		fields = append(fields, "merchantKey")
	}
	if len(fields) > 0 {
		return errors.InvalidConfiguration(fields...)
	}
	return nil
}

type tokenKey struct{}

// WithToken returns a context carrying the pay-token to sign.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the pay-token carried by ctx.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Middleware sets the Authorization header of every request. A signing
// failure aborts the round trip.
func Middleware(cfg Credentials, signer Signer) transport.Middleware {
	if signer == nil {
		signer = NewHMACSigner()
	}
	return func(next http.RoundTripper) http.RoundTripper {
		return transport.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			value, err := signer.Sign(cfg, TokenFrom(req.Context()))
			if err != nil {
				if req.Body != nil {
					_ = req.Body.Close()
				}
				return nil, err
			}

			req = req.Clone(req.Context())
			req.Header.Set(AuthorizationHeader, value)
			return next.RoundTrip(req)
		})
	}
}

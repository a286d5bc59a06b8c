package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kochabx/slydepay/errors"
)

// DefaultJWTTTL is the lifetime of a signed JWT.
const DefaultJWTTTL = 5 * time.Minute

// ErrInvalidJWT is returned when a bearer token does not verify.
var ErrInvalidJWT = errors.New(401, "invalid bearer token")

// Claims of a request JWT. Subject is the account identifier.
type Claims struct {
	Token string `json:"tok,omitempty"`
	jwt.RegisteredClaims
}

// JWTSigner signs an HS256 JWT keyed by the merchant key.
type JWTSigner struct {
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// JWTOption configures a JWTSigner
type JWTOption func(*JWTSigner)

// WithJWTTTL sets the token lifetime
func WithJWTTTL(ttl time.Duration) JWTOption {
	return func(s *JWTSigner) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithJWTIssuer sets the iss claim
func WithJWTIssuer(issuer string) JWTOption {
	return func(s *JWTSigner) {
		s.issuer = issuer
	}
}

// WithJWTClock sets the time source
func WithJWTClock(fn func() time.Time) JWTOption {
	return func(s *JWTSigner) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewJWTSigner creates a bearer token signer.
func NewJWTSigner(opts ...JWTOption) *JWTSigner {
	s := &JWTSigner{ttl: DefaultJWTTTL, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign returns "Bearer <jwt>".
func (s *JWTSigner) Sign(cfg Credentials, token string) (string, error) {
	if err := checkCredentials(cfg); err != nil {
		return "", err
	}

	now := s.now()
	claims := &Claims{
		Token: token,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   cfg.AccountIdentifier(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.MerchantKey()))
	if err != nil {
		return "", errors.Wrap(err, 500, "failed to sign token")
	}
	return "Bearer " + signed, nil
}

// Parse verifies a value produced by Sign and returns its claims.
func (s *JWTSigner) Parse(cfg Credentials, header string) (*Claims, error) {
	if err := checkCredentials(cfg); err != nil {
		return nil, err
	}

	raw, ok := cutBearer(header)
	if !ok {
		return nil, ErrInvalidJWT
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.MerchantKey()), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(cfg.AccountIdentifier()),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, ErrInvalidJWT.WithCause(err)
	}
	return claims, nil
}

func cutBearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", false
	}
	return header[len(prefix):], true
}

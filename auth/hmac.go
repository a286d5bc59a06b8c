package auth

import (
	"strconv"
	"strings"
	"time"

	"github.com/kochabx/slydepay/core/crypto/hmac"
)

// HMACScheme prefixes HMAC authorization values.
const HMACScheme = "Slydepay-HMAC-SHA256"

// HMACSigner signs "<accountIdentifier>:<token>" with HMAC-SHA256 keyed by the merchant key.
type HMACSigner struct {
	now func() time.Time
}

// HMACOption configures an HMACSigner
type HMACOption func(*HMACSigner)

// WithHMACClock sets the time source
func WithHMACClock(fn func() time.Time) HMACOption {
	return func(s *HMACSigner) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewHMACSigner creates the default signer.
func NewHMACSigner(opts ...HMACOption) *HMACSigner {
	s := &HMACSigner{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign returns "Slydepay-HMAC-SHA256 Account=<acct>, Timestamp=<unix>, Signature=<hex>".
func (s *HMACSigner) Sign(cfg Credentials, token string) (string, error) {
	if err := checkCredentials(cfg); err != nil {
		return "", err
	}

	res, err := hmac.Sign(cfg.MerchantKey(),
		hmac.WithPayload(payload(cfg, token)),
		hmac.WithClock(s.now),
	)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(HMACScheme)
	b.WriteString(" Account=")
	b.WriteString(cfg.AccountIdentifier())
	b.WriteString(", Timestamp=")
	b.WriteString(strconv.FormatInt(res.Timestamp, 10))
	b.WriteString(", Signature=")
	b.WriteString(res.Signature)
	return b.String(), nil
}

// VerifyHMAC checks an authorization value produced by HMACSigner for token.
func VerifyHMAC(cfg Credentials, token, header string, opts ...func(*hmac.Option)) error {
	if err := checkCredentials(cfg); err != nil {
		return err
	}

	params, err := parseHMAC(header)
	if err != nil {
		return err
	}
	if params["Account"] != cfg.AccountIdentifier() {
		return hmac.ErrMismatch
	}

	timestamp, err := strconv.ParseInt(params["Timestamp"], 10, 64)
	if err != nil {
		return hmac.ErrInvalidTimestamp.WithCause(err)
	}

	opts = append([]func(*hmac.Option){hmac.WithPayload(payload(cfg, token))}, opts...)
	return hmac.Verify(cfg.MerchantKey(), params["Signature"], timestamp, opts...)
}

func payload(cfg Credentials, token string) string {
	return cfg.AccountIdentifier() + ":" + token
}

func parseHMAC(header string) (map[string]string, error) {
	rest, ok := strings.CutPrefix(header, HMACScheme+" ")
	if !ok {
		return nil, hmac.ErrInvalidFormat
	}

	params := make(map[string]string, 3)
	for part := range strings.SplitSeq(rest, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return nil, hmac.ErrInvalidFormat
		}
		params[key] = value
	}
	for _, key := range []string{"Account", "Timestamp", "Signature"} {
		if params[key] == "" {
			return nil, hmac.ErrInvalidFormat.WithMetadata(map[string]string{"missing": key})
		}
	}
	return params, nil
}

package slydepay

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/kochabx/slydepay/errors"
)

// Config holds the merchant credentials. It is immutable once created.
type Config struct {
	accountIdentifier string
	merchantKey       string
}

// NewConfig creates a Config. accountIdentifier is the merchant e-mail or
// mobile number, given as a string, an integer or a whole-number float.
// Named string types such as json.Number are accepted.
func NewConfig(accountIdentifier any, merchantKey string) (*Config, error) {
	var fields []string

	account, ok := normalizeAccount(accountIdentifier)
	if !ok {
		fields = append(fields, "accountIdentifier")
	}
	if strings.TrimSpace(merchantKey) == "" {
		fields = append(fields, "merchantKey")
	}
	if len(fields) > 0 {
		return nil, errors.InvalidConfiguration(fields...)
	}

	return &Config{accountIdentifier: account, merchantKey: merchantKey}, nil
}

// AccountIdentifier returns the merchant e-mail or mobile number.
func (c *Config) AccountIdentifier() string {
	if c == nil {
		return ""
	}
	return c.accountIdentifier
}

// MerchantKey returns the merchant secret.
func (c *Config) MerchantKey() string {
	if c == nil {
		return ""
	}
	return c.merchantKey
}

// Validate reports whether c is usable. A nil or zero Config is invalid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidConfiguration("accountIdentifier", "merchantKey")
	}
	var fields []string
	if c.accountIdentifier == "" {
		fields = append(fields, "accountIdentifier")
	}
	if c.merchantKey == "" {
		fields = append(fields, "merchantKey")
	}
	if len(fields) > 0 {
		return errors.InvalidConfiguration(fields...)
	}
	return nil
}

func normalizeAccount(v any) (string, bool) {
	if v == nil {
		return "", false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		return s, s != ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsInf(f, 0) || f != math.Trunc(f) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	default:
		return "", false
	}
}

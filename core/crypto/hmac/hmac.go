package hmac

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/kochabx/slydepay/errors"
)

// DefaultExpiration 默认签名有效期
const DefaultExpiration = 5 * time.Minute

var (
	ErrEmptySecret      = errors.New(errors.CodeInvalidConfiguration, "secret cannot be empty")
	ErrEmptySignature   = errors.New(401, "signature cannot be empty")
	ErrInvalidTimestamp = errors.New(401, "invalid timestamp")
	ErrExpired          = errors.New(401, "signature expired")
	ErrFutureTimestamp  = errors.New(401, "timestamp is in the future")
	ErrInvalidFormat    = errors.New(401, "invalid signature format")
	ErrMismatch         = errors.New(401, "signature mismatch")
)

// SignResult 签名结果
type SignResult struct {
	Signature string
	Timestamp int64
}

// Option 签名与验证选项
type Option struct {
	payload    string
	expiration time.Duration
	now        func() time.Time
}

// WithPayload 设置要签名的数据
func WithPayload(payload string) func(*Option) {
	return func(o *Option) {
		o.payload = payload
	}
}

// WithExpiration 设置签名有效期，默认 5 分钟
func WithExpiration(d time.Duration) func(*Option) {
	return func(o *Option) {
		o.expiration = d
	}
}

// WithClock 注入时间函数
func WithClock(fn func() time.Time) func(*Option) {
	return func(o *Option) {
		if fn != nil {
			o.now = fn
		}
	}
}

func newOption(opts []func(*Option)) *Option {
	opt := &Option{
		expiration: DefaultExpiration,
		now:        time.Now,
	}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// Sign 生成 HMAC-SHA256 签名，签名内容为 "timestamp\npayload"
func Sign(secret string, opts ...func(*Option)) (*SignResult, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	opt := newOption(opts)
	timestamp := opt.now().Unix()

	return &SignResult{
		Signature: hex.EncodeToString(compute(secret, timestamp, opt.payload)),
		Timestamp: timestamp,
	}, nil
}

// Verify 验证 HMAC-SHA256 签名，opts 需与签名时一致
func Verify(secret, signature string, timestamp int64, opts ...func(*Option)) error {
	if secret == "" {
		return ErrEmptySecret
	}
	if signature == "" {
		return ErrEmptySignature
	}
	if timestamp <= 0 {
		return ErrInvalidTimestamp
	}

	opt := newOption(opts)

	elapsed := opt.now().Unix() - timestamp
	if elapsed > int64(opt.expiration.Seconds()) {
		return ErrExpired
	}
	if elapsed < 0 {
		return ErrFutureTimestamp
	}

	got, err := hex.DecodeString(signature)
	if err != nil {
		return ErrInvalidFormat.WithCause(err)
	}

	// 常量时间比较
	if !hmac.Equal(got, compute(secret, timestamp, opt.payload)) {
		return ErrMismatch
	}
	return nil
}

func compute(secret string, timestamp int64, payload string) []byte {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(strconv.FormatInt(timestamp, 10)))
	h.Write([]byte{'\n'})
	h.Write([]byte(payload))
	return h.Sum(nil)
}

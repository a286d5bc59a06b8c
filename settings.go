package slydepay

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kochabx/slydepay/auth"
	"github.com/kochabx/slydepay/config"
	"github.com/kochabx/slydepay/errors"
	"github.com/kochabx/slydepay/log"
	"github.com/kochabx/slydepay/log/desensitize"
)

// Settings is the file/environment form of a client setup.
type Settings struct {
	AccountIdentifier string        `mapstructure:"account_identifier" validate:"required"`
	MerchantKey       string        `mapstructure:"merchant_key" validate:"required"`
	Timeout           time.Duration `mapstructure:"timeout"`
	SignerName        string        `mapstructure:"signer" validate:"omitempty,oneof=hmac jwt"`
	Log               LogSettings   `mapstructure:"log"`
}

// LogSettings selects the logger. Output is "console", "file" or "multi".
type LogSettings struct {
	Level  string         `mapstructure:"level"`
	Output string         `mapstructure:"output" validate:"omitempty,oneof=console file multi"`
	File   log.FileConfig `mapstructure:"file"`
}

// LoadSettings reads file with SLYDEPAY_* environment overrides.
func LoadSettings(file string, opts ...config.Option) (*Settings, error) {
	s := new(Settings)
	opts = append([]config.Option{
		config.WithFile(file),
		config.WithDefaults(map[string]any{
			"timeout":    DefaultTimeout,
			"signer":     "hmac",
			"log.level":  "info",
			"log.output": "console",
		}),
	}, opts...)

	if err := config.New(s, opts...).Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the credentials.
func (s *Settings) Config() (*Config, error) {
	return NewConfig(s.AccountIdentifier, s.MerchantKey)
}

// Signer returns the configured signer, HMAC by default.
func (s *Settings) Signer() auth.Signer {
	if strings.EqualFold(s.SignerName, "jwt") {
		return auth.NewJWTSigner(auth.WithJWTIssuer(Client))
	}
	return auth.NewHMACSigner()
}

// Logger builds the configured logger with secrets masked.
func (s *Settings) Logger() (*log.Logger, error) {
	level := zerolog.InfoLevel
	if s.Log.Level != "" {
		parsed, err := zerolog.ParseLevel(s.Log.Level)
		if err != nil {
			return nil, errors.InvalidConfiguration("log.level").WithCause(err)
		}
		level = parsed
	}

	opts := []log.Option{log.WithLevel(level), log.WithDesensitize(desensitize.Default())}
	switch s.Log.Output {
	case "file":
		return log.NewFile(s.Log.File, opts...)
	case "multi":
		return log.NewMulti(s.Log.File, opts...)
	default:
		return log.New(opts...), nil
	}
}

// Handler builds a Handler from the settings.
func (s *Settings) Handler(opts ...HandlerOption) (*Handler, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	logger, err := s.Logger()
	if err != nil {
		return nil, err
	}

	opts = append([]HandlerOption{
		WithSigner(s.Signer()),
		WithLogger(logger),
		WithTimeout(s.Timeout),
	}, opts...)
	return NewHandler(cfg, nil, opts...), nil
}

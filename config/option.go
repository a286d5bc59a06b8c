package config

import (
	"github.com/spf13/viper"

	"github.com/kochabx/slydepay/core/validator"
	"github.com/kochabx/slydepay/log"
)

// Option is a function that configures a Config
type Option func(*Config)

// WithViper sets a custom viper instance
func WithViper(v *viper.Viper) Option {
	return func(c *Config) {
		c.viper = v
	}
}

// WithValidator sets a custom validator
func WithValidator(v validator.Validator) Option {
	return func(c *Config) {
		c.validate = v
	}
}

// WithLoader sets the configuration loader
func WithLoader(loader Loader) Option {
	return func(c *Config) {
		c.loader = loader
	}
}

// WithFile sets the file read by the default loader
func WithFile(file string) Option {
	return func(c *Config) {
		c.file = file
	}
}

// WithEnvPrefix sets the environment variable prefix, SLYDEPAY by default
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithDefaults sets values used when neither the file nor the environment has them
func WithDefaults(defaults map[string]any) Option {
	return func(c *Config) {
		c.defaults = defaults
	}
}

// WithOnChange registers a callback run after a successful reload
func WithOnChange(fn func()) Option {
	return func(c *Config) {
		c.onChange = fn
	}
}

// WithLogger sets the logger used to report reloads
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}

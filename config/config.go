package config

import (
	"sync"

	"github.com/spf13/viper"

	"github.com/kochabx/slydepay/core/validator"
	"github.com/kochabx/slydepay/log"
)

// EnvPrefix is the default prefix of environment overrides.
const EnvPrefix = "SLYDEPAY"

// Config manages application configuration
type Config struct {
	mu        sync.RWMutex
	viper     *viper.Viper
	validate  validator.Validator
	target    any
	loader    Loader
	file      string
	envPrefix string
	defaults  map[string]any
	onChange  func()
	logger    *log.Logger
}

// New creates a new Config for target.
// Without WithLoader, a FileLoader reads "slydepay.yaml" with SLYDEPAY_ env overrides.
func New(target any, opts ...Option) *Config {
	c := &Config{
		viper:     viper.New(),
		validate:  validator.Validate,
		target:    target,
		file:      "slydepay.yaml",
		envPrefix: EnvPrefix,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = log.G()
	}
	if c.loader == nil {
		fl := NewFileLoader(c.file, c.envPrefix, c.viper, c.validate)
		fl.SetDefaults(c.defaults)
		c.loader = fl
	}

	return c
}

// Load reads the configuration using the configured loader
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loader.Load(c.target)
}

// Reload reloads the configuration from the loader
func (c *Config) Reload() error {
	if err := c.Load(); err != nil {
		return err
	}
	if c.onChange != nil {
		c.onChange()
	}
	return nil
}

// Read runs fn with the target under a read lock.
func (c *Config) Read(fn func(target any)) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fn(c.target)
}

// Watch reloads the target whenever the source changes
func (c *Config) Watch() error {
	return c.loader.Watch(func() {
		c.logger.Info().Msg("config change detected")

		if err := c.Reload(); err != nil {
			c.logger.Error().Err(err).Msg("failed to reload config after change")
			return
		}

		c.logger.Info().Msg("config reloaded successfully")
	})
}

// GetViper returns the underlying viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.viper
}

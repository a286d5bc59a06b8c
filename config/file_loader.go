package config

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/kochabx/slydepay/core/validator"
	"github.com/kochabx/slydepay/errors"
)

// FileLoader loads configuration from a file with environment overrides.
type FileLoader struct {
	viper    *viper.Viper
	validate validator.Validator
	file     string
	defaults map[string]any
}

// NewFileLoader creates a loader for file. The config type is taken from the
// extension. Keys are overridable by <envPrefix>_<KEY> environment variables
// with dots replaced by underscores.
func NewFileLoader(file, envPrefix string, v *viper.Viper, validate validator.Validator) *FileLoader {
	v.SetConfigFile(file)
	if ext := strings.TrimPrefix(filepath.Ext(file), "."); ext != "" {
		v.SetConfigType(ext)
	}

	if envPrefix != "" {
		v.SetEnvPrefix(envPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &FileLoader{
		viper:    v,
		validate: validate,
		file:     file,
	}
}

// SetDefaults registers fallback values applied before the file is read.
func (l *FileLoader) SetDefaults(defaults map[string]any) {
	l.defaults = defaults
}

// Load implements Loader interface
func (l *FileLoader) Load(target any) error {
	for key, value := range l.defaults {
		l.viper.SetDefault(key, value)
	}

	if err := l.viper.ReadInConfig(); err != nil {
		return errors.New(404, "config file not found: %v", err)
	}

	if err := l.viper.Unmarshal(target); err != nil {
		return errors.New(500, "config parse error: %v", err)
	}

	if l.validate != nil {
		if err := l.validate.Struct(target); err != nil {
			return errors.New(400, "config validation failed: %v", err).WithCause(err)
		}
	}

	return nil
}

// Watch implements Loader interface
func (l *FileLoader) Watch(callback func()) error {
	l.viper.OnConfigChange(func(e fsnotify.Event) {
		if callback != nil && e.Has(fsnotify.Write|fsnotify.Create) {
			callback()
		}
	})

	l.viper.WatchConfig()
	return nil
}

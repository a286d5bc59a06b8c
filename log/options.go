package log

import (
	"github.com/rs/zerolog"

	"github.com/kochabx/slydepay/log/desensitize"
)

// Option configures a Logger
type Option func(*Logger)

// WithLevel sets the minimum level
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) {
		l.level = &level
	}
}

// WithCaller adds the caller file:line to every event
func WithCaller() Option {
	return func(l *Logger) {
		l.caller = true
	}
}

// WithDesensitize masks output through hook
func WithDesensitize(hook *desensitize.Hook) Option {
	return func(l *Logger) {
		l.desensitizeHook = hook
	}
}

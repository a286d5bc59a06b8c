package api

import (
	"github.com/kochabx/slydepay/log"
)

// Option configures an operation
type Option func(*Operation)

// WithHandlerFactory replaces the transport factory, typically in tests
func WithHandlerFactory(factory HandlerFactory) Option {
	return func(o *Operation) {
		if factory != nil {
			o.factory = factory
		}
	}
}

// WithLogger sets the operation logger
func WithLogger(logger *log.Logger) Option {
	return func(o *Operation) {
		o.logger = logger
	}
}

// WithStrictStatus makes Run fail with errors.ErrUnexpectedStatus on non-2xx
// responses. The decoded body is still returned.
func WithStrictStatus() Option {
	return func(o *Operation) {
		o.strict = true
	}
}

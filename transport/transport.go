// Package transport carries gateway requests: a middleware stack over an
// http.RoundTripper, a JSON request client and test interceptors.
package transport

import (
	"net/http"
	"time"
)

// Doer executes a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Middleware decorates a RoundTripper.
type Middleware func(next http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Stack is an ordered middleware chain over a base RoundTripper.
// The first pushed middleware is the outermost; later ones run closer to the wire.
type Stack struct {
	base        http.RoundTripper
	middlewares []Middleware
}

// NewStack creates a stack over base, http.DefaultTransport when nil.
func NewStack(base http.RoundTripper) *Stack {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Stack{base: base}
}

// Push appends middlewares. Nil entries are ignored.
func (s *Stack) Push(mws ...Middleware) *Stack {
	for _, mw := range mws {
		if mw != nil {
			s.middlewares = append(s.middlewares, mw)
		}
	}
	return s
}

// Len returns the number of middlewares.
func (s *Stack) Len() int {
	return len(s.middlewares)
}

// RoundTrip implements http.RoundTripper.
func (s *Stack) RoundTrip(req *http.Request) (*http.Response, error) {
	return s.handler().RoundTrip(req)
}

// Client returns an *http.Client sending through the stack.
func (s *Stack) Client(timeout time.Duration) *http.Client {
	return &http.Client{Transport: s, Timeout: timeout}
}

func (s *Stack) handler() http.RoundTripper {
	rt := s.base
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		rt = s.middlewares[i](rt)
	}
	return rt
}

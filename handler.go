package slydepay

import (
	"net/http"
	"time"

	"github.com/kochabx/slydepay/auth"
	"github.com/kochabx/slydepay/log"
	"github.com/kochabx/slydepay/metrics"
	"github.com/kochabx/slydepay/transport"
)

// DefaultTimeout bounds a single gateway round trip.
const DefaultTimeout = 30 * time.Second

// Handler builds the middleware stack every gateway request goes through.
type Handler struct {
	cfg         *Config
	base        http.RoundTripper
	signer      auth.Signer
	logger      *log.Logger
	metrics     *metrics.Prometheus
	timeout     time.Duration
	middlewares []transport.Middleware
}

// HandlerOption configures a Handler
type HandlerOption func(*Handler)

// WithSigner replaces the default HMAC signer
func WithSigner(signer auth.Signer) HandlerOption {
	return func(h *Handler) {
		if signer != nil {
			h.signer = signer
		}
	}
}

// WithLogger sets the request logger
func WithLogger(logger *log.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithMetrics records requests in p
func WithMetrics(p *metrics.Prometheus) HandlerOption {
	return func(h *Handler) {
		h.metrics = p
	}
}

// WithTimeout sets the client timeout, DefaultTimeout when unset
func WithTimeout(timeout time.Duration) HandlerOption {
	return func(h *Handler) {
		if timeout > 0 {
			h.timeout = timeout
		}
	}
}

// WithMiddleware appends middlewares run after the built-in ones, closest to the wire
func WithMiddleware(mws ...transport.Middleware) HandlerOption {
	return func(h *Handler) {
		h.middlewares = append(h.middlewares, mws...)
	}
}

// NewHandler creates a Handler signing with cfg over base, http.DefaultTransport when nil.
func NewHandler(cfg *Config, base http.RoundTripper, opts ...HandlerOption) *Handler {
	h := &Handler{
		cfg:     cfg,
		base:    base,
		signer:  auth.NewHMACSigner(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = log.G()
	}
	return h
}

// CreateHandler returns a fresh stack: request id, user agent, authorization,
// metrics when enabled, logging, then the extra middlewares.
func (h *Handler) CreateHandler() *transport.Stack {
	stack := transport.NewStack(h.base).Push(
		transport.RequestID(),
		transport.Header("User-Agent", UserAgent()),
		auth.Middleware(h.cfg, h.signer),
	)
	if h.metrics != nil {
		stack.Push(h.metrics.Middleware())
	}
	return stack.Push(transport.Logging(h.logger)).Push(h.middlewares...)
}

// Client returns an *http.Client over a fresh stack.
func (h *Handler) Client() *http.Client {
	return h.CreateHandler().Client(h.timeout)
}

// DefaultHandlerFactory builds the transport used by operations that were not
// given a factory.
func DefaultHandlerFactory(cfg *Config) transport.Doer {
	return NewHandler(cfg, nil).Client()
}

// Package metrics exposes gateway client metrics through a Prometheus registry.
package metrics

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kochabx/slydepay/transport"
)

const namespace = "slydepay"

// Metrics is anything owning a registry.
type Metrics interface {
	Registry() *prometheus.Registry
}

// Prometheus records gateway requests.
type Prometheus struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Option configures a Prometheus
type Option func(*Prometheus)

// WithGoCollectorRuntimeMetrics registers Go runtime metrics
func WithGoCollectorRuntimeMetrics() Option {
	return func(p *Prometheus) {
		p.registry.MustRegister(collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.GoRuntimeMetricsRule{Matcher: regexp.MustCompile("/.*")}),
		))
	}
}

// WithBuildInfoCollector registers the build info collector
func WithBuildInfoCollector() Option {
	return func(p *Prometheus) {
		p.registry.MustRegister(collectors.NewBuildInfoCollector())
	}
}

// New creates a Prometheus with its own registry.
func New(opts ...Option) *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Gateway requests by method, path and status code.",
		}, []string{"method", "path", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Gateway request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
	p.registry.MustRegister(p.requests, p.duration)

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the underlying registry
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Middleware observes every round trip. Failed round trips are counted with code "error".
func (p *Prometheus) Middleware() transport.Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return transport.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)

			code := "error"
			if err == nil {
				code = strconv.Itoa(resp.StatusCode)
			}
			p.requests.WithLabelValues(req.Method, req.URL.Path, code).Inc()
			p.duration.WithLabelValues(req.Method, req.URL.Path).Observe(time.Since(start).Seconds())

			return resp, err
		})
	}
}

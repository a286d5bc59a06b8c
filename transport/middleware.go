package transport

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kochabx/slydepay/log"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

// Header sets key to value on every request.
func Header(key, value string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			req = req.Clone(req.Context())
			req.Header.Set(key, value)
			return next.RoundTrip(req)
		})
	}
}

// RequestID sets X-Request-Id to a new UUID unless the caller set one.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(RequestIDHeader) == "" {
				req = req.Clone(req.Context())
				req.Header.Set(RequestIDHeader, uuid.NewString())
			}
			return next.RoundTrip(req)
		})
	}
}

// Logging records every round trip at debug level, failures at warn.
func Logging(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.G()
	}
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)

			if err != nil {
				logger.Warn().
					Err(err).
					Str("method", req.Method).
					Str("url", req.URL.Redacted()).
					Str("request_id", req.Header.Get(RequestIDHeader)).
					Dur("duration", time.Since(start)).
					Msg("gateway request failed")
				return nil, err
			}

			logger.Debug().
				Str("method", req.Method).
				Str("url", req.URL.Redacted()).
				Str("request_id", req.Header.Get(RequestIDHeader)).
				Int("status", resp.StatusCode).
				Dur("duration", time.Since(start)).
				Msg("gateway request")
			return resp, nil
		})
	}
}

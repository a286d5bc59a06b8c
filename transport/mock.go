package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/kochabx/slydepay/errors"
)

// ErrMockExhausted is returned once every scripted response was consumed.
var ErrMockExhausted = errors.New(errors.CodeTransport, "mock queue is empty")

// MockResponse is one scripted reply. A non-nil Err fails the round trip.
type MockResponse struct {
	Status int
	Header http.Header
	Body   string
	Err    error
}

// Mock is a RoundTripper replaying scripted responses in order. A request whose
// context is done fails with the context error without consuming a response.
type Mock struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     int
}

// NewMock queues responses.
func NewMock(responses ...MockResponse) *Mock {
	return &Mock{responses: responses}
}

// Append queues more responses.
func (m *Mock) Append(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.responses = append(m.responses, responses...)
}

// Calls returns how many round trips reached the mock.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.calls
}

// Remaining returns the number of unconsumed responses.
func (m *Mock) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.responses)
}

// RoundTrip implements http.RoundTripper.
func (m *Mock) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Body != nil {
		_ = req.Body.Close()
	}

	m.mu.Lock()
	m.calls++
	if err := req.Context().Err(); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	if len(m.responses) == 0 {
		m.mu.Unlock()
		return nil, ErrMockExhausted
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	m.mu.Unlock()

	if next.Err != nil {
		return nil, next.Err
	}

	status := next.Status
	if status == 0 {
		status = http.StatusOK
	}
	header := next.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(next.Body)),
		ContentLength: int64(len(next.Body)),
		Request:       req,
	}, nil
}

// Transaction is one recorded exchange. Bodies are captured and restored
// so downstream readers still see them.
type Transaction struct {
	Request      *http.Request
	RequestBody  []byte
	Response     *http.Response
	ResponseBody []byte
	Err          error
}

// History appends every exchange passing through it to container.
func History(container *[]Transaction) Middleware {
	var mu sync.Mutex
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			tx := Transaction{Request: req}

			if req.Body != nil {
				body, err := io.ReadAll(req.Body)
				_ = req.Body.Close()
				if err != nil {
					return nil, err
				}
				tx.RequestBody = body
				req = req.Clone(req.Context())
				req.Body = io.NopCloser(bytes.NewReader(body))
				tx.Request = req
			}

			resp, err := next.RoundTrip(req)
			tx.Response, tx.Err = resp, err

			if resp != nil && resp.Body != nil {
				body, readErr := io.ReadAll(resp.Body)
				_ = resp.Body.Close()
				if readErr != nil {
					return nil, readErr
				}
				tx.ResponseBody = body
				resp.Body = io.NopCloser(bytes.NewReader(body))
			}

			mu.Lock()
			*container = append(*container, tx)
			mu.Unlock()

			return resp, err
		})
	}
}

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/kochabx/slydepay/errors"
)

const (
	defaultBufferSize = 4096
	maxBufferSize     = 1024 * 1024 // 1MB
)

// Client sends requests through a Doer and decodes JSON responses.
type Client struct {
	doer           Doer
	requestOptPool sync.Pool
	bufferPool     sync.Pool
}

// NewClient creates a Client over doer, http.DefaultClient when nil.
func NewClient(doer Doer) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{
		doer: doer,
		requestOptPool: sync.Pool{
			New: func() any {
				return &RequestOption{header: make(map[string]string, 8)}
			},
		},
		bufferPool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, defaultBufferSize))
			},
		},
	}
}

// RequestOption holds options for a single request
type RequestOption struct {
	ctx         context.Context
	header      map[string]string
	contentType string
	response    any
}

// WithContext sets the request context
func WithContext(ctx context.Context) func(*RequestOption) {
	return func(opt *RequestOption) {
		opt.ctx = ctx
	}
}

// WithHeader sets request headers
func WithHeader(header map[string]string) func(*RequestOption) {
	return func(opt *RequestOption) {
		maps.Copy(opt.header, header)
	}
}

// WithContentType overrides the body content type
func WithContentType(contentType string) func(*RequestOption) {
	return func(opt *RequestOption) {
		opt.contentType = contentType
	}
}

// WithResponse decodes the JSON response body into response
func WithResponse(response any) func(*RequestOption) {
	return func(opt *RequestOption) {
		opt.response = response
	}
}

func (opt *RequestOption) reset() {
	opt.ctx = nil
	clear(opt.header)
	opt.contentType = ""
	opt.response = nil
}

// Request sends a request. body may be nil, an io.Reader, url.Values (form) or
// any JSON-marshalable value. Failures to reach the gateway are reported as
// errors.ErrTransport and undecodable bodies as errors.ErrDecode; in the latter
// case the response is still returned.
func (cli *Client) Request(method, rawURL string, body any, opts ...func(*RequestOption)) (*http.Response, error) {
	opt := cli.getRequestOption()
	defer cli.putRequestOption(opt)

	for _, o := range opts {
		o(opt)
	}

	ctx := opt.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := cli.createRequest(ctx, method, rawURL, body, opt)
	if err != nil {
		return nil, err
	}
	for k, v := range opt.header {
		req.Header.Set(k, v)
	}

	resp, err := cli.doer.Do(req)
	if err != nil {
		return nil, errors.Transport(err)
	}

	return cli.processResponse(resp, opt.response)
}

func (cli *Client) createRequest(ctx context.Context, method, rawURL string, body any, opt *RequestOption) (*http.Request, error) {
	var (
		reader      io.Reader
		contentType string
	)

	switch v := body.(type) {
	case nil:
	case io.Reader:
		reader = v
	case url.Values:
		reader = strings.NewReader(v.Encode())
		contentType = ContentTypeForm
	default:
		buf := cli.getBuffer()
		defer cli.putBuffer(buf)

		if err := json.NewEncoder(buf).Encode(v); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfiguration, "failed to encode request body")
		}
		// the pooled buffer is reused, the request needs its own copy
		reader = bytes.NewReader(bytes.Clone(buf.Bytes()))
		contentType = ContentTypeJSON
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, errors.Transport(err)
	}

	if opt.contentType != "" {
		contentType = opt.contentType
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", ContentTypeJSON)
	return req, nil
}

func (cli *Client) processResponse(resp *http.Response, dest any) (*http.Response, error) {
	if dest == nil {
		return resp, nil
	}

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return resp, errors.Decode(err)
	}
	return resp, nil
}

func (cli *Client) getRequestOption() *RequestOption {
	opt := cli.requestOptPool.Get().(*RequestOption)
	opt.reset()
	return opt
}

func (cli *Client) putRequestOption(opt *RequestOption) {
	cli.requestOptPool.Put(opt)
}

func (cli *Client) getBuffer() *bytes.Buffer {
	buf := cli.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func (cli *Client) putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= maxBufferSize {
		cli.bufferPool.Put(buf)
	}
}

// Get performs a GET request
func (cli *Client) Get(rawURL string, opts ...func(*RequestOption)) (*http.Response, error) {
	return cli.Request(http.MethodGet, rawURL, nil, opts...)
}

// Post performs a POST request
func (cli *Client) Post(rawURL string, body any, opts ...func(*RequestOption)) (*http.Response, error) {
	return cli.Request(http.MethodPost, rawURL, body, opts...)
}

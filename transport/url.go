package transport

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// URLBuilder builds URLs with a chained API.
type URLBuilder struct {
	scheme string
	host   string
	port   string
	path   strings.Builder
	query  url.Values
}

// NewURLBuilder returns an empty builder.
func NewURLBuilder() *URLBuilder {
	return &URLBuilder{query: make(url.Values)}
}

// Scheme sets the scheme
func (b *URLBuilder) Scheme(scheme string) *URLBuilder {
	b.scheme = scheme
	return b
}

// Host sets the host
func (b *URLBuilder) Host(host string) *URLBuilder {
	b.host = host
	return b
}

// Port sets the port; "" and "0" keep the scheme default
func (b *URLBuilder) Port(port string) *URLBuilder {
	if port != "" && port != "0" {
		b.port = port
	}
	return b
}

// Path replaces the path
func (b *URLBuilder) Path(p string) *URLBuilder {
	b.path.Reset()
	b.path.WriteString(p)
	return b
}

// AppendPath joins segments onto the path, skipping empty ones
func (b *URLBuilder) AppendPath(segments ...string) *URLBuilder {
	parts := make([]string, 0, len(segments)+1)
	if current := b.path.String(); current != "" {
		parts = append(parts, current)
	}
	for _, segment := range segments {
		if segment != "" {
			parts = append(parts, segment)
		}
	}
	if len(parts) == 0 {
		return b
	}

	joined := path.Join(parts...)
	if !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	b.path.Reset()
	b.path.WriteString(joined)
	return b
}

// Query adds a query parameter
func (b *URLBuilder) Query(key, value string) *URLBuilder {
	b.query.Add(key, value)
	return b
}

// SetQuery sets a query parameter, replacing existing values
func (b *URLBuilder) SetQuery(key, value string) *URLBuilder {
	b.query.Set(key, value)
	return b
}

// Build returns the URL string
func (b *URLBuilder) Build() (string, error) {
	if b.scheme == "" || b.host == "" {
		return "", fmt.Errorf("url requires scheme and host, got %q and %q", b.scheme, b.host)
	}

	u := &url.URL{
		Scheme: b.scheme,
		Host:   b.buildHost(),
		Path:   b.path.String(),
	}
	if len(b.query) > 0 {
		u.RawQuery = b.query.Encode()
	}
	return u.String(), nil
}

// MustBuild is like Build but panics on error
func (b *URLBuilder) MustBuild() string {
	result, err := b.Build()
	if err != nil {
		panic(err)
	}
	return result
}

// String implements fmt.Stringer
func (b *URLBuilder) String() string {
	result, _ := b.Build()
	return result
}

func (b *URLBuilder) buildHost() string {
	if b.port == "" {
		return b.host
	}
	return b.host + ":" + b.port
}

// BuildHTTPS starts an https URL for host with the joined path segments.
func BuildHTTPS(host string, segments ...string) *URLBuilder {
	return NewURLBuilder().Scheme("https").Host(host).AppendPath(segments...)
}

// FromURL parses rawURL into a builder
func FromURL(rawURL string) (*URLBuilder, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	b := &URLBuilder{
		scheme: u.Scheme,
		host:   u.Hostname(),
		port:   u.Port(),
		query:  u.Query(),
	}
	b.path.WriteString(u.Path)
	return b, nil
}

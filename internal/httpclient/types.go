package httpclient

import (
	"context"
	"io"
	"time"
)

// HTTPRequest represents an HTTP request
type HTTPRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    io.Reader
	Context context.Context
}

// HTTPResponse represents an HTTP response
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// HTTPClientConfig holds configuration for HTTP clients
type HTTPClientConfig struct {
	Timeout             time.Duration     // Request timeout
	InsecureSkipVerify  bool              // Skip TLS verification
	FollowRedirects     bool              // Whether to follow redirects
	MaxRedirects        int               // Maximum number of redirects to follow
	Proxy               string            // Proxy URL (HTTP/SOCKS)
	CustomHeaders       map[string]string // Custom headers to add to all requests
	UserAgent           string            // User-Agent header value
	MaxIdleConns        int               // Maximum idle connections
	MaxIdleConnsPerHost int               // Maximum idle connections per host
	IdleConnTimeout     time.Duration     // Idle connection timeout
	TLSHandshakeTimeout time.Duration     // TLS handshake timeout
	DialTimeout         time.Duration     // Connection dial timeout
	EnableHTTP2         bool              // Enable HTTP/2 support
}

// DefaultHTTPClientConfig returns the default HTTP client configuration
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             30 * time.Second,
		InsecureSkipVerify:  false,
		FollowRedirects:     true,
		MaxRedirects:        10,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DialTimeout:         10 * time.Second,
		EnableHTTP2:         true,
		CustomHeaders: map[string]string{
			"Accept": "*/*",
		},
	}
}

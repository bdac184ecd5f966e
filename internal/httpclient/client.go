package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/aleister1102/sitemapdiff/internal/config"
	"github.com/aleister1102/sitemapdiff/internal/errorwrapper"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// HTTPClient wraps net/http.Client behind the HTTPRequest/HTTPResponse interface
type HTTPClient struct {
	client       *http.Client
	config       HTTPClientConfig
	logger       zerolog.Logger
	retryHandler *RetryHandler
}

// ConfigFromGlobal converts the file-level HTTP section into a client config
func ConfigFromGlobal(cfg config.HTTPClientConfig) HTTPClientConfig {
	clientConfig := DefaultHTTPClientConfig()

	if cfg.TimeoutSecs > 0 {
		clientConfig.Timeout = time.Duration(cfg.TimeoutSecs) * time.Second
	}
	clientConfig.InsecureSkipVerify = cfg.InsecureSkipTLS
	clientConfig.FollowRedirects = cfg.FollowRedirects
	if cfg.MaxRedirects > 0 {
		clientConfig.MaxRedirects = cfg.MaxRedirects
	}
	clientConfig.Proxy = cfg.Proxy
	if cfg.UserAgent != "" {
		clientConfig.UserAgent = cfg.UserAgent
	}
	for key, value := range cfg.CustomHeaders {
		clientConfig.CustomHeaders[key] = value
	}

	return clientConfig
}

// NewHTTPClient creates a new HTTP client with the given configuration
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	transport := &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		TLSHandshakeTimeout: config.TLSHandshakeTimeout,
		DialContext: (&net.Dialer{
			Timeout: config.DialTimeout,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		}
	}

	if config.Proxy != "" {
		proxyURL, err := url.Parse(config.Proxy)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse proxy URL")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		logger.Info().Str("proxy", config.Proxy).Msg("HTTP client configured with proxy")
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if config.MaxRedirects > 0 {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= config.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", config.MaxRedirects)
			}
			return nil
		}
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("follow_redirects", config.FollowRedirects).
		Int("max_redirects", config.MaxRedirects).
		Bool("http2_enabled", config.EnableHTTP2).
		Msg("HTTP client created")

	return &HTTPClient{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// WithRetryHandler attaches a retry handler used by Do.
func (c *HTTPClient) WithRetryHandler(handler *RetryHandler) *HTTPClient {
	c.retryHandler = handler
	return c
}

// Do performs an HTTP request, with retries if a retry handler is configured.
func (c *HTTPClient) Do(req *HTTPRequest) (*HTTPResponse, error) {
	if c.retryHandler != nil {
		ctx := req.Context
		if ctx == nil {
			ctx = context.Background()
		}
		return c.retryHandler.DoWithRetry(ctx, c.do, req)
	}

	return c.do(req)
}

// do performs the actual HTTP request. It's an internal method used by Do.
func (c *HTTPClient) do(req *HTTPRequest) (*HTTPResponse, error) {
	var body io.Reader
	if req.Body != nil {
		body = req.Body
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequest(method, req.URL, body)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create HTTP request")
	}

	if req.Context != nil {
		httpReq = httpReq.WithContext(req.Context)
	}

	// Default headers from config first, request headers can override
	for key, value := range c.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "HTTP request failed")
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read response body")
	}

	httpResp := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    make(map[string]string),
		Body:       buf.Bytes(),
	}

	for key, values := range resp.Header {
		if len(values) > 0 {
			httpResp.Headers[key] = values[0]
		}
	}

	return httpResp, nil
}

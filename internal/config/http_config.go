package config

// HTTPClientConfig defines the HTTP transport settings used when fetching sitemaps.
type HTTPClientConfig struct {
	CustomHeaders    map[string]string `json:"custom_headers,omitempty" yaml:"custom_headers,omitempty"`
	FollowRedirects  bool              `json:"follow_redirects" yaml:"follow_redirects"`
	InsecureSkipTLS  bool              `json:"insecure_skip_tls" yaml:"insecure_skip_tls"`
	MaxRedirects     int               `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"omitempty,min=0"`
	Proxy            string            `json:"proxy,omitempty" yaml:"proxy,omitempty" validate:"omitempty,url"`
	Retries          int               `json:"retries,omitempty" yaml:"retries,omitempty" validate:"omitempty,min=0"`
	RetryBaseDelayMs int               `json:"retry_base_delay_ms,omitempty" yaml:"retry_base_delay_ms,omitempty" validate:"omitempty,min=1"`
	RetryMaxDelayMs  int               `json:"retry_max_delay_ms,omitempty" yaml:"retry_max_delay_ms,omitempty" validate:"omitempty,min=1"`
	TimeoutSecs      int               `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
	UserAgent        string            `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		CustomHeaders:    make(map[string]string),
		FollowRedirects:  true,
		InsecureSkipTLS:  DefaultHTTPSkipTLSVerify,
		MaxRedirects:     DefaultHTTPMaxRedirects,
		Retries:          DefaultHTTPRetries,
		RetryBaseDelayMs: DefaultHTTPRetryBaseMs,
		RetryMaxDelayMs:  DefaultHTTPRetryMaxMs,
		TimeoutSecs:      DefaultHTTPTimeoutSecs,
		UserAgent:        DefaultHTTPUserAgent,
	}
}

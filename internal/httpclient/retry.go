package httpclient

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/aleister1102/sitemapdiff/internal/errorwrapper"
	"github.com/rs/zerolog"
)

// RetryHandler handles HTTP request retries with exponential backoff
type RetryHandler struct {
	maxRetries       int
	baseDelay        time.Duration
	maxDelay         time.Duration
	enableJitter     bool
	retryStatusCodes map[int]bool
	logger           zerolog.Logger
}

// RetryHandlerConfig configuration for retry handler
type RetryHandlerConfig struct {
	MaxRetries       int           `json:"max_retries"`
	BaseDelay        time.Duration `json:"base_delay"`
	MaxDelay         time.Duration `json:"max_delay"`
	EnableJitter     bool          `json:"enable_jitter"`
	RetryStatusCodes []int         `json:"retry_status_codes"`
}

// DefaultRetryHandlerConfig returns a retry config suitable for sitemap fetches
func DefaultRetryHandlerConfig() RetryHandlerConfig {
	return RetryHandlerConfig{
		MaxRetries:       2,
		BaseDelay:        500 * time.Millisecond,
		MaxDelay:         5 * time.Second,
		EnableJitter:     true,
		RetryStatusCodes: []int{429, 500, 502, 503, 504},
	}
}

// NewRetryHandler creates a new retry handler
func NewRetryHandler(config RetryHandlerConfig, logger zerolog.Logger) *RetryHandler {
	statusCodeMap := make(map[int]bool)
	for _, code := range config.RetryStatusCodes {
		statusCodeMap[code] = true
	}

	return &RetryHandler{
		maxRetries:       config.MaxRetries,
		baseDelay:        config.BaseDelay,
		maxDelay:         config.MaxDelay,
		enableJitter:     config.EnableJitter,
		retryStatusCodes: statusCodeMap,
		logger:           logger.With().Str("component", "RetryHandler").Logger(),
	}
}

// ShouldRetry determines if a request should be retried based on status code
func (rh *RetryHandler) ShouldRetry(statusCode int, attempt int) bool {
	if attempt >= rh.maxRetries {
		return false
	}
	return rh.retryStatusCodes[statusCode]
}

// CalculateDelay calculates the delay for the next retry attempt using exponential backoff
func (rh *RetryHandler) CalculateDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return rh.baseDelay
	}

	// Exponential backoff: baseDelay * 2^attempt
	delay := rh.baseDelay * time.Duration(math.Pow(2, float64(attempt)))

	if delay > rh.maxDelay {
		delay = rh.maxDelay
	}

	// Add jitter to prevent thundering herd
	if rh.enableJitter && delay.Milliseconds() >= 10 {
		jitter := time.Duration(rand.Intn(int(delay.Milliseconds()/10))) * time.Millisecond
		delay += jitter
	}

	return delay
}

// WaitForRetry waits for the calculated delay before retrying
func (rh *RetryHandler) WaitForRetry(ctx context.Context, attempt int, statusCode int, url string) error {
	delay := rh.CalculateDelay(attempt)

	rh.logger.Warn().
		Str("url", url).
		Int("status_code", statusCode).
		Int("attempt", attempt+1).
		Int("max_retries", rh.maxRetries).
		Dur("delay", delay).
		Msg("Retryable status, waiting before retry")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// DoWithRetry executes an HTTP request with retry logic
func (rh *RetryHandler) DoWithRetry(ctx context.Context, do func(*HTTPRequest) (*HTTPResponse, error), req *HTTPRequest) (*HTTPResponse, error) {
	var lastResp *HTTPResponse
	var lastErr error

	for attempt := 0; attempt <= rh.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := do(req)
		if err != nil {
			lastErr = err
			lastResp = nil

			if attempt < rh.maxRetries {
				rh.logger.Debug().
					Str("url", req.URL).
					Int("attempt", attempt+1).
					Err(err).
					Msg("Network error, retrying immediately")
				continue
			}
			break
		}

		lastResp = resp
		lastErr = nil

		if rh.ShouldRetry(resp.StatusCode, attempt) {
			if attempt < rh.maxRetries {
				if err := rh.WaitForRetry(ctx, attempt, resp.StatusCode, req.URL); err != nil {
					return nil, err
				}
				continue
			}
		}

		return resp, nil
	}

	if lastErr != nil {
		return nil, errorwrapper.WrapError(lastErr, "all retry attempts failed")
	}

	return lastResp, nil
}

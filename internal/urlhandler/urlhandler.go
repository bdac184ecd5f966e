package urlhandler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL normalizes a URL string, ensuring it has a scheme, a valid host,
// and no surrounding whitespace.
func NormalizeURL(rawURL string) (string, error) {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return "", errors.New("URL is empty or only whitespace")
	}

	// Add scheme if missing
	if !strings.Contains(trimmedURL, "://") && !strings.HasPrefix(trimmedURL, "//") {
		trimmedURL = "http://" + trimmedURL
	}

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return "", fmt.Errorf("could not parse URL '%s': %w", trimmedURL, err)
	}

	if parsedURL.Host == "" {
		return "", errors.New("URL lacks a valid hostname")
	}

	return parsedURL.String(), nil
}

// ValidateURLFormat validates URL format using net/url parsing (for config validation)
func ValidateURLFormat(rawURL string) error {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return fmt.Errorf("URL is empty")
	}

	_, err := url.ParseRequestURI(trimmedURL)
	if err != nil {
		return fmt.Errorf("invalid URL format '%s': %w", trimmedURL, err)
	}

	return nil
}

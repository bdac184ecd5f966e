package differ

import (
	"net/url"
	"strings"

	"github.com/aleister1102/sitemapdiff/internal/config"
)

// NormalizeOptions configures how a raw URL is reduced to a comparison key.
// It is an immutable value passed into every normalization call.
type NormalizeOptions struct {
	// KeepTrailingSlash preserves a trailing '/' instead of stripping it.
	// The root path "/" is always preserved either way.
	KeepTrailingSlash bool
	// RespectCase keeps the path case instead of lowercasing it.
	RespectCase bool
	// IncludeQuery appends "?<query>" to the key when a query is present.
	IncludeQuery bool
}

// OptionsFromConfig derives normalization options from the compare section.
func OptionsFromConfig(cfg config.CompareConfig) NormalizeOptions {
	return NormalizeOptions{
		KeepTrailingSlash: cfg.KeepTrailingSlash,
		RespectCase:       cfg.RespectCase,
		IncludeQuery:      cfg.IncludeQuery,
	}
}

// NormalizePath converts a raw URL into its comparison key: the path
// component with scheme, host and fragment dropped. The reduction is a pure
// function of (rawURL, opts) and is idempotent: normalizing an already
// normalized key yields the same key.
func NormalizePath(rawURL string, opts NormalizeOptions) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", err
	}

	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}

	if opts.IncludeQuery && parsed.RawQuery != "" {
		path = path + "?" + parsed.RawQuery
	}

	if !opts.KeepTrailingSlash && path != "/" {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}

	if !opts.RespectCase {
		path = strings.ToLower(path)
	}

	return path, nil
}

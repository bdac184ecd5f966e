package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePath_Defaults(t *testing.T) {
	opts := NormalizeOptions{}

	tests := []struct {
		name     string
		rawURL   string
		expected string
	}{
		{
			name:     "full URL drops scheme and host",
			rawURL:   "https://example.com/about",
			expected: "/about",
		},
		{
			name:     "bare host becomes root",
			rawURL:   "https://example.com",
			expected: "/",
		},
		{
			name:     "host with trailing slash becomes root",
			rawURL:   "https://example.com/",
			expected: "/",
		},
		{
			name:     "trailing slash stripped",
			rawURL:   "https://example.com/blog/",
			expected: "/blog",
		},
		{
			name:     "path lowercased",
			rawURL:   "https://example.com/About/Team",
			expected: "/about/team",
		},
		{
			name:     "query dropped",
			rawURL:   "https://example.com/search?q=go",
			expected: "/search",
		},
		{
			name:     "fragment dropped",
			rawURL:   "https://example.com/docs#install",
			expected: "/docs",
		},
		{
			name:     "surrounding whitespace trimmed",
			rawURL:   "  https://example.com/x  ",
			expected: "/x",
		},
		{
			name:     "percent encoding preserved",
			rawURL:   "https://example.com/caf%C3%A9",
			expected: "/caf%c3%a9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizePath(tt.rawURL, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizePath_Options(t *testing.T) {
	tests := []struct {
		name     string
		rawURL   string
		opts     NormalizeOptions
		expected string
	}{
		{
			name:     "keep trailing slash",
			rawURL:   "https://example.com/blog/",
			opts:     NormalizeOptions{KeepTrailingSlash: true},
			expected: "/blog/",
		},
		{
			name:     "root survives with keep trailing slash",
			rawURL:   "https://example.com/",
			opts:     NormalizeOptions{KeepTrailingSlash: true},
			expected: "/",
		},
		{
			name:     "respect case",
			rawURL:   "https://example.com/About",
			opts:     NormalizeOptions{RespectCase: true},
			expected: "/About",
		},
		{
			name:     "include query",
			rawURL:   "https://example.com/search?q=go",
			opts:     NormalizeOptions{IncludeQuery: true},
			expected: "/search?q=go",
		},
		{
			name:     "include query without query unchanged",
			rawURL:   "https://example.com/search",
			opts:     NormalizeOptions{IncludeQuery: true},
			expected: "/search",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizePath(tt.rawURL, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizePath_Idempotent(t *testing.T) {
	optVariants := []NormalizeOptions{
		{},
		{KeepTrailingSlash: true},
		{RespectCase: true},
		{IncludeQuery: true},
		{KeepTrailingSlash: true, RespectCase: true, IncludeQuery: true},
	}
	rawURLs := []string{
		"https://example.com/About/Team/",
		"https://example.com/search?q=Go",
		"https://example.com",
	}

	for _, opts := range optVariants {
		for _, rawURL := range rawURLs {
			once, err := NormalizePath(rawURL, opts)
			require.NoError(t, err)
			twice, err := NormalizePath(once, opts)
			require.NoError(t, err)
			assert.Equal(t, once, twice, "normalizing %q twice with %+v diverged", rawURL, opts)
		}
	}
}

func TestIsMediaPath(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected bool
	}{
		{name: "png image", key: "/images/logo.png", expected: true},
		{name: "uppercase extension", key: "/images/LOGO.PNG", expected: true},
		{name: "pdf document", key: "/files/brochure.pdf", expected: true},
		{name: "video", key: "/media/intro.mp4", expected: true},
		{name: "audio", key: "/podcast/ep1.mp3", expected: true},
		{name: "query ignored for check", key: "/logo.png?v=2", expected: true},
		{name: "html page", key: "/about.html", expected: false},
		{name: "extensionless path", key: "/about", expected: false},
		{name: "root", key: "/", expected: false},
		{name: "media-looking directory segment", key: "/assets.png/index.html", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMediaPath(tt.key))
		})
	}
}

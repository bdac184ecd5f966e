package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		expectErr bool
	}{
		{
			name:     "already normalized",
			input:    "https://example.com/sitemap.xml",
			expected: "https://example.com/sitemap.xml",
		},
		{
			name:     "scheme added when missing",
			input:    "example.com/sitemap.xml",
			expected: "http://example.com/sitemap.xml",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  https://example.com  ",
			expected: "https://example.com",
		},
		{
			name:      "empty input",
			input:     "",
			expectErr: true,
		},
		{
			name:      "whitespace only",
			input:     "   ",
			expectErr: true,
		},
		{
			name:      "no hostname",
			input:     "https://",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeURL(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestValidateURLFormat(t *testing.T) {
	assert.NoError(t, ValidateURLFormat("https://example.com/sitemap.xml"))
	assert.Error(t, ValidateURLFormat(""))
	assert.Error(t, ValidateURLFormat("   "))
	assert.Error(t, ValidateURLFormat("://bad"))
}

package sitemap

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
)

// gzipMagicPrefix is the gzip member header: magic bytes plus deflate method.
var gzipMagicPrefix = []byte("\x1f\x8b\x08")

// hasGzipSuffix reports whether the sitemap URL names a gzip-compressed payload.
func hasGzipSuffix(sitemapURL string) bool {
	return strings.HasSuffix(strings.ToLower(sitemapURL), ".gz")
}

// looksGzipped reports whether the payload starts with the gzip magic prefix.
func looksGzipped(content []byte) bool {
	return bytes.HasPrefix(content, gzipMagicPrefix)
}

// decompress gunzips the given payload.
func decompress(content []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, reader); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

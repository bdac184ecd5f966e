package sitemap

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aleister1102/sitemapdiff/internal/config"
	"github.com/aleister1102/sitemapdiff/internal/errorwrapper"
	"github.com/aleister1102/sitemapdiff/internal/httpclient"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, cfg config.ResolverConfig) *Resolver {
	t.Helper()
	client, err := httpclient.NewHTTPClient(httpclient.DefaultHTTPClientConfig(), zerolog.Nop())
	require.NoError(t, err)
	return NewResolver(client, cfg, zerolog.Nop())
}

func urlsetXML(locs ...string) string {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	for _, loc := range locs {
		fmt.Fprintf(&buf, "<url><loc>%s</loc></url>", loc)
	}
	buf.WriteString(`</urlset>`)
	return buf.String()
}

func indexXML(locs ...string) string {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?><sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	for _, loc := range locs {
		fmt.Fprintf(&buf, "<sitemap><loc>%s</loc></sitemap>", loc)
	}
	buf.WriteString(`</sitemapindex>`)
	return buf.String()
}

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	_, err := writer.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func TestResolver_Resolve_LeafURLSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, urlsetXML("https://example.com/", "https://example.com/about"))
	}))
	defer server.Close()

	resolver := newTestResolver(t, config.NewDefaultResolverConfig())
	urls, err := resolver.Resolve(context.Background(), server.URL+"/sitemap.xml")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/", "https://example.com/about"}, urls)
}

func TestResolver_Resolve_NestedIndex(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, indexXML(server.URL+"/sitemap-1.xml", server.URL+"/sitemap-2.xml"))
	})
	mux.HandleFunc("/sitemap-1.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, urlsetXML("https://example.com/a", "https://example.com/b"))
	})
	mux.HandleFunc("/sitemap-2.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, urlsetXML("https://example.com/b", "https://example.com/c"))
	})

	resolver := newTestResolver(t, config.NewDefaultResolverConfig())
	urls, err := resolver.Resolve(context.Background(), server.URL+"/sitemap.xml")

	require.NoError(t, err)
	// Duplicates across children collapse, first-seen order kept.
	assert.Equal(t, []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}, urls)
}

func TestResolver_Resolve_IndexOfIndexes(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/root.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, indexXML(server.URL+"/mid.xml"))
	})
	mux.HandleFunc("/mid.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, indexXML(server.URL+"/leaf.xml"))
	})
	mux.HandleFunc("/leaf.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, urlsetXML("https://example.com/deep"))
	})

	resolver := newTestResolver(t, config.NewDefaultResolverConfig())
	urls, err := resolver.Resolve(context.Background(), server.URL+"/root.xml")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/deep"}, urls)
}

func TestResolver_Resolve_GzipPayload(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	payload := gzipBytes(t, urlsetXML("https://example.com/compressed"))
	mux.HandleFunc("/sitemap.xml.gz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(payload)
	})

	resolver := newTestResolver(t, config.NewDefaultResolverConfig())
	urls, err := resolver.Resolve(context.Background(), server.URL+"/sitemap.xml.gz")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/compressed"}, urls)
}

func TestResolver_Resolve_GzipSuffixButPlainPayload(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/sitemap.xml.gz", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, urlsetXML("https://example.com/plain"))
	})

	resolver := newTestResolver(t, config.NewDefaultResolverConfig())
	urls, err := resolver.Resolve(context.Background(), server.URL+"/sitemap.xml.gz")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/plain"}, urls)
}

func TestResolver_Resolve_SelfReferencingIndexTerminates(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/loop.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, indexXML(server.URL+"/loop.xml", server.URL+"/leaf.xml"))
	})
	mux.HandleFunc("/leaf.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, urlsetXML("https://example.com/page"))
	})

	resolver := newTestResolver(t, config.NewDefaultResolverConfig())
	urls, err := resolver.Resolve(context.Background(), server.URL+"/loop.xml")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/page"}, urls)
}

func TestResolver_Resolve_MaxSitemapsExceeded(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	// Every document points at a fresh child, so the visited guard never
	// trips and only the fetch limit stops the walk.
	counter := 0
	mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		counter++
		fmt.Fprint(w, indexXML(fmt.Sprintf("%s/next-%d.xml", server.URL, counter)))
	})

	resolver := newTestResolver(t, config.ResolverConfig{MaxSitemaps: 3})
	_, err := resolver.Resolve(context.Background(), server.URL+"/start.xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sitemap fetch limit")
}

func TestResolver_Resolve_HTTPErrorAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.NotFound(w, req)
	}))
	defer server.Close()

	resolver := newTestResolver(t, config.NewDefaultResolverConfig())
	_, err := resolver.Resolve(context.Background(), server.URL+"/missing.xml")

	require.Error(t, err)
	var httpErr *errorwrapper.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
}

func TestResolver_Resolve_ChildFailureAborts(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/index.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, indexXML(server.URL+"/good.xml", server.URL+"/broken.xml"))
	})
	mux.HandleFunc("/good.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, urlsetXML("https://example.com/page"))
	})
	mux.HandleFunc("/broken.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, "not a sitemap at all")
	})

	resolver := newTestResolver(t, config.NewDefaultResolverConfig())
	urls, err := resolver.Resolve(context.Background(), server.URL+"/index.xml")

	require.Error(t, err)
	assert.Nil(t, urls)
	var parseErr *errorwrapper.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestResolver_Resolve_MalformedChildLocSkipped(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/index.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, indexXML("http://\x7f.invalid/child.xml", server.URL+"/good.xml"))
	})
	mux.HandleFunc("/good.xml", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, urlsetXML("https://example.com/page"))
	})

	resolver := newTestResolver(t, config.NewDefaultResolverConfig())
	urls, err := resolver.Resolve(context.Background(), server.URL+"/index.xml")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/page"}, urls)
}

func TestResolver_Resolve_UnknownRootWithoutLocsFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, `<html><body>maintenance page</body></html>`)
	}))
	defer server.Close()

	resolver := newTestResolver(t, config.NewDefaultResolverConfig())
	_, err := resolver.Resolve(context.Background(), server.URL+"/sitemap.xml")

	require.Error(t, err)
	var parseErr *errorwrapper.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestResolver_Resolve_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, urlsetXML("https://example.com/page"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resolver := newTestResolver(t, config.NewDefaultResolverConfig())
	_, err := resolver.Resolve(ctx, server.URL+"/sitemap.xml")

	assert.ErrorIs(t, err, context.Canceled)
}

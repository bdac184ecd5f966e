package sitemap

import (
	"context"
	"net/http"

	"github.com/aleister1102/sitemapdiff/internal/config"
	"github.com/aleister1102/sitemapdiff/internal/errorwrapper"
	"github.com/aleister1102/sitemapdiff/internal/httpclient"
	"github.com/aleister1102/sitemapdiff/internal/urlhandler"
	"github.com/rs/zerolog"
)

// Resolver fetches a sitemap tree and flattens it into the set of page URLs
// it references. Nested sitemap indexes are followed; gzip payloads are
// decompressed; already-fetched sitemap URLs are never fetched twice.
type Resolver struct {
	httpClient *httpclient.HTTPClient
	cfg        config.ResolverConfig
	logger     zerolog.Logger
}

// NewResolver creates a new sitemap resolver
func NewResolver(client *httpclient.HTTPClient, cfg config.ResolverConfig, logger zerolog.Logger) *Resolver {
	if cfg.MaxSitemaps <= 0 {
		cfg.MaxSitemaps = config.DefaultResolverMaxSitemaps
	}
	return &Resolver{
		httpClient: client,
		cfg:        cfg,
		logger:     logger.With().Str("component", "SitemapResolver").Logger(),
	}
}

// Resolve fetches rootURL and every sitemap it references, returning the
// flattened list of raw page URLs in first-seen order with duplicates
// collapsed. Any sitemap document that cannot be fetched, decompressed or
// parsed aborts resolution: a partial URL set would make the comparison lie.
func (r *Resolver) Resolve(ctx context.Context, rootURL string) ([]string, error) {
	worklist := []string{rootURL}
	visited := map[string]bool{rootURL: true}

	var urls []string
	seen := make(map[string]bool)
	fetched := 0

	for len(worklist) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sitemapURL := worklist[0]
		worklist = worklist[1:]

		if fetched >= r.cfg.MaxSitemaps {
			return nil, errorwrapper.NewError("sitemap fetch limit of %d documents exceeded while resolving '%s'", r.cfg.MaxSitemaps, rootURL)
		}
		fetched++

		doc, err := r.fetchDocument(ctx, sitemapURL)
		if err != nil {
			return nil, err
		}

		r.logger.Debug().
			Str("sitemap_url", sitemapURL).
			Str("kind", doc.Kind.String()).
			Int("loc_count", len(doc.Locs)).
			Msg("Sitemap document resolved")

		switch doc.Kind {
		case KindIndex:
			for _, loc := range doc.Locs {
				childURL, normErr := urlhandler.NormalizeURL(loc)
				if normErr != nil {
					r.logger.Warn().
						Err(normErr).
						Str("sitemap_url", sitemapURL).
						Str("loc", loc).
						Msg("Skipping malformed child sitemap location")
					continue
				}
				if visited[childURL] {
					continue
				}
				visited[childURL] = true
				worklist = append(worklist, childURL)
			}
		default:
			// Leaf URL-set. Unknown roots fall back to collecting whatever
			// <loc> entries they carry.
			if doc.Kind == KindUnknown && len(doc.Locs) == 0 {
				return nil, errorwrapper.NewParseError(sitemapURL, "unrecognized root element and no <loc> entries", nil)
			}
			for _, loc := range doc.Locs {
				if seen[loc] {
					continue
				}
				seen[loc] = true
				urls = append(urls, loc)
			}
		}
	}

	r.logger.Info().
		Str("root_url", rootURL).
		Int("sitemaps_fetched", fetched).
		Int("url_count", len(urls)).
		Msg("Sitemap tree resolved")

	return urls, nil
}

// fetchDocument retrieves one sitemap URL, decompresses the payload when
// needed, and parses it.
func (r *Resolver) fetchDocument(ctx context.Context, sitemapURL string) (*Document, error) {
	resp, err := r.httpClient.Do(&httpclient.HTTPRequest{
		URL:     sitemapURL,
		Method:  http.MethodGet,
		Context: ctx,
	})
	if err != nil {
		return nil, errorwrapper.NewNetworkError(sitemapURL, "failed to fetch sitemap", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, "unexpected status fetching sitemap", sitemapURL)
	}

	body := resp.Body
	if looksGzipped(body) {
		uncompressed, gzErr := decompress(body)
		if gzErr != nil {
			return nil, errorwrapper.NewDecompressError(sitemapURL, gzErr)
		}
		body = uncompressed
	} else if hasGzipSuffix(sitemapURL) {
		// Suffix says gzip but the payload has no gzip header: the server
		// already served it decompressed. Parse as-is.
		r.logger.Debug().Str("sitemap_url", sitemapURL).Msg("Gzip suffix but plain payload, parsing as-is")
	}

	doc, err := ParseDocument(body)
	if err != nil {
		return nil, errorwrapper.NewParseError(sitemapURL, "malformed sitemap XML", err)
	}

	return doc, nil
}

package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/aleister1102/sitemapdiff/internal/config"
	"github.com/aleister1102/sitemapdiff/internal/differ"
	"github.com/aleister1102/sitemapdiff/internal/errorwrapper"
	"github.com/aleister1102/sitemapdiff/internal/httpclient"
	"github.com/aleister1102/sitemapdiff/internal/reporter"
	"github.com/aleister1102/sitemapdiff/internal/sitemap"
	"github.com/rs/zerolog"
)

// Summary describes a completed comparison run.
type Summary struct {
	SitemapA   string
	SitemapB   string
	TotalA     int
	TotalB     int
	Matches    int
	OnlyA      int
	OnlyB      int
	ReportPath string
	Duration   time.Duration
}

// Orchestrator wires the resolver, differ and reporter into the complete
// compare workflow.
type Orchestrator struct {
	cfg      *config.GlobalConfig
	resolver *sitemap.Resolver
	logger   zerolog.Logger
}

// NewOrchestrator creates a new orchestrator from the global configuration.
func NewOrchestrator(cfg *config.GlobalConfig, client *httpclient.HTTPClient, appLogger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		resolver: sitemap.NewResolver(client, cfg.ResolverConfig, appLogger),
		logger:   appLogger.With().Str("component", "Orchestrator").Logger(),
	}
}

// Run resolves both sitemap trees, compares the normalized paths and writes
// the xlsx report. Either side failing to resolve fully aborts the run: a
// partial side would produce a misleading comparison.
func (o *Orchestrator) Run(ctx context.Context, sitemapA, sitemapB string) (*Summary, error) {
	startTime := time.Now()

	urlsA, urlsB, err := o.resolveBothSides(ctx, sitemapA, sitemapB)
	if err != nil {
		return nil, err
	}

	o.logger.Info().
		Int("urls_a", len(urlsA)).
		Int("urls_b", len(urlsB)).
		Msg("Both sitemap trees resolved, comparing normalized pathnames")

	compareCfg := o.cfg.CompareConfig
	urlDiffer := differ.NewDiffer(differ.OptionsFromConfig(compareCfg), compareCfg.LabelA, compareCfg.LabelB, o.logger)
	result := urlDiffer.Compare(urlsA, urlsB)

	xlsxReporter := reporter.NewXlsxReporter(&o.cfg.ReporterConfig, compareCfg.LabelA, compareCfg.LabelB, o.logger)
	reportPath, err := xlsxReporter.GenerateReport(result)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to generate report")
	}

	return &Summary{
		SitemapA:   sitemapA,
		SitemapB:   sitemapB,
		TotalA:     result.TotalA(),
		TotalB:     result.TotalB(),
		Matches:    len(result.Matches),
		OnlyA:      len(result.OnlyA),
		OnlyB:      len(result.OnlyB),
		ReportPath: reportPath,
		Duration:   time.Since(startTime),
	}, nil
}

// resolveBothSides fetches the two sitemap trees concurrently. Each side
// accumulates into its own slice, joined only after the WaitGroup, so no
// mutable state is shared across the goroutines.
func (o *Orchestrator) resolveBothSides(ctx context.Context, sitemapA, sitemapB string) ([]string, []string, error) {
	var wg sync.WaitGroup
	var urlsA, urlsB []string
	var errA, errB error

	wg.Add(2)
	go func() {
		defer wg.Done()
		urlsA, errA = o.resolver.Resolve(ctx, sitemapA)
	}()
	go func() {
		defer wg.Done()
		urlsB, errB = o.resolver.Resolve(ctx, sitemapB)
	}()
	wg.Wait()

	if errA != nil {
		return nil, nil, errorwrapper.WrapError(errA, "failed to resolve sitemap A")
	}
	if errB != nil {
		return nil, nil, errorwrapper.WrapError(errB, "failed to resolve sitemap B")
	}

	return urlsA, urlsB, nil
}

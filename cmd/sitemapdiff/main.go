package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/sitemapdiff/internal/config"
	"github.com/aleister1102/sitemapdiff/internal/httpclient"
	"github.com/aleister1102/sitemapdiff/internal/logger"
	"github.com/aleister1102/sitemapdiff/internal/orchestrator"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		stdlog.Fatalf("[FATAL] Could not load config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	applyFlagOverrides(gCfg, flags)

	if err := config.ValidateConfig(gCfg); err != nil {
		stdlog.Fatalf("[FATAL] Configuration validation failed: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		stdlog.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	httpClient, err := httpclient.NewHTTPClient(httpclient.ConfigFromGlobal(gCfg.HTTPClientConfig), zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not initialize HTTP client")
	}
	httpClient.WithRetryHandler(httpclient.NewRetryHandler(retryConfigFromGlobal(gCfg.HTTPClientConfig), zLogger))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		zLogger.Info().Str("signal", sig.String()).Msg("Received interrupt signal, aborting")
		cancel()
	}()

	zLogger.Info().
		Str("sitemap_a", flags.SitemapA).
		Str("sitemap_b", flags.SitemapB).
		Str("output", gCfg.ReporterConfig.OutputFile).
		Msg("Starting sitemap comparison")

	runner := orchestrator.NewOrchestrator(gCfg, httpClient, zLogger)
	summary, err := runner.Run(ctx, flags.SitemapA, flags.SitemapB)
	if err != nil {
		zLogger.Error().Err(err).Msg("Sitemap comparison failed")
		os.Exit(1)
	}

	zLogger.Info().
		Int("total_a", summary.TotalA).
		Int("total_b", summary.TotalB).
		Int("matches", summary.Matches).
		Int("only_a", summary.OnlyA).
		Int("only_b", summary.OnlyB).
		Dur("duration", summary.Duration).
		Msg("Sitemap comparison completed")

	fmt.Printf("Report written to %s\n", summary.ReportPath)
}

// applyFlagOverrides lets command line flags take precedence over config
// file values.
func applyFlagOverrides(gCfg *config.GlobalConfig, flags AppFlags) {
	if flags.OutputFile != "" {
		gCfg.ReporterConfig.OutputFile = flags.OutputFile
	}
	if flags.LabelA != "" {
		gCfg.CompareConfig.LabelA = flags.LabelA
	}
	if flags.LabelB != "" {
		gCfg.CompareConfig.LabelB = flags.LabelB
	}
	if flags.IsSet("keep-trailing-slash") {
		gCfg.CompareConfig.KeepTrailingSlash = flags.KeepTrailingSlash
	}
	if flags.IsSet("respect-case") {
		gCfg.CompareConfig.RespectCase = flags.RespectCase
	}
	if flags.IsSet("include-query") {
		gCfg.CompareConfig.IncludeQuery = flags.IncludeQuery
	}
	if flags.LogLevel != "" {
		gCfg.LogConfig.LogLevel = flags.LogLevel
	}
}

// retryConfigFromGlobal builds the retry policy from the HTTP config section.
func retryConfigFromGlobal(cfg config.HTTPClientConfig) httpclient.RetryHandlerConfig {
	retryCfg := httpclient.DefaultRetryHandlerConfig()
	if cfg.Retries >= 0 {
		retryCfg.MaxRetries = cfg.Retries
	}
	if cfg.RetryBaseDelayMs > 0 {
		retryCfg.BaseDelay = time.Duration(cfg.RetryBaseDelayMs) * time.Millisecond
	}
	if cfg.RetryMaxDelayMs > 0 {
		retryCfg.MaxDelay = time.Duration(cfg.RetryMaxDelayMs) * time.Millisecond
	}
	return retryCfg
}

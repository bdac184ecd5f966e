package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/sitemapdiff/internal/errorwrapper"
	"gopkg.in/yaml.v3"
)

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// HTTP Client Defaults
	DefaultHTTPTimeoutSecs   = 30
	DefaultHTTPRetries       = 2
	DefaultHTTPMaxRedirects  = 10
	DefaultHTTPUserAgent     = "sitemapdiff/1.0 (+https://github.com/aleister1102/sitemapdiff)"
	DefaultHTTPRetryBaseMs   = 500
	DefaultHTTPRetryMaxMs    = 5000
	DefaultHTTPSkipTLSVerify = false

	// Resolver Defaults
	DefaultResolverMaxSitemaps = 500

	// Compare Defaults
	DefaultCompareLabelA = "OLD"
	DefaultCompareLabelB = "NEW"

	// Reporter Defaults
	DefaultReporterOutputFile = "sitemap_comparison.xlsx"
)

// GlobalConfig aggregates all configuration sections of the tool.
type GlobalConfig struct {
	HTTPClientConfig HTTPClientConfig `json:"http_client_config,omitempty" yaml:"http_client_config,omitempty"`
	LogConfig        LogConfig        `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ResolverConfig   ResolverConfig   `json:"resolver_config,omitempty" yaml:"resolver_config,omitempty"`
	CompareConfig    CompareConfig    `json:"compare_config,omitempty" yaml:"compare_config,omitempty"`
	ReporterConfig   ReporterConfig   `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		HTTPClientConfig: NewDefaultHTTPClientConfig(),
		LogConfig:        NewDefaultLogConfig(),
		ResolverConfig:   NewDefaultResolverConfig(),
		CompareConfig:    NewDefaultCompareConfig(),
		ReporterConfig:   NewDefaultReporterConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// JSON and YAML formats. YAML is preferred if the file extension is .yaml or .yml.
// When no config file is found, defaults are returned unchanged.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

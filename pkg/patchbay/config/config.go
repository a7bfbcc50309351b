// Package config loads the patchbay tool configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "patchbay.yaml"

// Config holds all tool configuration.
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Extract ExtractConfig `yaml:"extract"`
	Enrich  EnrichConfig  `yaml:"enrich"`
	Logging LoggingConfig `yaml:"logging"`
}

// PathsConfig locates inputs and outputs.
type PathsConfig struct {
	GearXLSX     string `yaml:"gear_xlsx"`
	PatchbayXLSX string `yaml:"patchbay_xlsx"`
	OutDir       string `yaml:"out_dir"`
	ProfilesDir  string `yaml:"profiles_dir"`
	DocsDir      string `yaml:"docs_dir"`
	ManualMap    string `yaml:"manual_map"`
	ReportDir    string `yaml:"report_dir"`
}

// ExtractConfig tunes patchbay extraction.
type ExtractConfig struct {
	Sheet          string `yaml:"sheet"`
	Area           string `yaml:"area"`
	OptionalInputs bool   `yaml:"optional_inputs"`
}

// EnrichConfig tunes manual enrichment.
type EnrichConfig struct {
	Max         int    `yaml:"max"`
	Concurrency int    `yaml:"concurrency"`
	Timeout     string `yaml:"timeout"`
	MaxPDFPages int    `yaml:"max_pdf_pages"`
	UserAgent   string `yaml:"user_agent"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			OutDir:      "Data/IFLS_Workbench",
			ProfilesDir: "Data/IFLS_Workbench/device_profiles",
			ManualMap:   "Data/IFLS_Workbench/manual_map.csv",
			ReportDir:   "Docs",
		},
		Enrich: EnrichConfig{
			Max:         20,
			Concurrency: 4,
			Timeout:     "30s",
			MaxPDFPages: 10,
			UserAgent:   "patchbay-go/0.1 (+manual enrichment)",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be corrected later.
func (c *Config) Validate() error {
	if _, err := c.Enrich.TimeoutDuration(); err != nil {
		return err
	}
	if c.Enrich.Concurrency < 0 {
		return fmt.Errorf("enrich.concurrency must not be negative, got %d", c.Enrich.Concurrency)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

// TimeoutDuration parses the enrichment timeout.
func (e EnrichConfig) TimeoutDuration() (time.Duration, error) {
	if e.Timeout == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(e.Timeout)
	if err != nil {
		return 0, fmt.Errorf("enrich.timeout: %w", err)
	}
	return d, nil
}

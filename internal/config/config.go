package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the root configuration for the application. It is populated by
// viper from (in increasing precedence) defaults, an optional config.yaml,
// VISUALIZE_* environment variables, and command-line flags.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Pylint  PylintConfig  `mapstructure:"pylint" yaml:"pylint"`
	Report  ReportConfig  `mapstructure:"report" yaml:"report"`
	Scoring ScoringConfig `mapstructure:"scoring" yaml:"scoring"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// PylintConfig controls how the external analyzer is invoked.
type PylintConfig struct {
	// Binary is the pylint executable name or path.
	Binary string `mapstructure:"binary" yaml:"binary"`
	// Concurrency bounds the number of per-file pylint processes running at once.
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
}

// ReportConfig controls the produced artifact.
type ReportConfig struct {
	Output string `mapstructure:"output" yaml:"output"`
	Format string `mapstructure:"format" yaml:"format"`
	// Open requests that the finished artifact be opened in the default viewer.
	Open bool `mapstructure:"open" yaml:"open"`
	// Colors maps each finding kind to the hex color used when rendering it.
	Colors map[string]string `mapstructure:"colors" yaml:"colors"`
}

// ScoringConfig holds the kind weight table used for prioritization.
// It is resolved once at startup and passed down as an immutable value;
// nothing mutates it after Load.
type ScoringConfig struct {
	Weights map[string]float64 `mapstructure:"weights" yaml:"weights"`
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "visualize-pylint")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// Analyzer defaults
	v.SetDefault("pylint.binary", "pylint")
	v.SetDefault("pylint.concurrency", 4)

	// Report defaults
	v.SetDefault("report.output", "pylint_report.html")
	v.SetDefault("report.format", "html")
	v.SetDefault("report.open", false)
	v.SetDefault("report.colors", map[string]string{
		"fatal":      "#8e44ad",
		"error":      "#e74c3c",
		"warning":    "#f1c40f",
		"refactor":   "#2ecc71",
		"convention": "#3498db",
		"background": "#f4f6f8",
		"card_bg":    "#ffffff",
		"text":       "#2c3e50",
	})

	// Scoring defaults. Weights are monotonic with severity today, but they
	// are an independent axis and may be reconfigured separately.
	v.SetDefault("scoring.weights", map[string]float64{
		"fatal":      50,
		"error":      25,
		"warning":    5,
		"refactor":   2,
		"convention": 1,
	})
}

// Load unmarshals the resolved viper state into a typed Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// NewDefaultConfig returns a Config populated with default values only.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	if err != nil {
		// Cannot happen with defaults alone.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return cfg
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ducanhdangcode/visualize-pylint/internal/config"
	"github.com/ducanhdangcode/visualize-pylint/internal/discovery"
	"github.com/ducanhdangcode/visualize-pylint/internal/observability"
	"github.com/ducanhdangcode/visualize-pylint/internal/pylint"
	"github.com/ducanhdangcode/visualize-pylint/internal/reporting"
	"github.com/ducanhdangcode/visualize-pylint/internal/results"
)

// runReport drives one full report generation for target.
func runReport(ctx context.Context, target string) error {
	logger := observability.GetLogger()

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	files, err := discovery.SourceFiles(target)
	if err != nil {
		return fmt.Errorf("failed to discover source files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No Python files found under target; nothing to report",
			zap.String("target", target))
		return nil
	}
	logger.Info("Discovered source files",
		zap.String("target", target), zap.Int("count", len(files)))

	runner := pylint.NewRunner(cfg.Pylint, logger)
	pipeline := results.NewPipeline(runner, scoreConfig(cfg.Scoring), cfg.Pylint.Concurrency, logger)

	report, err := pipeline.Run(ctx, target, files)
	if err != nil {
		return err
	}

	outputPath := cfg.Report.Output
	if cfg.Report.Format == "console" {
		outputPath = "stdout"
	}

	reporter, err := reporting.New(cfg.Report.Format, outputPath, reporting.Options{Colors: cfg.Report.Colors})
	if err != nil {
		return fmt.Errorf("failed to initialize reporter: %w", err)
	}
	if err := reporter.Write(report); err != nil {
		reporter.Close()
		// Failing to produce the artifact is the one fatal error class.
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := reporter.Close(); err != nil {
		return fmt.Errorf("failed to finalize report: %w", err)
	}

	if outputPath != "stdout" {
		logger.Info("Report generated",
			zap.String("path", outputPath), zap.String("format", cfg.Report.Format))
	}

	if cfg.Report.Open && outputPath != "stdout" {
		if err := reporting.OpenArtifact(outputPath); err != nil {
			logger.Warn("Could not open report in viewer", zap.Error(err))
		}
	}
	return nil
}

// applyFlagOverrides maps bare flag keys onto their config locations. Flags
// are bound under their own names by BindPFlags, so the precedence viper
// gives them has to be applied by hand here.
func applyFlagOverrides(cfg *config.Config) {
	if v := viper.GetString("output"); v != "" {
		cfg.Report.Output = v
	}
	if v := viper.GetString("format"); v != "" {
		cfg.Report.Format = v
	}
	if v := viper.GetInt("concurrency"); v > 0 {
		cfg.Pylint.Concurrency = v
	}
	if viper.GetBool("open") {
		cfg.Report.Open = true
	}
	if v := viper.GetString("pylint-bin"); v != "" {
		cfg.Pylint.Binary = v
	}
}

// scoreConfig converts the string-keyed weight table from configuration
// into the typed table the pipeline consumes.
func scoreConfig(sc config.ScoringConfig) results.ScoreConfig {
	if len(sc.Weights) == 0 {
		return results.DefaultScoreConfig()
	}
	weights := make(map[pylint.Kind]float64, len(sc.Weights))
	for k, w := range sc.Weights {
		weights[pylint.Kind(k)] = w
	}
	return results.ScoreConfig{Weights: weights}
}

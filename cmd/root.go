package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ducanhdangcode/visualize-pylint/internal/config"
	"github.com/ducanhdangcode/visualize-pylint/internal/observability"
)

var cfgFile string

// newRootCmd builds the base command: analyze one target path and produce
// the quality report artifact.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "visualize-pylint [target]",
		Short: "Turn raw pylint output into a navigable code quality report.",
		Long: `visualize-pylint runs pylint against a file or directory and renders the
findings as a single prioritized report: an overall health score, a
per-file breakdown, and a filterable issue log.`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Runs before any command, setting up config and logging.
			if err := initializeConfig(); err != nil {
				return err
			}

			cfg, err := config.Load(viper.GetViper())
			if err != nil {
				// Fall back to a usable logger so the failure is visible.
				observability.InitializeLogger(config.LoggerConfig{
					Level: "info", Format: "console", ServiceName: "visualize-pylint",
				})
				return err
			}

			observability.InitializeLogger(cfg.Logger)
			observability.GetLogger().Debug("Starting visualize-pylint", zap.String("version", Version))
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags to their viper keys so command-line values override
			// the config file and environment.
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) == 1 {
				target = args[0]
			}
			return runReport(cmd.Context(), target)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.Flags().StringP("output", "o", "", "Output file path for the report. (Overrides report.output)")
	rootCmd.Flags().StringP("format", "f", "", "Report format: 'html', 'json', or 'console'. (Overrides report.format)")
	rootCmd.Flags().IntP("concurrency", "j", 0, "Number of concurrent per-file pylint runs. (Overrides pylint.concurrency)")
	rootCmd.Flags().Bool("open", false, "Open the finished report in the default viewer.")
	rootCmd.Flags().String("pylint-bin", "", "Pylint executable to invoke. (Overrides pylint.binary)")

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
		observability.Sync()
		os.Exit(1)
	}
	observability.Sync()
}

// initializeConfig reads the config file and environment variables.
func initializeConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	config.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("VISUALIZE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and env vars.
	}
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tally/pkg"
	"tally/pkg/config"
	"tally/pkg/source"
)

func RootCommand() *cobra.Command {
	var configFile string
	var logLevel string
	var logFormat string
	cfg := config.Default()
	lenientLabels := false

	var cmd = &cobra.Command{
		Use:   "tally",
		Short: "Builds an income profile from the training split and reports its accuracy on the test split",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel, logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runCfg, err := resolveConfig(cmd, configFile, cfg, lenientLabels)
			if err != nil {
				return err
			}
			src, err := source.For(runCfg)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return pkg.Run(ctx, runCfg, src, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info", "Logging level: info error or debug")
	cmd.PersistentFlags().StringVarP(&logFormat, "log-format", "", "pretty", "Logging format: pretty or json")

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "TOML configuration file (optional)")
	cmd.Flags().StringVarP(&cfg.Source, "source", "s", cfg.Source, "dataset URL or local path")
	cmd.Flags().IntVarP(&cfg.Percent, "percent", "p", cfg.Percent, "percentage of records used for training")
	cmd.Flags().StringVarP(&cfg.CacheDir, "cache-dir", "", cfg.CacheDir, "directory caching fetched datasets, empty disables caching")
	cmd.Flags().BoolVarP(&cfg.Refresh, "refresh", "r", false, "fetch the dataset even if it is cached")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "name of file receiving the test predictions (optional)")
	cmd.Flags().BoolVarP(&lenientLabels, "lenient-labels", "", false, "count records with an unknown class as over instead of failing")

	return cmd
}

// resolveConfig layers the configuration file, when given, under the flags
// set on the command line.
func resolveConfig(cmd *cobra.Command, configFile string, flags config.Config, lenientLabels bool) (config.Config, error) {
	cfg := flags
	if configFile != "" {
		var err error
		cfg, err = config.LoadFile(configFile, config.Default())
		if err != nil {
			return config.Config{}, err
		}
		changed := cmd.Flags().Changed
		if changed("source") {
			cfg.Source = flags.Source
		}
		if changed("percent") {
			cfg.Percent = flags.Percent
		}
		if changed("cache-dir") {
			cfg.CacheDir = flags.CacheDir
		}
		if changed("refresh") {
			cfg.Refresh = flags.Refresh
		}
		if changed("output") {
			cfg.Output = flags.Output
		}
	}
	if lenientLabels {
		cfg.StrictLabels = false
	}
	return cfg, nil
}

func main() {
	if err := RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(logLevel, logFormat string) error {
	switch logLevel {
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		return fmt.Errorf("invalid logging level %q", logLevel)
	}

	switch logFormat {
	case "pretty":
		setupPrettyLogging()
	case "json":
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	default:
		return fmt.Errorf("invalid log format %q", logFormat)
	}
	return nil
}

func setupPrettyLogging() {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	writer.FormatFieldValue = func(i interface{}) string {
		switch v := i.(type) {
		case json.Number:
			val, _ := v.Float64()
			return fmt.Sprintf("%.3f", val)
		default:
			return fmt.Sprintf("%s", i)
		}
	}
	log.Logger = log.Output(writer)
}

package main

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/martinemde/parsec/batch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// errInputsFailed signals a non-zero exit after the report was already
// printed.
var errInputsFailed = errors.New("one or more inputs failed to parse")

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "parsec",
	Short: "Parse text with built-in combinator parsers",
	Long: heredoc.Doc(`
		parsec runs the parsers bundled with the parsec combinator library
		(dates, identity numbers, character classes) against text and
		reports what each one consumed.

		Flags may also be set through PARSEC_* environment variables or a
		.parsec.yaml config file.
	`),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./.parsec.yaml if present)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug logging")
	rootCmd.PersistentFlags().StringP("format", "f", batch.FormatText, "Output format: text, json or yaml")
	rootCmd.PersistentFlags().Bool("exact", true, "Require the whole input to be consumed")
}

// bindFlags binds every flag that has a config key. It runs on each
// execution so that a reset viper instance picks the flags up again.
func bindFlags() {
	for _, key := range []string{"config", "verbose", "debug", "format", "exact"} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
	_ = viper.BindPFlag("workers", checkCmd.Flags().Lookup("workers"))
}

func initConfig() {
	bindFlags()
	viper.SetEnvPrefix("PARSEC")
	viper.AutomaticEnv()

	if cfg := viper.GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.SetConfigName(".parsec")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "[config] %v\n", err)
		}
	}
}

func setupLogger(cmd *cobra.Command, args []string) error {
	if !viper.GetBool("debug") {
		logger = zap.NewNop()
		return nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	logger = l
	return nil
}

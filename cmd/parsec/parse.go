package main

import (
	"fmt"

	"github.com/martinemde/parsec/batch"
	"github.com/martinemde/parsec/textparse"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var parseCmd = &cobra.Command{
	Use:     "parse <parser> <input>",
	Short:   "Parse a single input",
	Example: "  parsec parse date 2023-11-24\n  parsec parse id 'A123456(7)' --format json",
	Args:    cobra.ExactArgs(2),
	RunE:    runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	entry, err := textparse.DefaultRegistry().Resolve(args[0])
	if err != nil {
		return err
	}

	report, err := batch.Run(cmd.Context(), entry.Parser, args[1:], batch.Options{
		Name:    entry.Name,
		Workers: 1,
		Exact:   viper.GetBool("exact"),
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	if err := batch.Render(cmd.OutOrStdout(), report, viper.GetString("format")); err != nil {
		return err
	}
	if report.Failed > 0 {
		return errInputsFailed
	}
	return nil
}

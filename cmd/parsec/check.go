package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/martinemde/parsec/batch"
	"github.com/martinemde/parsec/textparse"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var checkCmd = &cobra.Command{
	Use:   "check <parser> [file]",
	Short: "Parse every line of a file (or stdin)",
	Long: heredoc.Doc(`
		Parse each line of the file, or of standard input when no file is
		given, and report the outcome per line.

		Lines are passed to the parser as written: only the line ending
		("\n" or "\r\n") is removed, and empty lines are skipped. Leading
		or trailing spaces are part of the input, so --exact rejects them.
	`),
	Args: cobra.RangeArgs(1, 2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().IntP("workers", "w", batch.DefaultWorkers, "Number of lines parsed concurrently")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")

	entry, err := textparse.DefaultRegistry().Resolve(args[0])
	if err != nil {
		return err
	}

	var src io.Reader = cmd.InOrStdin()
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		src = f
	}
	inputs, err := readLines(src)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	emitter := batch.NewEventEmitter()
	emitter.On(progressListener(cmd.ErrOrStderr(), verbose))

	report, err := batch.Run(cmd.Context(), entry.Parser, inputs, batch.Options{
		Name:    entry.Name,
		Workers: viper.GetInt("workers"),
		Exact:   viper.GetBool("exact"),
		Logger:  logger,
		Events:  emitter,
	})
	if err != nil {
		return err
	}
	if err := batch.Render(cmd.OutOrStdout(), report, viper.GetString("format")); err != nil {
		return err
	}
	if report.Failed > 0 {
		return errInputsFailed
	}
	return nil
}

// readLines returns the non-empty lines of r without their line endings.
// Lines may be of any length.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// progressListener prints batch progress to w.
func progressListener(w io.Writer, verbose bool) func(batch.Event) {
	var mu sync.Mutex
	return func(e batch.Event) {
		mu.Lock()
		defer mu.Unlock()
		switch e.Type {
		case batch.EventBatchStarted:
			if verbose {
				fmt.Fprintf(w, "[check] Starting %v: %v inputs (batch %v)\n", e.Data["parser"], e.Data["input_count"], e.Data["id"])
			}

		case batch.EventInputFailed:
			if verbose {
				fmt.Fprintf(w, "[check] line %v failed: %v\n", e.Data["line"], e.Data["error"])
			}

		case batch.EventBatchCompleted:
			fmt.Fprintf(w, "[check] Completed in %vms\n", e.Data["duration_ms"])
		}
	}
}

package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the formats Render accepts.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// Render writes r to w in the given format.
func Render(w io.Writer, r *Report, format string) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return renderText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report as json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report as yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want one of %v)", format, Formats())
	}
}

func renderText(w io.Writer, r *Report) error {
	okLabel := color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, o := range r.Results {
		if o.OK {
			detail := fmt.Sprintf("%v", o.Value)
			if o.Remaining != "" {
				detail += " " + dim(fmt.Sprintf("(remaining %q)", o.Remaining))
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", okLabel("ok"), o.Line, o.Input, detail)
		} else {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", failLabel("FAIL"), o.Line, o.Input, o.Error)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d passed, %d failed (%dms)\n", r.Parser, r.Passed, r.Failed, r.DurationMs)
	return err
}

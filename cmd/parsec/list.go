package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/martinemde/parsec/textparse"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available parsers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, e := range textparse.DefaultRegistry().Entries() {
			fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Description)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

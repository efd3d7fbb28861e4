package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vixigi/julia/internal/triplet"
)

func newAxesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "axes",
		Short: "List the recognized spellings of every triplet axis",
		Long: `List, in matching order, each axis of a triplet with its canonical tags and
the patterns that recognize them.

The output is an aligned table on a terminal and tab-separated otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch format {
			case "auto":
				if isTerminal(out) {
					return writeAxesTable(out)
				}
				return writeAxesTSV(out)
			case "table":
				return writeAxesTable(out)
			case "tsv":
				return writeAxesTSV(out)
			default:
				return fmt.Errorf("unknown format %q (expected auto, table or tsv)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "output format (auto, table, tsv)")
	return cmd
}

func axesRows() [][]string {
	var rows [][]string
	for _, axis := range triplet.Axes() {
		for _, sp := range axis.Spellings() {
			pattern := sp.Pattern
			if pattern == "" {
				pattern = "(empty)"
			}
			rows = append(rows, []string{axis.String(), sp.Tag, pattern})
		}
	}
	return rows
}

func writeAxesTable(w io.Writer) error {
	table := NewTable([]string{"Axis", "Tag", "Spelling"})
	for _, row := range axesRows() {
		table.AddRow(row)
	}
	_, err := io.WriteString(w, table.Render())
	return err
}

func writeAxesTSV(w io.Writer) error {
	for _, row := range axesRows() {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

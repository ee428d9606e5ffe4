package cli

import (
	"fmt"
	"strconv"

	"github.com/jankowskaweronika/mojifix/internal/corruption"
	"github.com/spf13/cobra"
)

var checkTable bool

// tableCmd lists the corruption map
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "List the known corrupted sequences",
	Long: `Table prints the corruption map in the order it is applied: index, character
name, corrupted form (escaped) and replacement.

With --check the map is audited for duplicate entries, entries shadowed by an
earlier shorter match, replacements that would be rewritten again on a second
run, and corrupted forms that are not a Windows-1252 reading of their
replacement. Any finding makes the command fail.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	tableCmd.Flags().BoolVar(&checkTable, "check", false, "audit the map and fail on problems")
}

func runTable(cmd *cobra.Command, args []string) error {
	m := corruption.Default()
	out := cmd.OutOrStdout()

	for i, e := range m {
		fmt.Fprintf(out, "%3d  %-26s %-44s %s\n", i, e.Name, strconv.QuoteToASCII(e.Corrupted), e.Correct)
	}

	if !checkTable {
		return nil
	}

	problems := corruption.Audit(m)
	fmt.Fprintln(out)
	if len(problems) == 0 {
		fmt.Fprintf(out, "✓ %d entries, no problems found\n", len(m))
		return nil
	}
	for _, p := range problems {
		fmt.Fprintf(out, "✗ %s\n", p)
	}
	return fmt.Errorf("corruption map has %d problems", len(problems))
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/smazurov/ledlut/internal/logging"
	"github.com/spf13/cobra"
)

// CreateLookupCmd creates the lookup command.
func CreateLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <led-index>...",
		Short: "Print the grid cell of one or more LEDs",
		Long:  `Prints the logical row and column of each wiring-order LED index for the configured layout.`,
		Args:  cobra.MinimumNArgs(1),
		Run: humacli.WithOptions(func(c *cobra.Command, args []string, opts *Options) {
			if err := runLookup(c.OutOrStdout(), opts, args); err != nil {
				logging.GetLogger("matrix").Error("Lookup failed", "error", err)
				os.Exit(1)
			}
		}),
	}
}

func runLookup(w io.Writer, opts *Options, args []string) error {
	table, err := buildTable(opts)
	if err != nil {
		return err
	}

	for _, arg := range args {
		index, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid LED index %q: %w", arg, err)
		}
		pos, err := table.Position(index)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "LED %d: row %d, col %d\n", index, pos.Row, pos.Col); err != nil {
			return err
		}
	}
	return nil
}

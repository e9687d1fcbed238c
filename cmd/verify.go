package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/smazurov/ledlut/internal/logging"
	"github.com/spf13/cobra"
)

// CreateVerifyCmd creates the verify command.
func CreateVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the configured layout maps every LED exactly once",
		Long: `Generates the table for the configured layout and checks that every index ` +
			`in [0, height*width) appears exactly once. Exits non-zero on failure.`,
		Args: cobra.NoArgs,
		Run: humacli.WithOptions(func(c *cobra.Command, _ []string, opts *Options) {
			if err := runVerify(c.OutOrStdout(), opts); err != nil {
				logging.GetLogger("matrix").Error("Verification failed", "error", err)
				os.Exit(1)
			}
		}),
	}
}

func runVerify(w io.Writer, opts *Options) error {
	table, err := buildTable(opts)
	if err != nil {
		return err
	}
	if err := table.Verify(); err != nil {
		return err
	}

	l := table.Layout()
	logging.GetLogger("matrix").Info("Layout verified", "height", l.Height, "width", l.Width, "leds", table.Len())
	_, err = fmt.Fprintf(w, "ok: %dx%d, %d LEDs, %s start, %s axis, progressive=%t\n",
		l.Height, l.Width, table.Len(), l.Start, l.Axis, l.Progressive)
	return err
}

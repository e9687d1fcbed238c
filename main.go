package main

import (
	"os"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/smazurov/ledlut/cmd"
	"github.com/smazurov/ledlut/internal/logging"
)

func main() {
	var cli humacli.CLI

	cli = humacli.New(func(hooks humacli.Hooks, opts *cmd.Options) {
		if err := cmd.Setup(opts, cli.Root()); err != nil {
			logging.GetLogger("config").Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}

		// Default command prints the lookup table to stdout
		hooks.OnStart(func() {
			if err := cmd.Generate(os.Stdout, opts); err != nil {
				logging.GetLogger("matrix").Error("Failed to generate lookup table", "error", err)
				os.Exit(1)
			}
		})
	})

	root := cli.Root()
	root.Use = "ledlut"
	root.Short = "Generate row/column lookup tables for serpentine LED matrices"
	root.Long = `Prints a C array mapping each [row][col] of an LED matrix to the LED's ` +
		`position along its wiring chain. Defaults to a 32x8 panel with LED 0 in the top-right corner.`

	root.AddCommand(cmd.CreateVerifyCmd())
	root.AddCommand(cmd.CreateLookupCmd())
	root.AddCommand(cmd.CreateWatchCmd())
	root.AddCommand(cmd.CreateVersionCmd())

	cli.Run()
}

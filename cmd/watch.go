package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/smazurov/ledlut/internal/config"
	"github.com/smazurov/ledlut/internal/logging"
	"github.com/spf13/cobra"
)

// CreateWatchCmd creates the watch command.
func CreateWatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the table whenever the config file changes",
		Long: `Prints the table for the current configuration, then watches the config file ` +
			`and prints a fresh table after every change until interrupted.`,
		Args: cobra.NoArgs,
		Run: humacli.WithOptions(func(c *cobra.Command, _ []string, opts *Options) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := runWatch(ctx, c.OutOrStdout(), opts, c, debounce); err != nil {
				logging.GetLogger("config").Error("Watch failed", "error", err)
				os.Exit(1)
			}
		}),
	}

	cmd.Flags().DurationVar(&debounce, "debounce", config.DefaultDebounce, "Wait this long for config writes to settle")
	return cmd
}

func runWatch(ctx context.Context, w io.Writer, opts *Options, c *cobra.Command, debounce time.Duration) error {
	logger := logging.GetLogger("config")

	if err := Generate(w, opts); err != nil {
		return err
	}

	// Start from flag values so keys deleted from the file fall back to defaults.
	base := flagOptions
	loader := func(path string) (*Options, error) {
		fresh := base
		fresh.Config = path
		if err := config.LoadConfig(&fresh, c); err != nil {
			return nil, err
		}
		return &fresh, nil
	}

	watcher := config.NewConfigWatcher(opts.Config, loader, logger, config.WithDebounce[*Options](debounce))
	watcher.OnReload(func(fresh *Options) {
		if err := Generate(w, fresh); err != nil {
			logger.Warn("Failed to regenerate table, keeping previous output", "error", err)
		}
	})

	if err := watcher.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	logger.Info("Stopping config watcher")
	return watcher.Stop()
}

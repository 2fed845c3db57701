package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"punini/internal/library"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Scan the music directory and refresh the library index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.newLogger(false)
			if err != nil {
				return err
			}

			store, err := library.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			scanner := library.NewScanner(cfg, store, logger)
			summary, err := scanner.Scan(cmd.Context())
			if err != nil {
				return fmt.Errorf("scan library: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scanned %s in %s\n", cfg.Paths.MusicDir, summary.Elapsed.Round(time.Millisecond))
			fmt.Fprintf(out, "  added:     %d\n", summary.Added)
			fmt.Fprintf(out, "  updated:   %d\n", summary.Updated)
			fmt.Fprintf(out, "  unchanged: %d\n", summary.Unchanged)
			fmt.Fprintf(out, "  removed:   %d\n", summary.Removed)
			if summary.Failed > 0 {
				fmt.Fprintf(out, "  failed:    %d (see log for details)\n", summary.Failed)
			}
			return nil
		},
	}
}

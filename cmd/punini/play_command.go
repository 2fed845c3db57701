package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"punini/internal/metadata"
	"punini/internal/player"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "play <file>",
		Short: "Play a single file without the full interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.newLogger(false)
			if err != nil {
				return err
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			engine := player.New(cfg, nil, logger)
			defer engine.Close()

			done, err := engine.Load(path)
			if err != nil {
				return fmt.Errorf("play %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			meta, err := metadata.Probe(path)
			if err == nil {
				fmt.Fprintf(out, "Playing %s - %s\n", meta.Artist, meta.Title)
			} else {
				fmt.Fprintf(out, "Playing %s\n", filepath.Base(path))
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()

			total := engine.Duration()
			for {
				select {
				case <-sigCtx.Done():
					engine.Stop()
					fmt.Fprintln(out)
					return nil
				case <-done:
					fmt.Fprintf(out, "\r%s / %s\n", clock(total), clock(total))
					return nil
				case <-ticker.C:
					fmt.Fprintf(out, "\r%s / %s", clock(engine.Position()), clock(total))
				}
			}
		},
	}
}

func clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"punini/internal/lyrics"
	"punini/internal/metadata"
)

func newLyricsCommand(ctx *commandContext) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "lyrics <file>",
		Short: "Print the lyrics of a file",
		Long:  "Print the parsed lyric cues of a file, from the .lrc sidecar or the embedded tag. With --follow the cues stream out in real time.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			var embedded string
			if meta, probeErr := metadata.Probe(path); probeErr == nil {
				embedded = meta.Lyrics
			}

			cues, source, err := lyrics.Resolve(path, embedded, cfg.Lyrics.PreferSidecar)
			if err != nil {
				return fmt.Errorf("read lyrics: %w", err)
			}
			if len(cues) == 0 {
				return errors.New("no lyrics found")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %d cues from %s\n", len(cues), source)

			if !follow {
				for _, cue := range cues {
					fmt.Fprintf(out, "[%s] %s\n", clock(cue.Time), cue.Text)
				}
				return nil
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			start := time.Now()
			for _, cue := range cues {
				wait := cue.Time - time.Since(start)
				if wait > 0 {
					select {
					case <-sigCtx.Done():
						return nil
					case <-time.After(wait):
					}
				}
				fmt.Fprintln(out, cue.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&follow, "follow", false, "Stream cues in real time")
	return cmd
}

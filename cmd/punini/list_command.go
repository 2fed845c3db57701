package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"punini/internal/library"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the indexed library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			tracks, err := store.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list library: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd, listPayload(tracks))
			}

			out := cmd.OutOrStdout()
			if len(tracks) == 0 {
				fmt.Fprintln(out, "Library is empty. Run `punini scan` first.")
				return nil
			}

			rows := make([][]string, 0, len(tracks))
			for _, track := range tracks {
				rows = append(rows, []string{
					track.FileName(),
					track.Title,
					track.Artist,
					track.Album,
					formatTrackDuration(track.Duration),
					yesNo(track.HasLyrics),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"File", "Title", "Artist", "Album", "Length", "Lyrics"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d tracks\n", len(tracks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the listing as JSON")
	return cmd
}

type trackView struct {
	Path       string `json:"path"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	Year       int    `json:"year,omitempty"`
	TrackNo    int    `json:"track_no,omitempty"`
	DurationMs int64  `json:"duration_ms"`
	HasLyrics  bool   `json:"has_lyrics"`
}

func listPayload(tracks []library.Track) []trackView {
	views := make([]trackView, 0, len(tracks))
	for _, track := range tracks {
		views = append(views, trackView{
			Path:       track.Path,
			Title:      track.Title,
			Artist:     track.Artist,
			Album:      track.Album,
			Year:       track.Year,
			TrackNo:    track.TrackNo,
			DurationMs: track.Duration.Milliseconds(),
			HasLyrics:  track.HasLyrics,
		})
	}
	return views
}

func formatTrackDuration(d time.Duration) string {
	if d <= 0 {
		return "--:--"
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

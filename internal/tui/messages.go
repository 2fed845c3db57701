package tui

import (
	"image"
	"time"

	"punini/internal/library"
	"punini/internal/lyrics"
	"punini/internal/metadata"
)

type tickMsg time.Time

// loadedMsg carries everything the player pane needs for a freshly loaded
// track.
type loadedMsg struct {
	path    string
	meta    metadata.Track
	cues    lyrics.Cues
	artwork image.Image
	done    <-chan struct{}
}

// loadErrMsg reports a track that could not be played.
type loadErrMsg struct {
	path string
	err  error
}

// trackEndedMsg fires when a track's done channel releases.
type trackEndedMsg struct {
	path string
}

// scanDoneMsg carries the result of a library scan triggered from the UI or
// the background watcher.
type scanDoneMsg struct {
	summary library.ScanSummary
	err     error
}

// tracksMsg refreshes the browser contents.
type tracksMsg struct {
	tracks []library.Track
	err    error
}

package library

import (
	"path/filepath"
	"time"
)

// Track is one row of the library index.
type Track struct {
	ID        int64
	Path      string
	Title     string
	Artist    string
	Album     string
	Year      int
	TrackNo   int
	Duration  time.Duration
	HasLyrics bool
	Untagged  bool
	ModTime   time.Time
	Size      int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FileName returns the base name of the track's file, the browser's display
// string.
func (t Track) FileName() string {
	return filepath.Base(t.Path)
}

// ScanSummary aggregates the outcome of one scan run.
type ScanSummary struct {
	RunID     string
	Added     int
	Updated   int
	Unchanged int
	Removed   int
	Failed    int
	Elapsed   time.Duration
}

// Total returns the number of files the scan considered.
func (s ScanSummary) Total() int {
	return s.Added + s.Updated + s.Unchanged + s.Failed
}

package library_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"punini/internal/library"
	"punini/internal/logging"
	"punini/internal/testsupport"
)

func newScanner(t *testing.T) (*library.Scanner, *library.Store, string) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	if err := os.MkdirAll(cfg.Paths.MusicDir, 0o755); err != nil {
		t.Fatalf("mkdir music: %v", err)
	}
	store := testsupport.MustOpenStore(t, cfg)
	return library.NewScanner(cfg, store, logging.NewNop()), store, cfg.Paths.MusicDir
}

func TestScanIndexesAudioFiles(t *testing.T) {
	scanner, store, musicDir := newScanner(t)
	ctx := context.Background()

	testsupport.WriteWAV(t, filepath.Join(musicDir, "tone one.wav"), 44100, 300*time.Millisecond)
	testsupport.WriteWAV(t, filepath.Join(musicDir, "sub", "tone two.wav"), 44100, 300*time.Millisecond)
	testsupport.WriteFile(t, filepath.Join(musicDir, "notes.txt"), []byte("not audio"))

	summary, err := scanner.Scan(ctx)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if summary.Added != 2 {
		t.Fatalf("expected 2 added, got %+v", summary)
	}
	if summary.RunID == "" {
		t.Fatal("expected a scan run ID")
	}

	tracks, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	// WAV carries no tags, so titles derive from the file names.
	if tracks[0].Title != "Tone One" {
		t.Fatalf("unexpected derived title: %q", tracks[0].Title)
	}
	if !tracks[0].Untagged {
		t.Fatal("expected untagged marker for raw wav")
	}
	dur := tracks[0].Duration
	if dur < 290*time.Millisecond || dur > 310*time.Millisecond {
		t.Fatalf("unexpected probed duration: %v", dur)
	}
}

func TestScanIsIncremental(t *testing.T) {
	scanner, _, musicDir := newScanner(t)
	ctx := context.Background()

	path := filepath.Join(musicDir, "tone.wav")
	testsupport.WriteWAV(t, path, 44100, 200*time.Millisecond)

	if _, err := scanner.Scan(ctx); err != nil {
		t.Fatalf("first Scan: %v", err)
	}

	summary, err := scanner.Scan(ctx)
	if err != nil {
		t.Fatalf("second Scan: %v", err)
	}
	if summary.Unchanged != 1 || summary.Added != 0 || summary.Updated != 0 {
		t.Fatalf("expected unchanged pass, got %+v", summary)
	}

	// Rewrite with different content and a newer mtime.
	testsupport.WriteWAV(t, path, 44100, 400*time.Millisecond)
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	summary, err = scanner.Scan(ctx)
	if err != nil {
		t.Fatalf("third Scan: %v", err)
	}
	if summary.Updated != 1 {
		t.Fatalf("expected update after mtime change, got %+v", summary)
	}
}

func TestScanPrunesDeletedFiles(t *testing.T) {
	scanner, store, musicDir := newScanner(t)
	ctx := context.Background()

	path := filepath.Join(musicDir, "tone.wav")
	testsupport.WriteWAV(t, path, 44100, 200*time.Millisecond)
	if _, err := scanner.Scan(ctx); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	summary, err := scanner.Scan(ctx)
	if err != nil {
		t.Fatalf("Scan after delete: %v", err)
	}
	if summary.Removed != 1 {
		t.Fatalf("expected one removal, got %+v", summary)
	}
	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty index, got %d rows", count)
	}
}

func TestScanDetectsSidecarLyrics(t *testing.T) {
	scanner, store, musicDir := newScanner(t)
	ctx := context.Background()

	path := filepath.Join(musicDir, "tone.wav")
	testsupport.WriteWAV(t, path, 44100, 200*time.Millisecond)
	testsupport.WriteFile(t, filepath.Join(musicDir, "tone.lrc"), []byte(testsupport.SampleLRC(1, 5, 9)))

	if _, err := scanner.Scan(ctx); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	track, err := store.GetByPath(ctx, path)
	if err != nil {
		t.Fatalf("GetByPath: %v", err)
	}
	if !track.HasLyrics {
		t.Fatal("expected sidecar lyrics to be detected")
	}
}

func TestScanPathRemovesMissingFile(t *testing.T) {
	scanner, store, musicDir := newScanner(t)
	ctx := context.Background()

	path := filepath.Join(musicDir, "tone.wav")
	testsupport.WriteWAV(t, path, 44100, 200*time.Millisecond)
	if err := scanner.ScanPath(ctx, path); err != nil {
		t.Fatalf("ScanPath: %v", err)
	}
	if _, err := store.GetByPath(ctx, path); err != nil {
		t.Fatalf("expected indexed track: %v", err)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := scanner.ScanPath(ctx, path); err != nil {
		t.Fatalf("ScanPath after delete: %v", err)
	}
	if _, err := store.GetByPath(ctx, path); err == nil {
		t.Fatal("expected track to be pruned")
	}
}

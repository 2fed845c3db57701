package library_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"punini/internal/library"
	"punini/internal/testsupport"
)

func sampleTrack(path string) library.Track {
	return library.Track{
		Path:     path,
		Title:    "Moonlight",
		Artist:   "Debussy",
		Album:    "Suite Bergamasque",
		Year:     1905,
		TrackNo:  3,
		Duration: 4*time.Minute + 30*time.Second,
		ModTime:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Size:     1024,
	}
}

func TestUpsertAndGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	stored, err := store.Upsert(ctx, sampleTrack("/music/a.flac"))
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if stored.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	fetched, err := store.GetByPath(ctx, "/music/a.flac")
	if err != nil {
		t.Fatalf("GetByPath: %v", err)
	}
	if fetched.Title != "Moonlight" || fetched.Duration != 4*time.Minute+30*time.Second {
		t.Fatalf("unexpected track: %+v", fetched)
	}
	if !fetched.ModTime.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("mtime lost precision: %v", fetched.ModTime)
	}

	byID, err := store.GetByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Path != "/music/a.flac" {
		t.Fatalf("unexpected path: %q", byID.Path)
	}
}

func TestUpsertReplacesByPath(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	first, err := store.Upsert(ctx, sampleTrack("/music/a.flac"))
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}

	updated := sampleTrack("/music/a.flac")
	updated.Title = "Clair de Lune"
	updated.HasLyrics = true
	second, err := store.Upsert(ctx, updated)
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("upsert must keep the row ID: %d != %d", second.ID, first.ID)
	}
	if second.Title != "Clair de Lune" || !second.HasLyrics {
		t.Fatalf("metadata not replaced: %+v", second)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row, got %d", count)
	}
}

func TestUpsertRequiresPath(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := store.Upsert(context.Background(), library.Track{Title: "x"}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestGetMissingTrack(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	_, err := store.GetByPath(context.Background(), "/nope.mp3")
	if !errors.Is(err, library.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListCollation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for _, path := range []string{
		"/music/banana.mp3",
		"/music/Apple.mp3",
		"/music/Étude.mp3",
		"/music/cherry.mp3",
	} {
		track := sampleTrack(path)
		if _, err := store.Upsert(ctx, track); err != nil {
			t.Fatalf("Upsert %s: %v", path, err)
		}
	}

	tracks, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var names []string
	for _, track := range tracks {
		names = append(names, track.FileName())
	}
	want := []string{"Apple.mp3", "banana.mp3", "cherry.mp3", "Étude.mp3"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order %v, want %v", names, want)
		}
	}
}

func TestDeleteAndAllPaths(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := store.Upsert(ctx, sampleTrack("/music/a.flac")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if _, err := store.Upsert(ctx, sampleTrack("/music/b.flac")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := store.Delete(ctx, "/music/a.flac"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "/music/never-there.flac"); err != nil {
		t.Fatalf("Delete unknown path should be a no-op: %v", err)
	}

	paths, err := store.AllPaths(ctx)
	if err != nil {
		t.Fatalf("AllPaths: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected one path, got %v", paths)
	}
	if _, ok := paths["/music/b.flac"]; !ok {
		t.Fatalf("missing expected path: %v", paths)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	if _, err := store.Upsert(context.Background(), sampleTrack("/music/a.flac")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	again, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer again.Close()

	count, err := again.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected persisted row, got %d", count)
	}
}

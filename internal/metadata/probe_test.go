package metadata_test

import (
	"os"
	"path/filepath"
	"testing"

	"punini/internal/metadata"
)

func TestDeriveTitle(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/music/clair_de_lune.flac", "Clair De Lune"},
		{"/music/01 - moonlight sonata.mp3", "01 Moonlight Sonata"},
		{"/music/weird...name.ogg", "Weird Name"},
		{"", "Unknown Track"},
		{"/music/???.wav", "Unknown Track"},
	}
	for _, tc := range cases {
		if got := metadata.DeriveTitle(tc.path); got != tc.want {
			t.Fatalf("DeriveTitle(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestProbeUntaggedFileFallsBackToFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raw_take one.wav")
	if err := os.WriteFile(path, []byte("not really audio"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	track, err := metadata.Probe(path)
	if err != nil {
		t.Fatalf("Probe returned error for untagged file: %v", err)
	}
	if !track.Untagged {
		t.Fatal("expected Untagged to be set")
	}
	if track.Title != "Raw Take One" {
		t.Fatalf("unexpected derived title: %q", track.Title)
	}
	if track.Picture != nil {
		t.Fatal("expected no picture")
	}
}

func TestProbeMissingFile(t *testing.T) {
	if _, err := metadata.Probe(filepath.Join(t.TempDir(), "absent.flac")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"punini/internal/testsupport"
)

func TestScanThenListShowsTracks(t *testing.T) {
	env := setupCLITestEnv(t)
	env.addWAV(t, "alpha.wav", time.Second)
	env.addWAV(t, "beta.wav", time.Second)

	out, _, err := runCLI(t, []string{"scan"}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "added:     2")

	out, _, err = runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "alpha.wav")
	requireContains(t, out, "beta.wav")
	requireContains(t, out, "2 tracks")
}

func TestListJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	env.addWAV(t, "song.wav", time.Second)

	if _, _, err := runCLI(t, []string{"scan"}, env.configPath); err != nil {
		t.Fatalf("scan: %v", err)
	}

	out, _, err := runCLI(t, []string{"list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}

	var views []trackView
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 track, got %d", len(views))
	}
	if filepath.Base(views[0].Path) != "song.wav" {
		t.Fatalf("unexpected path %q", views[0].Path)
	}
	if views[0].DurationMs <= 0 {
		t.Fatalf("duration not probed: %d", views[0].DurationMs)
	}
}

func TestListEmptyLibraryHint(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Library is empty")
}

func TestScanRemovesVanishedTracks(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.addWAV(t, "gone.wav", time.Second)

	if _, _, err := runCLI(t, []string{"scan"}, env.configPath); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}

	out, _, err := runCLI(t, []string{"scan"}, env.configPath)
	if err != nil {
		t.Fatalf("rescan: %v", err)
	}
	requireContains(t, out, "removed:   1")
}

func TestLyricsCommandPrintsCues(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.addWAV(t, "song.wav", time.Second)
	testsupport.WriteFile(t, filepath.Join(env.musicDir, "song.lrc"), []byte(testsupport.SampleLRC(0, 2, 5)))

	out, _, err := runCLI(t, []string{"lyrics", path}, env.configPath)
	if err != nil {
		t.Fatalf("lyrics: %v", err)
	}
	requireContains(t, out, "3 cues")
	requireContains(t, out, "[00:02]")
}

func TestLyricsCommandReportsMissing(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.addWAV(t, "plain.wav", time.Second)

	_, _, err := runCLI(t, []string{"lyrics", path}, env.configPath)
	if err == nil {
		t.Fatal("expected an error for a track without lyrics")
	}
	requireContains(t, err.Error(), "no lyrics found")
}

func TestArtCommandWithoutPicture(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.addWAV(t, "plain.wav", time.Second)

	_, _, err := runCLI(t, []string{"art", path}, env.configPath)
	if err == nil {
		t.Fatal("expected an error for a file without embedded art")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"version"}, "")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	requireContains(t, out, "punini ")
}

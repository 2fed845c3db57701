package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"punini/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	musicDir   string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("PUNINI_MUSIC_DIR", "")

	musicDir := filepath.Join(base, "music")
	if err := os.MkdirAll(musicDir, 0o755); err != nil {
		t.Fatalf("mkdir music: %v", err)
	}

	configPath := filepath.Join(homeDir, ".config", "punini", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, base, musicDir)

	return &cliTestEnv{
		baseDir:    base,
		musicDir:   musicDir,
		configPath: configPath,
	}
}

func (env *cliTestEnv) addWAV(t *testing.T, name string, length time.Duration) string {
	t.Helper()
	path := filepath.Join(env.musicDir, name)
	testsupport.WriteWAV(t, path, 44100, length)
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path, base, musicDir string) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nmusic_dir = %q\ndata_dir = %q\nlog_dir = %q\n\n[library]\nextensions = [\"flac\", \"mp3\", \"wav\", \"ogg\", \"m4a\"]\n",
		musicDir,
		filepath.Join(base, "data"),
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

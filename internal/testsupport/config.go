// Package testsupport provides shared fixtures for package tests: temp-dir
// configs, in-memory-ish library stores, and synthesized audio files.
package testsupport

import (
	"path/filepath"
	"testing"

	"punini/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.MusicDir = filepath.Join(base, "music")
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Library.RescanOnStart = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	return builder.cfg
}

// WithMusicDir overrides the music directory on the test config.
func WithMusicDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.MusicDir = dir
	}
}

// WithExtensions overrides the scan extension whitelist.
func WithExtensions(exts ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Library.Extensions = exts
	}
}

// WithWatch enables the library watcher on the test config.
func WithWatch() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Library.Watch = true
	}
}

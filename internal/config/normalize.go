package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLibrary()
	c.normalizePlayback()
	c.normalizeArt()
	c.normalizeUI()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("PUNINI_MUSIC_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.MusicDir = strings.TrimSpace(value)
	}

	var err error
	if c.Paths.MusicDir, err = expandPath(c.Paths.MusicDir); err != nil {
		return fmt.Errorf("paths.music_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLibrary() {
	if len(c.Library.Extensions) == 0 {
		c.Library.Extensions = defaultExtensions()
		return
	}
	normalized := make([]string, 0, len(c.Library.Extensions))
	for _, ext := range c.Library.Extensions {
		ext = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(ext, ".")))
		if ext == "" {
			continue
		}
		normalized = append(normalized, ext)
	}
	c.Library.Extensions = normalized
}

func (c *Config) normalizePlayback() {
	if c.Playback.SampleRate <= 0 {
		c.Playback.SampleRate = defaultPlaybackSR
	}
	if c.Playback.BufferMs <= 0 {
		c.Playback.BufferMs = defaultPlaybackBufferMs
	}
	if c.Playback.Volume == 0 {
		c.Playback.Volume = defaultPlaybackVolume
	}
}

func (c *Config) normalizeArt() {
	c.Art.Protocol = strings.ToLower(strings.TrimSpace(c.Art.Protocol))
	if c.Art.Protocol == "" {
		c.Art.Protocol = defaultArtProtocol
	}
	if c.Art.MaxWidthCells <= 0 {
		c.Art.MaxWidthCells = defaultArtMaxWidthCells
	}
}

func (c *Config) normalizeUI() {
	if c.UI.TickMs <= 0 {
		c.UI.TickMs = defaultUITickMs
	}
	if c.UI.BrowserRatio <= 0 || c.UI.BrowserRatio >= 100 {
		c.UI.BrowserRatio = defaultUIBrowserRatio
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays <= 0 {
		c.Logging.RetentionDays = defaultLogRetentionDays
	}
}

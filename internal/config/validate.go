package config

import (
	"errors"
	"fmt"
	"strings"
)

var validArtProtocols = map[string]struct{}{
	"auto":       {},
	"kitty":      {},
	"iterm":      {},
	"halfblocks": {},
	"none":       {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validatePlayback(); err != nil {
		return err
	}
	if err := c.validateArt(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.MusicDir) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/punini/config.toml"
		}
		return fmt.Errorf("paths.music_dir is required. Set PUNINI_MUSIC_DIR env var or edit %s (create with 'punini config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateLibrary() error {
	if len(c.Library.Extensions) == 0 {
		return errors.New("library.extensions must list at least one audio extension")
	}
	return nil
}

func (c *Config) validatePlayback() error {
	if c.Playback.Volume < 0 || c.Playback.Volume > 2 {
		return errors.New("playback.volume must be between 0 and 2")
	}
	if c.Playback.SampleRate < 8000 || c.Playback.SampleRate > 192000 {
		return fmt.Errorf("playback.sample_rate %d is outside the supported range", c.Playback.SampleRate)
	}
	return nil
}

func (c *Config) validateArt() error {
	if _, ok := validArtProtocols[c.Art.Protocol]; !ok {
		return fmt.Errorf("art.protocol: unsupported value %q", c.Art.Protocol)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

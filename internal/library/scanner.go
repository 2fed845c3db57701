package library

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"punini/internal/config"
	"punini/internal/logging"
	"punini/internal/lyrics"
	"punini/internal/metadata"
	"punini/internal/player"
)

// Scanner keeps the track index in sync with the music directory.
type Scanner struct {
	cfg    *config.Config
	store  *Store
	logger *slog.Logger
}

// NewScanner wires a scanner to its store.
func NewScanner(cfg *config.Config, store *Store, logger *slog.Logger) *Scanner {
	return &Scanner{
		cfg:    cfg,
		store:  store,
		logger: logging.WithComponent(logger, "scanner"),
	}
}

// Scan walks the music directory and reconciles the index: new and modified
// files are probed and upserted, unchanged files (same mtime and size) are
// skipped, and rows whose files vanished are pruned.
func (s *Scanner) Scan(ctx context.Context) (ScanSummary, error) {
	started := time.Now()
	summary := ScanSummary{RunID: uuid.NewString()}
	runLogger := s.logger.With(logging.ScanRun(summary.RunID))

	existing, err := s.store.AllPaths(ctx)
	if err != nil {
		return summary, err
	}
	known := make(map[string]Track, len(existing))
	if len(existing) > 0 {
		tracks, err := s.store.List(ctx)
		if err != nil {
			return summary, err
		}
		for _, track := range tracks {
			known[track.Path] = track
		}
	}

	seen := make(map[string]struct{})
	walkErr := filepath.WalkDir(s.cfg.Paths.MusicDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			return nil
		}
		if entry.Type()&fs.ModeSymlink != 0 && !s.cfg.Library.FollowSymlinks {
			return nil
		}
		if !s.cfg.ExtensionAllowed(filepath.Ext(path)) {
			return nil
		}

		seen[path] = struct{}{}
		info, err := entry.Info()
		if err != nil {
			summary.Failed++
			runLogger.Warn("stat failed", logging.Path(path), logging.Error(err))
			return nil
		}

		prior, indexed := known[path]
		if indexed && prior.ModTime.Equal(info.ModTime().UTC().Truncate(time.Second)) && prior.Size == info.Size() {
			summary.Unchanged++
			return nil
		}

		track, err := s.probe(path, info)
		if err != nil {
			summary.Failed++
			runLogger.Warn("probe failed", logging.Path(path), logging.Error(err))
			return nil
		}
		if _, err := s.store.Upsert(ctx, track); err != nil {
			summary.Failed++
			runLogger.Warn("index write failed", logging.Path(path), logging.Error(err))
			return nil
		}
		if indexed {
			summary.Updated++
		} else {
			summary.Added++
		}
		return nil
	})
	if walkErr != nil && !errors.Is(walkErr, context.Canceled) {
		return summary, walkErr
	}

	for path := range existing {
		if _, ok := seen[path]; ok {
			continue
		}
		if err := s.store.Delete(ctx, path); err != nil {
			return summary, err
		}
		summary.Removed++
	}

	summary.Elapsed = time.Since(started)
	runLogger.Info("scan complete",
		logging.Int("added", summary.Added),
		logging.Int("updated", summary.Updated),
		logging.Int("unchanged", summary.Unchanged),
		logging.Int("removed", summary.Removed),
		logging.Int("failed", summary.Failed),
		logging.Duration("elapsed", summary.Elapsed))

	return summary, walkErr
}

// ScanPath refreshes a single file, used by the watcher. Deleted files are
// pruned, everything else is re-probed.
func (s *Scanner) ScanPath(ctx context.Context, path string) error {
	if !s.cfg.ExtensionAllowed(filepath.Ext(path)) {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.store.Delete(ctx, path)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return nil
	}
	track, err := s.probe(path, info)
	if err != nil {
		return err
	}
	_, err = s.store.Upsert(ctx, track)
	return err
}

func (s *Scanner) probe(path string, info fs.FileInfo) (Track, error) {
	tags, err := metadata.Probe(path)
	if err != nil {
		return Track{}, err
	}

	track := Track{
		Path:     path,
		Title:    tags.Title,
		Artist:   tags.Artist,
		Album:    tags.Album,
		Year:     tags.Year,
		TrackNo:  tags.TrackNo,
		Untagged: tags.Untagged,
		ModTime:  info.ModTime().UTC().Truncate(time.Second),
		Size:     info.Size(),
	}

	track.HasLyrics = s.hasLyrics(path, tags.Lyrics)
	track.Duration = probeDuration(path)
	return track, nil
}

func (s *Scanner) hasLyrics(path, embedded string) bool {
	if !s.cfg.Lyrics.Enabled {
		return false
	}
	if _, err := os.Stat(lyrics.SidecarPath(path)); err == nil {
		return true
	}
	return len(lyrics.ParseLRC(embedded)) > 0
}

// probeDuration decodes just the stream headers to learn the track length.
// Formats without a decoder report zero rather than failing the scan.
func probeDuration(path string) time.Duration {
	streamer, format, err := player.Decode(path)
	if err != nil {
		return 0
	}
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len())
}

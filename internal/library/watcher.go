package library

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"punini/internal/config"
	"punini/internal/logging"
)

const watchDebounce = 500 * time.Millisecond

// Watcher listens for filesystem changes under the music directory and
// feeds them back into the scanner. fsnotify watches are not recursive, so
// every subdirectory is registered individually and new directories are
// added as they appear.
type Watcher struct {
	cfg     *config.Config
	scanner *Scanner
	logger  *slog.Logger
	notify  func(ScanSummary)
}

// NewWatcher builds a watcher. notify may be nil; when set it receives a
// summary after each debounced rescan pass.
func NewWatcher(cfg *config.Config, scanner *Scanner, logger *slog.Logger, notify func(ScanSummary)) *Watcher {
	return &Watcher{
		cfg:     cfg,
		scanner: scanner,
		logger:  logging.WithComponent(logger, "watcher"),
		notify:  notify,
	}
}

// Run blocks until ctx is cancelled, applying library updates as files
// change. Events are debounced so a batch copy triggers one pass.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := w.watchTree(fsw, w.cfg.Paths.MusicDir); err != nil {
		return err
	}

	dirty := make(map[string]struct{})
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				// A new directory needs its own watch before its
				// contents produce events.
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					_ = w.watchTree(fsw, event.Name)
				}
			}
			dirty[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			timerC = timer.C

		case <-timerC:
			summary := w.flush(ctx, dirty)
			dirty = make(map[string]struct{})
			timerC = nil
			if w.notify != nil {
				w.notify(summary)
			}

		case watchErr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", logging.Error(watchErr))
		}
	}
}

func (w *Watcher) watchTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// The path may already be gone; watching is best effort.
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if addErr := fsw.Add(path); addErr != nil {
			w.logger.Warn("watch add failed", logging.Path(path), logging.Error(addErr))
		}
		return nil
	})
}

func (w *Watcher) flush(ctx context.Context, dirty map[string]struct{}) ScanSummary {
	var summary ScanSummary
	for path := range dirty {
		if err := w.scanner.ScanPath(ctx, path); err != nil {
			summary.Failed++
			w.logger.Warn("rescan failed", logging.Path(path), logging.Error(err))
			continue
		}
		summary.Updated++
	}
	w.logger.Debug("watch flush",
		logging.Int("paths", len(dirty)),
		logging.Int("failed", summary.Failed))
	return summary
}

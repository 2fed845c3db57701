package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofrs/flock"

	"punini/internal/config"
	"punini/internal/library"
	"punini/internal/logging"
	"punini/internal/player"
)

// ErrAlreadyRunning is returned when another player instance holds the
// instance lock.
var ErrAlreadyRunning = errors.New("another punini instance is already running")

// Run starts the full-screen interface and blocks until the user quits. It
// holds an exclusive file lock so two instances never fight over the audio
// device or the library database.
func Run(cfg *config.Config, store *library.Store, scanner *library.Scanner, engine *player.Engine, logger *slog.Logger) error {
	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release instance lock", logging.Error(err))
		}
	}()

	model := New(cfg, store, scanner, engine, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	if cfg.Library.Watch {
		watcher := library.NewWatcher(cfg, scanner, logger, func(summary library.ScanSummary) {
			program.Send(scanDoneMsg{summary: summary})
		})
		go func() {
			if err := watcher.Run(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("library watcher stopped", logging.Error(err))
			}
		}()
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	return nil
}

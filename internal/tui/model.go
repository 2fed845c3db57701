package tui

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"punini/internal/config"
	"punini/internal/coverart"
	"punini/internal/library"
	"punini/internal/logging"
	"punini/internal/lyrics"
	"punini/internal/metadata"
	"punini/internal/player"
)

// nowPlaying is the state of the loaded track.
type nowPlaying struct {
	path    string
	meta    metadata.Track
	cues    lyrics.Cues
	artwork image.Image

	activeLyric int
}

// Model is the bubbletea model for the player interface.
type Model struct {
	cfg     *config.Config
	store   *library.Store
	scanner *library.Scanner
	engine  *player.Engine
	logger  *slog.Logger
	styles  styles

	width  int
	height int

	tracks  []library.Track
	cursor  int
	loading bool

	current *nowPlaying
	gauge   progress.Model

	status    string
	statusErr bool

	// Half-block art is cached per box size; re-rendering every tick would
	// burn CPU for identical output.
	artCache     string
	artCacheKey  [2]int
	artCachePath string
}

// New assembles the model. The engine may be shared with the CLI wiring.
func New(cfg *config.Config, store *library.Store, scanner *library.Scanner, engine *player.Engine, logger *slog.Logger) Model {
	gauge := progress.New(progress.WithSolidFill("5"), progress.WithoutPercentage())
	return Model{
		cfg:     cfg,
		store:   store,
		scanner: scanner,
		engine:  engine,
		logger:  logging.WithComponent(logger, "tui"),
		styles:  newStyles(),
		gauge:   gauge,
	}
}

// Init starts the tick loop, loads the browser, and kicks off the startup
// scan when configured.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd(), m.refreshTracksCmd()}
	if m.cfg.Library.RescanOnStart {
		cmds = append(cmds, m.scanCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) tickCmd() tea.Cmd {
	interval := time.Duration(m.cfg.UI.TickMs) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) refreshTracksCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		tracks, err := store.List(context.Background())
		return tracksMsg{tracks: tracks, err: err}
	}
}

func (m Model) scanCmd() tea.Cmd {
	scanner := m.scanner
	return func() tea.Msg {
		summary, err := scanner.Scan(context.Background())
		return scanDoneMsg{summary: summary, err: err}
	}
}

// loadCmd decodes, probes, and starts the selected track off the UI
// goroutine.
func (m Model) loadCmd(track library.Track) tea.Cmd {
	engine := m.engine
	cfg := m.cfg
	return func() tea.Msg {
		done, err := engine.Load(track.Path)
		if err != nil {
			return loadErrMsg{path: track.Path, err: err}
		}

		meta, err := metadata.Probe(track.Path)
		if err != nil {
			// Playback already started; cosmetic data falls back.
			meta = metadata.Track{Title: metadata.DeriveTitle(track.Path), Untagged: true}
		}

		var cues lyrics.Cues
		if cfg.Lyrics.Enabled {
			cues, _, _ = lyrics.Resolve(track.Path, meta.Lyrics, cfg.Lyrics.PreferSidecar)
			if offset := time.Duration(cfg.Lyrics.OffsetMs) * time.Millisecond; offset != 0 {
				cues = cues.Shift(offset)
			}
		}

		var artwork image.Image
		if cfg.Art.Enabled && meta.Picture != nil {
			if img, decodeErr := coverart.Decode(meta.Picture.Data); decodeErr == nil {
				artwork = img
			}
		}

		return loadedMsg{
			path:    track.Path,
			meta:    meta,
			cues:    cues,
			artwork: artwork,
			done:    done,
		}
	}
}

// watchEndCmd resolves when the loaded track stops streaming.
func watchEndCmd(path string, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return trackEndedMsg{path: path}
	}
}

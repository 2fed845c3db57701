package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"punini/internal/logging"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshArtCache()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		m.syncLyrics()
		return m, m.tickCmd()

	case tracksMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("library: %v", msg.err)
			m.statusErr = true
			return m, nil
		}
		m.tracks = msg.tracks
		if m.cursor >= len(m.tracks) {
			m.cursor = max(0, len(m.tracks)-1)
		}
		return m, nil

	case scanDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("scan failed: %v", msg.err)
			m.statusErr = true
			return m, nil
		}
		m.status = fmt.Sprintf("scan: %d added, %d updated, %d removed",
			msg.summary.Added, msg.summary.Updated, msg.summary.Removed)
		m.statusErr = false
		return m, m.refreshTracksCmd()

	case loadedMsg:
		m.loading = false
		m.current = &nowPlaying{
			path:        msg.path,
			meta:        msg.meta,
			cues:        msg.cues,
			artwork:     msg.artwork,
			activeLyric: -1,
		}
		m.status = ""
		m.statusErr = false
		m.refreshArtCache()
		return m, watchEndCmd(msg.path, msg.done)

	case loadErrMsg:
		m.loading = false
		m.status = fmt.Sprintf("cannot play %s: %v", msg.path, msg.err)
		m.statusErr = true
		m.logger.Warn("track load failed", logging.Path(msg.path), logging.Error(msg.err))
		return m, nil

	case trackEndedMsg:
		// Only a natural end leaves the track current; a replacement or
		// stop changes the engine path first.
		if m.engine.Path() != msg.path {
			return m, nil
		}
		return m.advance()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.engine.Stop()
		return m, tea.Quit

	case " ":
		if m.engine.Toggle() {
			m.status = "paused"
		} else {
			m.status = ""
		}
		m.statusErr = false
		return m, nil

	case "up", "k":
		if len(m.tracks) == 0 {
			return m, nil
		}
		if m.cursor == 0 {
			m.cursor = len(m.tracks) - 1
		} else {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if len(m.tracks) == 0 {
			return m, nil
		}
		if m.cursor >= len(m.tracks)-1 {
			m.cursor = 0
		} else {
			m.cursor++
		}
		return m, nil

	case "g":
		m.cursor = 0
		return m, nil

	case "G":
		if len(m.tracks) > 0 {
			m.cursor = len(m.tracks) - 1
		}
		return m, nil

	case "enter":
		if m.cursor < 0 || m.cursor >= len(m.tracks) {
			return m, nil
		}
		m.loading = true
		m.status = ""
		m.statusErr = false
		return m, m.loadCmd(m.tracks[m.cursor])

	case "left":
		m.seekBy(-5 * time.Second)
		return m, nil

	case "right":
		m.seekBy(5 * time.Second)
		return m, nil

	case "r":
		m.status = "scanning..."
		m.statusErr = false
		return m, m.scanCmd()
	}

	return m, nil
}

// advance plays the track after the one that just finished, stopping at the
// end of the list.
func (m Model) advance() (tea.Model, tea.Cmd) {
	finished := m.engine.Path()
	next := -1
	for i, track := range m.tracks {
		if track.Path == finished && i+1 < len(m.tracks) {
			next = i + 1
			break
		}
	}
	if next < 0 {
		return m, nil
	}
	m.cursor = next
	m.loading = true
	return m, m.loadCmd(m.tracks[next])
}

func (m *Model) seekBy(delta time.Duration) {
	if m.current == nil {
		return
	}
	target := m.engine.Position() + delta
	if err := m.engine.Seek(target); err != nil {
		m.status = fmt.Sprintf("seek: %v", err)
		m.statusErr = true
	}
}

// syncLyrics recomputes the active lyric line from the playhead, the same
// "last cue at or before the position" rule the progress gauge uses.
func (m *Model) syncLyrics() {
	if m.current == nil || len(m.current.cues) == 0 {
		return
	}
	m.current.activeLyric = m.current.cues.ActiveIndex(m.engine.Position())
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"punini/internal/coverart"
	"punini/internal/library"
)

const gaugeHeight = 3

// layout holds the pane sizes derived from the terminal dimensions. The
// browser takes the configured share of the width; the art pane takes 40%
// of what remains, mirroring the fixed proportions of the interface.
type layout struct {
	browserWidth int
	playerWidth  int
	bodyHeight   int
	mainHeight   int
	artWidth     int
	infoWidth    int
}

func (m Model) layout() layout {
	var l layout
	l.browserWidth = m.width * m.cfg.UI.BrowserRatio / 100
	l.playerWidth = m.width - l.browserWidth
	l.bodyHeight = m.height - 1 // status line
	l.mainHeight = l.bodyHeight - gaugeHeight
	l.artWidth = l.playerWidth * 2 / 5
	l.infoWidth = l.playerWidth - l.artWidth
	return l
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width < 20 || m.height < 8 {
		return "window too small"
	}
	l := m.layout()

	browser := m.viewBrowser(l.browserWidth, l.bodyHeight)
	art := m.viewArt(l.artWidth, l.mainHeight)
	info := m.viewInfo(l.infoWidth, l.mainHeight)
	gauge := m.viewGauge(l.playerWidth, gaugeHeight)

	player := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, art, info),
		gauge,
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, browser, player)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatus())
}

func (m Model) viewBrowser(width, height int) string {
	inner := width - 2
	rows := height - 2
	if inner < 1 || rows < 1 {
		return ""
	}

	var lines []string
	if len(m.tracks) == 0 {
		lines = append(lines, m.styles.placeholder.Render("library is empty"))
	} else {
		start := 0
		if m.cursor >= rows {
			start = m.cursor - rows + 1
		}
		end := min(start+rows, len(m.tracks))
		for i := start; i < end; i++ {
			lines = append(lines, m.browserRow(m.tracks[i], i == m.cursor, inner))
		}
	}

	return m.styles.browserBorder.Width(inner).Height(rows).Render(strings.Join(lines, "\n"))
}

func (m Model) browserRow(track library.Track, selected bool, width int) string {
	name := track.FileName()
	prefix := "  "
	if selected {
		prefix = "> "
	}
	row := truncate(prefix+name, width)
	switch {
	case selected:
		return m.styles.selectedFile.Render(row)
	case m.current != nil && track.Path == m.current.path:
		return m.styles.playingMarker.Render(row)
	default:
		return row
	}
}

func (m Model) viewArt(width, height int) string {
	inner := width - 2
	rows := height - 2
	if inner < 1 || rows < 1 {
		return ""
	}

	content := m.artCache
	if content == "" {
		content = lipgloss.Place(inner, rows, lipgloss.Center, lipgloss.Center,
			m.styles.placeholder.Render("No Image"))
	}
	return m.styles.artBorder.Width(inner).Height(rows).Render(content)
}

func (m Model) viewInfo(width, height int) string {
	inner := width - 4 // border plus padding
	rows := height - 2
	if inner < 1 || rows < 1 {
		return ""
	}

	var lines []string
	switch {
	case m.loading:
		lines = append(lines, m.styles.placeholder.Render("loading..."))
	case m.current == nil:
		lines = append(lines, m.styles.placeholder.Render("Nothing playing. Press enter to play."))
	default:
		meta := m.current.meta
		lines = append(lines, truncate(m.styles.title.Render(meta.Title), inner))
		lines = append(lines, truncate(m.styles.artist.Render(meta.Artist), inner))
		album := meta.Album
		if meta.Year > 0 {
			album = fmt.Sprintf("%s (%d)", meta.Album, meta.Year)
		}
		lines = append(lines, truncate(m.styles.album.Render(album), inner))
		lines = append(lines, "")
		lines = append(lines, m.viewLyrics(inner, rows-len(lines))...)
	}

	return m.styles.infoBorder.Width(inner + 2).Height(rows).Render(strings.Join(lines, "\n"))
}

// viewLyrics renders a window of cue lines kept centered on the active one.
func (m Model) viewLyrics(width, rows int) []string {
	if rows < 1 {
		return nil
	}
	cues := m.current.cues
	if len(cues) == 0 {
		return []string{m.styles.placeholder.Render("No lyrics found.")}
	}

	active := m.current.activeLyric
	start := 0
	if active > rows/2 {
		start = active - rows/2
	}
	if start > len(cues)-rows {
		start = max(0, len(cues)-rows)
	}
	end := min(start+rows, len(cues))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cue := cues[i]
		stamp := m.styles.timestamp.Render(fmt.Sprintf("[%s]", formatClock(cue.Time)))
		if i == active {
			lines = append(lines, truncate(">> "+stamp+" "+m.styles.activeLyric.Render(cue.Text), width))
		} else {
			lines = append(lines, truncate("   "+stamp+" "+cue.Text, width))
		}
	}
	return lines
}

func (m Model) viewGauge(width, height int) string {
	inner := width - 2
	rows := height - 2
	if inner < 1 || rows < 1 {
		return ""
	}

	position := m.engine.Position()
	duration := m.engine.Duration()
	label := fmt.Sprintf("%s / %s", formatClock(position), formatClock(duration))

	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
		if ratio > 1 {
			ratio = 1
		}
	}

	gauge := m.gauge
	gauge.Width = inner - len(label) - 1
	line := label
	if gauge.Width > 0 {
		line = gauge.ViewAs(ratio) + " " + label
	}
	return m.styles.gaugeBorder.Width(inner).Height(rows).Render(line)
}

func (m Model) viewStatus() string {
	text := m.status
	if text == "" {
		text = "space pause | j/k move | enter play | left/right seek | r rescan | q quit"
	}
	text = truncate(text, m.width)
	if m.statusErr {
		return m.styles.statusError.Render(text)
	}
	return m.styles.statusInfo.Render(text)
}

// refreshArtCache re-renders the half-block artwork only when the track or
// the pane size changed.
func (m *Model) refreshArtCache() {
	if m.current == nil || m.current.artwork == nil {
		m.artCache = ""
		m.artCachePath = ""
		return
	}
	l := m.layout()
	key := [2]int{l.artWidth - 2, l.mainHeight - 2}
	if key[0] < 1 || key[1] < 1 {
		m.artCache = ""
		m.artCachePath = ""
		return
	}
	if m.artCachePath == m.current.path && m.artCacheKey == key {
		return
	}
	m.artCache = coverart.Halfblocks(m.current.artwork, key[0], key[1])
	m.artCacheKey = key
	m.artCachePath = m.current.path
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}

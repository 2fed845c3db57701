package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	browserBorder lipgloss.Style
	artBorder     lipgloss.Style
	infoBorder    lipgloss.Style
	lyricsBorder  lipgloss.Style
	gaugeBorder   lipgloss.Style
	title         lipgloss.Style
	artist        lipgloss.Style
	album         lipgloss.Style
	timestamp     lipgloss.Style
	activeLyric   lipgloss.Style
	selectedFile  lipgloss.Style
	playingMarker lipgloss.Style
	placeholder   lipgloss.Style
	statusError   lipgloss.Style
	statusInfo    lipgloss.Style
}

func newStyles() styles {
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	return styles{
		browserBorder: border,
		artBorder:     border.BorderForeground(lipgloss.Color("6")),
		infoBorder:    border.Padding(0, 1),
		lyricsBorder:  border,
		gaugeBorder:   border,
		title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		artist:        lipgloss.NewStyle().Bold(true),
		album:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		timestamp:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		activeLyric:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")),
		selectedFile:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")),
		playingMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		statusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		statusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

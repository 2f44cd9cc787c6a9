package compose

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/eod/pkg/session"
)

type styles struct {
	label   lipgloss.Style
	focused lipgloss.Style
	preview lipgloss.Style
	status  lipgloss.Style
	err     lipgloss.Style
	help    lipgloss.Style
}

func stylesFor(t session.Theme) styles {
	accent := lipgloss.Color("25")
	muted := lipgloss.Color("245")
	if t == session.Dark {
		accent = lipgloss.Color("86")
		muted = lipgloss.Color("241")
	}
	return styles{
		label:   lipgloss.NewStyle().Foreground(muted),
		focused: lipgloss.NewStyle().Foreground(accent).Bold(true),
		preview: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Width(previewWidth),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		help:   lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}

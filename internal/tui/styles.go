// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-array-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

// styles is the set of lipgloss styles of one theme. Pages share a single
// *styles, so switching the theme restyles every page at once.
type styles struct {
	theme models.Theme

	app       lipgloss.Style
	title     lipgloss.Style
	help      lipgloss.Style
	err       lipgloss.Style
	info      lipgloss.Style
	selected  lipgloss.Style
	disabled  lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	overlay   lipgloss.Style
}

type palette struct {
	text, muted, accent, danger, success, border lipgloss.Color
}

var palettes = map[models.Theme]palette{
	models.ThemeLight: {
		text:    lipgloss.Color("#1F2328"),
		muted:   lipgloss.Color("#6E7781"),
		accent:  lipgloss.Color("#0969DA"),
		danger:  lipgloss.Color("#CF222E"),
		success: lipgloss.Color("#1A7F37"),
		border:  lipgloss.Color("#D0D7DE"),
	},
	models.ThemeDark: {
		text:    lipgloss.Color("#E6EDF3"),
		muted:   lipgloss.Color("#7D8590"),
		accent:  lipgloss.Color("#58A6FF"),
		danger:  lipgloss.Color("#F85149"),
		success: lipgloss.Color("#3FB950"),
		border:  lipgloss.Color("#30363D"),
	},
}

func newStyles(theme models.Theme) *styles {
	s := &styles{}
	s.apply(theme)
	return s
}

// apply rebuilds s in place for theme. Unknown themes fall back to light.
func (s *styles) apply(theme models.Theme) {
	p, ok := palettes[theme]
	if !ok {
		theme = models.ThemeLight
		p = palettes[theme]
	}

	s.theme = theme
	s.app = lipgloss.NewStyle().Padding(1, 2).Foreground(p.text)
	s.title = lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	s.help = lipgloss.NewStyle().Faint(true).Foreground(p.muted)
	s.err = lipgloss.NewStyle().Bold(true).Foreground(p.danger)
	s.info = lipgloss.NewStyle().Foreground(p.success)
	s.selected = lipgloss.NewStyle().Bold(true).Foreground(p.accent)
	s.disabled = lipgloss.NewStyle().Foreground(p.muted).Strikethrough(true)
	s.tab = lipgloss.NewStyle().Padding(0, 1).Foreground(p.muted)
	s.activeTab = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(p.accent)
	s.overlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(1, 2)
}

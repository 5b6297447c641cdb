package tui

import "github.com/charmbracelet/lipgloss"

// styles collects the lipgloss styles shared across screens.
type styles struct {
	Header     lipgloss.Style
	Title      lipgloss.Style
	TabActive  lipgloss.Style
	TabIdle    lipgloss.Style
	Card       lipgloss.Style
	CardFocus  lipgloss.Style
	CardLive   lipgloss.Style
	Score      lipgloss.Style
	Dim        lipgloss.Style
	Live       lipgloss.Style
	Final      lipgloss.Style
	GroupTitle lipgloss.Style
	TableHead  lipgloss.Style
	RowFocus   lipgloss.Style
	NoticeInfo lipgloss.Style
	NoticeWarn lipgloss.Style
	NoticeErr  lipgloss.Style
	Help       lipgloss.Style
}

func defaultStyles() styles {
	border := lipgloss.RoundedBorder()
	return styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("17")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().Bold(true),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		TabIdle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(26),
		CardFocus: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(26),
		CardLive: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1).
			Width(26),
		Score:      lipgloss.NewStyle().Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Live:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Final:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		GroupTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).MarginTop(1),
		TableHead:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		RowFocus:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")),
		NoticeInfo: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("25")).Padding(0, 1),
		NoticeWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1),
		NoticeErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("124")).Padding(0, 1),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

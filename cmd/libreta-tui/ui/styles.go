package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primary = lipgloss.Color("#00ADD8")
	accent  = lipgloss.Color("#CE3262")
	muted   = lipgloss.Color("#6B7B8C")
	text    = lipgloss.Color("#E3F2FD")
	danger  = lipgloss.Color("#FF5A87")

	titleStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			MarginTop(1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(accent).
				Bold(true).
				PaddingLeft(2)

	itemStyle = lipgloss.NewStyle().
			Foreground(text).
			PaddingLeft(2)

	headerStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			PaddingLeft(2)

	infoStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(danger).
			PaddingLeft(2)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(accent).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(muted).
			MarginTop(1)
)

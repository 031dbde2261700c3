package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent     = lipgloss.AdaptiveColor{Light: "22", Dark: "40"}
	colorFaint      = lipgloss.AdaptiveColor{Light: "2", Dark: "243"}
	colorError      = lipgloss.AdaptiveColor{Light: "124", Dark: "203"}
	styleTitle      = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Margin(0, 1)
	styleTableCell  = lipgloss.NewStyle().Padding(0, 1)
	styleTableHead  = styleTableCell.Bold(true).Foreground(colorAccent)
	styleLabel      = lipgloss.NewStyle().Width(20)
	styleFocused    = lipgloss.NewStyle().Foreground(colorAccent)
	styleBlurred    = lipgloss.NewStyle().Foreground(colorFaint)
	styleForm       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFaint).Padding(0, 1)
	styleLoader     = lipgloss.NewStyle().Faint(true).Align(lipgloss.Center)
	styleErrorTitle = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	styleErrorBox   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(colorError).Padding(1, 2).Width(50)
	styleHelp       = help.Styles{
		ShortKey:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "33"}),
		ShortDesc:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "238", Dark: "250"}),
		ShortSeparator: lipgloss.NewStyle().Foreground(colorFaint),
		FullKey:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "33"}),
		FullDesc:       lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "238", Dark: "250"}),
		FullSeparator:  lipgloss.NewStyle().Foreground(colorFaint),
		Ellipsis:       lipgloss.NewStyle().Foreground(colorFaint),
	}
)

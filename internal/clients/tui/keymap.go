package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keymap struct {
	nextField    key.Binding
	prevField    key.Binding
	nextCategory key.Binding
	prevCategory key.Binding
	submit       key.Binding
	dismiss      key.Binding
	quit         key.Binding
}

func newKeymap() keymap {
	return keymap{
		nextField: key.NewBinding(
			key.WithKeys(tea.KeyTab.String(), tea.KeyDown.String(), tea.KeyEnter.String()),
			key.WithHelp("tab, ↓", "Next field"),
		),
		prevField: key.NewBinding(
			key.WithKeys(tea.KeyShiftTab.String(), tea.KeyUp.String()),
			key.WithHelp("shift+tab, ↑", "Previous field"),
		),
		nextCategory: key.NewBinding(
			key.WithKeys(tea.KeyRight.String(), " "),
			key.WithHelp("→", "Next category"),
		),
		prevCategory: key.NewBinding(
			key.WithKeys(tea.KeyLeft.String()),
			key.WithHelp("←", "Previous category"),
		),
		submit: key.NewBinding(
			key.WithKeys(tea.KeyCtrlS.String()),
			key.WithHelp("ctrl+s", "Hozzáadás"),
		),
		dismiss: key.NewBinding(
			key.WithKeys(tea.KeyEnter.String(), tea.KeyEsc.String()),
			key.WithHelp("enter", "OK"),
		),
		quit: key.NewBinding(
			key.WithKeys(tea.KeyCtrlC.String(), tea.KeyEsc.String()),
			key.WithHelp("esc", "Quit"),
		),
	}
}

// ShortHelp provides compatibility with help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.nextField, k.prevField, k.nextCategory, k.submit, k.quit}
}

// FullHelp provides compatibility with help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"max.ks1230/yachtfleet/internal/entity/expense"
	"max.ks1230/yachtfleet/internal/logger"
)

// Init loads the stored expenses. Provides compatibility with tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		func() tea.Msg {
			return loadedMsg{err: m.service.Open()}
		},
	)
}

// Update provides compatibility with tea.Model. Submitting runs synchronously
// so the expense file is only ever touched from this loop.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case loadedMsg:
		m.records = m.service.Records()
		m.ready = true
		if msg.err != nil {
			m.errText = userMessage(msg.err)
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.errText != "" {
			if key.Matches(msg, m.keys.dismiss) {
				m.errText = ""
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case !m.ready:
			return m, nil
		case key.Matches(msg, m.keys.submit),
			msg.Type == tea.KeyEnter && m.focus == fieldNote:
			return m.submit(), nil
		case key.Matches(msg, m.keys.nextField):
			return m.focusField((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keys.prevField):
			return m.focusField((m.focus + fieldCount - 1) % fieldCount)
		case m.focus == fieldCategory && key.Matches(msg, m.keys.nextCategory):
			m.category = (m.category + 1) % len(expense.Categories)
			return m, nil
		case m.focus == fieldCategory && key.Matches(msg, m.keys.prevCategory):
			m.category = (m.category + len(expense.Categories) - 1) % len(expense.Categories)
			return m, nil
		}
	}

	if m.focus == fieldCategory {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(message)
	return m, cmd
}

func (m Model) submit() Model {
	rec, err := m.service.Submit(m.form())
	m.records = m.service.Records()
	if err != nil {
		m.errText = userMessage(err)
		if rec.ID == 0 {
			return m
		}
	}
	logger.Debug("form submitted", zap.Int64("id", rec.ID))
	m = m.clearForm()
	return m
}

func (m Model) clearForm() Model {
	for f := range m.inputs {
		m.inputs[f].Reset()
	}
	m.category = 0
	m, _ = m.focusFieldModel(fieldYachtName)
	return m
}

func (m Model) focusField(f field) (tea.Model, tea.Cmd) {
	m, cmd := m.focusFieldModel(f)
	return m, cmd
}

func (m Model) focusFieldModel(f field) (Model, tea.Cmd) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = f
	if f == fieldCategory {
		return m, nil
	}
	return m, m.inputs[f].Focus()
}

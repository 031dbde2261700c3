package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"max.ks1230/yachtfleet/internal/entity/expense"
)

var tableHeaders = []string{"ID", "Yacht Name", "Date", "Category", "Amount (€)", "Note"}

// View renders the application. Provides compatibility with tea.Model.
func (m Model) View() string {
	if !m.ready {
		return styleLoader.Width(m.width).Render("Loading…")
	}
	if m.errText != "" {
		return m.viewError()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render(title),
		m.viewTable(),
		m.viewForm(),
		m.help.View(m.keys),
	)
}

func (m Model) viewError() string {
	box := styleErrorBox.Render(lipgloss.JoinVertical(lipgloss.Left,
		styleErrorTitle.Render("Hiba"),
		"",
		m.errText,
		"",
		styleBlurred.Render("enter: OK"),
	))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewTable() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBlurred).
		Headers(tableHeaders...).
		Rows(tableRows(m.records, m.visibleRows())...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHead
			}
			return styleTableCell
		})
	return t.Render()
}

// visibleRows is how many of the latest records fit above the form.
func (m Model) visibleRows() int {
	if m.height == 0 {
		return defaultRows
	}
	rows := m.height - 18
	if rows < 1 {
		rows = 1
	}
	return rows
}

func tableRows(records []expense.Record, limit int) [][]string {
	if len(records) > limit {
		records = records[len(records)-limit:]
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.YachtName,
			r.FormattedDate(),
			r.Category.String(),
			r.FormattedAmount(),
			r.Note,
		})
	}
	return rows
}

func (m Model) viewForm() string {
	lines := make([]string, 0, fieldCount)
	for f := fieldYachtName; f < fieldCount; f++ {
		labelStyle := styleBlurred
		if f == m.focus {
			labelStyle = styleFocused
		}
		label := labelStyle.Inherit(styleLabel).Render(fieldLabels[f])

		var value string
		if f == fieldCategory {
			value = m.viewCategory()
		} else {
			value = m.inputs[f].View()
		}
		lines = append(lines, label+value)
	}
	return styleForm.Render(strings.Join(lines, "\n"))
}

func (m Model) viewCategory() string {
	name := expense.Categories[m.category].String()
	if m.focus == fieldCategory {
		return styleFocused.Render("‹ " + name + " ›")
	}
	return name
}

// Package tui contains the terminal form for recording yacht expenses.
//
// New returns a model ready to be passed into a bubbletea program:
//
//	tea.NewProgram(tui.New(service), tea.WithAltScreen()).Run()
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"max.ks1230/yachtfleet/internal/entity/expense"
	"max.ks1230/yachtfleet/internal/model/expenses"
)

const (
	title           = "Oceanic Dreams Yacht Költség Adminisztráció"
	datePlaceholder = "yyyy-MM-dd"
	defaultRows     = 15
)

type field int

const (
	fieldYachtName field = iota
	fieldDate
	fieldCategory
	fieldAmount
	fieldNote
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldYachtName: "Yacht Name",
	fieldDate:      "Date (yyyy-MM-dd)",
	fieldCategory:  "Category",
	fieldAmount:    "Amount (€)",
	fieldNote:      "Note",
}

type expenseService interface {
	Open() error
	Records() []expense.Record
	Submit(form expenses.Form) (expense.Record, error)
}

// Model is the expense form application state. Implements tea.Model.
type Model struct {
	service  expenseService
	keys     keymap
	help     help.Model
	inputs   [fieldCount]textinput.Model
	focus    field
	category int
	records  []expense.Record
	errText  string
	ready    bool
	width    int
	height   int
}

func New(service expenseService) Model {
	h := help.New()
	h.Styles = styleHelp

	m := Model{
		service: service,
		keys:    newKeymap(),
		help:    h,
	}
	for _, f := range []field{fieldYachtName, fieldDate, fieldAmount, fieldNote} {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 120
		in.Width = 30
		if f == fieldDate {
			in.Placeholder = datePlaceholder
		}
		m.inputs[f] = in
	}
	m.inputs[fieldYachtName].Focus()
	return m
}

func (m Model) form() expenses.Form {
	return expenses.Form{
		YachtName: m.inputs[fieldYachtName].Value(),
		Date:      m.inputs[fieldDate].Value(),
		Category:  expense.Categories[m.category],
		Amount:    m.inputs[fieldAmount].Value(),
		Note:      m.inputs[fieldNote].Value(),
	}
}

// ErrorText returns the message of the open error dialog, if any.
func (m Model) ErrorText() string {
	return m.errText
}

func (m Model) Records() []expense.Record {
	return m.records
}

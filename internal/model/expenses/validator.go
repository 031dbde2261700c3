package expenses

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/yachtfleet/internal/entity/expense"
	"max.ks1230/yachtfleet/internal/model/customerr"
)

// Form is the raw text of the expense form. Category comes from a fixed list
// and needs no checking.
type Form struct {
	YachtName string
	Date      string
	Category  expense.Category
	Amount    string
	Note      string
}

// Validate turns the form into a record with the given ID. Errors wrap one of
// customerr.ErrEmptyRequiredField, ErrInvalidDateFormat or ErrInvalidAmount.
func Validate(form Form, id int64) (expense.Record, error) {
	name := strings.TrimSpace(form.YachtName)
	dateStr := strings.TrimSpace(form.Date)
	amountStr := strings.TrimSpace(form.Amount)

	switch {
	case name == "":
		return expense.Record{}, customerr.NewValidationError("yacht name", customerr.ErrEmptyRequiredField)
	case dateStr == "":
		return expense.Record{}, customerr.NewValidationError("date", customerr.ErrEmptyRequiredField)
	case amountStr == "":
		return expense.Record{}, customerr.NewValidationError("amount", customerr.ErrEmptyRequiredField)
	}

	date, err := time.Parse(expense.DateLayout, dateStr)
	if err != nil {
		return expense.Record{}, customerr.NewValidationError("date", customerr.ErrInvalidDateFormat)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil || amount.IsNegative() {
		return expense.Record{}, customerr.NewValidationError("amount", customerr.ErrInvalidAmount)
	}

	category := form.Category
	if category == "" {
		category = expense.Categories[0]
	}

	return expense.Record{
		ID:        id,
		YachtName: name,
		Date:      date,
		Category:  category,
		Amount:    amount.Round(2),
		Note:      strings.TrimSpace(form.Note),
	}, nil
}

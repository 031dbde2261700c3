package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type Category string

const (
	Maintenance Category = "Maintenance"
	Repairs     Category = "Repairs"
	Insurance   Category = "Insurance"
	DockingFees Category = "Docking Fees"
	Other       Category = "Other"
)

// Categories in the order the form offers them. Records read from a file may
// carry any other category text.
var Categories = []Category{Maintenance, Repairs, Insurance, DockingFees, Other}

func (c Category) Known() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

type Record struct {
	ID        int64
	YachtName string
	Date      time.Time
	Category  Category
	Amount    decimal.Decimal
	Note      string

	// StoredAmount is the amount text read from a file when it is not a plain
	// decimal. It is written back unchanged.
	StoredAmount string
}

// FormattedDate returns the date as stored in the expenses file.
func (r Record) FormattedDate() string {
	return r.Date.Format(DateLayout)
}

// FormattedAmount returns the amount with exactly two decimals, or the stored
// text for amounts that were not plain decimals in the file.
func (r Record) FormattedAmount() string {
	if r.StoredAmount != "" {
		return r.StoredAmount
	}
	return r.Amount.StringFixed(2)
}

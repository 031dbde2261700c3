package expenses

import (
	"max.ks1230/yachtfleet/internal/entity/expense"
)

// Book is the append-only list of expenses for one session together with the
// ID the next record gets.
type Book struct {
	records []expense.Record
	nextID  int64
}

func NewBook(records []expense.Record, nextID int64) *Book {
	if nextID < 1 {
		nextID = 1
	}
	return &Book{
		records: append([]expense.Record(nil), records...),
		nextID:  nextID,
	}
}

// Records returns a copy of the records, oldest first.
func (b *Book) Records() []expense.Record {
	return append([]expense.Record(nil), b.records...)
}

func (b *Book) NextID() int64 {
	return b.nextID
}

func (b *Book) Len() int {
	return len(b.records)
}

// Submit validates the form and appends the new record. The book is left
// unchanged when validation fails.
func (b *Book) Submit(form Form) (expense.Record, error) {
	rec, err := Validate(form, b.nextID)
	if err != nil {
		return expense.Record{}, err
	}
	b.records = append(b.records, rec)
	b.nextID++
	return rec, nil
}

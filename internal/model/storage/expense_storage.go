package storage

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/yachtfleet/internal/entity/expense"
	"max.ks1230/yachtfleet/internal/logger"
	"max.ks1230/yachtfleet/internal/model/customerr"
)

const (
	ExpensesFile  = "yacht_koltsegek_2024.csv"
	ExpenseHeader = "id;yachtname;datum;kategoria;osszeg;megjegyzes"

	expenseColumns = 6
)

// ExpenseStorage keeps expense records in a semicolon separated file. Every
// save rewrites the whole file.
type ExpenseStorage struct {
	path string
}

func NewExpenseStorage(path string) *ExpenseStorage {
	return &ExpenseStorage{path: path}
}

// Load returns the stored records in file order and the next free ID. A
// missing file is created with only the header. On a parse failure the records
// read before the failing row are returned together with the error.
func (s *ExpenseStorage) Load() ([]expense.Record, int64, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		logger.Info("expenses file missing, creating", zap.String("path", s.path))
		if err = s.createEmpty(); err != nil {
			return nil, 1, err
		}
		return nil, 1, nil
	}

	records := make([]expense.Record, 0)
	err := readRows(s.path, expenseColumns, SkipMalformed, func(r row) error {
		rec, err := parseExpense(r)
		if err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})

	nextID := NextExpenseID(records)
	if err != nil {
		return records, nextID, errors.Wrap(err, "load expenses")
	}
	logger.Info("expenses loaded", zap.String("path", s.path), zap.Int("count", len(records)))
	return records, nextID, nil
}

// Save overwrites the file with the header and all records in order.
func (s *ExpenseStorage) Save(records []expense.Record) (err error) {
	f, err := os.Create(s.path)
	if err != nil {
		return &customerr.FileError{Op: customerr.OpWrite, Path: s.path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &customerr.FileError{Op: customerr.OpWrite, Path: s.path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	if _, err = w.WriteString(ExpenseHeader + "\n"); err != nil {
		return &customerr.FileError{Op: customerr.OpWrite, Path: s.path, Err: err}
	}
	for _, rec := range records {
		if _, err = w.WriteString(formatExpense(rec) + "\n"); err != nil {
			return &customerr.FileError{Op: customerr.OpWrite, Path: s.path, Err: err}
		}
	}
	if err = w.Flush(); err != nil {
		return &customerr.FileError{Op: customerr.OpWrite, Path: s.path, Err: err}
	}

	logger.Debug("expenses saved", zap.String("path", s.path), zap.Int("count", len(records)))
	return nil
}

func (s *ExpenseStorage) createEmpty() error {
	err := os.WriteFile(s.path, []byte(ExpenseHeader+"\n"), 0o644)
	if err != nil {
		return &customerr.FileError{Op: customerr.OpCreate, Path: s.path, Err: err}
	}
	return nil
}

// NextExpenseID is one above the largest ID, or 1 for no records.
func NextExpenseID(records []expense.Record) int64 {
	var maxID int64
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}

func parseExpense(r row) (expense.Record, error) {
	id, err := strconv.ParseInt(r.fields[0], 10, 64)
	if err != nil {
		return expense.Record{}, parseError(r, "id", 0, err)
	}
	date, err := time.Parse(expense.DateLayout, r.fields[2])
	if err != nil {
		return expense.Record{}, parseError(r, "datum", 2, err)
	}
	category := expense.Category(r.fields[3])
	if !category.Known() {
		logger.Debug("unknown expense category", zap.Int("line", r.line), zap.String("category", r.fields[3]))
	}

	rec := expense.Record{
		ID:        id,
		YachtName: r.fields[1],
		Date:      date,
		Category:  category,
		Note:      r.fields[5],
	}
	rec.Amount, rec.StoredAmount = parseAmount(r)
	return rec, nil
}

// parseAmount reads the amount column. Text that is not a plain decimal is
// kept for writing back; a decimal comma still gives the value.
func parseAmount(r row) (decimal.Decimal, string) {
	text := r.fields[4]
	if amount, err := decimal.NewFromString(text); err == nil {
		return amount, ""
	}
	logger.Debug("keeping non-decimal amount", zap.Int("line", r.line), zap.String("amount", text))
	if amount, err := decimal.NewFromString(strings.Replace(text, ",", ".", 1)); err == nil {
		return amount, text
	}
	return decimal.Zero, text
}

func formatExpense(rec expense.Record) string {
	return strings.Join([]string{
		strconv.FormatInt(rec.ID, 10),
		rec.YachtName,
		rec.FormattedDate(),
		rec.Category.String(),
		rec.FormattedAmount(),
		rec.Note,
	}, separator)
}

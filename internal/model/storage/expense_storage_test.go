package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/yachtfleet/internal/entity/expense"
	"max.ks1230/yachtfleet/internal/model/customerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_OnMissingExpensesFile_ShouldCreateHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), ExpensesFile)
	s := NewExpenseStorage(path)

	records, nextID, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int64(1), nextID)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ExpenseHeader+"\n", string(raw))
}

func Test_OnUncreatableExpensesFile_ShouldReturnCreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", ExpensesFile)
	_, nextID, err := NewExpenseStorage(path).Load()

	var fileErr *customerr.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, customerr.OpCreate, fileErr.Op)
	assert.Equal(t, int64(1), nextID)
}

func Test_OnHeaderOnlyFile_ShouldLoadNothing(t *testing.T) {
	path := writeFile(t, ExpensesFile, ExpenseHeader+"\n")
	records, nextID, err := NewExpenseStorage(path).Load()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int64(1), nextID)
}

func Test_OnLoad_ShouldSkipShortRowsAndComputeNextID(t *testing.T) {
	path := writeFile(t, ExpensesFile, ExpenseHeader+"\n"+
		"3;Aurora;2024-03-01;Repairs;120.00;hull\n"+
		"4;broken;row\n"+
		"\n"+
		"7;Blue Pearl;2024-04-02;Other;5.50;\r\n"+
		"2;Aurora;2024-01-15;Insurance;1000.00;yearly\n")

	records, nextID, err := NewExpenseStorage(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(8), nextID)

	assert.Equal(t, int64(3), records[0].ID)
	assert.Equal(t, "Aurora", records[0].YachtName)
	assert.Equal(t, expense.Repairs, records[0].Category)
	assert.Equal(t, "hull", records[0].Note)

	assert.Equal(t, "Blue Pearl", records[1].YachtName)
	assert.Equal(t, "", records[1].Note)
	assert.Equal(t, "5.50", records[1].FormattedAmount())
	assert.Equal(t, int64(2), records[2].ID)
}

func Test_OnBadIDMidFile_ShouldKeepEarlierRecordsAndReportParseFailure(t *testing.T) {
	path := writeFile(t, ExpensesFile, ExpenseHeader+"\n"+
		"1;Aurora;2024-03-01;Repairs;120.00;\n"+
		"x;Aurora;2024-03-02;Repairs;10.00;\n"+
		"5;Aurora;2024-03-03;Repairs;10.00;\n")

	records, nextID, err := NewExpenseStorage(path).Load()
	var parseErr *customerr.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, "id", parseErr.Field)
	require.Len(t, records, 1)
	assert.Equal(t, int64(2), nextID)
}

func Test_OnBadDate_ShouldReportParseFailure(t *testing.T) {
	path := writeFile(t, ExpensesFile, ExpenseHeader+"\n"+
		"1;Aurora;2024-01-01;Repairs;1.00;\n"+
		"2;Aurora;2024-13-01;Repairs;1.00;\n")

	records, _, err := NewExpenseStorage(path).Load()
	var parseErr *customerr.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "datum", parseErr.Field)
	assert.Equal(t, "2024-13-01", parseErr.Value)
	assert.Len(t, records, 1)
}

func Test_OnUnknownCategoryOrAmountText_ShouldLoadAndWriteBackUnchanged(t *testing.T) {
	content := ExpenseHeader + "\n" +
		"1;Aurora;2024-03-01;Fuel;40.00;\n" +
		"2;Aurora;2024-03-02;Repairs;12,50;\n" +
		"3;Blue Pearl;2024-03-03;Repairs;n/a;unknown\n"
	path := writeFile(t, ExpensesFile, content)
	s := NewExpenseStorage(path)

	records, nextID, err := s.Load()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(4), nextID)

	assert.Equal(t, expense.Category("Fuel"), records[0].Category)
	assert.False(t, records[0].Category.Known())
	assert.True(t, records[1].Category.Known())

	assert.Equal(t, "12,50", records[1].FormattedAmount())
	assert.True(t, decimal.RequireFromString("12.5").Equal(records[1].Amount))
	assert.Equal(t, "n/a", records[2].FormattedAmount())
	assert.True(t, records[2].Amount.IsZero())

	require.NoError(t, s.Save(records))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(raw))
}

func Test_OnSemicolonInText_ShouldWriteItUnescaped(t *testing.T) {
	path := filepath.Join(t.TempDir(), ExpensesFile)
	s := NewExpenseStorage(path)

	require.NoError(t, s.Save([]expense.Record{{
		ID: 1, YachtName: "Aurora", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Category: expense.Other, Amount: decimal.NewFromInt(3), Note: "fuel;oil",
	}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ExpenseHeader+"\n1;Aurora;2024-05-01;Other;3.00;fuel;oil\n", string(raw))

	// The extra column is ignored on reload, so the note loses its tail.
	out, _, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "fuel", out[0].Note)
}

func Test_OnSaveThenLoad_ShouldRoundTripInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), ExpensesFile)
	s := NewExpenseStorage(path)

	in := []expense.Record{
		{ID: 1, YachtName: "Aurora", Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			Category: expense.DockingFees, Amount: decimal.RequireFromString("12.5"), Note: "marina"},
		{ID: 2, YachtName: "Blue Pearl", Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			Category: expense.Maintenance, Amount: decimal.Zero, Note: ""},
	}
	require.NoError(t, s.Save(in))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ExpenseHeader+"\n"+
		"1;Aurora;2024-02-29;Docking Fees;12.50;marina\n"+
		"2;Blue Pearl;2024-07-01;Maintenance;0.00;\n", string(raw))

	out, nextID, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, len(in))
	assert.Equal(t, int64(3), nextID)
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].YachtName, out[i].YachtName)
		assert.True(t, in[i].Date.Equal(out[i].Date))
		assert.Equal(t, in[i].Category, out[i].Category)
		assert.Equal(t, in[i].FormattedAmount(), out[i].FormattedAmount())
		assert.Equal(t, in[i].Note, out[i].Note)
	}
}

func Test_OnSaveIntoMissingDir_ShouldReturnWriteFailure(t *testing.T) {
	s := NewExpenseStorage(filepath.Join(t.TempDir(), "missing", ExpensesFile))
	err := s.Save(nil)

	var fileErr *customerr.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, customerr.OpWrite, fileErr.Op)
}

func Test_OnNextExpenseID_ShouldUseMaximum(t *testing.T) {
	assert.Equal(t, int64(1), NextExpenseID(nil))
	assert.Equal(t, int64(10), NextExpenseID([]expense.Record{{ID: 9}, {ID: 2}}))
}

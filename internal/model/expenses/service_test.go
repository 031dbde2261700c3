package expenses

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/yachtfleet/internal/entity/expense"
	"max.ks1230/yachtfleet/internal/model/customerr"
	"max.ks1230/yachtfleet/internal/model/expenses/mock"
	"max.ks1230/yachtfleet/internal/model/storage"
)

func Test_OnBookSubmit_ShouldAssignIncreasingIDs(t *testing.T) {
	b := NewBook([]expense.Record{{ID: 5}}, 6)

	first, err := b.Submit(validForm())
	require.NoError(t, err)
	second, err := b.Submit(validForm())
	require.NoError(t, err)

	assert.Equal(t, int64(6), first.ID)
	assert.Equal(t, int64(7), second.ID)
	assert.Equal(t, int64(8), b.NextID())
	assert.Equal(t, 3, b.Len())
}

func Test_OnBookSubmitInvalid_ShouldKeepState(t *testing.T) {
	b := NewBook(nil, 0)
	form := validForm()
	form.Amount = "-1"

	_, err := b.Submit(form)
	assert.Error(t, err)
	assert.Equal(t, int64(1), b.NextID())
	assert.Equal(t, 0, b.Len())
}

func Test_OnServiceSubmit_ShouldRewriteWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), storage.ExpensesFile)
	require.NoError(t, os.WriteFile(path, []byte(storage.ExpenseHeader+"\n"+
		"2;Aurora;2024-01-10;Repairs;40.00;engine\n"), 0o644))

	s := NewService(storage.NewExpenseStorage(path))
	require.NoError(t, s.Open())

	rec, err := s.Submit(Form{
		YachtName: "Blue Pearl",
		Date:      "2024-03-05",
		Category:  expense.DockingFees,
		Amount:    "0",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.ID)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, storage.ExpenseHeader+"\n"+
		"2;Aurora;2024-01-10;Repairs;40.00;engine\n"+
		"3;Blue Pearl;2024-03-05;Docking Fees;0.00;\n", string(raw))
	assert.Len(t, s.Records(), 2)
}

func Test_OnServiceSubmitAfterLoadingUnusualRows_ShouldKeepThemInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), storage.ExpensesFile)
	stored := storage.ExpenseHeader + "\n" +
		"1;Aurora;2024-03-01;Fuel;40.00;\n" +
		"2;Aurora;2024-03-02;Repairs;12,50;\n" +
		"3;Aurora;2024-03-03;Repairs;10.00;\n"
	require.NoError(t, os.WriteFile(path, []byte(stored), 0o644))

	s := NewService(storage.NewExpenseStorage(path))
	require.NoError(t, s.Open())
	require.Len(t, s.Records(), 3)

	rec, err := s.Submit(Form{YachtName: "B", Date: "2024-03-05", Category: expense.Other, Amount: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), rec.ID)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, stored+"4;B;2024-03-05;Other;1.00;\n", string(raw))
}

func Test_OnServiceSubmitInvalid_ShouldNotWrite(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	st := mock.NewExpenseStorageMock(m)

	st.LoadMock.Return(nil, 1, nil)

	s := NewService(st)
	require.NoError(t, s.Open())

	form := validForm()
	form.Date = "2024-13-01"
	_, err := s.Submit(form)

	assert.True(t, errors.Is(err, customerr.ErrInvalidDateFormat))
	assert.Equal(t, uint64(0), st.SaveBeforeCounter())
	assert.Empty(t, s.Records())
}

func Test_OnServiceSaveFailure_ShouldKeepRecordAndReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	st := mock.NewExpenseStorageMock(m)

	writeErr := &customerr.FileError{Op: customerr.OpWrite, Path: "x.csv", Err: os.ErrPermission}
	st.LoadMock.Return(nil, 1, nil)
	st.SaveMock.
		Inspect(func(records []expense.Record) {
			assert.Len(m, records, 1)
		}).
		Return(writeErr)

	s := NewService(st)
	require.NoError(t, s.Open())

	rec, err := s.Submit(validForm())
	var fileErr *customerr.FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, customerr.OpWrite, fileErr.Op)
	assert.Equal(t, int64(1), rec.ID)
	assert.Len(t, s.Records(), 1)
}

func Test_OnServiceOpenPartialLoad_ShouldKeepLoadedRecords(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	st := mock.NewExpenseStorageMock(m)

	loadErr := &customerr.ParseError{Line: 3, Field: "id", Value: "x"}
	st.LoadMock.Return([]expense.Record{{ID: 1}}, 2, loadErr)
	st.SaveMock.
		Inspect(func(records []expense.Record) {
			assert.Equal(m, []int64{1, 2}, []int64{records[0].ID, records[1].ID})
		}).
		Return(nil)

	s := NewService(st)

	err := s.Open()
	var parseErr *customerr.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Len(t, s.Records(), 1)

	rec, err := s.Submit(validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.ID)
}

package expenses

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/yachtfleet/internal/entity/expense"
	"max.ks1230/yachtfleet/internal/logger"
)

type expenseStorage interface {
	Load() ([]expense.Record, int64, error)
	Save(records []expense.Record) error
}

type Service struct {
	storage expenseStorage
	book    *Book
}

func NewService(storage expenseStorage) *Service {
	return &Service{
		storage: storage,
		book:    NewBook(nil, 1),
	}
}

// Open loads the stored expenses. Whatever was read before a failure stays
// available, so the error is something to show, not a reason to stop.
func (s *Service) Open() error {
	logger.Info("Open - start")
	defer logger.Info("Open - end")

	records, nextID, err := s.storage.Load()
	s.book = NewBook(records, nextID)
	if err != nil {
		logger.Error("failed to load expenses", zap.Error(err), zap.Int("loaded", len(records)))
		return errors.Wrap(err, "open expenses")
	}
	logger.Info("expenses opened", zap.Int("count", s.book.Len()), zap.Int64("next_id", s.book.NextID()))
	return nil
}

func (s *Service) Records() []expense.Record {
	return s.book.Records()
}

// Submit adds a new expense and rewrites the file. When the write fails the
// record is still kept in memory and the write error is returned with it.
func (s *Service) Submit(form Form) (expense.Record, error) {
	rec, err := s.book.Submit(form)
	if err != nil {
		logger.Debug("expense rejected", zap.Error(err))
		return expense.Record{}, err
	}
	logger.Info("expense added", zap.Int64("id", rec.ID), zap.String("yacht", rec.YachtName))

	if err = s.storage.Save(s.book.Records()); err != nil {
		logger.Error("failed to save expenses", zap.Error(err))
		return rec, errors.Wrap(err, "save expenses")
	}
	return rec, nil
}

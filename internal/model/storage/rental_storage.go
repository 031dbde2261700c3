package storage

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/yachtfleet/internal/entity/rental"
	"max.ks1230/yachtfleet/internal/logger"
)

const (
	RentalsFile = "yacht_berlesek_2024.csv"

	rentalColumns = 6
)

// RentalStorage reads bookings from a semicolon separated file with the
// columns uid;yachtid;startdate;enddate;dailyPrice;name. It never writes.
type RentalStorage struct {
	path string
}

func NewRentalStorage(path string) *RentalStorage {
	return &RentalStorage{path: path}
}

// Load reads every booking. Any malformed or unparsable row fails the whole
// load, no partial result is returned.
func (s *RentalStorage) Load() ([]rental.Record, error) {
	records := make([]rental.Record, 0)
	err := readRows(s.path, rentalColumns, AbortOnMalformed, func(r row) error {
		rec, err := parseRental(r)
		if err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load rentals")
	}

	logger.Info("rentals loaded", zap.String("path", s.path), zap.Int("count", len(records)))
	return records, nil
}

func parseRental(r row) (rental.Record, error) {
	var (
		rec rental.Record
		err error
	)
	if rec.UID, err = strconv.ParseInt(r.fields[0], 10, 64); err != nil {
		return rental.Record{}, parseError(r, "uid", 0, err)
	}
	if rec.YachtID, err = strconv.ParseInt(r.fields[1], 10, 64); err != nil {
		return rental.Record{}, parseError(r, "yachtid", 1, err)
	}
	if rec.Start, err = time.Parse(rental.DateLayout, r.fields[2]); err != nil {
		return rental.Record{}, parseError(r, "startdate", 2, err)
	}
	if rec.End, err = time.Parse(rental.DateLayout, r.fields[3]); err != nil {
		return rental.Record{}, parseError(r, "enddate", 3, err)
	}
	if rec.End.Before(rec.Start) {
		return rental.Record{}, parseError(r, "enddate", 3, errors.Errorf("before startdate %s", r.fields[2]))
	}
	if rec.DailyPrice, err = strconv.ParseInt(r.fields[4], 10, 64); err != nil {
		return rental.Record{}, parseError(r, "dailyPrice", 4, err)
	}
	rec.Name = r.fields[5]
	return rec, nil
}

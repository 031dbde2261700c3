package storage

import (
	"bufio"
	"os"
	"strings"

	"go.uber.org/zap"
	"max.ks1230/yachtfleet/internal/logger"
	"max.ks1230/yachtfleet/internal/model/customerr"
)

const separator = ";"

// MalformedPolicy decides what happens to a row with missing columns.
type MalformedPolicy int

const (
	SkipMalformed MalformedPolicy = iota
	AbortOnMalformed
)

func (p MalformedPolicy) String() string {
	if p == AbortOnMalformed {
		return "abort"
	}
	return "skip"
}

type row struct {
	line   int
	fields []string
}

// readRows calls fn for every data row of the file at path. The first line is
// the header and is never passed on. Blank lines are ignored.
func readRows(path string, columns int, policy MalformedPolicy, fn func(r row) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &customerr.FileError{Op: customerr.OpRead, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Error("error closing file", zap.String("path", path), zap.Error(cerr))
		}
	}()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, separator)
		if len(fields) < columns {
			malformed := &customerr.MalformedRowError{Line: lineNo, Got: len(fields), Want: columns}
			if policy == AbortOnMalformed {
				return malformed
			}
			logger.Debug("skipping malformed row",
				zap.String("path", path), zap.Stringer("policy", policy), zap.Error(malformed))
			continue
		}

		if err = fn(row{line: lineNo, fields: fields}); err != nil {
			return err
		}
	}
	if err = sc.Err(); err != nil {
		return &customerr.FileError{Op: customerr.OpRead, Path: path, Err: err}
	}
	return nil
}

func parseError(r row, field string, col int, err error) error {
	return &customerr.ParseError{Line: r.line, Field: field, Value: r.fields[col], Err: err}
}

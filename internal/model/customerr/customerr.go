package customerr

import (
	"fmt"

	"github.com/pkg/errors"
)

type FileOp string

const (
	OpCreate FileOp = "create"
	OpRead   FileOp = "read"
	OpWrite  FileOp = "write"
)

var (
	ErrEmptyRequiredField = errors.New("required field is empty")
	ErrInvalidDateFormat  = errors.New("date is not in yyyy-MM-dd format")
	ErrInvalidAmount      = errors.New("amount must be a non-negative number")
)

// FileError reports a failed create, read or write of a data file.
type FileError struct {
	Op   FileOp
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// MalformedRowError is a data row with fewer columns than the file format requires.
type MalformedRowError struct {
	Line int
	Got  int
	Want int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: expected %d columns, got %d", e.Line, e.Want, e.Got)
}

// ParseError is a column value that cannot be converted to its typed field.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: cannot parse %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type ValidationError struct {
	Field  string
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

func NewValidationError(field string, reason error) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Package customerrors defines the failures the storage engine reports to
// its callers. Every failure wraps one of the sentinel values below, so
// callers can classify them with errors.Is regardless of added context.
package customerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTableAlreadyExists is returned when creating a table whose name is
	// already registered in the catalog.
	ErrTableAlreadyExists = errors.New("table already exists")

	// ErrTableNotFound is returned by append/read on an unregistered table.
	ErrTableNotFound = errors.New("table not found")

	// ErrEmptySchema is returned when creating a table with zero columns.
	ErrEmptySchema = errors.New("empty schema")

	// ErrDuplicateColumn is returned when a schema names a column twice. Such
	// errors also match ErrEmptySchema.
	ErrDuplicateColumn = errors.New("duplicate column")

	ErrInvalidName = errors.New("invalid name")

	// ErrInsertArityMismatch is returned when a row carries a different number
	// of values than the insert column list, or the column list does not
	// cover the table schema exactly.
	ErrInsertArityMismatch = errors.New("insert arity mismatch")

	// ErrSchemaMismatch is returned when a row batch's keys differ from the
	// table schema at write time.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrInvalidValue is returned when a value can't be cast to its column type.
	ErrInvalidValue = errors.New("invalid value")

	ErrColumnNotFound = errors.New("column not found")

	// ErrTableEmpty is returned when reading a table that has no data files.
	ErrTableEmpty = errors.New("table is empty")

	ErrMissingDataFile = errors.New("missing data file")
	ErrCorruptDataFile = errors.New("corrupt data file")
	ErrCorruptMetadata = errors.New("corrupt metadata")
	ErrIOFailure       = errors.New("io failure")

	// ErrNotDurable is returned when a file was renamed into place but the
	// directory entry couldn't be synced. The new content is visible and may
	// or may not survive a crash.
	ErrNotDurable = errors.New("not durable")

	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrInvalidPlan is returned for plan documents that can't be decoded.
	ErrInvalidPlan = errors.New("invalid plan")
)

// SchemaMismatchError describes the symmetric difference between the columns
// a table expects and the columns a row actually carried.
type SchemaMismatchError struct {
	Table string
	// Row is the offending row index, or -1 when the mismatch is in the
	// statement's column list rather than a single row.
	Row     int
	Missing []string
	Extra   []string

	// Kind is the sentinel this error matches. It defaults to ErrSchemaMismatch.
	Kind error
}

func (e *SchemaMismatchError) Error() string {
	where := fmt.Sprintf("table '%s'", e.Table)
	if e.Row >= 0 {
		where = fmt.Sprintf("%s, row %d", where, e.Row)
	}
	return fmt.Sprintf(
		"%v: %s: missing columns [%s], unexpected columns [%s]",
		e.kind(), where, strings.Join(e.Missing, ", "), strings.Join(e.Extra, ", "),
	)
}

func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch || target == e.kind()
}

func (e *SchemaMismatchError) kind() error {
	if e.Kind == nil {
		return ErrSchemaMismatch
	}
	return e.Kind
}

// ColumnNotFoundError lists every requested column absent from a table schema.
type ColumnNotFoundError struct {
	Table   string
	Columns []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("%v: table '%s': [%s]", ErrColumnNotFound, e.Table, strings.Join(e.Columns, ", "))
}

func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}

type kindError struct {
	kind  error
	cause error
	msg   string
}

// WithKind annotates cause with a message and classifies it as kind, so that
// both errors.Is(err, kind) and errors.Is(err, cause) hold.
func WithKind(kind, cause error, format string, args ...interface{}) error {
	return &kindError{
		kind:  kind,
		cause: cause,
		msg:   fmt.Sprintf(format, args...),
	}
}

func (e *kindError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %v", e.msg, e.kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.msg, e.kind, e.cause)
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func (e *kindError) Unwrap() error {
	return e.cause
}

package query

import (
	"errors"
	"fmt"
)

var (
	// ErrTableNotFound indicates a lookup of an unknown table name.
	ErrTableNotFound = errors.New("table not found")
	// ErrRowNotFound indicates a lookup of an unknown row label.
	ErrRowNotFound = errors.New("row not found")
)

// NotFoundError reports a missing table, or a missing row within a table.
// Kind is ErrTableNotFound or ErrRowNotFound; a nil Kind means a missing
// table. The error matches its Kind with errors.Is.
type NotFoundError struct {
	Kind  error
	Table string
	Row   string
}

func (e *NotFoundError) Error() string {
	if e.Kind == ErrRowNotFound {
		return fmt.Sprintf("Row '%s' not found in table '%s'", e.Row, e.Table)
	}
	return fmt.Sprintf("Table '%s' not found", e.Table)
}

func (e *NotFoundError) Unwrap() error {
	if e.Kind == nil {
		return ErrTableNotFound
	}
	return e.Kind
}

package extable

import (
	"errors"
	"fmt"

	"github.com/ukaji3/extable-go/pkg/extable/query"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrUninitialized is returned by every query when the workbook failed to load.
var ErrUninitialized = errors.New("excel processor not initialized")

// ErrTableNotFound indicates a lookup of an unknown table name.
var ErrTableNotFound = query.ErrTableNotFound

// ErrRowNotFound indicates a lookup of an unknown row label.
var ErrRowNotFound = query.ErrRowNotFound

// NotFoundError is re-exported from the query package and reports a missing
// table, or a missing row within a table.
type NotFoundError = query.NotFoundError

// LoadError represents an error while reading the workbook.
type LoadError struct {
	Path      string
	SheetName string // empty when the failure is not sheet specific
	Err       error
}

func (e *LoadError) Error() string {
	if e.SheetName != "" {
		return fmt.Sprintf("load %s: sheet %q: %v", e.Path, e.SheetName, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheetName string, err error) *LoadError {
	return &LoadError{
		Path:      path,
		SheetName: sheetName,
		Err:       err,
	}
}

// Package extable loads spreadsheet workbooks, segments their sheets into
// named tables, and answers label and row-sum queries over them.
package extable

import "github.com/ukaji3/extable-go/internal/logging"

// Options configures loading behavior.
type Options struct {
	// Sheets restricts loading to the named sheets. Empty loads every sheet.
	Sheets []string
	// Logger receives load progress. Nil uses logging.Default.
	Logger *logging.Logger
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldLoadSheet reports whether the named sheet is selected.
func (o Options) ShouldLoadSheet(name string) bool {
	if len(o.Sheets) == 0 {
		return true
	}
	for _, s := range o.Sheets {
		if s == name {
			return true
		}
	}
	return false
}

func (o Options) logger() *logging.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Default
}

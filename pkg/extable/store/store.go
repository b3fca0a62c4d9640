// Package store holds the tables of a workbook, keyed by name.
package store

import (
	"github.com/ukaji3/extable-go/internal/logging"
	"github.com/ukaji3/extable-go/pkg/extable/models"
)

// Store maps table names to tables. It is built once and never modified
// afterwards, so concurrent readers need no locking.
type Store struct {
	names  []string
	tables map[string]*models.Table
}

// Build creates a store from tables in segmentation order.
//
// A table whose name was already seen replaces the earlier table while
// keeping the earlier position in Names. Tables without rows are skipped.
func Build(tables []models.Table, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Default
	}

	s := &Store{
		names:  make([]string, 0, len(tables)),
		tables: make(map[string]*models.Table, len(tables)),
	}

	for i := range tables {
		table := tables[i]
		if table.Rows() == 0 {
			log.Warn("skipping empty table %q on sheet %q", table.Name, table.Sheet)
			continue
		}
		if prev, ok := s.tables[table.Name]; ok {
			log.Warn("table %q on sheet %q (row %d) replaces the one on sheet %q (row %d)",
				table.Name, table.Sheet, table.StartRow, prev.Sheet, prev.StartRow)
		} else {
			s.names = append(s.names, table.Name)
		}
		s.tables[table.Name] = &table
	}

	return s
}

// Get returns the named table.
func (s *Store) Get(name string) (*models.Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// Names returns table names in insertion order. The slice is a copy.
func (s *Store) Names() []string {
	return append([]string{}, s.names...)
}

// Len returns the number of tables.
func (s *Store) Len() int {
	return len(s.names)
}

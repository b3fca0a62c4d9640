// Package query answers table listing, row label and row sum queries.
package query

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/extable-go/pkg/extable/models"
	"github.com/ukaji3/extable-go/pkg/extable/store"
)

// Engine runs queries against a built store. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	store *store.Store
}

// TableSummary describes the shape of one table.
type TableSummary struct {
	Name     string `json:"name"`
	Sheet    string `json:"sheet"`
	StartRow int    `json:"start_row"`
	Rows     int    `json:"rows"`
	Columns  int    `json:"columns"`
}

// NewEngine creates an Engine over s.
func NewEngine(s *store.Store) *Engine {
	return &Engine{store: s}
}

// ListTables returns every table name in load order.
func (e *Engine) ListTables() []string {
	return e.store.Names()
}

// RowLabels returns the first-cell text of each row that has one, in row
// order.
func (e *Engine) RowLabels(tableName string) ([]string, error) {
	table, err := e.table(tableName)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, table.Rows())
	for _, row := range table.Grid {
		if len(row) == 0 || row[0].IsEmpty() {
			continue
		}
		labels = append(labels, row[0].String())
	}
	return labels, nil
}

// RowSum adds up the numeric cells after the label of the first row whose
// label equals rowName. Cells that do not coerce to a number are skipped.
func (e *Engine) RowSum(tableName, rowName string) (float64, error) {
	table, err := e.table(tableName)
	if err != nil {
		return 0, err
	}

	row, ok := findRow(table, rowName)
	if !ok {
		return 0, &NotFoundError{Kind: ErrRowNotFound, Table: tableName, Row: rowName}
	}

	total := decimal.Zero
	for _, cell := range row[1:] {
		if n, ok := Coerce(cell); ok {
			total = total.Add(decimal.NewFromFloat(n))
		}
	}
	return total.InexactFloat64(), nil
}

// Describe returns the shape of the named table.
func (e *Engine) Describe(tableName string) (*TableSummary, error) {
	table, err := e.table(tableName)
	if err != nil {
		return nil, err
	}
	return &TableSummary{
		Name:     table.Name,
		Sheet:    table.Sheet,
		StartRow: table.StartRow,
		Rows:     table.Rows(),
		Columns:  table.Columns(),
	}, nil
}

func (e *Engine) table(name string) (*models.Table, error) {
	table, ok := e.store.Get(name)
	if !ok {
		return nil, &NotFoundError{Kind: ErrTableNotFound, Table: name}
	}
	return table, nil
}

func findRow(table *models.Table, label string) ([]models.Value, bool) {
	for _, row := range table.Grid {
		if len(row) == 0 || row[0].IsEmpty() {
			continue
		}
		if row[0].String() == label {
			return row, true
		}
	}
	return nil, false
}

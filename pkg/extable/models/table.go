package models

// Table is a named region of a sheet detected by segmentation.
type Table struct {
	// Name is the trimmed marker text, or the sheet fallback name.
	Name string `json:"name"`
	// Sheet is the sheet the table was found on.
	Sheet string `json:"sheet"`
	// StartRow is the 1-based sheet row where the table begins.
	StartRow int `json:"start_row"`
	// Grid holds the table rows.
	Grid Grid `json:"-"`
}

// Rows returns the number of rows in the table grid.
func (t *Table) Rows() int { return len(t.Grid) }

// Columns returns the width of the table grid.
func (t *Table) Columns() int { return t.Grid.Width() }

package models

// Grid is an ordered sequence of rows of cell values.
type Grid [][]Value

// Width returns the length of the longest row.
func (g Grid) Width() int {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]Value(nil), row...)
	}
	return out
}

// SheetData represents the cell grid of a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Grid holds the sheet rows, padded to a rectangle.
	Grid Grid `json:"grid"`
}

package parser

import "github.com/ukaji3/extable-go/pkg/extable/models"

// CleanGrid returns a copy of grid without rows whose cells are all empty and
// then without columns whose cells are all empty across the remaining rows.
// Row and column order is preserved. The input is not modified.
func CleanGrid(grid models.Grid) models.Grid {
	rows := make(models.Grid, 0, len(grid))
	for _, row := range grid {
		if !isEmptyRow(row) {
			rows = append(rows, row)
		}
	}

	width := rows.Width()
	keep := make([]int, 0, width)
	for col := 0; col < width; col++ {
		if !isEmptyColumn(rows, col) {
			keep = append(keep, col)
		}
	}

	cleaned := make(models.Grid, len(rows))
	for i, row := range rows {
		out := make([]models.Value, len(keep))
		for j, col := range keep {
			if col < len(row) {
				out[j] = row[col]
			}
		}
		cleaned[i] = out
	}
	return cleaned
}

func isEmptyRow(row []models.Value) bool {
	for _, cell := range row {
		if !cell.IsEmpty() {
			return false
		}
	}
	return true
}

func isEmptyColumn(rows models.Grid, col int) bool {
	for _, row := range rows {
		if col < len(row) && !row[col].IsEmpty() {
			return false
		}
	}
	return true
}

package parser

import (
	"strings"

	"github.com/ukaji3/extable-go/pkg/extable/models"
)

// DefaultTableName names the single table of a sheet that has no name.
const DefaultTableName = "Default_Table"

// FallbackTableName returns the name used when a sheet contains no table markers.
func FallbackTableName(sheetName string) string {
	if sheetName == "" {
		return DefaultTableName
	}
	return "Sheet_" + sheetName
}

// SegmentTables splits a sheet grid into tables in a single top-to-bottom pass.
//
// A row whose first cell is non-blank text starts a new table named by that
// text (trimmed) and closes the previous one. Rows above the first marker
// belong to no table. A sheet without markers becomes one table named by
// FallbackTableName. Returned grids are raw row ranges of the input and share
// its backing arrays; run them through CleanGrid before use.
func SegmentTables(sheetName string, grid models.Grid) []models.Table {
	var tables []models.Table

	open := false
	var name string
	start := 0

	for idx, row := range grid {
		if len(row) == 0 || !row[0].IsMarker() {
			continue
		}
		if open {
			tables = append(tables, newTable(name, sheetName, start, grid[start:idx]))
		}
		name = strings.TrimSpace(row[0].Text)
		start = idx
		open = true
	}

	if open {
		tables = append(tables, newTable(name, sheetName, start, grid[start:]))
	}

	if len(tables) == 0 {
		tables = append(tables, newTable(FallbackTableName(sheetName), sheetName, 0, grid))
	}

	return tables
}

func newTable(name, sheetName string, start int, rows models.Grid) models.Table {
	return models.Table{
		Name:     name,
		Sheet:    sheetName,
		StartRow: start + 1,
		Grid:     rows,
	}
}

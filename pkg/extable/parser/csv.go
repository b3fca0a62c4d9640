package parser

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/extable-go/pkg/extable/models"
)

// ExtractCSVGrid reads delimited text into a rectangular grid. Rows may have
// differing field counts; short rows are padded with empty cells.
func ExtractCSVGrid(r io.Reader) (models.Grid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	width := 0
	for _, record := range records {
		if len(record) > width {
			width = len(record)
		}
	}

	grid := make(models.Grid, len(records))
	for i, record := range records {
		cells := make([]models.Value, width)
		for j, field := range record {
			cells[j] = parseValue(field)
		}
		grid[i] = cells
	}
	return grid, nil
}

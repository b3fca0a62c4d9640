package parser

import (
	"math"
	"strconv"
	"time"

	"github.com/ukaji3/extable-go/pkg/extable/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads a sheet into a rectangular grid of typed cell values.
// Raw cell values are used so number formats (percent, currency) do not
// change the stored numbers. Numbers styled with a date or time format
// become raw cells holding the formatted date. Interior empty rows are kept;
// trailing empty rows and cells are not materialised by excelize.
func ExtractGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	dates, err := newDateStyles(f)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := make(models.Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Value, width)
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			value := typedValue(raw, cellType)
			if value.Kind == models.KindNumber {
				isDate, err := dates.isDate(sheetName, cellName)
				if err != nil {
					return nil, err
				}
				if isDate {
					if date, ok := dates.dateValue(value.Number); ok {
						value = date
					}
				}
			}
			cells[colIdx] = value
		}
		grid[rowIdx] = cells
	}

	return grid, nil
}

// typedValue tags a raw cell string using the cell type recorded in the sheet.
// Cells written without a type attribute are numbers in OOXML.
func typedValue(raw string, cellType excelize.CellType) models.Value {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.Text(raw)
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		if n, ok := parseNumber(raw); ok {
			return models.Number(n)
		}
		return models.Text(raw)
	case excelize.CellTypeBool:
		switch raw {
		case "1", "TRUE", "true":
			return models.Raw("TRUE")
		case "0", "FALSE", "false":
			return models.Raw("FALSE")
		}
		return models.Raw(raw)
	case excelize.CellTypeDate:
		for _, layout := range isoDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return models.Raw(t.Format(dateLayout))
			}
		}
		return models.Raw(raw)
	default:
		return models.Raw(raw)
	}
}

// parseValue types an untyped string, as found in delimited text files.
// Returns a number for integer or decimal text, or the original text.
func parseValue(s string) models.Value {
	if s == "" {
		return models.Empty()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	if n, ok := parseNumber(s); ok {
		return models.Number(n)
	}
	return models.Text(s)
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

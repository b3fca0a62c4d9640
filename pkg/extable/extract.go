package extable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/extable-go/pkg/extable/models"
	"github.com/ukaji3/extable-go/pkg/extable/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads every selected sheet of a workbook into a typed cell grid.
// Files ending in .csv are read as a single sheet named after the file.
func Load(path string, opts Options) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewLoadError(path, "", ErrFileNotFound)
		}
		return nil, NewLoadError(path, "", err)
	}

	bookName := filepath.Base(path)
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return loadCSV(path, bookName, opts)
	}

	log := opts.logger()
	start := time.Now()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(path, "", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	log.Debug("opened workbook %s in %s", bookName, time.Since(start))

	wb := &models.WorkbookData{BookName: bookName}
	for _, sheetName := range f.GetSheetList() {
		if !opts.ShouldLoadSheet(sheetName) {
			continue
		}
		grid, err := parser.ExtractGrid(f, sheetName)
		if err != nil {
			return nil, NewLoadError(path, sheetName, err)
		}
		log.Info("Loaded sheet: %s with shape (%d, %d)", sheetName, len(grid), grid.Width())
		wb.Sheets = append(wb.Sheets, models.SheetData{Name: sheetName, Grid: grid})
	}

	return wb, nil
}

func loadCSV(path, bookName string, opts Options) (*models.WorkbookData, error) {
	sheetName := strings.TrimSuffix(bookName, filepath.Ext(bookName))
	wb := &models.WorkbookData{BookName: bookName}
	if !opts.ShouldLoadSheet(sheetName) {
		return wb, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, NewLoadError(path, "", err)
	}
	defer file.Close()

	grid, err := parser.ExtractCSVGrid(file)
	if err != nil {
		return nil, NewLoadError(path, sheetName, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	opts.logger().Info("Loaded sheet: %s with shape (%d, %d)", sheetName, len(grid), grid.Width())
	wb.Sheets = append(wb.Sheets, models.SheetData{Name: sheetName, Grid: grid})
	return wb, nil
}

// Segment splits every sheet of a workbook into cleaned tables, in sheet
// order and then top-to-bottom within each sheet.
func Segment(wb *models.WorkbookData) []models.Table {
	var tables []models.Table
	for _, sheet := range wb.Sheets {
		for _, table := range parser.SegmentTables(sheet.Name, sheet.Grid) {
			table.Grid = parser.CleanGrid(table.Grid)
			tables = append(tables, table)
		}
	}
	return tables
}

package extable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/extable-go/internal/logging"
	"github.com/xuri/excelize/v2"
)

// createBudgetWorkbook writes a two-sheet workbook.
// Layout:
//
//	Budget:  A1: "Capital Budget" (title, no data)
//	         A3: "Revenue"  B3: "100"      C3: "200"
//	         A4: 2023       B4: -50        C4: "-30"
//	         A5: 2024       B5: "$1,000"
//	         A7: "Ratios"
//	                        B8: "10%"                  D8: " 1,200.50 "
//	Notes:   B2: 1
//	         B3: 2          (no markers)
func createBudgetWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Budget"))
	cells := map[string]interface{}{
		"A1": "Capital Budget",
		"A3": "Revenue", "B3": "100", "C3": "200",
		"A4": 2023, "B4": -50, "C4": "-30",
		"A5": 2024, "B5": "$1,000",
		"A7": "Ratios",
		"B8": "10%", "D8": " 1,200.50 ",
	}
	for cell, value := range cells {
		require.NoError(t, f.SetCellValue("Budget", cell, value))
	}

	_, err := f.NewSheet("Notes")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Notes", "B2", 1))
	require.NoError(t, f.SetCellValue("Notes", "B3", 2))

	path := filepath.Join(t.TempDir(), "budget.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = logging.Discard
	return opts
}

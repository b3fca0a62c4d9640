package models

// WorkbookData represents workbook-level container with per-sheet data.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds sheets in workbook order.
	Sheets []SheetData `json:"sheets"`
}

// Sheet returns the sheet with the given name.
func (w *WorkbookData) Sheet(name string) (*SheetData, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}

package parser

import (
	"strings"
	"time"

	"github.com/ukaji3/extable-go/pkg/extable/models"
	"github.com/xuri/excelize/v2"
)

// dateLayout renders date cells.
const dateLayout = "2006-01-02 15:04:05"

// isoDateLayouts parse cells stored with the ISO 8601 date type.
var isoDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// dateStyles resolves whether a cell style carries a date or time number
// format. Results are cached per style index.
type dateStyles struct {
	file     *excelize.File
	date1904 bool
	cache    map[int]bool
}

func newDateStyles(f *excelize.File) (*dateStyles, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}
	return &dateStyles{
		file:     f,
		date1904: props.Date1904 != nil && *props.Date1904,
		cache:    make(map[int]bool),
	}, nil
}

// isDate reports whether the cell is styled as a date.
func (d *dateStyles) isDate(sheetName, cellName string) (bool, error) {
	idx, err := d.file.GetCellStyle(sheetName, cellName)
	if err != nil {
		return false, err
	}
	if idx == 0 {
		return false, nil
	}
	if date, ok := d.cache[idx]; ok {
		return date, nil
	}

	style, err := d.file.GetStyle(idx)
	if err != nil {
		return false, err
	}
	date := isDateNumFmt(style.NumFmt)
	if style.CustomNumFmt != nil {
		date = isDateFormatCode(*style.CustomNumFmt)
	}
	d.cache[idx] = date
	return date, nil
}

// dateValue converts a serial date number to a raw cell holding its text.
func (d *dateStyles) dateValue(serial float64) (models.Value, bool) {
	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return models.Value{}, false
	}
	return models.Raw(t.Format(dateLayout)), true
}

// isDateNumFmt reports whether a built-in number format id is a date or
// time format. Ids 27-36 and 50-58 are the East Asian locale date formats.
func isDateNumFmt(id int) bool {
	return (id >= 14 && id <= 22) || (id >= 27 && id <= 36) ||
		(id >= 45 && id <= 47) || (id >= 50 && id <= 58)
}

// isDateFormatCode reports whether a custom format code contains date or
// time tokens outside quoted literals, escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	section, _, _ := strings.Cut(code, ";")
	inQuote, inBracket := false, false
	for i := 0; i < len(section); i++ {
		ch := section[i]
		switch {
		case inQuote:
			inQuote = ch != '"'
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		default:
			switch ch | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}
	return false
}

package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/extable-go/pkg/extable/models"
)

// symbolStripper removes the characters tolerated around numbers in text
// cells. The percent sign is removed, not applied.
var symbolStripper = strings.NewReplacer("%", "", "$", "", ",", "")

// Coerce returns the numeric value of a cell. Numbers are used as-is; text
// has '%', '$' and ',' removed and surrounding whitespace trimmed before
// parsing. Empty cells, other cell types, unparsable or non-finite text
// report false.
func Coerce(v models.Value) (float64, bool) {
	switch v.Kind {
	case models.KindNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return 0, false
		}
		return v.Number, true
	case models.KindText:
		clean := strings.TrimSpace(symbolStripper.Replace(v.Text))
		if clean == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(clean, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

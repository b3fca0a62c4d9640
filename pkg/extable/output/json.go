// Package output serializes query results for the command line.
package output

import (
	"github.com/bytedance/sonic"
	"github.com/ukaji3/extable-go/pkg/extable/query"
)

// TablesView is the listing printed by `extable tables`.
type TablesView struct {
	BookName string               `json:"book_name"`
	Tables   []string             `json:"tables,omitempty"`
	Details  []query.TableSummary `json:"details,omitempty"`
}

// RowSumView is the result printed by `extable sum`.
type RowSumView struct {
	TableName string  `json:"table_name"`
	RowName   string  `json:"row_name"`
	Sum       float64 `json:"sum"`
}

// ToJSON encodes v with standard-library compatible output (sorted map keys,
// HTML escaping), optionally indented.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return sonic.ConfigStd.MarshalIndent(v, "", "  ")
	}
	return sonic.ConfigStd.Marshal(v)
}

// Package models defines data structures for workbook tables.
package models

import (
	"strconv"
	"strings"
)

// Kind tags the type of a cell value.
type Kind int

const (
	// KindEmpty marks a cell without a value.
	KindEmpty Kind = iota
	// KindText marks a string cell.
	KindText
	// KindNumber marks a numeric cell.
	KindNumber
	// KindRaw marks any other typed cell (boolean, date, error) kept as source text.
	KindRaw
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Value is a single cell value. Exactly one payload field is meaningful,
// selected by Kind.
type Value struct {
	// Kind is the value tag decided at load time.
	Kind Kind `json:"kind"`
	// Text holds the string for KindText and KindRaw.
	Text string `json:"text,omitempty"`
	// Number holds the number for KindNumber.
	Number float64 `json:"number,omitempty"`
}

// Empty returns an empty cell value.
func Empty() Value { return Value{} }

// Text returns a text cell value.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Number returns a numeric cell value.
func Number(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// Raw returns a cell value of another type, carried as its source text.
func Raw(s string) Value { return Value{Kind: KindRaw, Text: s} }

// IsEmpty reports whether the cell has no value.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// IsMarker reports whether the cell can open a table: text that is not blank.
func (v Value) IsMarker() bool {
	return v.Kind == KindText && strings.TrimSpace(v.Text) != ""
}

// String is the text coercion used for row labels.
func (v Value) String() string {
	switch v.Kind {
	case KindText, KindRaw:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return ""
	}
}

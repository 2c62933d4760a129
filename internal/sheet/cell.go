package sheet

import (
	"strconv"
	"strings"

	"rtac-writer/internal/common"
)

// Kind is the type tag of a cell.
type Kind int

const (
	KindBlank Kind = iota
	KindText
	KindNumber
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return common.UnknownStr
	}
}

// Cell is a single typed spreadsheet value.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
}

// TextCell returns a text cell, or a blank cell for the empty string.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}

	return Cell{Kind: KindText, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: KindNumber, Number: v}
}

// IsBlank reports whether the cell is empty or holds only whitespace.
func (c Cell) IsBlank() bool {
	return c.Kind == KindBlank || (c.Kind == KindText && strings.TrimSpace(c.Text) == "")
}

// IsNumber reports whether the cell holds a numeric value.
func (c Cell) IsNumber() bool {
	return c.Kind == KindNumber
}

// IsText reports whether the cell holds non-blank text.
func (c Cell) IsText() bool {
	return c.Kind == KindText && !c.IsBlank()
}

// Int returns the numeric value truncated to an integer.
func (c Cell) Int() (int, bool) {
	if c.Kind != KindNumber {
		return 0, false
	}

	return int(c.Number), true
}

// String returns the trimmed text, or the shortest decimal form of a number.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return strings.TrimSpace(c.Text)
	case KindNumber:
		return FormatNumber(c.Number)
	default:
		return ""
	}
}

// FormatNumber renders v in its shortest decimal form ("12", "12.5").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package sheet

import (
	"fmt"
	"strings"
)

// Sheet is a named grid of cells. Rows may have different lengths.
type Sheet struct {
	Name string
	Rows [][]Cell
}

// Workbook is a set of sheets read from one file.
type Workbook struct {
	Path   string
	Sheets []*Sheet
}

// NewSheet builds a sheet from Go values. Strings become text cells,
// numbers become numeric cells, nil and "" become blank cells.
func NewSheet(name string, rows [][]any) *Sheet {
	s := &Sheet{Name: name, Rows: make([][]Cell, len(rows))}

	for r, row := range rows {
		cells := make([]Cell, len(row))
		for c, v := range row {
			cells[c] = valueCell(v)
		}

		s.Rows[r] = cells
	}

	return s
}

func valueCell(v any) Cell {
	switch val := v.(type) {
	case nil:
		return Cell{}
	case string:
		return TextCell(val)
	case int:
		return NumberCell(float64(val))
	case int64:
		return NumberCell(float64(val))
	case float64:
		return NumberCell(val)
	case Cell:
		return val
	default:
		return TextCell(fmt.Sprint(val))
	}
}

// NumRows returns the number of rows read from the sheet.
func (s *Sheet) NumRows() int {
	return len(s.Rows)
}

// Row returns the cells of row r (0-based) and whether the row exists.
func (s *Sheet) Row(r int) ([]Cell, bool) {
	if r < 0 || r >= len(s.Rows) {
		return nil, false
	}

	return s.Rows[r], true
}

// Cell returns the cell at row r, column c (both 0-based).
// Out-of-range coordinates yield a blank cell.
func (s *Sheet) Cell(r, c int) Cell {
	row, ok := s.Row(r)
	if !ok || c < 0 || c >= len(row) {
		return Cell{}
	}

	return row[c]
}

// Header returns at most the first n rows.
func (s *Sheet) Header(n int) [][]Cell {
	if n > len(s.Rows) || n <= 0 {
		n = len(s.Rows)
	}

	return s.Rows[:n]
}

// Sheet returns the sheet with the given name, compared case-insensitively.
func (w *Workbook) Sheet(name string) *Sheet {
	for _, s := range w.Sheets {
		if strings.EqualFold(strings.TrimSpace(s.Name), strings.TrimSpace(name)) {
			return s
		}
	}

	return nil
}

// FindSheet returns the first sheet whose name satisfies match.
func (w *Workbook) FindSheet(match func(name string) bool) *Sheet {
	for _, s := range w.Sheets {
		if match(s.Name) {
			return s
		}
	}

	return nil
}

// SheetNames lists the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}

	return names
}

package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"rtac-writer/utils"
)

// OpenError reports a workbook that could not be opened or read.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("unreadable workbook %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Open reads every sheet of the workbook at path and closes the file.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	return readAll(f, path)
}

// Read reads a workbook from r. name is only used in errors and Workbook.Path.
func Read(r io.Reader, name string) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &OpenError{Path: name, Err: err}
	}

	return readAll(f, name)
}

func readAll(f *excelize.File, path string) (wb *Workbook, err error) {
	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			wb, err = nil, &OpenError{Path: path, Err: closeErr}
		}
	}()

	wb = &Workbook{Path: path}

	for _, name := range f.GetSheetList() {
		s, err := readSheet(f, name)
		if err != nil {
			return nil, &OpenError{Path: path, Err: err}
		}

		wb.Sheets = append(wb.Sheets, s)
	}

	return wb, nil
}

func readSheet(f *excelize.File, name string) (*Sheet, error) {
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", name, err)
	}

	s := &Sheet{Name: name, Rows: make([][]Cell, len(rows))}

	for r, row := range rows {
		cells := make([]Cell, len(row))

		for c, raw := range row {
			if raw == "" {
				continue
			}

			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("addressing cell in sheet %q: %w", name, err)
			}

			typ, err := f.GetCellType(name, ref)
			if err != nil {
				return nil, fmt.Errorf("reading type of %s!%s: %w", name, ref, err)
			}

			cells[c] = classify(raw, typ)
		}

		s.Rows[r] = cells
	}

	return s, nil
}

// classify maps a raw excelize value to a typed cell. Numeric cells are
// usually stored without an explicit type, so anything not declared as a
// string is a number when its raw value parses as one.
func classify(raw string, typ excelize.CellType) Cell {
	if utils.IsOneOf(typ, textTypes...) {
		return TextCell(raw)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return TextCell(raw)
	}

	return NumberCell(v)
}

var textTypes = []excelize.CellType{
	excelize.CellTypeSharedString,
	excelize.CellTypeInlineString,
	excelize.CellTypeFormula,
	excelize.CellTypeBool,
	excelize.CellTypeError,
}

// CellRef converts an A1-style reference to 0-based row and column.
func CellRef(ref string) (row, col int, err error) {
	c, r, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell reference %q: %w", ref, err)
	}

	return r - 1, c - 1, nil
}

// CellName converts 0-based row and column to an A1-style reference,
// or "" when they are out of range.
func CellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}

	return name
}

package mapping

import (
	"fmt"
	"strings"

	"rtac-writer/internal/match"
)

// MissingSheetError reports a workbook without the expected sheet.
type MissingSheetError struct {
	Workbook  string
	Sheet     string
	Available []string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("%s: no sheet matching %s (sheets: %s)",
		e.Workbook, e.Sheet, strings.Join(e.Available, ", "))
}

// MissingColumnError reports a required column missing from a sheet.
type MissingColumnError struct {
	Workbook string
	Sheet    string
	Err      *match.ColumnNotFoundError
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: sheet %q: %v", e.Workbook, e.Sheet, e.Err)
}

func (e *MissingColumnError) Unwrap() error {
	return e.Err
}

// EmptyDeviceNameError reports an IED map whose device-name cell is blank.
type EmptyDeviceNameError struct {
	Workbook string
	Sheet    string
	Cell     string
}

func (e *EmptyDeviceNameError) Error() string {
	if e.Cell == "" {
		return fmt.Sprintf("%s: sheet %q: device name not found", e.Workbook, e.Sheet)
	}

	return fmt.Sprintf("%s: sheet %q: device name cell %s is blank", e.Workbook, e.Sheet, e.Cell)
}

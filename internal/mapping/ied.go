package mapping

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"rtac-writer/internal/common"
	"rtac-writer/internal/diagnostic"
	"rtac-writer/internal/match"
	"rtac-writer/internal/sheet"
	"rtac-writer/utils"
)

var errBlankIndex = errors.New("point index is blank")

type iedColumns struct {
	key             int
	label           int
	index           int
	description     int
	remoteMark      int
	supervisoryMark int
}

func newIEDColumns(s match.Schema) iedColumns {
	return iedColumns{
		key:             s.Col(ColKey),
		label:           s.Col(ColLabel),
		index:           s.Col(ColIndex),
		description:     s.Col(ColDescription),
		remoteMark:      s.Col(ColRemoteMark),
		supervisoryMark: s.Col(ColSupervisoryMark),
	}
}

// LoadDevice reads the point list of one IED map into a PointTable keyed by
// the normalized, prefix-stripped device name.
//
// Rows are read from the first data row until the key cell is blank.
// Rows with an unusable point index are skipped with a warning.
func LoadDevice(wb *sheet.Workbook, s Settings) (*PointTable, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	layout := s.IED
	source := filepath.Base(wb.Path)

	sh := wb.Sheet(layout.Sheet)
	if sh == nil {
		return nil, diags, &MissingSheetError{Workbook: wb.Path, Sheet: strconv.Quote(layout.Sheet), Available: wb.SheetNames()}
	}

	header := sh.Header(layout.HeaderRows)

	rawName, err := deviceName(wb, sh, header, layout)
	if err != nil {
		return nil, diags, err
	}

	schema, err := match.ResolveSchema(header, layout.Columns)
	if err != nil {
		return nil, diags, missingColumn(wb, sh, err)
	}

	cols := newIEDColumns(schema)
	aliasDevice := s.Normalizer.Normalize(rawName)
	table := NewPointTable(s.Normalizer.Normalize(s.Normalizer.StripPrefix(strings.TrimSpace(rawName))), wb.Path)

	for r := layout.FirstDataRow - 1; r < sh.NumRows(); r++ {
		keyCell := sh.Cell(r, cols.key)
		if keyCell.IsBlank() {
			break
		}

		loc := diagnostic.Location{Source: source, Device: table.Device, Row: r + 1}
		supervisory := isMarked(sh.Cell(r, cols.supervisoryMark), s.Marker)

		index, err := parsePointIndex(sh.Cell(r, cols.index))
		if err != nil {
			if supervisory || !errors.Is(err, errBlankIndex) {
				diags.AddWarning("invalid_point_index",
					fmt.Sprintf("point %q skipped (cell %s): %v", keyCell.String(), sheet.CellName(r, cols.index), err), loc)
			}

			continue
		}

		label := sh.Cell(r, cols.label).String()
		if supervisory && !LabelHasToken(aliasDevice, label) {
			diags.AddWarning("label_token_missing",
				fmt.Sprintf("HMI label %q does not contain the device token of %q; alias uses the whole label",
					label, aliasDevice), loc)
		}

		point := NewPointRecord(PointRecord{
			Device:                  aliasDevice,
			Key:                     PointKey(keyCell.String()),
			HMILabel:                label,
			PointType:               s.PointType,
			Index:                   index,
			Description:             sh.Cell(r, cols.description).String(),
			MarkedForRemoteTerminal: isMarked(sh.Cell(r, cols.remoteMark), s.Marker),
			MarkedForSupervisory:    supervisory,
			Row:                     r + 1,
		})

		if table.Put(point) {
			diags.AddWarning("duplicate_key", fmt.Sprintf("point key %q repeated; last row wins", point.Key), loc)
		}
	}

	if table.Len() == 0 {
		diags.AddInfo("empty_point_table", "device map has no points", diagnostic.Location{Source: source, Device: table.Device})
	}

	return table, diags, nil
}

// deviceName returns the cell below the device-name label, falling back to
// the configured fixed cell.
func deviceName(wb *sheet.Workbook, sh *sheet.Sheet, header [][]sheet.Cell, layout IEDLayout) (string, error) {
	if !layout.DeviceLabel.IsZero() {
		if r, c, ok := match.FindCell(header, layout.DeviceLabel); ok {
			if name := sh.Cell(r+1, c).String(); name != "" {
				return name, nil
			}
		}
	}

	if layout.DeviceCell == "" {
		return "", &EmptyDeviceNameError{Workbook: wb.Path, Sheet: sh.Name}
	}

	r, c, err := sheet.CellRef(layout.DeviceCell)
	if err != nil {
		return "", fmt.Errorf("%s: %w", wb.Path, err)
	}

	name := sh.Cell(r, c).String()
	if name == "" {
		return "", &EmptyDeviceNameError{Workbook: wb.Path, Sheet: sh.Name, Cell: layout.DeviceCell}
	}

	return name, nil
}

// parsePointIndex reads a numeric index or the digits after the last '.'
// of a point address such as "AI.12".
func parsePointIndex(c sheet.Cell) (int, error) {
	var index int

	switch {
	case c.IsBlank():
		return 0, errBlankIndex
	case c.IsNumber():
		index, _ = c.Int()
	default:
		text := strings.TrimSpace(common.LastSegment(c.String(), "."))

		v, err := strconv.Atoi(text)
		if err != nil {
			return 0, fmt.Errorf("point address %q has no numeric index", c.String())
		}

		index = v
	}

	if !utils.IsInRange(0, index, MaxPointIndex) {
		return 0, fmt.Errorf("point index %d outside 0..%d", index, MaxPointIndex)
	}

	return index, nil
}

func isMarked(c sheet.Cell, marker string) bool {
	return marker != "" && strings.EqualFold(c.String(), marker)
}

func missingColumn(wb *sheet.Workbook, sh *sheet.Sheet, err error) error {
	var notFound *match.ColumnNotFoundError
	if errors.As(err, &notFound) {
		return &MissingColumnError{Workbook: wb.Path, Sheet: sh.Name, Err: notFound}
	}

	return fmt.Errorf("%s: sheet %q: %w", wb.Path, sh.Name, err)
}

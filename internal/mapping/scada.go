package mapping

import (
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

type scadaColumns struct {
	address     int
	device      int
	key         int
	index       int
	description int
	scaling     int
	invert      int
}

func newScadaColumns(s match.Schema) scadaColumns {
	return scadaColumns{
		address:     s.Col(ColAddress),
		device:      s.Col(ColDevice),
		key:         s.Col(ColKey),
		index:       s.Col(ColIndex),
		description: s.Col(ColDescription),
		scaling:     s.Col(ColScaling),
		invert:      s.Col(ColInvert),
	}
}

// addressCursor tracks the last address for repeated and blank address cells.
type addressCursor struct {
	last int
	set  bool
}

// LoadScada reads the SCADA map sheet of the configured variant into
// records in sheet order.
//
// Leading rows are skipped until the first numeric address. Rows with a
// blank device or key are skipped; a packed key "A:B" yields two records.
func LoadScada(wb *sheet.Workbook, s Settings) ([]ScadaRecord, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	layout := s.Scada
	source := filepath.Base(wb.Path)

	sh := wb.FindSheet(layout.Sheet.Match)
	if sh == nil {
		return nil, diags, &MissingSheetError{Workbook: wb.Path, Sheet: layout.Sheet.String(), Available: wb.SheetNames()}
	}

	header := sh.Header(layout.HeaderRows)

	start := -1
	if spec, ok := findSpec(layout.Columns, ColAddress); ok {
		if col, found := match.FindColumn(header, spec.Rule); found {
			start = firstNumericRow(sh, col)
		}
	}

	if start > 0 && start < len(header) {
		header = sh.Header(start)
	}

	schema, err := match.ResolveSchema(header, layout.Columns)
	if err != nil {
		return nil, diags, missingColumn(wb, sh, err)
	}

	if start < 0 {
		diags.AddInfo("no_data_rows", "no row with a numeric address", diagnostic.Location{Source: source})
		return nil, diags, nil
	}

	cols := newScadaColumns(schema)

	var (
		records []ScadaRecord
		cursor  addressCursor
	)

	for r := start; r < sh.NumRows(); r++ {
		loc := diagnostic.Location{Source: source, Row: r + 1}

		deviceCell := sh.Cell(r, cols.device)
		if deviceCell.IsBlank() {
			continue
		}

		address, ok, err := cursor.next(sh.Cell(r, cols.address), layout)
		if err != nil {
			diags.AddWarning("invalid_address", err.Error(), loc)
			continue
		}

		if !ok {
			continue
		}

		if s.Variant == VariantBinaryInput {
			if d := ParseDirective(deviceCell.String()); d != DirectiveNone {
				records = append(records, ScadaRecord{
					Address:     address,
					Device:      deviceCell.String(),
					Description: sh.Cell(r, cols.description).String(),
					Directive:   d,
					Row:         r + 1,
				})

				continue
			}
		}

		keyCell := sh.Cell(r, cols.key)
		if keyCell.IsBlank() {
			continue
		}

		base := ScadaRecord{
			Address:     address,
			Device:      s.Normalizer.NormalizeScada(deviceCell.String()),
			Description: sh.Cell(r, cols.description).String(),
			Scaling:     scaling(sh.Cell(r, cols.scaling)),
			Invert:      isMarked(sh.Cell(r, cols.invert), s.Marker),
			Row:         r + 1,
		}
		loc.Device = base.Device

		records = append(records, expandPacked(base, keyCell.String(), sh.Cell(r, cols.index), &diags, loc)...)
	}

	return records, diags, nil
}

// next resolves the address of a row. ok is false for rows to skip silently.
func (c *addressCursor) next(cell sheet.Cell, layout ScadaLayout) (address int, ok bool, err error) {
	switch {
	case cell.IsNumber():
		address, _ = cell.Int()
	case cell.IsBlank():
		if layout.BlankRepeatsAddress && c.set {
			return c.last, true, nil
		}

		return 0, false, nil
	default:
		text := strings.TrimSpace(common.LastSegment(cell.String(), "-"))

		v, parseErr := strconv.ParseFloat(text, 64)
		if parseErr != nil {
			return 0, false, fmt.Errorf("address %q is not numeric", cell.String())
		}

		address = int(v)
	}

	if address < 0 {
		return 0, false, fmt.Errorf("address %s is negative", cell.String())
	}

	if address == 0 && layout.ZeroRepeatsAddress && c.set {
		return c.last, true, nil
	}

	c.last, c.set = address, true

	return address, true, nil
}

// expandPacked turns a key cell into one record, or two for "A:B".
func expandPacked(
	base ScadaRecord,
	key string,
	indexCell sheet.Cell,
	diags *diagnostic.Diagnostics,
	loc diagnostic.Location,
) []ScadaRecord {
	keys := strings.Split(key, ":")
	if common.IsSingle(keys) {
		rec := base
		rec.Key = PointKey(strings.TrimSpace(key))
		rec.Index, rec.HasIndex = parseIndex(indexCell.String())

		return []ScadaRecord{rec}
	}

	if len(keys) > 2 {
		diags.AddWarning("packed_cell_overflow",
			fmt.Sprintf("key %q packs %d references; only the first two are used", key, len(keys)), loc)
	}

	firstKey, secondKey := utils.Unpack2(keys)

	firstIndex, secondIndex := indexCell.String(), indexCell.String()
	if indexCell.IsText() && strings.Contains(indexCell.Text, ":") {
		firstIndex, secondIndex = utils.Unpack2(strings.Split(indexCell.String(), ":"))
	}

	first, second := base, base
	first.Key = PointKey(strings.TrimSpace(firstKey))
	first.Index, first.HasIndex = parseIndex(firstIndex)
	second.Key = PointKey(strings.TrimSpace(secondKey))
	second.Index, second.HasIndex = parseIndex(secondIndex)

	return []ScadaRecord{first, second}
}

func parseIndex(text string) (int, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, false
	}

	return int(v), true
}

func scaling(c sheet.Cell) float64 {
	if !c.IsNumber() {
		return 0
	}

	return c.Number
}

// firstNumericRow returns the first row whose cell in col is numeric, or -1.
func firstNumericRow(sh *sheet.Sheet, col int) int {
	for r, n := 0, sh.NumRows(); r < n; r++ {
		if sh.Cell(r, col).IsNumber() {
			return r
		}
	}

	return -1
}

func findSpec(specs []match.ColumnSpec, name string) (match.ColumnSpec, bool) {
	for _, spec := range specs {
		if spec.Name == name {
			return spec, true
		}
	}

	return match.ColumnSpec{}, false
}

package mapping

import (
	"fmt"

	"rtac-writer/internal/diagnostic"
	"rtac-writer/internal/match"
	"rtac-writer/internal/sheet"
)

var (
	requiredIEDColumns   = []string{ColKey, ColLabel, ColIndex, ColDescription, ColRemoteMark, ColSupervisoryMark}
	requiredScadaColumns = []string{ColAddress, ColDevice, ColKey}
)

// Validate checks a profile for structural problems. It does not open any
// workbook; missing sheets and columns are reported by the loaders.
func Validate(p *Profile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if p == nil {
		res.AddError("profile_is_nil", "profile is nil", diagnostic.Location{})
		return res
	}

	if p.Bus == "" {
		res.AddError("missing_bus", "bus name is empty", diagnostic.Location{})
	}

	if p.MarkerSymbol == "" {
		res.AddError("missing_marker", "marker symbol is empty", diagnostic.Location{})
	}

	for _, v := range Variants {
		vp := p.Variant(v)
		if vp == nil {
			res.AddError("missing_variant", fmt.Sprintf("no settings for variant %s", v), diagnostic.Location{})
			continue
		}

		validateVariant(res, v, vp)
	}

	return res
}

func validateVariant(res *diagnostic.Diagnostics, v Variant, vp *VariantProfile) {
	loc := diagnostic.Location{Source: v.String()}

	if vp.PointType == "" {
		res.AddError("missing_point_type", "point type is empty", loc)
	}

	if vp.IED.Sheet == "" {
		res.AddError("missing_ied_sheet", "IED sheet name is empty", loc)
	}

	if vp.IED.FirstDataRow < 1 {
		res.AddError("invalid_first_data_row",
			fmt.Sprintf("first data row must be at least 1, got %d", vp.IED.FirstDataRow), loc)
	}

	if vp.IED.HeaderRows >= vp.IED.FirstDataRow {
		res.AddWarning("header_overlaps_data",
			fmt.Sprintf("IED header scan (%d rows) reaches the first data row %d",
				vp.IED.HeaderRows, vp.IED.FirstDataRow), loc)
	}

	if vp.IED.DeviceCell != "" {
		if _, _, err := sheet.CellRef(vp.IED.DeviceCell); err != nil {
			res.AddError("invalid_device_cell", err.Error(), loc)
		}
	}

	if vp.IED.DeviceLabel.IsZero() && vp.IED.DeviceCell == "" {
		res.AddError("missing_device_name_source", "neither device label nor device cell is set", loc)
	}

	if vp.Scada.Sheet.IsZero() {
		res.AddError("missing_scada_sheet", "SCADA sheet rule is empty", loc)
	}

	validateColumns(res, loc, "IED", vp.IED.Columns, requiredIEDColumns)
	validateColumns(res, loc, "SCADA", vp.Scada.Columns, requiredScadaColumns)
}

func validateColumns(
	res *diagnostic.Diagnostics,
	loc diagnostic.Location,
	family string,
	specs []match.ColumnSpec,
	required []string,
) {
	seen := make(map[string]match.ColumnSpec, len(specs))

	for _, spec := range specs {
		if _, ok := seen[spec.Name]; ok {
			res.AddError("duplicate_column", fmt.Sprintf("%s column %q is declared twice", family, spec.Name), loc)
			continue
		}

		if spec.Rule.IsZero() {
			res.AddError("empty_column_rule", fmt.Sprintf("%s column %q has no keywords", family, spec.Name), loc)
		}

		seen[spec.Name] = spec
	}

	for _, name := range required {
		spec, ok := seen[name]
		if !ok {
			res.AddError("missing_column_spec", fmt.Sprintf("%s column %q is not declared", family, name), loc)
			continue
		}

		if spec.Optional {
			res.AddError("required_column_optional", fmt.Sprintf("%s column %q cannot be optional", family, name), loc)
		}
	}
}

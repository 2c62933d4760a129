package mapping

import (
	"fmt"
	"slices"

	"rtac-writer/internal/match"
)

// Logical column names used in profiles.
const (
	// IED map columns.
	ColKey             = "key"
	ColLabel           = "label"
	ColIndex           = "index"
	ColDescription     = "description"
	ColRemoteMark      = "remote_mark"
	ColSupervisoryMark = "supervisory_mark"

	// SCADA map columns (ColKey, ColIndex and ColDescription are shared).
	ColAddress = "address"
	ColDevice  = "device"
	ColScaling = "scaling"
	ColInvert  = "invert"
)

// Defaults shared by every variant.
const (
	DefaultVersion       = "1"
	DefaultBus           = "SCADA_DNP"
	DefaultMarkerSymbol  = "X"
	DefaultFileMarker    = "Data_Map"
	DefaultFileExtension = ".xlsx"
)

// Profile describes how to read both spreadsheet families.
type Profile struct {
	Version        string          `yaml:"version"`
	Bus            string          `yaml:"bus,omitempty"`
	MarkerSymbol   string          `yaml:"marker_symbol,omitempty"`
	DeviceCodes    []string        `yaml:"device_codes,omitempty"`
	DevicePrefixes []string        `yaml:"device_prefixes,omitempty"`
	DeviceFiles    DeviceFiles     `yaml:"device_files,omitempty"`
	Variants       VariantProfiles `yaml:"variants,omitempty"`
}

// DeviceFiles selects IED map files inside a directory.
type DeviceFiles struct {
	Marker    string `yaml:"marker,omitempty"`
	Extension string `yaml:"extension,omitempty"`
}

// VariantProfiles holds one profile per variant.
type VariantProfiles struct {
	Analog       *VariantProfile `yaml:"analog,omitempty"`
	BinaryOutput *VariantProfile `yaml:"binary_output,omitempty"`
	BinaryInput  *VariantProfile `yaml:"binary_input,omitempty"`
}

// VariantProfile describes the sheets of one variant.
type VariantProfile struct {
	// PointType is the point-type prefix in aliases and SCADA tags (AI, BO, BI).
	PointType string `yaml:"point_type,omitempty"`
	// OutputName is the default script file name.
	OutputName string      `yaml:"output_name,omitempty"`
	IED        IEDLayout   `yaml:"ied,omitempty"`
	Scada      ScadaLayout `yaml:"scada,omitempty"`
}

// IEDLayout locates the point list inside an IED map.
type IEDLayout struct {
	// Sheet is the exact (case-insensitive) sheet name.
	Sheet string `yaml:"sheet,omitempty"`
	// DeviceLabel finds the header cell above the device name.
	DeviceLabel match.Rule `yaml:"device_label,omitempty"`
	// DeviceCell is the A1 reference used when no label is found.
	DeviceCell string `yaml:"device_cell,omitempty"`
	// HeaderRows bounds the header scan.
	HeaderRows int `yaml:"header_rows,omitempty"`
	// FirstDataRow is the 1-based row of the first point.
	FirstDataRow int                `yaml:"first_data_row,omitempty"`
	Columns      []match.ColumnSpec `yaml:"columns,omitempty"`
}

// ScadaLayout locates the point list inside the SCADA map.
type ScadaLayout struct {
	Sheet      match.Rule `yaml:"sheet,omitempty"`
	HeaderRows int        `yaml:"header_rows,omitempty"`
	// ZeroRepeatsAddress makes an address of 0 repeat the previous address.
	ZeroRepeatsAddress bool `yaml:"zero_repeats_address,omitempty"`
	// BlankRepeatsAddress makes a blank address repeat the previous address.
	BlankRepeatsAddress bool               `yaml:"blank_repeats_address,omitempty"`
	Columns             []match.ColumnSpec `yaml:"columns,omitempty"`
}

// Settings is the resolved configuration of one variant run.
type Settings struct {
	Variant    Variant
	Bus        string
	Marker     string
	Normalizer match.DeviceNormalizer
	VariantProfile
}

// Variant returns the profile of v, or nil when v is unknown.
func (p *Profile) Variant(v Variant) *VariantProfile {
	switch v {
	case VariantAnalog:
		return p.Variants.Analog
	case VariantBinaryOutput:
		return p.Variants.BinaryOutput
	case VariantBinaryInput:
		return p.Variants.BinaryInput
	default:
		return nil
	}
}

// Settings resolves the configuration for variant v.
func (p *Profile) Settings(v Variant) (Settings, error) {
	vp := p.Variant(v)
	if vp == nil {
		return Settings{}, fmt.Errorf("profile has no settings for variant %s", v)
	}

	return Settings{
		Variant: v,
		Bus:     p.Bus,
		Marker:  p.MarkerSymbol,
		Normalizer: match.DeviceNormalizer{
			Codes:    slices.Clone(p.DeviceCodes),
			Prefixes: slices.Clone(p.DevicePrefixes),
		},
		VariantProfile: *vp,
	}, nil
}

// DefaultProfile returns the layout of the standard SCADA and IED map templates.
func DefaultProfile() *Profile {
	return &Profile{
		Version:        DefaultVersion,
		Bus:            DefaultBus,
		MarkerSymbol:   DefaultMarkerSymbol,
		DeviceCodes:    slices.Clone(match.DefaultDeviceCodes),
		DevicePrefixes: slices.Clone(match.DefaultDevicePrefixes),
		DeviceFiles: DeviceFiles{
			Marker:    DefaultFileMarker,
			Extension: DefaultFileExtension,
		},
		Variants: VariantProfiles{
			Analog:       defaultVariant(VariantAnalog),
			BinaryOutput: defaultVariant(VariantBinaryOutput),
			BinaryInput:  defaultVariant(VariantBinaryInput),
		},
	}
}

func defaultVariant(v Variant) *VariantProfile {
	switch v {
	case VariantAnalog:
		return &VariantProfile{
			PointType:  "AI",
			OutputName: "RTAC Analog Structured Text.txt",
			IED:        defaultIEDLayout("Analog Points", match.AllOf("point", "address")),
			Scada: ScadaLayout{
				Sheet:      match.AllOf("analog", "input"),
				HeaderRows: 10,
				Columns: []match.ColumnSpec{
					match.Required(ColAddress, match.AllOf("analog", "address", "dnp")),
					match.Required(ColDevice, match.AnyOf("ied device")),
					match.Required(ColKey, match.AnyOf("ied wordbit", "relay element")),
					match.Optional(ColIndex, scadaIndexRule()),
					match.Required(ColDescription, match.AnyOf("ems analog point", "nomenclature", "description")),
					match.Optional(ColScaling, match.AnyOf("scale")),
				},
			},
		}
	case VariantBinaryOutput:
		return &VariantProfile{
			PointType:  "BO",
			OutputName: "RTAC Binary Output Structured Text.txt",
			IED:        defaultIEDLayout("Control Points", match.AllOf("dnp", "index")),
			Scada: ScadaLayout{
				Sheet:              match.AllOf("binary", "output"),
				HeaderRows:         10,
				ZeroRepeatsAddress: true,
				Columns: []match.ColumnSpec{
					match.Required(ColAddress, match.AllOf("binary", "address", "output")),
					match.Required(ColDevice, match.AnyOf("ied device")),
					match.Required(ColKey, match.AnyOf("ied wordbit", "relay element")),
					match.Optional(ColIndex, scadaIndexRule()),
					match.Required(ColDescription, match.AnyOf("ems point", "nomenclature", "description")),
				},
			},
		}
	case VariantBinaryInput:
		return &VariantProfile{
			PointType:  "BI",
			OutputName: "RTAC Binary Input Structured Text.txt",
			IED:        defaultIEDLayout("Binary Points", match.AllOf("dnp", "index")),
			Scada: ScadaLayout{
				Sheet:               match.AllOf("binary", "input"),
				HeaderRows:          10,
				BlankRepeatsAddress: true,
				Columns: []match.ColumnSpec{
					match.Required(ColAddress, match.AllOf("binary", "dnp", "address")),
					match.Required(ColDevice, match.AnyOf("ied device")),
					match.Required(ColKey, match.AnyOf("ied wordbit", "relay element")),
					match.Optional(ColIndex, scadaIndexRule()),
					match.Required(ColDescription, match.AnyOf("nomenclature", "description")),
					match.Optional(ColInvert, match.AnyOf("invert")),
				},
			},
		}
	default:
		return nil
	}
}

func defaultIEDLayout(sheetName string, indexRule match.Rule) IEDLayout {
	return IEDLayout{
		Sheet:        sheetName,
		DeviceLabel:  match.AllOf("device", "name"),
		DeviceCell:   "D3",
		HeaderRows:   5,
		FirstDataRow: 6,
		Columns: []match.ColumnSpec{
			match.Required(ColKey, match.AllOf("relay", "element")),
			match.Required(ColLabel, match.AllOf("hmi", "point", "name")),
			match.Required(ColIndex, indexRule),
			match.Required(ColDescription, match.AnyOf("description")),
			match.Required(ColRemoteMark, match.Equals("RTAC")),
			match.Required(ColSupervisoryMark, match.Equals("SCADA")),
		},
	}
}

func scadaIndexRule() match.Rule {
	return match.Rule{AllOf: match.Keywords{"dnp", "index"}, AnyOf: match.Keywords{"relay", "ied"}}
}

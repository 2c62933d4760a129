package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML profile from the given path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Profile. Unset keys take their defaults.
func Parse(data []byte) (*Profile, error) {
	var p Profile

	err := yaml.Unmarshal(data, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&p)

	return &p, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Profile) {
	def := DefaultProfile()

	if p.Version == "" {
		p.Version = def.Version
	}

	if p.Bus == "" {
		p.Bus = def.Bus
	}

	if p.MarkerSymbol == "" {
		p.MarkerSymbol = def.MarkerSymbol
	}

	if len(p.DeviceCodes) == 0 {
		p.DeviceCodes = def.DeviceCodes
	}

	if len(p.DevicePrefixes) == 0 {
		p.DevicePrefixes = def.DevicePrefixes
	}

	if p.DeviceFiles.Marker == "" {
		p.DeviceFiles.Marker = def.DeviceFiles.Marker
	}

	if p.DeviceFiles.Extension == "" {
		p.DeviceFiles.Extension = def.DeviceFiles.Extension
	}

	for _, v := range Variants {
		applyVariantDefaults(p.variantSlot(v), def.Variant(v))
	}
}

func (p *Profile) variantSlot(v Variant) **VariantProfile {
	switch v {
	case VariantAnalog:
		return &p.Variants.Analog
	case VariantBinaryOutput:
		return &p.Variants.BinaryOutput
	default:
		return &p.Variants.BinaryInput
	}
}

func applyVariantDefaults(slot **VariantProfile, def *VariantProfile) {
	if *slot == nil {
		*slot = def
		return
	}

	vp := *slot

	if vp.PointType == "" {
		vp.PointType = def.PointType
	}

	if vp.OutputName == "" {
		vp.OutputName = def.OutputName
	}

	ied := &vp.IED
	if ied.Sheet == "" {
		ied.Sheet = def.IED.Sheet
	}

	if ied.DeviceLabel.IsZero() && ied.DeviceCell == "" {
		ied.DeviceLabel = def.IED.DeviceLabel
		ied.DeviceCell = def.IED.DeviceCell
	}

	if ied.HeaderRows == 0 {
		ied.HeaderRows = def.IED.HeaderRows
	}

	if ied.FirstDataRow == 0 {
		ied.FirstDataRow = def.IED.FirstDataRow
	}

	if len(ied.Columns) == 0 {
		ied.Columns = def.IED.Columns
	}

	scada := &vp.Scada
	if scada.Sheet.IsZero() && len(scada.Columns) == 0 && scada.HeaderRows == 0 {
		*scada = def.Scada
		return
	}

	if scada.Sheet.IsZero() {
		scada.Sheet = def.Scada.Sheet
	}

	if scada.HeaderRows == 0 {
		scada.HeaderRows = def.Scada.HeaderRows
	}

	if len(scada.Columns) == 0 {
		scada.Columns = def.Scada.Columns
	}
}

// Marshal serializes a Profile to YAML.
func Marshal(p *Profile) ([]byte, error) {
	return yaml.Marshal(p)
}

// WriteFile writes a Profile to the given path.
func WriteFile(p *Profile, path string) error {
	data, err := Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}

	return nil
}

package gen

import (
	"fmt"
	"strings"

	"rtac-writer/internal/mapping"
	"rtac-writer/internal/plan"
)

// Diagnostic line texts.
const (
	noDataMapText = "NO DATA MAP WAS FOUND FOR: "
	noAliasText   = "NO RTAC ALIAS WAS FOUND FOR DNP ADDRESS: "
)

// GeneratorConfig holds configuration for script generation.
type GeneratorConfig struct {
	// Bus is the SCADA DNP bus name on the left of every SCADA tag.
	Bus string
	// PointType overrides the variant's point-type prefix (AI, BO, BI).
	PointType string
	// Banner emits the header comment of binary-input scripts.
	Banner bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Bus:    mapping.DefaultBus,
		Banner: true,
	}
}

// Generator renders plans into structured text.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Bus == "" {
		config.Bus = mapping.DefaultBus
	}

	return &Generator{config: config}
}

// Generate renders p in record order.
func (g *Generator) Generate(p *plan.Plan) ([]byte, error) {
	var sb strings.Builder

	pointType := g.pointType(p.Variant)

	switch p.Variant {
	case mapping.VariantAnalog:
		g.renderAnalog(&sb, pointType, p.Resolutions)
	case mapping.VariantBinaryOutput:
		g.renderBinaryOutput(&sb, pointType, p.Resolutions)
	case mapping.VariantBinaryInput:
		if err := g.renderBinaryInput(&sb, pointType, p.Resolutions); err != nil {
			return nil, fmt.Errorf("rendering binary inputs: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported variant %s", p.Variant)
	}

	return []byte(sb.String()), nil
}

func (g *Generator) pointType(v mapping.Variant) string {
	if g.config.PointType != "" {
		return g.config.PointType
	}

	switch v {
	case mapping.VariantAnalog:
		return "AI"
	case mapping.VariantBinaryOutput:
		return "BO"
	default:
		return "BI"
	}
}

// scadaTag returns "<bus>.<pointType>_<address padded to 5>".
func (g *Generator) scadaTag(pointType string, address int) string {
	return g.config.Bus + "." + pointType + "_" + mapping.PadIndex(address)
}

// writeDiagnostic writes the in-place line for an unresolved record.
func writeDiagnostic(sb *strings.Builder, res plan.Resolution) {
	switch res.Outcome {
	case plan.OutcomeNoDataMap:
		sb.WriteString(noDataMapText + res.Record.Device + "\n")
	case plan.OutcomeNoAlias:
		fmt.Fprintf(sb, "%s%d\n", noAliasText, res.Record.Address)
	}
}

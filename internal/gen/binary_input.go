package gen

import (
	"strings"
	"text/template"

	"rtac-writer/internal/mapping"
	"rtac-writer/internal/plan"
)

const binaryInputBanner = "// ************************** SCADA DNP BINARY INPUTS **************************\n" +
	"// This program provides mapping of RTAC points to SCADA DNP Binary Inputs.\n\n"

const (
	expressionIndent = "\t\t\t"
	expressionGap    = "\t\t\t\t\t\t\t\t//\t"
	defaultOperator  = "OR"
	emptyGroupValue  = "FALSE"
)

var groupTemplate = template.Must(template.New("bi-group").Parse(
	"\n// {{.Description}}\n" +
		"{{.Tag}}.t := SYS_TIME();\n" +
		"{{.Tag}}.q.validity := GOOD;\n" +
		"{{.Tag}}.stVal\t:=\n"))

type groupHeader struct {
	Description string
	Tag         string
}

// expressionGroup is the binary-input assignment being written.
type expressionGroup struct {
	address  int
	open     bool
	operator string
	exprs    int
}

// close terminates the open group. An empty group assigns FALSE.
func (e *expressionGroup) close(sb *strings.Builder) {
	if !e.open {
		return
	}

	if e.exprs == 0 {
		sb.WriteString(expressionIndent + emptyGroupValue + ";\n")
	} else {
		sb.WriteString(expressionIndent + ";\n")
	}

	*e = expressionGroup{operator: defaultOperator}
}

// renderBinaryInput writes one assignment per SCADA address, headed by the
// description of the address's first row. Each resolved point adds an
// expression joined by the current operator; directive rows switch the
// operator for the rest of their group.
func (g *Generator) renderBinaryInput(sb *strings.Builder, pointType string, resolutions []plan.Resolution) error {
	if g.config.Banner {
		sb.WriteString(binaryInputBanner)
	}

	group := expressionGroup{operator: defaultOperator}

	for _, res := range resolutions {
		rec := res.Record

		if group.open && group.address != rec.Address {
			group.close(sb)
		}

		if !group.open {
			header := groupHeader{Description: rec.Description, Tag: g.scadaTag(pointType, rec.Address)}
			if err := groupTemplate.Execute(sb, header); err != nil {
				return err
			}

			group.open, group.address = true, rec.Address
		}

		if res.Outcome == plan.OutcomeDirective {
			group.operator = directiveOperator(rec.Directive)
			continue
		}

		if res.Outcome != plan.OutcomeResolved {
			sb.WriteString(expressionIndent + "// ")
			writeDiagnostic(sb, res)

			continue
		}

		writeExpression(sb, &group, res)
	}

	group.close(sb)

	return nil
}

func writeExpression(sb *strings.Builder, group *expressionGroup, res plan.Resolution) {
	sb.WriteString(expressionIndent)

	if group.exprs > 0 {
		sb.WriteString(group.operator + " ")
	}

	if res.Record.Invert {
		sb.WriteString("NOT ")
	}

	sb.WriteString(res.Alias() + ".stVal" + expressionGap + res.Record.Description)
	sb.WriteString("   " + res.Record.Device + "   " + string(res.Record.Key) + "\n")

	group.exprs++
}

// directiveOperator returns the joining operator a directive selects.
func directiveOperator(d mapping.Directive) string {
	if op := d.Operator(); op != "" {
		return op
	}

	return defaultOperator
}

package gen

import (
	"strings"

	"rtac-writer/internal/plan"
	"rtac-writer/internal/sheet"
)

// columnGap separates the statements of one analog line.
var columnGap = strings.Repeat(" ", 20) + "\t\t"

// renderAnalog writes one line per record:
//
//	<tag> := <alias>;<gap><tag>.instMag := <alias>.instMag[ * <scale>];<gap>// <description>
func (g *Generator) renderAnalog(sb *strings.Builder, pointType string, resolutions []plan.Resolution) {
	for _, res := range resolutions {
		if res.Outcome != plan.OutcomeResolved {
			writeDiagnostic(sb, res)
			continue
		}

		tag := g.scadaTag(pointType, res.Record.Address)
		alias := res.Alias()

		sb.WriteString(tag + " := " + alias + ";" + columnGap)
		sb.WriteString(tag + ".instMag := " + alias + ".instMag")

		if res.Record.HasScaling() {
			sb.WriteString(" * " + sheet.FormatNumber(res.Record.Scaling))
		}

		sb.WriteString(";" + columnGap + "// " + res.Record.Description + "\n")
	}
}

package gen

import (
	"strings"

	"rtac-writer/internal/plan"
)

// alternation is the operTrip/operClose state carried between lines.
type alternation struct {
	next    Operation
	device  string
	started bool
}

// enter moves the state onto device. It reports whether a separator line
// is due, which is the case on every device change after the first one.
// A device change restarts the alternation at OperTrip.
func (a alternation) enter(device string) (alternation, bool) {
	if !a.started {
		return alternation{next: OperTrip, device: device, started: true}, false
	}

	if a.device == device {
		return a, false
	}

	return alternation{next: OperTrip, device: device, started: true}, true
}

// emit returns the operation of the current line and the state after it.
func (a alternation) emit() (Operation, alternation) {
	op := a.next
	a.next = op.Next()

	return op, a
}

// renderBinaryOutput writes one line per record:
//
//	<alias>.<op>    \t := <tag>.<op>;\t\t\t// <description>
//
// Records without a data map neither emit a separator nor change the
// tracked device. Only rendered assignment lines advance the alternation.
func (g *Generator) renderBinaryOutput(sb *strings.Builder, pointType string, resolutions []plan.Resolution) {
	var state alternation

	for _, res := range resolutions {
		if res.Outcome == plan.OutcomeNoDataMap {
			writeDiagnostic(sb, res)
			continue
		}

		var separator bool

		state, separator = state.enter(res.Record.Device)
		if separator {
			sb.WriteString("\n")
		}

		if res.Outcome != plan.OutcomeResolved {
			writeDiagnostic(sb, res)
			continue
		}

		var op Operation

		op, state = state.emit()

		sb.WriteString(res.Alias() + "." + op.String() + "    \t := ")
		sb.WriteString(g.scadaTag(pointType, res.Record.Address) + "." + op.String())
		sb.WriteString(";\t\t\t// " + res.Record.Description + "\n")
	}
}

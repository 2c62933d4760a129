package plan

import (
	"fmt"
	"strings"
)

// Summary counts resolution outcomes.
type Summary struct {
	Total      int
	Resolved   int
	ViaIndex   int
	NoDataMap  int
	NoAlias    int
	Directives int
	// MissingDevices lists devices without a data map in order of first use.
	MissingDevices []string
}

// Summarize counts the outcomes of p.
func Summarize(p *Plan) Summary {
	var s Summary

	seen := make(map[string]bool)

	for _, res := range p.Resolutions {
		s.Total++

		switch res.Outcome {
		case OutcomeResolved:
			s.Resolved++
			if res.ViaIndex {
				s.ViaIndex++
			}
		case OutcomeNoDataMap:
			s.NoDataMap++
			if !seen[res.Record.Device] {
				seen[res.Record.Device] = true
				s.MissingDevices = append(s.MissingDevices, res.Record.Device)
			}
		case OutcomeNoAlias:
			s.NoAlias++
		case OutcomeDirective:
			s.Directives++
		}
	}

	return s
}

// NeedsReview reports whether any record failed to resolve.
func (s Summary) NeedsReview() bool {
	return s.NoDataMap > 0 || s.NoAlias > 0
}

// FormatSummary formats a summary as human-readable text.
func FormatSummary(s Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Records: %d, Resolved: %d (by index: %d), No data map: %d, No alias: %d\n",
		s.Total, s.Resolved, s.ViaIndex, s.NoDataMap, s.NoAlias)

	if len(s.MissingDevices) > 0 {
		sb.WriteString("\nDevices without a data map:\n")

		for _, d := range s.MissingDevices {
			fmt.Fprintf(&sb, "  ✗ %s\n", d)
		}
	}

	if s.NeedsReview() {
		sb.WriteString("\n⚠ Some SCADA points need manual review.\n")
	} else {
		sb.WriteString("\n✓ All SCADA points resolved.\n")
	}

	return sb.String()
}

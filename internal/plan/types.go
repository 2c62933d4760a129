package plan

import (
	"rtac-writer/internal/diagnostic"
	"rtac-writer/internal/mapping"
)

//go:generate go tool stringer -type=Outcome -linecomment -output=outcome_string.go

// Outcome is the result kind of resolving one SCADA record.
type Outcome int

const (
	_ Outcome = iota // skip zero value, use it as an invalid Outcome

	OutcomeResolved  // resolved
	OutcomeNoDataMap // no-data-map
	OutcomeNoAlias   // no-alias
	OutcomeDirective // directive
)

// Resolution is the resolved form of one SCADA record.
type Resolution struct {
	Record  mapping.ScadaRecord
	Outcome Outcome
	// Point is the matched IED point when Found is true.
	Point mapping.PointRecord
	Found bool
	// ViaIndex is true when the point was found by the index-equality scan.
	ViaIndex bool
}

// Alias returns the RTAC tag of a resolved record, "" otherwise.
func (r Resolution) Alias() string {
	if r.Outcome != OutcomeResolved {
		return ""
	}

	return r.Point.Alias()
}

// Plan is the ordered output of resolution.
type Plan struct {
	Variant     mapping.Variant
	Resolutions []Resolution
	Diagnostics diagnostic.Diagnostics
}

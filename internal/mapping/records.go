package mapping

import (
	"strconv"
	"strings"

	"rtac-writer/internal/common"
)

// MaxPointIndex is the largest DNP point index accepted from an IED map.
const MaxPointIndex = 99999

// PointKey identifies a point within one device: a wordbit label such as
// "IA_MAG" or a stringified numeric index such as "12".
type PointKey string

// PointRecord is one row of an IED map point list.
type PointRecord struct {
	Device                  string
	Key                     PointKey
	HMILabel                string
	PointType               string
	Index                   int
	Description             string
	MarkedForRemoteTerminal bool
	MarkedForSupervisory    bool
	// Row is the 1-based source row.
	Row int

	alias string
}

// NewPointRecord returns p with its alias derived from the other fields.
// Only points marked for supervisory use carry an alias.
func NewPointRecord(p PointRecord) PointRecord {
	p.alias = ""
	if p.MarkedForSupervisory {
		p.alias = SynthesizeAlias(p.Device, p.PointType, p.Index, p.HMILabel)
	}

	return p
}

// Alias returns the synthesized RTAC tag, empty when the point is not
// marked for supervisory use.
func (p PointRecord) Alias() string {
	return p.alias
}

// IndexKey returns the point index in PointKey form.
func (p PointRecord) IndexKey() PointKey {
	return PointKey(strconv.Itoa(p.Index))
}

// Directive changes how the binary-input expressions that follow it are joined.
type Directive int

const (
	DirectiveNone Directive = iota
	DirectiveOr
	DirectiveAnd
	DirectiveGroup
)

// String returns a human-readable directive name.
func (d Directive) String() string {
	switch d {
	case DirectiveNone:
		return "none"
	case DirectiveOr:
		return "or"
	case DirectiveAnd:
		return "and"
	case DirectiveGroup:
		return "group"
	default:
		return common.UnknownStr
	}
}

// Operator returns the structured-text operator joining expressions, if any.
func (d Directive) Operator() string {
	switch d {
	case DirectiveOr:
		return "OR"
	case DirectiveAnd:
		return "AND"
	default:
		return ""
	}
}

// ParseDirective recognizes the device cells "OR", "AND" and "Grouped as ...".
// The comparison is on whole tokens, so a device named "ORION" is not a directive.
func ParseDirective(cell string) Directive {
	fields := strings.Fields(strings.ToUpper(cell))
	if len(fields) == 0 {
		return DirectiveNone
	}

	switch {
	case len(fields) == 1 && fields[0] == "OR":
		return DirectiveOr
	case len(fields) == 1 && fields[0] == "AND":
		return DirectiveAnd
	case len(fields) >= 2 && fields[0] == "GROUPED" && fields[1] == "AS":
		return DirectiveGroup
	default:
		return DirectiveNone
	}
}

// ScadaRecord is one SCADA map row, or one half of a row with a packed key.
type ScadaRecord struct {
	Address     int
	Device      string
	Key         PointKey
	Index       int
	HasIndex    bool
	Description string
	Scaling     float64
	Invert      bool
	Directive   Directive
	// Row is the 1-based source row.
	Row int
}

// HasScaling reports whether the analog value must be multiplied.
// Scaling of 0 or 1 means none.
func (r ScadaRecord) HasScaling() bool {
	return r.Scaling != 0 && r.Scaling != 1
}

// IsDirective reports whether the record only changes expression joining.
func (r ScadaRecord) IsDirective() bool {
	return r.Directive != DirectiveNone
}

// IndexKey returns the key used for the index-equality fallback scan:
// the secondary index when present, the key otherwise.
func (r ScadaRecord) IndexKey() PointKey {
	if r.HasIndex {
		return PointKey(strconv.Itoa(r.Index))
	}

	return r.Key
}

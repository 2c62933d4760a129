package report

import (
	"time"

	"github.com/google/uuid"

	"rtac-writer/internal/diagnostic"
	"rtac-writer/internal/plan"
)

// Report is the record of one generation run.
type Report struct {
	RunID       string    `json:"run_id"       yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Variant     string    `json:"variant"      yaml:"variant"`
	ScadaMap    string    `json:"scada_map"    yaml:"scada_map"`
	DeviceMaps  []string  `json:"device_maps"  yaml:"device_maps"`
	Output      string    `json:"output"       yaml:"output"`
	Summary     Summary   `json:"summary"      yaml:"summary"`
	Entries     []Entry   `json:"entries"      yaml:"entries"`
	Findings    []Finding `json:"findings"     yaml:"findings"`
}

// Summary counts resolution outcomes.
type Summary struct {
	Total          int      `json:"total"                     yaml:"total"`
	Resolved       int      `json:"resolved"                  yaml:"resolved"`
	ViaIndex       int      `json:"via_index"                 yaml:"via_index"`
	NoDataMap      int      `json:"no_data_map"               yaml:"no_data_map"`
	NoAlias        int      `json:"no_alias"                  yaml:"no_alias"`
	Directives     int      `json:"directives"                yaml:"directives"`
	MissingDevices []string `json:"missing_devices,omitempty" yaml:"missing_devices,omitempty"`
}

// Entry is the outcome of one SCADA record.
type Entry struct {
	Row      int    `json:"row"                 yaml:"row"`
	Address  int    `json:"address"             yaml:"address"`
	Device   string `json:"device"              yaml:"device"`
	Key      string `json:"key,omitempty"       yaml:"key,omitempty"`
	Outcome  string `json:"outcome"             yaml:"outcome"`
	Alias    string `json:"alias,omitempty"     yaml:"alias,omitempty"`
	ViaIndex bool   `json:"via_index,omitempty" yaml:"via_index,omitempty"`
}

// Finding is one diagnostic.
type Finding struct {
	Severity    string   `json:"severity"              yaml:"severity"`
	Code        string   `json:"code"                  yaml:"code"`
	Message     string   `json:"message"               yaml:"message"`
	Source      string   `json:"source,omitempty"      yaml:"source,omitempty"`
	Device      string   `json:"device,omitempty"      yaml:"device,omitempty"`
	Row         int      `json:"row,omitempty"         yaml:"row,omitempty"`
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Meta describes the inputs and output of a run.
type Meta struct {
	ScadaMap   string
	DeviceMaps []string
	Output     string
	// GeneratedAt defaults to the current time.
	GeneratedAt time.Time
}

// Build creates a report for p. Diagnostics recorded on p are included
// after diags.
func Build(p *plan.Plan, diags diagnostic.Diagnostics, meta Meta) *Report {
	generatedAt := meta.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	s := plan.Summarize(p)

	r := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: generatedAt.UTC(),
		Variant:     p.Variant.String(),
		ScadaMap:    meta.ScadaMap,
		DeviceMaps:  meta.DeviceMaps,
		Output:      meta.Output,
		Summary: Summary{
			Total:          s.Total,
			Resolved:       s.Resolved,
			ViaIndex:       s.ViaIndex,
			NoDataMap:      s.NoDataMap,
			NoAlias:        s.NoAlias,
			Directives:     s.Directives,
			MissingDevices: s.MissingDevices,
		},
		Entries: make([]Entry, 0, len(p.Resolutions)),
	}

	for _, res := range p.Resolutions {
		r.Entries = append(r.Entries, Entry{
			Row:      res.Record.Row,
			Address:  res.Record.Address,
			Device:   res.Record.Device,
			Key:      string(res.Record.Key),
			Outcome:  res.Outcome.String(),
			Alias:    res.Alias(),
			ViaIndex: res.ViaIndex,
		})
	}

	all := diags
	all.Merge(p.Diagnostics)

	for _, d := range all.All() {
		r.Findings = append(r.Findings, Finding{
			Severity:    d.Severity.String(),
			Code:        d.Code,
			Message:     d.Message,
			Source:      d.Source,
			Device:      d.Device,
			Row:         d.Row,
			Suggestions: d.Suggestions,
		})
	}

	return r
}

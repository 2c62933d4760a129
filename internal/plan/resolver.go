package plan

import (
	"fmt"

	"rtac-writer/internal/diagnostic"
	"rtac-writer/internal/mapping"
	"rtac-writer/internal/match"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// IndexFallback scans a device's points for a matching index when the
	// key lookup fails.
	IndexFallback bool
	// WarnIndexMismatch reports points found by key whose index differs from
	// the SCADA record's secondary index.
	WarnIndexMismatch bool
	// WarnUnmarked reports points that exist but are not marked for SCADA.
	WarnUnmarked bool
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		IndexFallback:     true,
		WarnIndexMismatch: true,
		WarnUnmarked:      true,
	}
}

// Resolver resolves SCADA records against a DeviceTable.
type Resolver struct {
	devices *mapping.DeviceTable
	config  ResolutionConfig
	// missing remembers devices already reported as having no data map.
	missing map[string]bool
}

// NewResolver creates a new Resolver.
func NewResolver(devices *mapping.DeviceTable, config ResolutionConfig) *Resolver {
	if devices == nil {
		devices = mapping.NewDeviceTable()
	}

	return &Resolver{
		devices: devices,
		config:  config,
		missing: make(map[string]bool),
	}
}

// Resolve resolves records in order. Every record yields exactly one Resolution.
func (r *Resolver) Resolve(variant mapping.Variant, records []mapping.ScadaRecord) *Plan {
	p := &Plan{
		Variant:     variant,
		Resolutions: make([]Resolution, 0, len(records)),
	}

	for _, rec := range records {
		p.Resolutions = append(p.Resolutions, r.resolveRecord(rec, &p.Diagnostics))
	}

	return p
}

func (r *Resolver) resolveRecord(rec mapping.ScadaRecord, diags *diagnostic.Diagnostics) Resolution {
	res := Resolution{Record: rec}
	loc := diagnostic.Location{Device: rec.Device, Row: rec.Row}

	if rec.IsDirective() {
		res.Outcome = OutcomeDirective
		return res
	}

	table, ok := r.devices.Lookup(rec.Device)
	if !ok {
		if !r.missing[rec.Device] {
			r.missing[rec.Device] = true
			diags.AddSuggestedWarning("no_data_map", fmt.Sprintf("no IED map loaded for device %q", rec.Device), loc,
				match.Suggest(match.Equals(rec.Device), r.devices.Devices()))
		}

		res.Outcome = OutcomeNoDataMap

		return res
	}

	point, found := table.Get(rec.Key)
	if !found && r.config.IndexFallback {
		point, found = table.FindByIndex(rec.IndexKey())
		res.ViaIndex = found
	}

	if !found {
		res.Outcome = OutcomeNoAlias
		return res
	}

	res.Point, res.Found = point, true

	if point.Alias() == "" {
		if r.config.WarnUnmarked {
			diags.AddWarning("not_marked_for_scada",
				fmt.Sprintf("point %q (address %d) exists but is not marked for SCADA", point.Key, rec.Address), loc)
		}

		res.Outcome = OutcomeNoAlias

		return res
	}

	if r.config.WarnIndexMismatch && !res.ViaIndex && rec.HasIndex && rec.Index != point.Index {
		diags.AddWarning("index_mismatch",
			fmt.Sprintf("point %q: SCADA index %d differs from IED index %d", point.Key, rec.Index, point.Index), loc)
	}

	res.Outcome = OutcomeResolved

	return res
}

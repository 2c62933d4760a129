package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtac-writer/internal/diagnostic"
	"rtac-writer/internal/mapping"
	"rtac-writer/internal/plan"
)

func samplePlan() *plan.Plan {
	point := mapping.NewPointRecord(mapping.PointRecord{
		Device:               "K1T_87TA",
		Key:                  "IA_MAG",
		HMILabel:             "K1T_87TA.IA_MAG",
		PointType:            "AI",
		Index:                3,
		MarkedForSupervisory: true,
	})

	p := &plan.Plan{
		Variant: mapping.VariantAnalog,
		Resolutions: []plan.Resolution{
			{
				Record:  mapping.ScadaRecord{Address: 1, Device: "K1T_87TA", Key: "IA_MAG", Row: 4},
				Outcome: plan.OutcomeResolved,
				Point:   point,
				Found:   true,
			},
			{
				Record:  mapping.ScadaRecord{Address: 2, Device: "L9_51TA", Key: "IB_MAG", Row: 5},
				Outcome: plan.OutcomeNoDataMap,
			},
		},
	}
	p.Diagnostics.AddWarning("no_data_map", "no IED map loaded for device \"L9_51TA\"",
		diagnostic.Location{Device: "L9_51TA", Row: 5})

	return p
}

func TestBuild(t *testing.T) {
	var diags diagnostic.Diagnostics
	diags.AddInfo("empty_point_table", "no points", diagnostic.Location{Source: "a.xlsx"})

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := Build(samplePlan(), diags, Meta{ScadaMap: "scada.xlsx", DeviceMaps: []string{"a.xlsx"}, GeneratedAt: at})

	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, at, r.GeneratedAt)
	assert.Equal(t, "analog", r.Variant)
	assert.Equal(t, 2, r.Summary.Total)
	assert.Equal(t, 1, r.Summary.Resolved)
	assert.Equal(t, []string{"L9_51TA"}, r.Summary.MissingDevices)

	require.Len(t, r.Entries, 2)
	assert.Equal(t, "resolved", r.Entries[0].Outcome)
	assert.Equal(t, "K1T_87TA_DNP.AI_00003_IA_MAG", r.Entries[0].Alias)
	assert.Equal(t, "no-data-map", r.Entries[1].Outcome)
	assert.Empty(t, r.Entries[1].Alias)

	require.Len(t, r.Findings, 2)
	assert.Equal(t, "warning", r.Findings[0].Severity)
	assert.Equal(t, "no_data_map", r.Findings[0].Code)
	assert.Equal(t, "info", r.Findings[1].Severity)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{path: "run.json", expected: FormatJSON},
		{path: "run.YAML", expected: FormatYAML},
		{path: "run.yml", expected: FormatYAML},
		{path: "run.msgpack", expected: FormatMsgpack},
		{path: "run.mpk", expected: FormatMsgpack},
		{path: "run.txt", wantErr: true},
		{path: "run", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	r := Build(samplePlan(), diagnostic.Diagnostics{}, Meta{ScadaMap: "scada.xlsx"})

	for _, f := range []Format{FormatJSON, FormatYAML, FormatMsgpack} {
		t.Run(string(f), func(t *testing.T) {
			data, err := Encode(r, f)
			require.NoError(t, err)

			decoded, err := Decode(data, f)
			require.NoError(t, err)

			assert.Equal(t, r.RunID, decoded.RunID)
			assert.True(t, r.GeneratedAt.Equal(decoded.GeneratedAt))
			assert.Equal(t, r.Summary, decoded.Summary)
			assert.Equal(t, r.Entries, decoded.Entries)
			assert.Equal(t, r.Findings, decoded.Findings)
		})
	}
}

func TestEncode_JSONFieldNames(t *testing.T) {
	data, err := Encode(Build(samplePlan(), diagnostic.Diagnostics{}, Meta{}), FormatJSON)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"run_id"`)
	assert.Contains(t, string(data), `"no_data_map": 1`)
	assert.Contains(t, string(data), `"outcome": "resolved"`)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	r := Build(samplePlan(), diagnostic.Diagnostics{}, Meta{})

	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, WriteFile(path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_id: "+r.RunID)

	require.Error(t, WriteFile(filepath.Join(dir, "run.csv"), r))
}

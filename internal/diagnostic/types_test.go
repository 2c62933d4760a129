package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndMerge(t *testing.T) {
	var d Diagnostics

	d.AddWarning("duplicate_device", "device loaded twice", Location{Source: "a.xlsx", Device: "1T_87TA"})
	d.AddInfo("no_records", "sheet has no data rows", Location{})

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	var other Diagnostics
	other.AddError("bad", "broken", Location{Row: 7})

	d.Merge(other)
	require.True(t, d.HasErrors())
	assert.Len(t, d.All(), 3)
	assert.Equal(t, 1, d.CountByCode("duplicate_device"))
	assert.EqualError(t, d.Error(), "row 7: [bad] broken")
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Code:        "index_mismatch",
		Message:     "SCADA index 4 differs from point index 5",
		Source:      "scada.xlsx",
		Device:      "1T_87TA",
		Row:         12,
		Suggestions: []string{"AI.5"},
	}

	assert.Equal(t,
		"[scada.xlsx] 1T_87TA row 12: [index_mismatch] SCADA index 4 differs from point index 5 (did you mean: AI.5?)",
		d.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}

func TestDiagnostics_AddSuggestedWarning(t *testing.T) {
	var d Diagnostics

	d.AddSuggestedWarning("no_data_map", "no IED map", Location{Device: "T1_87TB"}, []string{"T1_87TA"})
	d.AddSuggestedWarning("no_data_map", "no IED map", Location{Device: "FDR"}, []string{})

	require.Len(t, d.Warnings, 2)
	assert.Equal(t, []string{"T1_87TA"}, d.Warnings[0].Suggestions)
	assert.Equal(t, "T1_87TB: [no_data_map] no IED map (did you mean: T1_87TA?)", d.Warnings[0].String())
	assert.Nil(t, d.Warnings[1].Suggestions)
}

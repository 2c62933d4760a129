package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rtac-writer/internal/mapping"
)

func TestSummarize_CountsEveryOutcome(t *testing.T) {
	p := &Plan{
		Variant: mapping.VariantBinaryInput,
		Resolutions: []Resolution{
			{Record: mapping.ScadaRecord{Device: "T1_87TA"}, Outcome: OutcomeResolved},
			{Record: mapping.ScadaRecord{Device: "T1_87TA"}, Outcome: OutcomeResolved, ViaIndex: true},
			{Record: mapping.ScadaRecord{Device: "F9_51TA"}, Outcome: OutcomeNoDataMap},
			{Record: mapping.ScadaRecord{Device: "F9_51TA"}, Outcome: OutcomeNoDataMap},
			{Record: mapping.ScadaRecord{Device: "T1_87TA"}, Outcome: OutcomeNoAlias},
			{Record: mapping.ScadaRecord{Device: "OR"}, Outcome: OutcomeDirective},
		},
	}

	s := Summarize(p)

	assert.Equal(t, Summary{
		Total:          6,
		Resolved:       2,
		ViaIndex:       1,
		NoDataMap:      2,
		NoAlias:        1,
		Directives:     1,
		MissingDevices: []string{"F9_51TA"},
	}, s)
	assert.True(t, s.NeedsReview())

	text := FormatSummary(s)
	assert.Contains(t, text, "Records: 6, Resolved: 2 (by index: 1), No data map: 2, No alias: 1")
	assert.Contains(t, text, "✗ F9_51TA")
	assert.Contains(t, text, "⚠ Some SCADA points need manual review.")
}

func TestFormatSummary_AllResolved(t *testing.T) {
	text := FormatSummary(Summary{Total: 1, Resolved: 1})

	assert.NotContains(t, text, "Devices without a data map")
	assert.Contains(t, text, "✓ All SCADA points resolved.")
}

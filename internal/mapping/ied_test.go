package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtac-writer/internal/sheet"
)

func settingsFor(t *testing.T, v Variant) Settings {
	t.Helper()

	s, err := DefaultProfile().Settings(v)
	require.NoError(t, err)

	return s
}

func analogDeviceSheet() *sheet.Sheet {
	return sheet.NewSheet("Analog Points", [][]any{
		{"Relay Data Map"},
		{nil, nil, nil, "Device Name"},
		{nil, nil, nil, "K1T_87TA"},
		{},
		{"Relay Element", "HMI Point Name", "Point Address", "Description", "RTAC", "SCADA"},
		{"IA", "K1T_87TA_IA.MAG", "AI.12", "Phase A current", "X", "X"},
		{"IB", "K1T_87TA_IB.MAG", 13, "Phase B current", "X", ""},
		{"VA", "VA.MAG", "AI.14", "Phase A voltage", "", "x"},
		{"BAD", "K1T_87TA_BAD", "AI.X", "", "", "X"},
		{"UNMAPPED", "K1T_87TA_UNMAPPED", nil, "", "", ""},
		{"IA", "K1T_87TA_IA.ANG", "AI.15", "Phase A angle", "", "X"},
		{},
		{"AFTER", "K1T_87TA_AFTER", "AI.16", "", "", "X"},
	})
}

func TestLoadDevice(t *testing.T) {
	wb := &sheet.Workbook{Path: "K1T_87TA_Data_Map.xlsx", Sheets: []*sheet.Sheet{analogDeviceSheet()}}

	table, diags, err := LoadDevice(wb, settingsFor(t, VariantAnalog))
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Equal(t, "T1_87TA", table.Device)
	assert.Equal(t, "K1T_87TA_Data_Map.xlsx", table.Source)
	require.Equal(t, 3, table.Len())

	ia, ok := table.Get("IA")
	require.True(t, ok)
	assert.Equal(t, 15, ia.Index)
	assert.Equal(t, "K1T_87TA_DNP.AI_00015_IA_ANG", ia.Alias())
	assert.Equal(t, "K1T_87TA", ia.Device)
	assert.Equal(t, 11, ia.Row)

	ib, ok := table.Get("IB")
	require.True(t, ok)
	assert.Equal(t, 13, ib.Index)
	assert.Empty(t, ib.Alias())
	assert.True(t, ib.MarkedForRemoteTerminal)
	assert.False(t, ib.MarkedForSupervisory)

	va, ok := table.Get("VA")
	require.True(t, ok)
	assert.Equal(t, "K1T_87TA_DNP.AI_00014_A_MAG", va.Alias())
	assert.Equal(t, "Phase A voltage", va.Description)

	_, ok = table.Get("AFTER")
	assert.False(t, ok, "rows after the first blank key are not read")

	assert.Equal(t, 1, diags.CountByCode("label_token_missing"))
	assert.Equal(t, 1, diags.CountByCode("invalid_point_index"))

	for _, w := range diags.Warnings {
		if w.Code == "invalid_point_index" {
			assert.Contains(t, w.Message, "(cell C9)")
			assert.Equal(t, 9, w.Row)
		}
	}

	assert.Equal(t, 1, diags.CountByCode("duplicate_key"))
	assert.Len(t, diags.Warnings, 3)
}

func TestLoadDevice_FallbackCell(t *testing.T) {
	sh := sheet.NewSheet("Analog Points", [][]any{
		{},
		{},
		{nil, nil, nil, "L2F_51TA"},
		{},
		{"Relay Element", "HMI Point Name", "Point Address", "Description", "RTAC", "SCADA"},
		{"IA", "L2F_51TA_IA", "AI.0", "", "", "X"},
	})
	wb := &sheet.Workbook{Path: "dev.xlsx", Sheets: []*sheet.Sheet{sh}}

	table, _, err := LoadDevice(wb, settingsFor(t, VariantAnalog))
	require.NoError(t, err)
	assert.Equal(t, "F2_51TA", table.Device)

	ia, ok := table.Get("IA")
	require.True(t, ok)
	assert.Equal(t, "L2F_51TA_DNP.AI_00000_IA", ia.Alias())
}

func TestLoadDevice_Errors(t *testing.T) {
	s := settingsFor(t, VariantAnalog)

	t.Run("missing sheet", func(t *testing.T) {
		wb := &sheet.Workbook{Path: "dev.xlsx", Sheets: []*sheet.Sheet{sheet.NewSheet("Notes", nil)}}

		_, _, err := LoadDevice(wb, s)

		var missing *MissingSheetError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"Notes"}, missing.Available)
	})

	t.Run("blank device name", func(t *testing.T) {
		sh := sheet.NewSheet("Analog Points", [][]any{
			{},
			{},
			{},
			{},
			{"Relay Element", "HMI Point Name", "Point Address", "Description", "RTAC", "SCADA"},
		})
		wb := &sheet.Workbook{Path: "dev.xlsx", Sheets: []*sheet.Sheet{sh}}

		_, _, err := LoadDevice(wb, s)

		var empty *EmptyDeviceNameError
		require.ErrorAs(t, err, &empty)
		assert.Equal(t, "D3", empty.Cell)
	})

	missingColumns := []struct {
		column string
		header []any
	}{
		{column: ColSupervisoryMark, header: []any{"Relay Element", "HMI Point Name", "Point Address", "Description", "RTAC"}},
		{column: ColDescription, header: []any{"Relay Element", "HMI Point Name", "Point Address", "RTAC", "SCADA"}},
		{column: ColRemoteMark, header: []any{"Relay Element", "HMI Point Name", "Point Address", "Description", "SCADA"}},
	}

	for _, tt := range missingColumns {
		t.Run("missing "+tt.column, func(t *testing.T) {
			sh := sheet.NewSheet("Analog Points", [][]any{
				{},
				{nil, nil, nil, "Device Name"},
				{nil, nil, nil, "K1T_87TA"},
				{},
				tt.header,
				{"IA", "K1T_87TA_IA.MAG", "AI.12", "Phase A current", "X"},
			})
			wb := &sheet.Workbook{Path: "dev.xlsx", Sheets: []*sheet.Sheet{sh}}

			table, _, err := LoadDevice(wb, s)
			assert.Nil(t, table)

			var missing *MissingColumnError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.column, missing.Err.Column)
		})
	}
}

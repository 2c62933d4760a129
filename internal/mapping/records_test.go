package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		cell     string
		expected Directive
	}{
		{"OR", DirectiveOr},
		{" or ", DirectiveOr},
		{"AND", DirectiveAnd},
		{"Grouped as Trip", DirectiveGroup},
		{"ORION", DirectiveNone},
		{"ANDOVER_1", DirectiveNone},
		{"OR GATE", DirectiveNone},
		{"", DirectiveNone},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDirective(tt.cell))
		})
	}

	assert.Equal(t, "OR", DirectiveOr.Operator())
	assert.Empty(t, DirectiveGroup.Operator())
	assert.Equal(t, "group", DirectiveGroup.String())
}

func TestScadaRecord(t *testing.T) {
	tests := []struct {
		scaling  float64
		expected bool
	}{
		{0, false},
		{1, false},
		{0.5, true},
		{-1, true},
		{1000, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ScadaRecord{Scaling: tt.scaling}.HasScaling(), "scaling %v", tt.scaling)
	}

	assert.Equal(t, PointKey("7"), ScadaRecord{Key: "IA", Index: 7, HasIndex: true}.IndexKey())
	assert.Equal(t, PointKey("IA"), ScadaRecord{Key: "IA"}.IndexKey())
}

func TestPointTable(t *testing.T) {
	table := NewPointTable("T1_87TA", "map.xlsx")

	assert.False(t, table.Put(PointRecord{Key: "IA", Index: 12}))
	assert.False(t, table.Put(PointRecord{Key: "IB", Index: 13}))
	assert.True(t, table.Put(PointRecord{Key: "IA", Index: 14}))

	require.Equal(t, 2, table.Len())

	points := table.Points()
	assert.Equal(t, PointKey("IA"), points[0].Key)
	assert.Equal(t, 14, points[0].Index)

	p, ok := table.FindByIndex("13")
	require.True(t, ok)
	assert.Equal(t, PointKey("IB"), p.Key)

	_, ok = table.FindByIndex("12")
	assert.False(t, ok)

	_, ok = table.Get("IC")
	assert.False(t, ok)
}

func TestDeviceTable(t *testing.T) {
	devices := NewDeviceTable()

	first := NewPointTable("T1_87TA", "a.xlsx")
	assert.Nil(t, devices.Add(first))
	assert.Nil(t, devices.Add(NewPointTable("FDR_12", "b.xlsx")))

	second := NewPointTable("T1_87TA", "c.xlsx")
	assert.Same(t, first, devices.Add(second))

	got, ok := devices.Lookup("T1_87TA")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, []string{"T1_87TA", "FDR_12"}, devices.Devices())
	assert.Equal(t, 2, devices.Len())
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants {
		parsed, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	_, err := ParseVariant("status")
	assert.ErrorContains(t, err, "analog, binary-output, binary-input")
	assert.Equal(t, "Variant(0)", Variant(0).String())
}

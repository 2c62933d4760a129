package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRead_TypesCells(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Analog Inputs"))
	require.NoError(t, f.SetCellValue("Analog Inputs", "A1", "Analog DNP Address"))
	require.NoError(t, f.SetCellValue("Analog Inputs", "A2", 12))
	require.NoError(t, f.SetCellValue("Analog Inputs", "B2", "12"))
	require.NoError(t, f.SetCellValue("Analog Inputs", "C2", 0.5))
	require.NoError(t, f.SetCellValue("Analog Inputs", "E2", "tail"))

	_, err := f.NewSheet("Notes")
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	wb, err := Read(buf, "fixture.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"Analog Inputs", "Notes"}, wb.SheetNames())

	s := wb.Sheet("analog inputs")
	require.NotNil(t, s)

	assert.Equal(t, KindText, s.Cell(0, 0).Kind)
	assert.Equal(t, NumberCell(12), s.Cell(1, 0))
	assert.Equal(t, TextCell("12"), s.Cell(1, 1))
	assert.Equal(t, NumberCell(0.5), s.Cell(1, 2))
	assert.True(t, s.Cell(1, 3).IsBlank())
	assert.Equal(t, "tail", s.Cell(1, 4).String())
	assert.True(t, s.Cell(40, 40).IsBlank())
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)

	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Contains(t, openErr.Path, "missing.xlsx")
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "D3", "K1T_87TA"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	wb, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, wb.Path)

	row, col, err := CellRef("D3")
	require.NoError(t, err)
	assert.Equal(t, "K1T_87TA", wb.Sheets[0].Cell(row, col).String())
	assert.Equal(t, "D3", CellName(row, col))
	assert.Empty(t, CellName(-1, 0))
}

func TestCell_String(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected string
	}{
		{NumberCell(12), "12"},
		{NumberCell(12.5), "12.5"},
		{TextCell("  X  "), "X"},
		{Cell{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cell.String())
		})
	}
}

func TestNewSheet(t *testing.T) {
	s := NewSheet("Analog Points", [][]any{
		{"Relay Element", nil, 3},
	})

	assert.True(t, s.Cell(0, 0).IsText())
	assert.True(t, s.Cell(0, 1).IsBlank())

	v, ok := s.Cell(0, 2).Int()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, _, err := CellRef("not a cell")
	assert.Error(t, err)
}

package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, lines [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, line := range lines {
		for j, value := range line {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestReadRows(t *testing.T) {
	src := buildWorkbook(t, [][]interface{}{
		{"Name", "Email", "Room ID"},
		{"Ana", "ana@example.com", 3},
		{"Luis", "", 4},
	})

	header, rows, err := ReadRows(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Email", "Room ID"}, header)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Number)
	require.NotNil(t, rows[0].Get("Name"))
	assert.Equal(t, "Ana", *rows[0].Get("Name"))
	require.NotNil(t, rows[0].Get("Room ID"))
	assert.Equal(t, "3", *rows[0].Get("Room ID"))

	// blank cells come back nil, not empty string
	assert.Nil(t, rows[1].Get("Email"))
	assert.Nil(t, rows[1].Get("Unknown Column"))
}

func TestReadRowsSkipsBlankLines(t *testing.T) {
	src := buildWorkbook(t, [][]interface{}{
		{"Name"},
		{""},
		{"Ana"},
	})

	_, rows, err := ReadRows(src)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Number)
}

func TestReadRowsRejectsCorruptInput(t *testing.T) {
	_, _, err := ReadRows(strings.NewReader("this is not a workbook"))
	require.Error(t, err)
}

func TestReadRowsRejectsEmptyWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	_, _, err = ReadRows(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
}

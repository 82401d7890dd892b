package main

import (
	"bytes"
	"errors"
	"gridEditor/contracts"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

type _failingWriter struct{}

func (_failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestXlsxExporter_Export(t *testing.T) {
	grid := NewGrid(4, 3)
	grid.SetCellLiteral(0, 0, "1")
	grid.SetCellLiteral(1, 0, "2.5")
	grid.SetCellLiteral(2, 0, "abc")
	grid.SetCellLiteral(0, 2, "007")
	grid.SetCellFormula(3, 0, "=SUM(A1:A3)", "3.5")

	buffer := &bytes.Buffer{}
	err := NewXlsxExporter().Export(grid.Snapshot(), buffer)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buffer)
	assert.NoError(t, err)
	defer f.Close()

	assertCell := func(name string, expected string) {
		value, err := f.GetCellValue(ExportSheetName, name)
		assert.NoError(t, err)
		assert.Equal(t, expected, value, name)
	}

	assertCell("A1", "1")
	assertCell("A2", "2.5")
	assertCell("A3", "abc")
	assertCell("C1", "007")
	assertCell("B1", "")

	formula, err := f.GetCellFormula(ExportSheetName, "A4")
	assert.NoError(t, err)
	assert.Equal(t, "SUM(A1:A3)", formula)

	formula, err = f.GetCellFormula(ExportSheetName, "A1")
	assert.NoError(t, err)
	assert.Empty(t, formula)
}

func TestXlsxExporter_ExportEmpty(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := NewXlsxExporter().Export(NewGrid(2, 2).Snapshot(), buffer)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(buffer)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheetName)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestXlsxExporter_ExportWriteError(t *testing.T) {
	snapshot := contracts.GridSnapshot{{{Value: "1"}}}

	err := NewXlsxExporter().Export(snapshot, _failingWriter{})

	assert.Error(t, err)
}

func TestExportValue(t *testing.T) {
	testCases := map[string]any{
		"1":    float64(1),
		"2.5":  2.5,
		"-4":   float64(-4),
		"007":  "007",
		"1e3":  "1e3",
		"abc":  "abc",
		" 1":   " 1",
		"3.50": "3.50",
	}

	for value, expected := range testCases {
		assert.Equal(t, expected, exportValue(value), value)
	}
}

package main

import (
	"fmt"
	"gridEditor/contracts"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const ExportSheetName = "Sheet1"

type XlsxExporter struct {
	sheetName string
}

func NewXlsxExporter() *XlsxExporter {
	return &XlsxExporter{sheetName: ExportSheetName}
}

// Export writes non-empty cells as an xlsx workbook. Formula cells keep their
// last computed value next to the formula text.
func (x *XlsxExporter) Export(snapshot contracts.GridSnapshot, w io.Writer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	for row, cells := range snapshot {
		for col, cell := range cells {
			if cell.Value == "" && cell.Formula == "" {
				continue
			}

			name := CellName(row, col)
			if err = f.SetCellValue(x.sheetName, name, exportValue(cell.Value)); err != nil {
				return fmt.Errorf("cell %s: %w", name, err)
			}

			if cell.Formula != "" {
				err = f.SetCellFormula(x.sheetName, name, strings.TrimPrefix(cell.Formula, contracts.FormulaPrefix))
				if err != nil {
					return fmt.Errorf("cell %s: %w", name, err)
				}
			}
		}
	}

	_, err = f.WriteTo(w)
	return err
}

// exportValue keeps numbers numeric when the text is exactly their canonical form
func exportValue(value string) any {
	number, err := strconv.ParseFloat(value, 64)
	if err == nil && strconv.FormatFloat(number, 'f', -1, 64) == value {
		return number
	}
	return value
}

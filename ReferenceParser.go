package main

import (
	"fmt"
	"gridEditor/contracts"
	"regexp"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const RangeSeparator = ":"

// MaxRangeCells the largest rectangle a range may cover, the size of the largest grid
const MaxRangeCells = MaxRows * MaxCols

type ReferenceParser struct {
	cellRefRegex *regexp.Regexp
}

func NewReferenceParser() *ReferenceParser {
	return &ReferenceParser{
		// one uppercase column letter, then the 1-based row number
		cellRefRegex: regexp.MustCompile(`^([A-Z])([0-9]+)$`),
	}
}

func (p *ReferenceParser) ParseCellRef(text string) (coordinates contracts.CellCoordinates, err error) {
	match := p.cellRefRegex.FindStringSubmatch(text)
	if match == nil {
		return coordinates, fmt.Errorf("`%s`: %w", text, contracts.ParseError)
	}

	row, err := strconv.Atoi(match[2])
	if err != nil || row < 1 {
		return coordinates, fmt.Errorf("`%s` row should be a positive number: %w", text, contracts.ParseError)
	}

	coordinates.Col = int(match[1][0] - 'A')
	coordinates.Row = row - 1
	return coordinates, nil
}

// ParseRange lists every cell of the inclusive rectangle in row-major order.
// A reversed range (end before start on any axis) is empty, not an error.
func (p *ReferenceParser) ParseRange(startRef string, endRef string) ([]contracts.CellCoordinates, error) {
	start, err := p.ParseCellRef(startRef)
	if err != nil {
		return nil, err
	}

	end, err := p.ParseCellRef(endRef)
	if err != nil {
		return nil, err
	}

	size, err := rangeSize(start, end)
	if err != nil {
		return nil, fmt.Errorf("%s:%s: %w", startRef, endRef, err)
	}

	cells := make([]contracts.CellCoordinates, 0, size)
	for row := start.Row; row <= end.Row; row++ {
		for col := start.Col; col <= end.Col; col++ {
			cells = append(cells, contracts.CellCoordinates{Row: row, Col: col})
		}
	}

	return cells, nil
}

// ColumnName the header letter of a zero-based column
func ColumnName(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return ""
	}
	return name
}

// CellName the `A1` reference of zero-based coordinates
func CellName(row int, col int) string {
	return ColumnName(col) + strconv.Itoa(row+1)
}

func isReversedRange(start contracts.CellCoordinates, end contracts.CellCoordinates) bool {
	return end.Row < start.Row || end.Col < start.Col
}

// rangeSize cell count of the rectangle, at most MaxRangeCells
func rangeSize(start contracts.CellCoordinates, end contracts.CellCoordinates) (int, error) {
	if isReversedRange(start, end) {
		return 0, nil
	}

	width := end.Col - start.Col + 1
	height := end.Row - start.Row + 1
	if height > MaxRangeCells/width {
		return 0, fmt.Errorf("%dx%d cells: %w", height, width, contracts.RangeTooLargeError)
	}
	return height * width, nil
}

package main

import (
	"fmt"
	"gridEditor/contracts"

	"github.com/mohae/deepcopy"
)

const DefaultRows = 20
const DefaultCols = 10

// MaxCols columns are addressed by a single letter
const MaxCols = 26

const MaxRows = 1 << 20

type Grid struct {
	rows  int
	cols  int
	cells [][]contracts.Cell
}

func NewGrid(rows int, cols int) *Grid {
	if rows <= 0 || rows > MaxRows || cols <= 0 || cols > MaxCols {
		panic(fmt.Sprintf("invalid grid size %dx%d", rows, cols))
	}

	cells := make([][]contracts.Cell, rows)
	for row := range cells {
		cells[row] = make([]contracts.Cell, cols)
	}

	return &Grid{rows: rows, cols: cols, cells: cells}
}

// NewGridFromSnapshot copies snapshot into a new grid; the snapshot must be a non-empty rectangle
func NewGridFromSnapshot(snapshot contracts.GridSnapshot) (*Grid, error) {
	if len(snapshot) == 0 || len(snapshot) > MaxRows || len(snapshot[0]) == 0 || len(snapshot[0]) > MaxCols {
		return nil, fmt.Errorf("%w: empty or too large", contracts.SnapshotShapeError)
	}

	cols := len(snapshot[0])
	for row, cells := range snapshot {
		if len(cells) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", contracts.SnapshotShapeError, row, len(cells), cols)
		}
	}

	return &Grid{
		rows:  len(snapshot),
		cols:  cols,
		cells: deepcopy.Copy([][]contracts.Cell(snapshot)).([][]contracts.Cell),
	}, nil
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) Contains(row int, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) GetCell(row int, col int) contracts.Cell {
	g.mustContain(row, col)
	return g.cells[row][col]
}

func (g *Grid) SetCellLiteral(row int, col int, text string) {
	g.mustContain(row, col)
	g.cells[row][col] = contracts.Cell{Value: text}
}

// SetCellFormula stores formula together with its evaluated display value
func (g *Grid) SetCellFormula(row int, col int, formula string, value string) {
	g.mustContain(row, col)
	g.cells[row][col] = contracts.Cell{Value: value, Formula: formula}
}

func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: deepcopy.Copy(g.cells).([][]contracts.Cell),
	}
}

func (g *Grid) Snapshot() contracts.GridSnapshot {
	return deepcopy.Copy(g.cells).([][]contracts.Cell)
}

func (g *Grid) SameShape(other *Grid) bool {
	return g.rows == other.rows && g.cols == other.cols
}

func (g *Grid) Equal(other *Grid) bool {
	if other == nil || !g.SameShape(other) {
		return false
	}

	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}

	return true
}

func (g *Grid) mustContain(row int, col int) {
	if !g.Contains(row, col) {
		panic(fmt.Sprintf("%s: (%d,%d) in %dx%d grid", contracts.CellOutOfBoundsError, row, col, g.rows, g.cols))
	}
}

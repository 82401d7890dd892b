package contracts

import (
	"errors"
	"fmt"
)

type Cell struct {
	Value   string `json:"value"`
	Formula string `json:"formula"`
}

type CellCoordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GridSnapshot rows of cells, the shape used for persistence and history
type GridSnapshot [][]Cell

// CellReader read-only access to cells, used by formula evaluation
type CellReader interface {
	Contains(row int, col int) bool
	GetCell(row int, col int) Cell
}

// FormulaPrefix marks formula entry, everything else is literal text
const FormulaPrefix = "="

var CellOutOfBoundsError = errors.New("cell out of bounds")

var SnapshotShapeError = errors.New("snapshot shape mismatch")

func (c CellCoordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

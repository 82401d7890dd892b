package contracts

import "io"

// GridState read view of an editor session
type GridState struct {
	Rows         int               `json:"rows"`
	Cols         int               `json:"cols"`
	ColumnNames  []string          `json:"columnNames"`
	Cells        GridSnapshot      `json:"cells"`
	SelectedCell *CellCoordinates  `json:"selectedCell"`
	MultiSelect  []CellCoordinates `json:"multiSelect"`
	Dragging     bool              `json:"dragging"`
	FormulaBar   string            `json:"formulaBar"`
	CanUndo      bool              `json:"canUndo"`
	CanRedo      bool              `json:"canRedo"`
}

type GridEditor interface {
	SelectCell(row int, col int) error
	StartDrag(row int, col int) error
	ExtendDrag(row int, col int) error
	EndDrag()
	SetCellLiteral(row int, col int, text string) (*Cell, error)
	GetCell(row int, col int) (*Cell, error)
	SetFormulaBarText(text string)
	ApplyFormulaBar() (*Cell, error)
	Undo() bool
	Redo() bool
	Save() error
	Load() (bool, error)
	State() *GridState
	Export(w io.Writer) error
}

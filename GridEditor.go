package main

import (
	"errors"
	"fmt"
	"gridEditor/contracts"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// GridEditor one editing session: the grid with its selection, formula bar and history.
// Every operation holds the lock, so history snapshots are taken together with the change they guard.
type GridEditor struct {
	mu         sync.Mutex
	grid       *Grid
	selection  *SelectionModel
	history    *HistoryManager
	formulaBar string

	evaluator  contracts.FormulaEvaluator
	serializer contracts.GridSerializer
	repository contracts.SnapshotRepository
	exporter   contracts.GridExporter
	logger     logrus.FieldLogger
}

func NewGridEditor(
	grid *Grid, history *HistoryManager, evaluator contracts.FormulaEvaluator,
	serializer contracts.GridSerializer, repository contracts.SnapshotRepository,
	exporter contracts.GridExporter, logger logrus.FieldLogger,
) *GridEditor {
	return &GridEditor{
		grid:       grid,
		selection:  NewSelectionModel(),
		history:    history,
		evaluator:  evaluator,
		serializer: serializer,
		repository: repository,
		exporter:   exporter,
		logger:     logger,
	}
}

func (e *GridEditor) SelectCell(row int, col int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkBounds(row, col); err != nil {
		return err
	}

	e.selection.Click(contracts.CellCoordinates{Row: row, Col: col})

	cell := e.grid.GetCell(row, col)
	if cell.Formula != "" {
		e.formulaBar = cell.Formula
	} else {
		e.formulaBar = cell.Value
	}

	return nil
}

func (e *GridEditor) StartDrag(row int, col int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkBounds(row, col); err != nil {
		return err
	}

	e.selection.StartDrag(contracts.CellCoordinates{Row: row, Col: col})
	return nil
}

func (e *GridEditor) ExtendDrag(row int, col int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkBounds(row, col); err != nil {
		return err
	}

	e.selection.ExtendDrag(contracts.CellCoordinates{Row: row, Col: col})
	return nil
}

func (e *GridEditor) EndDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.selection.EndDrag()
}

func (e *GridEditor) GetCell(row int, col int) (*contracts.Cell, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkBounds(row, col); err != nil {
		return nil, err
	}

	cell := e.grid.GetCell(row, col)
	return &cell, nil
}

func (e *GridEditor) SetCellLiteral(row int, col int, text string) (*contracts.Cell, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkBounds(row, col); err != nil {
		return nil, err
	}

	if err := e.history.RecordMutation(e.grid); err != nil {
		return nil, err
	}

	e.grid.SetCellLiteral(row, col, text)
	e.logger.WithFields(logrus.Fields{"row": row, "col": col}).Debug("cell literal set")

	cell := e.grid.GetCell(row, col)
	return &cell, nil
}

func (e *GridEditor) SetFormulaBarText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.formulaBar = text
}

// ApplyFormulaBar writes the formula bar into the selected cell.
// Without a selected cell nothing happens and the returned cell is nil.
func (e *GridEditor) ApplyFormulaBar() (*contracts.Cell, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	selected, ok := e.selection.SelectedCell()
	if !ok {
		return nil, nil
	}

	text := e.formulaBar
	fields := logrus.Fields{"row": selected.Row, "col": selected.Col}

	if !strings.HasPrefix(text, contracts.FormulaPrefix) {
		if err := e.history.RecordMutation(e.grid); err != nil {
			return nil, err
		}
		e.grid.SetCellLiteral(selected.Row, selected.Col, text)
		e.logger.WithFields(fields).Debug("cell literal set from formula bar")

		cell := e.grid.GetCell(selected.Row, selected.Col)
		return &cell, nil
	}

	value, err := e.evaluator.Evaluate(text, e.grid)
	if err != nil {
		e.logger.WithFields(fields).WithError(err).Warn("formula evaluation failed")
	}

	if err := e.history.RecordMutation(e.grid); err != nil {
		return nil, err
	}
	e.grid.SetCellFormula(selected.Row, selected.Col, text, FormatResult(value, err))
	e.logger.WithFields(fields).Debug("formula applied")

	cell := e.grid.GetCell(selected.Row, selected.Col)
	return &cell, nil
}

// Undo reports false when there was nothing to undo
func (e *GridEditor) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.restore(e.history.Undo, "undo")
}

// Redo reports false when there was nothing to redo
func (e *GridEditor) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.restore(e.history.Redo, "redo")
}

func (e *GridEditor) Save() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := e.serializer.Marshal(e.grid.Snapshot())
	if err != nil {
		return fmt.Errorf("%w: %w", contracts.PersistenceError, err)
	}

	if err = e.repository.Save(contracts.SnapshotKey, data); err != nil {
		return err
	}

	e.logger.WithField("key", contracts.SnapshotKey).Info("grid saved")
	return nil
}

// Load replaces the grid with the saved one. Returns false without error when nothing is saved;
// on any failure the grid stays as it was.
func (e *GridEditor) Load() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := e.repository.Load(contracts.SnapshotKey)
	if errors.Is(err, contracts.SnapshotNotFoundError) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	snapshot, err := e.serializer.Unmarshal(data)
	if err != nil {
		return false, fmt.Errorf("%w: %w", contracts.PersistenceError, err)
	}

	grid, err := NewGridFromSnapshot(snapshot)
	if err != nil {
		return false, fmt.Errorf("%w: %w", contracts.PersistenceError, err)
	}

	if !grid.SameShape(e.grid) {
		return false, fmt.Errorf(
			"%w: %w: saved grid is %dx%d, session grid is %dx%d", contracts.PersistenceError,
			contracts.SnapshotShapeError, grid.Rows(), grid.Cols(), e.grid.Rows(), e.grid.Cols(),
		)
	}

	e.grid = grid
	e.logger.WithField("key", contracts.SnapshotKey).Info("grid loaded")
	return true, nil
}

func (e *GridEditor) State() *contracts.GridState {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := &contracts.GridState{
		Rows:        e.grid.Rows(),
		Cols:        e.grid.Cols(),
		ColumnNames: make([]string, e.grid.Cols()),
		Cells:       e.grid.Snapshot(),
		MultiSelect: e.selection.MultiSelect(),
		Dragging:    e.selection.IsDragging(),
		FormulaBar:  e.formulaBar,
		CanUndo:     e.history.CanUndo(),
		CanRedo:     e.history.CanRedo(),
	}

	for col := range state.ColumnNames {
		state.ColumnNames[col] = ColumnName(col)
	}

	if selected, ok := e.selection.SelectedCell(); ok {
		state.SelectedCell = &selected
	}

	return state
}

func (e *GridEditor) Export(w io.Writer) error {
	e.mu.Lock()
	snapshot := e.grid.Snapshot()
	e.mu.Unlock()

	return e.exporter.Export(snapshot, w)
}

func (e *GridEditor) restore(step func(current *Grid) (*Grid, error), operation string) bool {
	grid, err := step(e.grid)
	if errors.Is(err, contracts.HistoryEmptyError) {
		return false
	} else if err != nil {
		e.logger.WithError(err).Errorf("%s failed", operation)
		return false
	}

	e.grid = grid
	e.logger.Debug(operation)
	return true
}

func (e *GridEditor) checkBounds(row int, col int) error {
	if !e.grid.Contains(row, col) {
		return fmt.Errorf("(%d,%d) in %dx%d grid: %w", row, col, e.grid.Rows(), e.grid.Cols(), contracts.CellOutOfBoundsError)
	}
	return nil
}

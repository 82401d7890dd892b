package main

import "gridEditor/contracts"

// SelectionModel active cell plus the cells gathered by a drag gesture.
// Idle until StartDrag, Dragging until EndDrag.
type SelectionModel struct {
	selectedCell *contracts.CellCoordinates
	multiSelect  []contracts.CellCoordinates
	dragging     bool
}

func NewSelectionModel() *SelectionModel {
	return &SelectionModel{
		multiSelect: make([]contracts.CellCoordinates, 0),
	}
}

// Click selects a single cell and drops any drag selection
func (s *SelectionModel) Click(cell contracts.CellCoordinates) {
	s.selectedCell = &cell
	s.multiSelect = s.multiSelect[:0]
}

func (s *SelectionModel) StartDrag(cell contracts.CellCoordinates) {
	s.selectedCell = &cell
	s.multiSelect = append(s.multiSelect[:0], cell)
	s.dragging = true
}

// ExtendDrag adds cell once, in entry order; ignored while idle
func (s *SelectionModel) ExtendDrag(cell contracts.CellCoordinates) bool {
	if !s.dragging || s.IsMultiSelected(cell) {
		return false
	}

	s.multiSelect = append(s.multiSelect, cell)
	return true
}

func (s *SelectionModel) EndDrag() {
	s.dragging = false
}

func (s *SelectionModel) SelectedCell() (contracts.CellCoordinates, bool) {
	if s.selectedCell == nil {
		return contracts.CellCoordinates{}, false
	}
	return *s.selectedCell, true
}

func (s *SelectionModel) MultiSelect() []contracts.CellCoordinates {
	return append(make([]contracts.CellCoordinates, 0, len(s.multiSelect)), s.multiSelect...)
}

func (s *SelectionModel) IsMultiSelected(cell contracts.CellCoordinates) bool {
	for _, selected := range s.multiSelect {
		if selected == cell {
			return true
		}
	}
	return false
}

func (s *SelectionModel) IsDragging() bool {
	return s.dragging
}

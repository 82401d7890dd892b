package main

import (
	"fmt"
	"gridEditor/contracts"
)

// HistoryManager undo/redo stacks of serialized grid snapshots
type HistoryManager struct {
	serializer contracts.GridSerializer
	undoStack  [][]byte
	redoStack  [][]byte
	// 0 keeps every entry
	limit int
}

func NewHistoryManager(serializer contracts.GridSerializer, limit int) *HistoryManager {
	if limit < 0 {
		limit = 0
	}

	return &HistoryManager{
		serializer: serializer,
		undoStack:  make([][]byte, 0),
		redoStack:  make([][]byte, 0),
		limit:      limit,
	}
}

// RecordMutation stores the grid as it was before a change and drops the redo branch
func (h *HistoryManager) RecordMutation(before *Grid) error {
	snapshot, err := h.serializer.Marshal(before.Snapshot())
	if err != nil {
		return err
	}

	h.undoStack = h.push(h.undoStack, snapshot)
	h.redoStack = h.redoStack[:0]
	return nil
}

func (h *HistoryManager) Undo(current *Grid) (*Grid, error) {
	return h.move(&h.undoStack, &h.redoStack, current, "undo")
}

func (h *HistoryManager) Redo(current *Grid) (*Grid, error) {
	return h.move(&h.redoStack, &h.undoStack, current, "redo")
}

func (h *HistoryManager) CanUndo() bool {
	return len(h.undoStack) > 0
}

func (h *HistoryManager) CanRedo() bool {
	return len(h.redoStack) > 0
}

func (h *HistoryManager) UndoDepth() int {
	return len(h.undoStack)
}

func (h *HistoryManager) RedoDepth() int {
	return len(h.redoStack)
}

// move pops from one stack, saves current onto the other and returns the popped grid.
// Stacks stay untouched when anything fails.
func (h *HistoryManager) move(from *[][]byte, to *[][]byte, current *Grid, operation string) (*Grid, error) {
	if len(*from) == 0 {
		return nil, fmt.Errorf("%s: %w", operation, contracts.HistoryEmptyError)
	}

	top := (*from)[len(*from)-1]
	snapshot, err := h.serializer.Unmarshal(top)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	restored, err := NewGridFromSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	currentSnapshot, err := h.serializer.Marshal(current.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	*from = (*from)[:len(*from)-1]
	*to = h.push(*to, currentSnapshot)
	return restored, nil
}

func (h *HistoryManager) push(stack [][]byte, snapshot []byte) [][]byte {
	if h.limit > 0 && len(stack) >= h.limit {
		// evict oldest
		stack = append(stack[:0], stack[len(stack)-h.limit+1:]...)
	}
	return append(stack, snapshot)
}

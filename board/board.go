// Package board holds grid occupancy and move history of a Gomoku game, along with the
// pixel geometry used to hit-test pointer positions.
package board

import (
	"errors"
	"fmt"

	"gomoku-local/types"
)

// Errors returned by board mutations.
var (
	ErrOutOfRange   = errors.New("index out of range")
	ErrOccupied     = errors.New("cell occupied")
	ErrEmptyHistory = errors.New("no moves to remove")
	ErrInvalidColor = errors.New("invalid chess color")
)

// Board owns the cells and the ordered move history.
//
// For every cell, cells[i] is the color of the latest move at that position, and the
// number of occupied cells always equals len(moves).
type Board struct {
	geom     Geometry
	cells    []types.CellState
	moves    []types.Move
	onChange func()
}

// New creates an empty board with the given geometry.
func New(geom Geometry) *Board {
	return &Board{
		geom:  geom,
		cells: make([]types.CellState, geom.Capacity()),
	}
}

// NewDefault creates an empty board with DefaultGeometry.
func NewDefault() *Board {
	return New(DefaultGeometry())
}

// OnChange registers fn to be called after every mutation. Renderers use it to drop
// cached layers; they re-read the board on their next draw.
func (b *Board) OnChange(fn func()) {
	b.onChange = fn
}

func (b *Board) changed() {
	if b.onChange != nil {
		b.onChange()
	}
}

// Geometry returns the board layout.
func (b *Board) Geometry() Geometry {
	return b.geom
}

// CellsPerRow returns the number of intersections per row.
func (b *Board) CellsPerRow() int {
	return b.geom.CellsPerRow
}

func (b *Board) validIndex(index int) bool {
	return index >= 0 && index < len(b.cells)
}

// IndexToPos converts a flat cell index to a grid position.
func (b *Board) IndexToPos(index int) types.Pos {
	return types.Pos{Col: index % b.geom.CellsPerRow, Row: index / b.geom.CellsPerRow}
}

// PosToIndex converts a grid position to a flat cell index.
func (b *Board) PosToIndex(p types.Pos) int {
	return p.Col + p.Row*b.geom.CellsPerRow
}

// IsEmptyAt reports whether index is on the board and unoccupied.
func (b *Board) IsEmptyAt(index int) bool {
	return b.validIndex(index) && b.cells[index] == types.Empty
}

// CellAt returns the state of the cell at index, or Empty when index is off the board.
func (b *Board) CellAt(index int) types.CellState {
	if !b.validIndex(index) {
		return types.Empty
	}
	return b.cells[index]
}

// Cells returns a copy of the row-major cell array.
func (b *Board) Cells() []types.CellState {
	cells := make([]types.CellState, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// Moves returns a copy of the move history, oldest first.
func (b *Board) Moves() []types.Move {
	moves := make([]types.Move, len(b.moves))
	copy(moves, b.moves)
	return moves
}

// MoveCount returns the number of moves played.
func (b *Board) MoveCount() int {
	return len(b.moves)
}

// LastMove returns the most recent move. ok is false on an empty board.
func (b *Board) LastMove() (m types.Move, ok bool) {
	if len(b.moves) == 0 {
		return types.Move{}, false
	}
	return b.moves[len(b.moves)-1], true
}

// PutChess places a chess of color c at index and records the move.
func (b *Board) PutChess(index int, c types.Color) error {
	if !b.validIndex(index) {
		return fmt.Errorf("put chess at %d (max %d): %w", index, len(b.cells), ErrOutOfRange)
	}
	if !c.Valid() {
		return fmt.Errorf("put chess at %d: %w: %v", index, ErrInvalidColor, c)
	}
	if b.cells[index] != types.Empty {
		return fmt.Errorf("put chess at %d: %w", index, ErrOccupied)
	}
	b.moves = append(b.moves, types.Move{Pos: b.IndexToPos(index), Color: c})
	b.cells[index] = types.CellOf(c)
	b.changed()
	return nil
}

// RemoveLastChess undoes the most recent move and returns it.
func (b *Board) RemoveLastChess() (types.Move, error) {
	last, ok := b.LastMove()
	if !ok {
		return types.Move{}, ErrEmptyHistory
	}
	b.moves = b.moves[:len(b.moves)-1]
	b.cells[b.PosToIndex(last.Pos)] = types.Empty
	b.changed()
	return last, nil
}

// Clear empties the board, keeping its geometry and change listener.
func (b *Board) Clear() {
	b.cells = make([]types.CellState, b.geom.Capacity())
	b.moves = nil
	b.changed()
}

// GridPos hit-tests a pixel position against the board's intersections.
func (b *Board) GridPos(x, y, toleranceScale float64) (types.Pos, bool) {
	return b.geom.GridPos(x, y, toleranceScale)
}

// Intersection returns the pixel centre of the intersection at p.
func (b *Board) Intersection(p types.Pos) (x, y float64) {
	return b.geom.Intersection(p)
}

// Package types contains shared data structures for gomoku-local.
package types

import "fmt"

// Color is the color of a placed chess. Values match the non-empty CellState values.
type Color int

const (
	Black Color = 1
	White Color = 2
)

// Valid reports whether c is Black or White.
func (c Color) Valid() bool {
	return c == Black || c == White
}

// Opposite returns the other player's color.
func (c Color) Opposite() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// CellState is the occupancy of a single intersection.
type CellState int

const (
	Empty CellState = iota
	BlackCell
	WhiteCell
)

// CellOf returns the cell state a chess of color c produces.
func CellOf(c Color) CellState {
	return CellState(c)
}

// Color returns the color occupying the cell. ok is false for an Empty cell.
func (s CellState) Color() (c Color, ok bool) {
	if s == Empty {
		return 0, false
	}
	return Color(s), true
}

func (s CellState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case BlackCell:
		return "Black"
	case WhiteCell:
		return "White"
	}
	return fmt.Sprintf("CellState(%d)", int(s))
}

// Pos is a grid intersection. Col runs left to right, Row top to bottom, both 0-indexed.
type Pos struct {
	Col int
	Row int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}

// Move is a recorded placement.
type Move struct {
	Pos   Pos
	Color Color
}

// TurnState is whose move is awaited. The Check states follow a placement and are
// where a game verdict is evaluated.
type TurnState int

const (
	WaitBlack TurnState = iota
	WaitWhite
	CheckBlack
	CheckWhite
)

// Waiting reports whether the state accepts a move.
func (s TurnState) Waiting() bool {
	return s == WaitBlack || s == WaitWhite
}

func (s TurnState) String() string {
	switch s {
	case WaitBlack:
		return "WaitBlack"
	case WaitWhite:
		return "WaitWhite"
	case CheckBlack:
		return "CheckBlack"
	case CheckWhite:
		return "CheckWhite"
	}
	return fmt.Sprintf("TurnState(%d)", int(s))
}

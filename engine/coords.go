package engine

import (
	"fmt"
	"strconv"
	"strings"

	"gomoku-local/types"
)

// Display coordinate system:
// - Columns: A-P (skipping I to avoid confusion with 1)
// - Rows: 1-15 (from bottom of board)
// - Example: H8 is the centre of a 15x15 board
//
// Board coordinate system:
// - Col: 0-14 (left to right)
// - Row: 0-14 (top to bottom)

// PosToDisplay converts a board position to display notation.
// For a 15x15 board: (0, 14) -> A1, (7, 7) -> H8, (14, 0) -> P15
func PosToDisplay(p types.Pos, size int) string {
	col := 'A' + rune(p.Col)
	if p.Col >= 8 {
		col++ // Skip 'I'
	}
	return fmt.Sprintf("%c%d", col, size-p.Row)
}

// DisplayToPos converts display notation back to a board position.
func DisplayToPos(vertex string, size int) (types.Pos, error) {
	vertex = strings.TrimSpace(strings.ToUpper(vertex))
	if len(vertex) < 2 {
		return types.Pos{}, fmt.Errorf("invalid vertex: %q", vertex)
	}

	if vertex[0] < 'A' || vertex[0] > 'Z' || vertex[0] == 'I' {
		return types.Pos{}, fmt.Errorf("invalid column in vertex: %q", vertex)
	}
	col := int(vertex[0] - 'A')
	if col > 8 {
		col-- // Account for skipped 'I'
	}

	row, err := strconv.Atoi(vertex[1:])
	if err != nil {
		return types.Pos{}, fmt.Errorf("invalid row in vertex: %q", vertex)
	}
	y := size - row

	if col >= size || y < 0 || y >= size {
		return types.Pos{}, fmt.Errorf("vertex out of bounds: %q", vertex)
	}
	return types.Pos{Col: col, Row: y}, nil
}

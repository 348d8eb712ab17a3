package game

import (
	"fmt"
	"strings"

	"gomoku-local/engine"
	"gomoku-local/sgf"
	"gomoku-local/types"
)

// ParseMoves reads a move list for a board of the given size. An SGF record is
// accepted as is; anything else is read as comma separated vertices such as
// "H8,J8,H9", alternating colors starting with Black.
func ParseMoves(s string, size int) ([]types.Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "(") {
		info, moves, err := sgf.Decode(s)
		if err != nil {
			return nil, err
		}
		if info.BoardSize != size {
			return nil, fmt.Errorf("record is for a %dx%d board, want %dx%d", info.BoardSize, info.BoardSize, size, size)
		}
		return moves, nil
	}

	var moves []types.Move
	color := types.Black
	for _, v := range strings.Split(s, ",") {
		pos, err := engine.DisplayToPos(v, size)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", len(moves)+1, err)
		}
		moves = append(moves, types.Move{Pos: pos, Color: color})
		color = color.Opposite()
	}
	return moves, nil
}

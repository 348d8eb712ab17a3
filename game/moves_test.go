package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomoku-local/engine"
	"gomoku-local/types"
)

func TestParseMovesVertexList(t *testing.T) {
	moves, err := ParseMoves("H8, J8 ,h9", 15)
	require.NoError(t, err)
	assert.Equal(t, []types.Move{
		{Pos: types.Pos{Col: 7, Row: 7}, Color: types.Black},
		{Pos: types.Pos{Col: 8, Row: 7}, Color: types.White},
		{Pos: types.Pos{Col: 7, Row: 6}, Color: types.Black},
	}, moves)
}

func TestParseMovesEmpty(t *testing.T) {
	moves, err := ParseMoves("  ", 15)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestParseMovesErrors(t *testing.T) {
	for _, in := range []string{"H8,,J8", "I5", "A16", "(;GM[1]SZ[15];B[aa])", "(;GM[4]SZ[13];B[aa])"} {
		_, err := ParseMoves(in, 15)
		assert.Error(t, err, in)
	}
}

func TestParseMovesRecordReplays(t *testing.T) {
	s, err := NewSession(engine.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, s.Replay([]types.Move{
		{Pos: types.Pos{Col: 7, Row: 7}, Color: types.Black},
		{Pos: types.Pos{Col: 8, Row: 8}, Color: types.White},
	}))

	moves, err := ParseMoves(s.Record(), 15)
	require.NoError(t, err)
	assert.Equal(t, s.Board.Moves(), moves)
}

func TestLargestBoardRecordReplays(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Geometry.CellsPerRow = 26
	_, err := NewSession(cfg)
	require.Error(t, err)

	cfg.Geometry.CellsPerRow = 25
	s, err := NewSession(cfg)
	require.NoError(t, err)
	corner := types.Pos{Col: 24, Row: 0}
	require.True(t, s.PlayIndex(s.Board.PosToIndex(corner)))
	assert.Equal(t, "Z25", engine.PosToDisplay(corner, 25))

	moves, err := ParseMoves(s.Record(), 25)
	require.NoError(t, err)
	assert.Equal(t, s.Board.Moves(), moves)

	moves, err = ParseMoves("Z25", 25)
	require.NoError(t, err)
	assert.Equal(t, corner, moves[0].Pos)
}

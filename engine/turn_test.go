package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomoku-local/board"
	"gomoku-local/types"
)

func newTestController(eval Evaluator) (*board.Board, *TurnController) {
	b := board.NewDefault()
	return b, NewTurnController(b, eval)
}

func TestInitialState(t *testing.T) {
	_, tc := newTestController(nil)
	assert.Equal(t, types.WaitBlack, tc.State())
	assert.Equal(t, types.Black, tc.ToMove())
	assert.False(t, tc.Finished())
}

func TestTurnAlternation(t *testing.T) {
	b, tc := newTestController(nil)

	require.True(t, tc.Click(16))
	assert.Equal(t, types.WaitWhite, tc.State())
	assert.Equal(t, types.BlackCell, b.CellAt(16))

	require.True(t, tc.Click(20))
	assert.Equal(t, types.WaitBlack, tc.State())
	assert.Equal(t, types.WhiteCell, b.CellAt(20))

	require.True(t, tc.Click(100))
	assert.Equal(t, types.BlackCell, b.CellAt(100))
	assert.Equal(t, types.WaitWhite, tc.State())

	assert.Equal(t, []types.Move{
		{Pos: types.Pos{Col: 1, Row: 1}, Color: types.Black},
		{Pos: types.Pos{Col: 5, Row: 1}, Color: types.White},
		{Pos: types.Pos{Col: 10, Row: 6}, Color: types.Black},
	}, b.Moves())
}

func TestOccupiedClickIsNoop(t *testing.T) {
	b, tc := newTestController(nil)
	require.True(t, tc.Click(16))

	assert.False(t, tc.Click(16))
	assert.Equal(t, types.WaitWhite, tc.State())
	assert.Equal(t, 1, b.MoveCount())
	assert.Equal(t, types.BlackCell, b.CellAt(16))
}

func TestOutOfRangeClickIsNoop(t *testing.T) {
	b, tc := newTestController(nil)
	assert.False(t, tc.Click(225))
	assert.False(t, tc.Click(-1))
	assert.Equal(t, types.WaitBlack, tc.State())
	assert.Equal(t, 0, b.MoveCount())
}

func TestMoveCallback(t *testing.T) {
	_, tc := newTestController(nil)
	var got []types.Move
	tc.OnMove(func(m types.Move) { got = append(got, m) })

	tc.Click(16)
	tc.Click(16)
	tc.Click(17)

	assert.Equal(t, []types.Move{
		{Pos: types.Pos{Col: 1, Row: 1}, Color: types.Black},
		{Pos: types.Pos{Col: 2, Row: 1}, Color: types.White},
	}, got)
}

func TestEvaluatorSeesEveryPlacement(t *testing.T) {
	var seen []types.Move
	var counts []int
	eval := EvaluatorFunc(func(b *board.Board, last types.Move) Verdict {
		seen = append(seen, last)
		counts = append(counts, b.MoveCount())
		return Verdict{Outcome: Ongoing}
	})
	_, tc := newTestController(eval)

	tc.Click(30)
	tc.Click(30) // occupied, not evaluated
	tc.Click(31)

	assert.Equal(t, []types.Move{
		{Pos: types.Pos{Col: 0, Row: 2}, Color: types.Black},
		{Pos: types.Pos{Col: 1, Row: 2}, Color: types.White},
	}, seen)
	assert.Equal(t, []int{1, 2}, counts)
}

func TestDecidedGameDropsClicks(t *testing.T) {
	// Decide the game on the third placement.
	eval := EvaluatorFunc(func(b *board.Board, last types.Move) Verdict {
		if b.MoveCount() == 3 {
			return Verdict{Outcome: Win, Winner: last.Color}
		}
		return Verdict{Outcome: Ongoing}
	})
	b, tc := newTestController(eval)
	var ended []Verdict
	tc.OnGameEnd(func(v Verdict) { ended = append(ended, v) })

	require.True(t, tc.Click(1))
	require.True(t, tc.Click(2))
	require.True(t, tc.Click(3))

	assert.True(t, tc.Finished())
	assert.Equal(t, types.CheckBlack, tc.State())
	assert.Equal(t, Verdict{Outcome: Win, Winner: types.Black}, tc.Verdict())
	assert.Equal(t, []Verdict{{Outcome: Win, Winner: types.Black}}, ended)
	assert.Equal(t, "Black wins", tc.Verdict().String())

	assert.False(t, tc.Click(4))
	assert.Equal(t, 3, b.MoveCount())
	assert.Equal(t, types.CheckBlack, tc.State())
}

func TestDrawVerdict(t *testing.T) {
	eval := EvaluatorFunc(func(*board.Board, types.Move) Verdict {
		return Verdict{Outcome: Draw}
	})
	_, tc := newTestController(eval)
	require.True(t, tc.Click(50))
	assert.True(t, tc.Finished())
	assert.Equal(t, "Draw", tc.Verdict().String())
	assert.Equal(t, types.CheckBlack, tc.State())
	assert.Equal(t, types.Black, tc.ToMove())
}

func TestResetAndRewind(t *testing.T) {
	eval := EvaluatorFunc(func(*board.Board, types.Move) Verdict {
		return Verdict{Outcome: Win, Winner: types.Black}
	})
	_, tc := newTestController(eval)
	tc.Click(10)
	require.True(t, tc.Finished())

	tc.Rewind(types.Black)
	assert.False(t, tc.Finished())
	assert.Equal(t, types.WaitBlack, tc.State())

	tc.Rewind(types.White)
	assert.Equal(t, types.WaitWhite, tc.State())
	assert.Equal(t, types.White, tc.ToMove())

	tc.Reset()
	assert.Equal(t, types.WaitBlack, tc.State())
	assert.Equal(t, Verdict{}, tc.Verdict())
}

func TestGameConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.HitTolerance = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.HitTolerance = 1.5
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Geometry.CellSize = -1
	assert.Error(t, cfg.Validate())
}

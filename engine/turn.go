package engine

import (
	"gomoku-local/board"
	"gomoku-local/logging"
	"gomoku-local/types"
)

// TurnController alternates Black and White placements on a board.
//
// A placement moves the controller from WaitX to CheckX, where the evaluator runs. An
// ongoing game collapses immediately to the opposite Wait state; a decided game stays in
// CheckX and drops every further click until Reset or Rewind.
type TurnController struct {
	board   *board.Board
	eval    Evaluator
	state   types.TurnState
	verdict Verdict

	moveCallback func(m types.Move)
	endCallback  func(v Verdict)
}

// NewTurnController creates a controller awaiting Black. A nil evaluator means
// NoEvaluation.
func NewTurnController(b *board.Board, eval Evaluator) *TurnController {
	if eval == nil {
		eval = NoEvaluation
	}
	return &TurnController{
		board: b,
		eval:  eval,
		state: types.WaitBlack,
	}
}

// OnMove registers a callback for every accepted placement. It runs after the
// placement has been evaluated.
func (t *TurnController) OnMove(fn func(m types.Move)) {
	t.moveCallback = fn
}

// OnGameEnd registers a callback for when the evaluator decides the game.
func (t *TurnController) OnGameEnd(fn func(v Verdict)) {
	t.endCallback = fn
}

// State returns the current turn state.
func (t *TurnController) State() types.TurnState {
	return t.state
}

// ToMove returns the color whose move is awaited, or the color that just moved while
// the controller is in a Check state.
func (t *TurnController) ToMove() types.Color {
	switch t.state {
	case types.WaitWhite, types.CheckWhite:
		return types.White
	}
	return types.Black
}

// Finished reports whether the evaluator has decided the game.
func (t *TurnController) Finished() bool {
	return t.verdict.Outcome != Ongoing
}

// Verdict returns the latest evaluation.
func (t *TurnController) Verdict() Verdict {
	return t.verdict
}

// Click handles a click resolved to a board index. It returns true when a chess was
// placed. Occupied or off-board indices and clicks outside a Wait state are ignored.
func (t *TurnController) Click(index int) bool {
	logging.Debugf("Click: index=%d state=%s", index, t.state)

	var color types.Color
	var check types.TurnState
	switch t.state {
	case types.WaitBlack:
		color, check = types.Black, types.CheckBlack
	case types.WaitWhite:
		color, check = types.White, types.CheckWhite
	default:
		return false
	}

	if !t.board.IsEmptyAt(index) {
		return false
	}
	if err := t.board.PutChess(index, color); err != nil {
		logging.Debugf("Click: put chess failed: %v", err)
		return false
	}
	logging.Debugf("Click: put %s chess at %d", color, index)

	t.state = check
	last, _ := t.board.LastMove()
	t.check(last)
	if t.moveCallback != nil {
		t.moveCallback(last)
	}
	return true
}

// check evaluates the board in a Check state and moves on to the next Wait state while
// the game is undecided.
func (t *TurnController) check(last types.Move) {
	t.verdict = t.eval.Evaluate(t.board, last)
	if t.verdict.Outcome != Ongoing {
		logging.Debugf("check: game decided: %s", t.verdict)
		if t.endCallback != nil {
			t.endCallback(t.verdict)
		}
		return
	}
	switch t.state {
	case types.CheckBlack:
		t.state = types.WaitWhite
	case types.CheckWhite:
		t.state = types.WaitBlack
	}
}

// Reset returns the controller to its initial state. The board is not touched.
func (t *TurnController) Reset() {
	t.state = types.WaitBlack
	t.verdict = Verdict{}
}

// Rewind makes the controller await c, clearing any verdict. Used after an undo.
func (t *TurnController) Rewind(c types.Color) {
	t.verdict = Verdict{}
	if c == types.White {
		t.state = types.WaitWhite
		return
	}
	t.state = types.WaitBlack
}

// Package game ties a board and its turn controller into one explicitly owned session.
package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"gomoku-local/board"
	"gomoku-local/engine"
	"gomoku-local/logging"
	"gomoku-local/sgf"
	"gomoku-local/types"
)

// Session is a single game: one board and the controller that alternates turns on it.
// It is not safe for concurrent use; input events are handled one at a time.
type Session struct {
	ID        uuid.UUID
	Board     *board.Board
	Turn      *engine.TurnController
	tolerance float64
	started   time.Time
}

// NewSession creates a session with an empty board awaiting Black.
func NewSession(cfg engine.GameConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := board.New(cfg.Geometry)
	s := &Session{
		ID:        uuid.New(),
		Board:     b,
		Turn:      engine.NewTurnController(b, cfg.Evaluator),
		tolerance: cfg.HitTolerance,
		started:   time.Now(),
	}
	logging.Debugf("NewSession: %s, %dx%d, tolerance %g", s.ID, cfg.Geometry.CellsPerRow, cfg.Geometry.CellsPerRow, cfg.HitTolerance)
	return s, nil
}

// Tolerance returns the hit-test tolerance scale.
func (s *Session) Tolerance() float64 {
	return s.tolerance
}

// Hover resolves a surface position to an intersection without changing anything.
// Renderers use it to decide whether a press at (x, y) could land.
func (s *Session) Hover(x, y float64) (types.Pos, bool) {
	return s.Board.GridPos(x, y, s.tolerance)
}

// Press handles a pointer press at surface position (x, y). It returns true when a
// chess was placed.
func (s *Session) Press(x, y float64) bool {
	pos, ok := s.Hover(x, y)
	if !ok {
		logging.Debugf("Press: (%.1f, %.1f) misses every intersection", x, y)
		return false
	}
	index := s.Board.PosToIndex(pos)
	logging.Debugf("Press: (%.1f, %.1f) -> %v, index %d", x, y, pos, index)
	return s.Turn.Click(index)
}

// PlayIndex places the next chess at index, bypassing the hit test.
func (s *Session) PlayIndex(index int) bool {
	return s.Turn.Click(index)
}

// Undo removes the last move and gives the turn back to its player.
func (s *Session) Undo() error {
	m, err := s.Board.RemoveLastChess()
	if err != nil {
		return fmt.Errorf("undo: %w", err)
	}
	s.Turn.Rewind(m.Color)
	logging.Debugf("Undo: removed %s at %v", m.Color, m.Pos)
	return nil
}

// Clear empties the board and returns the controller to WaitBlack.
func (s *Session) Clear() {
	s.Board.Clear()
	s.Turn.Reset()
	s.started = time.Now()
	logging.Debugf("Clear: session %s reset", s.ID)
}

// Replay plays moves in order through the controller. Each move must match the color
// whose turn it is and land on an empty intersection.
func (s *Session) Replay(moves []types.Move) error {
	n := s.Board.CellsPerRow()
	for i, m := range moves {
		if m.Pos.Col < 0 || m.Pos.Row < 0 || m.Pos.Col >= n || m.Pos.Row >= n {
			return fmt.Errorf("replay move %d: %v: %w", i+1, m.Pos, board.ErrOutOfRange)
		}
		if !s.Turn.State().Waiting() {
			return fmt.Errorf("replay move %d: game already decided (%s)", i+1, s.Turn.Verdict())
		}
		if m.Color != s.Turn.ToMove() {
			return fmt.Errorf("replay move %d: %s to move, got %s", i+1, s.Turn.ToMove(), m.Color)
		}
		if !s.Turn.Click(s.Board.PosToIndex(m.Pos)) {
			return fmt.Errorf("replay move %d: %v: %w", i+1, m.Pos, board.ErrOccupied)
		}
	}
	return nil
}

// Record renders the session's moves as an SGF record.
func (s *Session) Record() string {
	rec := sgf.NewGameRecord(s.Board.CellsPerRow(), s.started)
	for _, m := range s.Board.Moves() {
		rec.AddMove(m)
	}
	if s.Turn.Finished() {
		rec.SetResult(s.Turn.Verdict().String())
	}
	return rec.String()
}

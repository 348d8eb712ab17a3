// Package engine drives turn order for a local two-player game and defines the hook
// where a game verdict is evaluated after each placement.
package engine

import (
	"fmt"

	"gomoku-local/board"
	"gomoku-local/types"
)

// Outcome is the state of a game after a move.
type Outcome int

const (
	Ongoing Outcome = iota
	Win
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Win:
		return "win"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Verdict is an Evaluator's judgement. Winner is only set for Win.
type Verdict struct {
	Outcome Outcome
	Winner  types.Color
}

func (v Verdict) String() string {
	switch v.Outcome {
	case Win:
		return fmt.Sprintf("%s wins", v.Winner)
	case Draw:
		return "Draw"
	}
	return "Game in progress"
}

// Evaluator judges the board after a placement.
type Evaluator interface {
	// Evaluate is called once per successful placement with the move just made.
	Evaluate(b *board.Board, last types.Move) Verdict
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(b *board.Board, last types.Move) Verdict

func (f EvaluatorFunc) Evaluate(b *board.Board, last types.Move) Verdict {
	return f(b, last)
}

// NoEvaluation never ends the game.
var NoEvaluation Evaluator = EvaluatorFunc(func(*board.Board, types.Move) Verdict {
	return Verdict{Outcome: Ongoing}
})

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Geometry     board.Geometry
	HitTolerance float64   // hit-test disc diameter, in cell widths
	Evaluator    Evaluator // nil means NoEvaluation
}

// DefaultConfig returns the standard 15x15 configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Geometry:     board.DefaultGeometry(),
		HitTolerance: 0.6,
	}
}

// Validate checks the configuration before a session is built from it.
func (c GameConfig) Validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return fmt.Errorf("invalid geometry: %w", err)
	}
	if c.HitTolerance <= 0 || c.HitTolerance > 1 {
		return fmt.Errorf("hit tolerance must be in (0, 1], got %g", c.HitTolerance)
	}
	return nil
}

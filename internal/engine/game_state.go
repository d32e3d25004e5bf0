package engine

import (
	"github.com/lgbarn/pawnchess-go/internal/chess"
	"github.com/lgbarn/pawnchess-go/internal/errors"
)

// GameState is everything the rules need to judge the next move.
type GameState struct {
	Board chess.Board

	// LastMove is the previous successfully applied move, or nil before the
	// first move. It is consulted only for en passant on the very next turn.
	LastMove *chess.Move

	ActiveColour chess.Colour
}

// NewGameState returns the starting position with White to move.
func NewGameState() GameState {
	return GameState{
		Board:        chess.NewInitialBoard(),
		ActiveColour: chess.White,
	}
}

// Outcome describes a successfully applied move.
type Outcome struct {
	Move     chess.Move
	Mover    chess.Colour
	Rule     Rule
	Terminal Terminal
}

// Attempt applies move for the side to move in state and returns the
// resulting state. The input state is never modified.
//
// A rejected move returns state unchanged together with a *errors.MoveError
// wrapping errors.ErrNoPawnAtSource or errors.ErrIllegalMove. An applied
// move flips ActiveColour and records move as LastMove; the Outcome's
// Terminal reports whether the game ended.
func Attempt(state GameState, move chess.Move) (GameState, Outcome, error) {
	mover := state.ActiveColour

	if !move.InBounds() {
		return state, Outcome{}, reject(errors.ErrIllegalMove, mover, move)
	}
	if state.Board.Get(move.FromCol, move.FromRow) != chess.PawnOf(mover) {
		return state, Outcome{}, reject(errors.ErrNoPawnAtSource, mover, move)
	}

	rule, ok := Classify(state, move)
	if !ok {
		return state, Outcome{}, reject(errors.ErrIllegalMove, mover, move)
	}

	next := GameState{
		Board:        state.Board.Copy(),
		ActiveColour: mover.Opposite(),
	}
	applyMove(&next.Board, mover, move, rule, state.LastMove)
	last := move
	next.LastMove = &last

	return next, Outcome{
		Move:     move,
		Mover:    mover,
		Rule:     rule,
		Terminal: DetectTerminal(&next.Board, mover),
	}, nil
}

func reject(reason error, mover chess.Colour, move chess.Move) error {
	return &errors.MoveError{
		Err:      reason,
		Colour:   mover.String(),
		MoveText: move.String(),
	}
}

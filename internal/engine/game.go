package engine

import (
	"github.com/lgbarn/pawnchess-go/internal/chess"
	"github.com/lgbarn/pawnchess-go/internal/errors"
)

// Game is a single game session: it owns the state and drives the turn
// state machine WhiteToMove <-> BlackToMove -> GameOver.
type Game struct {
	state    GameState
	status   chess.WhoseMove
	terminal Terminal
	history  []chess.Move
}

// NewGame creates a game from the starting position with White to move.
func NewGame() *Game {
	return NewGameFromState(NewGameState())
}

// NewGameFromState creates a game from an arbitrary position.
// A position that is already decided starts in GameOver with its verdict.
func NewGameFromState(state GameState) *Game {
	g := &Game{
		state:  state,
		status: chess.ToMove(state.ActiveColour),
	}
	if t := DetectStartTerminal(state); t.IsTerminal() {
		g.terminal = t
		g.status = chess.GameOver
	}
	return g
}

// Play attempts move for the side to move.
// A rejected move leaves the game unchanged and returns the rejection.
// After a terminal verdict every call returns errors.ErrGameOver.
func (g *Game) Play(move chess.Move) (Outcome, error) {
	if g.status == chess.GameOver {
		return Outcome{}, errors.ErrGameOver
	}

	next, outcome, err := Attempt(g.state, move)
	if err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.Ply = g.Ply() + 1
		}
		return Outcome{}, err
	}

	g.state = next
	g.history = append(g.history, move)

	if outcome.Terminal.IsTerminal() {
		g.terminal = outcome.Terminal
		g.status = chess.GameOver
	} else {
		g.status = chess.ToMove(next.ActiveColour)
	}
	return outcome, nil
}

// Status returns the turn state.
func (g *Game) Status() chess.WhoseMove {
	return g.status
}

// ToMove returns the colour whose turn it is. Once the game is over it is
// the colour that would have moved next.
func (g *Game) ToMove() chess.Colour {
	return g.state.ActiveColour
}

// IsOver returns true once a terminal verdict has been reached.
func (g *Game) IsOver() bool {
	return g.status == chess.GameOver
}

// Terminal returns the verdict, or a zero Terminal while the game runs.
func (g *Game) Terminal() Terminal {
	return g.terminal
}

// State returns a copy of the current game state.
func (g *Game) State() GameState {
	s := g.state
	if s.LastMove != nil {
		last := *s.LastMove
		s.LastMove = &last
	}
	return s
}

// Board returns a snapshot of the board for rendering.
func (g *Game) Board() chess.Board {
	return g.state.Board.Copy()
}

// History returns the applied moves in order.
func (g *Game) History() []chess.Move {
	out := make([]chess.Move, len(g.history))
	copy(out, g.history)
	return out
}

// Ply returns the number of moves applied so far.
func (g *Game) Ply() int {
	return len(g.history)
}

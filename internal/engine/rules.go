// Package engine provides pawn move validation, board mutation and
// game-termination detection for pawns-only chess.
package engine

import (
	"github.com/lgbarn/pawnchess-go/internal/chess"
)

// Rule identifies which pawn rule made a move legal.
type Rule int

const (
	RuleNone Rule = iota
	RuleForward
	RuleDoubleStep
	RuleCapture
	RuleEnPassant
)

// String returns the string representation of a rule.
func (r Rule) String() string {
	names := []string{"None", "Forward", "DoubleStep", "Capture", "EnPassant"}
	if r >= 0 && int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// IsCapture returns true if the rule removes an opposing pawn.
func (r Rule) IsCapture() bool {
	return r == RuleCapture || r == RuleEnPassant
}

// rulePredicate reports whether a move by mover is legal under one rule.
type rulePredicate func(board *chess.Board, mover chess.Colour, move chess.Move, last *chess.Move) bool

// ruleOrder lists the rules in evaluation priority. En passant is only
// reached when no ordinary advance or capture applies.
var ruleOrder = []struct {
	rule  Rule
	legal rulePredicate
}{
	{RuleForward, func(b *chess.Board, c chess.Colour, m chess.Move, _ *chess.Move) bool { return IsForward(b, c, m) }},
	{RuleDoubleStep, func(b *chess.Board, c chess.Colour, m chess.Move, _ *chess.Move) bool { return IsDoubleStep(b, c, m) }},
	{RuleCapture, func(b *chess.Board, c chess.Colour, m chess.Move, _ *chess.Move) bool { return IsCapture(b, c, m) }},
	{RuleEnPassant, IsEnPassant},
}

// Classify returns the rule under which move is legal for the side to move
// in state, or RuleNone and false if no rule permits it.
// It does not check that the source square holds a pawn of the mover.
func Classify(state GameState, move chess.Move) (Rule, bool) {
	if !move.InBounds() {
		return RuleNone, false
	}
	for _, r := range ruleOrder {
		if r.legal(&state.Board, state.ActiveColour, move, state.LastMove) {
			return r.rule, true
		}
	}
	return RuleNone, false
}

// IsForward reports whether move is a one-row advance onto an empty square.
func IsForward(board *chess.Board, mover chess.Colour, move chess.Move) bool {
	return move.FromCol == move.ToCol &&
		move.RowDelta() == chess.Direction(mover) &&
		chess.InBounds(move.ToCol, move.ToRow) &&
		board.Get(move.ToCol, move.ToRow) == chess.Empty
}

// IsDoubleStep reports whether move is a two-row advance from the home row
// with both the intervening and destination squares empty.
func IsDoubleStep(board *chess.Board, mover chess.Colour, move chess.Move) bool {
	dir := chess.Direction(mover)
	return move.FromCol == move.ToCol &&
		move.FromRow == chess.HomeRow(mover) &&
		move.RowDelta() == 2*dir &&
		board.Get(move.ToCol, move.FromRow+dir) == chess.Empty &&
		board.Get(move.ToCol, move.ToRow) == chess.Empty
}

// IsCapture reports whether move is a diagonal capture of an opposing pawn.
func IsCapture(board *chess.Board, mover chess.Colour, move chess.Move) bool {
	return chess.InBounds(move.ToCol, move.ToRow) &&
		board.Get(move.ToCol, move.ToRow) == chess.PawnOf(mover.Opposite()) &&
		move.RowDelta() == chess.Direction(mover) &&
		move.ColDistance() == 1
}

// IsEnPassant reports whether move captures en passant the pawn that made
// the last move. last must be the immediately preceding move; nil means
// no move has been played yet.
func IsEnPassant(board *chess.Board, mover chess.Colour, move chess.Move, last *chess.Move) bool {
	if last == nil {
		return false
	}
	opponent := mover.Opposite()
	oppDir := chess.Direction(opponent)
	return last.FromRow == chess.HomeRow(opponent) &&
		last.ToRow == last.FromRow+2*oppDir &&
		board.Get(last.ToCol, last.ToRow) == chess.PawnOf(opponent) &&
		move.FromRow == last.ToRow &&
		move.RowDelta() == chess.Direction(mover) &&
		move.ToCol == last.ToCol &&
		move.ColDistance() == 1 &&
		board.Get(move.ToCol, move.ToRow) == chess.Empty
}

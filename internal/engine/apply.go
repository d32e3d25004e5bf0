package engine

import "github.com/lgbarn/pawnchess-go/internal/chess"

// applyMove moves the mover's pawn and, for en passant, removes the pawn
// that made the last move. It is the only place a board is mutated.
func applyMove(board *chess.Board, mover chess.Colour, move chess.Move, rule Rule, last *chess.Move) {
	if rule == RuleEnPassant && last != nil {
		// The captured pawn stands beside the mover, not on the destination.
		board.Set(last.ToCol, last.ToRow, chess.Empty)
	}
	board.Set(move.FromCol, move.FromRow, chess.Empty)
	board.Set(move.ToCol, move.ToRow, chess.PawnOf(mover))
}

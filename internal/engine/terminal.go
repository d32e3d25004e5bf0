package engine

import "github.com/lgbarn/pawnchess-go/internal/chess"

// TerminalKind classifies how a game ended.
type TerminalKind int

const (
	NotTerminal TerminalKind = iota
	Win
	Stalemate
)

// WinReason records which win condition was met.
type WinReason int

const (
	NoWinReason WinReason = iota
	WinGoalRank
	WinElimination
)

// String returns the string representation of a win reason.
func (r WinReason) String() string {
	switch r {
	case WinGoalRank:
		return "goal rank"
	case WinElimination:
		return "elimination"
	default:
		return "none"
	}
}

// Terminal is the verdict of DetectTerminal.
type Terminal struct {
	Kind   TerminalKind
	Winner chess.Colour // Only meaningful when Kind is Win
	Reason WinReason
}

// IsTerminal returns true if the game has ended.
func (t Terminal) IsTerminal() bool {
	return t.Kind != NotTerminal
}

// String returns the announcement for the verdict.
func (t Terminal) String() string {
	switch t.Kind {
	case Win:
		return t.Winner.String() + " Wins!"
	case Stalemate:
		return "Stalemate!"
	default:
		return ""
	}
}

// DetectTerminal decides whether the game ends after mover has moved.
// Win conditions are checked before stalemate, and only the side that would
// move next is examined for stalemate.
func DetectTerminal(board *chess.Board, mover chess.Colour) Terminal {
	opponent := mover.Opposite()

	if board.RowHas(chess.GoalRow(mover), mover) {
		return Terminal{Kind: Win, Winner: mover, Reason: WinGoalRank}
	}
	if board.Count(opponent) == 0 {
		return Terminal{Kind: Win, Winner: mover, Reason: WinElimination}
	}
	if !hasAnyEscape(board, opponent) {
		return Terminal{Kind: Stalemate}
	}
	return Terminal{}
}

// DetectStartTerminal judges a set-up position before any move is played.
// Either side may already stand on its goal row or have lost every pawn, so
// both are examined; the side to move is then checked for stalemate.
func DetectStartTerminal(state GameState) Terminal {
	board := &state.Board
	active := state.ActiveColour
	last := active.Opposite()

	for _, c := range [2]chess.Colour{last, active} {
		if board.RowHas(chess.GoalRow(c), c) {
			return Terminal{Kind: Win, Winner: c, Reason: WinGoalRank}
		}
	}
	if board.Count(chess.White) == 0 && board.Count(chess.Black) == 0 {
		return Terminal{Kind: Stalemate}
	}
	for _, c := range [2]chess.Colour{last, active} {
		if board.Count(c.Opposite()) == 0 {
			return Terminal{Kind: Win, Winner: c, Reason: WinElimination}
		}
	}
	if !hasAnyEscape(board, active) {
		return Terminal{Kind: Stalemate}
	}
	return Terminal{}
}

// hasAnyEscape reports whether any pawn of colour can advance one row or
// capture diagonally. En passant is not considered.
func hasAnyEscape(board *chess.Board, colour chess.Colour) bool {
	pawn := chess.PawnOf(colour)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Get(col, row) == pawn && hasEscape(board, colour, col, row) {
				return true
			}
		}
	}
	return false
}

// hasEscape reports whether the pawn of colour at (col, row) has a reply.
// A pawn already on its goal row has none.
func hasEscape(board *chess.Board, colour chess.Colour, col, row int) bool {
	if row == chess.GoalRow(colour) {
		return false
	}
	ahead := row + chess.Direction(colour)
	if IsForward(board, colour, chess.NewMove(col, row, col, ahead)) {
		return true
	}
	for _, dc := range [2]int{-1, 1} {
		if IsCapture(board, colour, chess.NewMove(col, row, col+dc, ahead)) {
			return true
		}
	}
	return false
}

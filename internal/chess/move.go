package chess

import (
	"strings"

	"github.com/lgbarn/pawnchess-go/internal/errors"
)

// Move is a source-destination pair in board coordinates.
type Move struct {
	FromCol int
	FromRow int
	ToCol   int
	ToRow   int
}

// MoveLen is the length of a move in long algebraic notation ("e2e4").
const MoveLen = 4

// NewMove creates a move from board coordinates.
func NewMove(fromCol, fromRow, toCol, toRow int) Move {
	return Move{FromCol: fromCol, FromRow: fromRow, ToCol: toCol, ToRow: toRow}
}

// ParseMove parses long algebraic move text such as "e2e4".
// The text must match [a-h][1-8][a-h][1-8]; letters are case-insensitive.
func ParseMove(text string) (Move, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) != MoveLen {
		return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
	}

	fromCol, fromRow, ok := parseSquare(s[0], s[1])
	if !ok {
		return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
	}
	toCol, toRow, ok := parseSquare(s[2], s[3])
	if !ok {
		return Move{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
	}

	return NewMove(fromCol, fromRow, toCol, toRow), nil
}

// parseSquare converts a file letter and rank digit to board indices.
func parseSquare(file, rank byte) (col, row int, ok bool) {
	if file < ColBase || file > LastCol || rank < RankBase || rank > LastRank {
		return 0, 0, false
	}
	return int(file - ColBase), int(rank - RankBase), true
}

// SquareName returns the algebraic name of a square, e.g. "e4".
func SquareName(col, row int) string {
	if !InBounds(col, row) {
		return "??"
	}
	return string([]byte{ColLetter(col), RankDigit(row)})
}

// From returns the algebraic name of the source square.
func (m Move) From() string {
	return SquareName(m.FromCol, m.FromRow)
}

// To returns the algebraic name of the destination square.
func (m Move) To() string {
	return SquareName(m.ToCol, m.ToRow)
}

// String returns the move in long algebraic notation.
func (m Move) String() string {
	return m.From() + m.To()
}

// InBounds reports whether all four coordinates lie on the board.
func (m Move) InBounds() bool {
	return InBounds(m.FromCol, m.FromRow) && InBounds(m.ToCol, m.ToRow)
}

// RowDelta returns the signed row distance of the move.
func (m Move) RowDelta() int {
	return m.ToRow - m.FromRow
}

// ColDistance returns the absolute column distance of the move.
func (m Move) ColDistance() int {
	d := m.ToCol - m.FromCol
	if d < 0 {
		return -d
	}
	return d
}

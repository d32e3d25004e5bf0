// Package chess provides the core types of the pawns-only variant.
package chess

// Colour represents the colour of a pawn or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (the row step of a pawn advance).
func Direction(c Colour) int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRow returns the row the colour's pawns start on.
func HomeRow(c Colour) int {
	return homeRows[c]
}

// GoalRow returns the row the colour's pawns must reach to win.
func GoalRow(c Colour) int {
	return goalRows[c]
}

var (
	homeRows = [2]int{White: 1, Black: BoardSize - 2}
	goalRows = [2]int{White: BoardSize - 1, Black: 0}
)

// Square is the content of a single board square.
type Square int

const (
	Empty Square = iota
	WhitePawn
	BlackPawn
)

// PawnOf returns the square value holding a pawn of the given colour.
func PawnOf(c Colour) Square {
	if c == White {
		return WhitePawn
	}
	return BlackPawn
}

// IsPawn reports whether the square holds a pawn of either colour.
func (s Square) IsPawn() bool {
	return s == WhitePawn || s == BlackPawn
}

// Colour returns the colour of the pawn on the square.
// The result is meaningless for Empty; check IsPawn first.
func (s Square) Colour() Colour {
	if s == BlackPawn {
		return Black
	}
	return White
}

// Symbol returns the single character used when rendering the square.
func (s Square) Symbol() byte {
	switch s {
	case WhitePawn:
		return 'W'
	case BlackPawn:
		return 'B'
	default:
		return ' '
	}
}

// String returns the string representation of a square.
func (s Square) String() string {
	switch s {
	case WhitePawn:
		return "WhitePawn"
	case BlackPawn:
		return "BlackPawn"
	default:
		return "Empty"
	}
}

// WhoseMove is the turn state of a game.
type WhoseMove int

const (
	WhiteToMove WhoseMove = iota
	BlackToMove
	GameOver
)

// String returns the string representation of a turn state.
func (w WhoseMove) String() string {
	switch w {
	case WhiteToMove:
		return "WhiteToMove"
	case BlackToMove:
		return "BlackToMove"
	default:
		return "GameOver"
	}
}

// ToMove returns the turn state in which the given colour moves.
func ToMove(c Colour) WhoseMove {
	if c == White {
		return WhiteToMove
	}
	return BlackToMove
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
	LastRank = RankBase + BoardSize - 1
	LastCol  = ColBase + BoardSize - 1
)

// ColLetter converts a column index to its file letter.
func ColLetter(col int) byte {
	return byte(ColBase + col)
}

// RankDigit converts a row index to its rank digit.
func RankDigit(row int) byte {
	return byte(RankBase + row)
}

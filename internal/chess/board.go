package chess

// Board is the 8x8 grid of squares, indexed [row][col].
// Row 0 is White's side of the board, column 0 is the a-file.
type Board struct {
	Squares [BoardSize][BoardSize]Square
}

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// NewInitialBoard creates a board with the pawns-only starting position:
// row 1 all White, row 6 all Black.
func NewInitialBoard() Board {
	b := NewBoard()
	for col := 0; col < BoardSize; col++ {
		b.Squares[HomeRow(White)][col] = WhitePawn
		b.Squares[HomeRow(Black)][col] = BlackPawn
	}
	return b
}

// InBounds reports whether (col, row) is a square on the board.
func InBounds(col, row int) bool {
	return col >= 0 && col < BoardSize && row >= 0 && row < BoardSize
}

// Get returns the square at (col, row). Off-board coordinates read as Empty.
func (b *Board) Get(col, row int) Square {
	if !InBounds(col, row) {
		return Empty
	}
	return b.Squares[row][col]
}

// Set places a square value at (col, row). Off-board coordinates are ignored.
func (b *Board) Set(col, row int, s Square) {
	if InBounds(col, row) {
		b.Squares[row][col] = s
	}
}

// Count returns the number of pawns of the given colour.
func (b *Board) Count(c Colour) int {
	pawn := PawnOf(c)
	n := 0
	for row := range b.Squares {
		for _, s := range b.Squares[row] {
			if s == pawn {
				n++
			}
		}
	}
	return n
}

// RowHas reports whether any square in row holds a pawn of the given colour.
func (b *Board) RowHas(row int, c Colour) bool {
	if row < 0 || row >= BoardSize {
		return false
	}
	pawn := PawnOf(c)
	for _, s := range b.Squares[row] {
		if s == pawn {
			return true
		}
	}
	return false
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() Board {
	return *b
}

package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/pawnchess-go/internal/chess"
)

// BoardFromDiagram builds a board from eight rows of eight characters,
// rank 8 first. 'W' is a White pawn, 'B' a Black pawn, '.' or ' ' empty.
func BoardFromDiagram(t testing.TB, rows ...string) chess.Board {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("diagram has %d rows, want %d", len(rows), chess.BoardSize)
	}

	b := chess.NewBoard()
	for i, line := range rows {
		if len(line) != chess.BoardSize {
			t.Fatalf("diagram row %d = %q, want %d squares", i, line, chess.BoardSize)
		}
		row := chess.BoardSize - 1 - i
		for col := 0; col < chess.BoardSize; col++ {
			switch line[col] {
			case 'W':
				b.Set(col, row, chess.WhitePawn)
			case 'B':
				b.Set(col, row, chess.BlackPawn)
			case '.', ' ':
			default:
				t.Fatalf("diagram row %d has invalid square %q", i, line[col])
			}
		}
	}
	return b
}

// Diagram renders a board in the BoardFromDiagram format, joined by newlines.
func Diagram(b chess.Board) string {
	rows := make([]string, 0, chess.BoardSize)
	for row := chess.BoardSize - 1; row >= 0; row-- {
		var sb strings.Builder
		for col := 0; col < chess.BoardSize; col++ {
			switch b.Get(col, row) {
			case chess.WhitePawn:
				sb.WriteByte('W')
			case chess.BlackPawn:
				sb.WriteByte('B')
			default:
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

// AssertBoard compares two boards and reports a diagram diff on mismatch.
func AssertBoard(t testing.TB, got, want chess.Board) {
	t.Helper()
	if diff := cmp.Diff(Diagram(want), Diagram(got)); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

// AssertSquare fails unless the named square (e.g. "e4") holds want.
func AssertSquare(t testing.TB, b chess.Board, name string, want chess.Square) {
	t.Helper()
	if len(name) != 2 {
		t.Fatalf("bad square name %q", name)
	}
	col := int(name[0] - chess.ColBase)
	row := int(name[1] - chess.RankBase)
	if got := b.Get(col, row); got != want {
		t.Errorf("square %s = %v, want %v", name, got, want)
	}
}

// MustMove parses long algebraic move text, failing the test on error.
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

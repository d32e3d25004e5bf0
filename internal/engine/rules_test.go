package engine

import (
	"testing"

	"github.com/lgbarn/pawnchess-go/internal/chess"
	"github.com/lgbarn/pawnchess-go/internal/testutil"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		position string
		move     string
		want     Rule
		wantOK   bool
	}{
		// Forward and double step
		{"white single step", InitialPosition, "e2e3", RuleForward, true},
		{"white double step", InitialPosition, "e2e4", RuleDoubleStep, true},
		{"black single step", "8/pppppppp/8/8/8/8/PPPPPPPP/8 b -", "e7e6", RuleForward, true},
		{"black double step", "8/pppppppp/8/8/8/8/PPPPPPPP/8 b -", "e7e5", RuleDoubleStep, true},
		{"single step off home row", "8/7p/8/8/4P3/8/8/8 w -", "e4e5", RuleForward, true},
		{"double step off home row", "8/7p/8/8/8/4P3/8/8 w -", "e3e5", RuleNone, false},
		{"triple step", InitialPosition, "e2e5", RuleNone, false},
		{"double step through pawn", "8/7p/8/8/8/4p3/4P3/8 w -", "e2e4", RuleNone, false},
		{"double step onto pawn", "8/7p/8/8/4p3/8/4P3/8 w -", "e2e4", RuleNone, false},
		{"straight onto opponent", "8/7p/8/4p3/4P3/8/8/8 w -", "e4e5", RuleNone, false},
		{"black straight onto opponent", "8/7p/8/4p3/4P3/8/8/8 b -", "e5e4", RuleNone, false},

		// Direction
		{"white backward", "8/7p/8/8/4P3/8/8/8 w -", "e4e3", RuleNone, false},
		{"black backward", "8/8/8/4p3/8/8/7P/8 b -", "e5e6", RuleNone, false},
		{"black moving up the board", "8/pppppppp/8/8/8/8/PPPPPPPP/8 b -", "e7e8", RuleNone, false},
		{"sideways", InitialPosition, "e2d2", RuleNone, false},
		{"zero-length", InitialPosition, "e2e2", RuleNone, false},

		// Captures
		{"white captures left", "8/7p/8/3p4/4P3/8/8/8 w -", "e4d5", RuleCapture, true},
		{"white captures right", "8/7p/8/5p2/4P3/8/8/8 w -", "e4f5", RuleCapture, true},
		{"black captures", "8/8/8/3p4/4P3/8/7P/8 b -", "d5e4", RuleCapture, true},
		{"diagonal onto empty square", "8/7p/8/8/4P3/8/8/8 w -", "e4d5", RuleNone, false},
		{"diagonal onto own pawn", "8/7p/8/3P4/4P3/8/8/8 w -", "e4d5", RuleNone, false},
		{"backward capture", "8/7p/8/8/4P3/3p4/8/8 w -", "e4d3", RuleNone, false},
		{"capture two columns away", "8/7p/8/2p5/4P3/8/8/8 w -", "e4c5", RuleNone, false},

		// En passant
		{"white en passant", "8/7p/8/3pP3/8/8/8/8 w d7d5", "e5d6", RuleEnPassant, true},
		{"black en passant", "8/8/8/8/3pP3/8/7P/8 b e2e4", "d4e3", RuleEnPassant, true},
		{"en passant after single step", "8/7p/8/3pP3/8/8/8/8 w d6d5", "e5d6", RuleNone, false},
		{"en passant without last move", "8/7p/8/3pP3/8/8/8/8 w -", "e5d6", RuleNone, false},
		{"en passant wrong column", "8/7p/8/3pP3/8/8/8/8 w d7d5", "e5f6", RuleNone, false},
		{"en passant last move elsewhere", "8/7p/8/3pP3/8/8/8/8 w h7h5", "e5d6", RuleNone, false},

		// Bounds
		{"off the board", InitialPosition, "", RuleNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := MustParsePosition(tt.position)
			move := chess.NewMove(-1, 1, 4, 3)
			if tt.move != "" {
				move = testutil.MustMove(t, tt.move)
			}

			got, ok := Classify(state, move)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Classify(%s) = %v, %v; want %v, %v", tt.move, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRulePredicates_Exclusive(t *testing.T) {
	// Every legal move from these positions matches exactly one rule.
	positions := []string{
		InitialPosition,
		"8/7p/8/3pP3/8/8/8/8 w d7d5",
		"8/8/8/8/3pP3/8/7P/8 b e2e4",
		"8/7p/8/3p1p2/4P3/8/8/8 w -",
	}

	for _, pos := range positions {
		state := MustParsePosition(pos)
		b := &state.Board
		c := state.ActiveColour
		for fromRow := 0; fromRow < chess.BoardSize; fromRow++ {
			for fromCol := 0; fromCol < chess.BoardSize; fromCol++ {
				for toRow := 0; toRow < chess.BoardSize; toRow++ {
					for toCol := 0; toCol < chess.BoardSize; toCol++ {
						m := chess.NewMove(fromCol, fromRow, toCol, toRow)
						n := 0
						for _, legal := range []bool{
							IsForward(b, c, m),
							IsDoubleStep(b, c, m),
							IsCapture(b, c, m),
							IsEnPassant(b, c, m, state.LastMove),
						} {
							if legal {
								n++
							}
						}
						if n > 1 {
							t.Errorf("%s: move %s matches %d rules", pos, m, n)
						}
					}
				}
			}
		}
	}
}

func TestRuleString(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{RuleNone, "None"},
		{RuleForward, "Forward"},
		{RuleDoubleStep, "DoubleStep"},
		{RuleCapture, "Capture"},
		{RuleEnPassant, "EnPassant"},
		{Rule(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.rule.String(); got != tt.want {
			t.Errorf("Rule(%d).String() = %q, want %q", tt.rule, got, tt.want)
		}
	}
	if !RuleEnPassant.IsCapture() || !RuleCapture.IsCapture() || RuleForward.IsCapture() {
		t.Error("IsCapture() misclassifies rules")
	}
}

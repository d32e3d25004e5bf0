package engine

import (
	"strings"

	"github.com/lgbarn/pawnchess-go/internal/chess"
	"github.com/lgbarn/pawnchess-go/internal/errors"
)

// InitialPosition is the position string for the pawns-only starting position.
const InitialPosition = "8/pppppppp/8/8/8/8/PPPPPPPP/8 w -"

// ParsePosition creates a game state from a FEN-like position string.
//
// The string has up to three space-separated fields: the pawn placement
// (rank 8 first, 'P' White, 'p' Black, digits for runs of empty squares),
// the side to move ('w' or 'b', default White) and the last move in long
// algebraic notation ('-' or absent for none). The last move lets a set-up
// position allow an en passant reply.
func ParsePosition(pos string) (GameState, error) {
	parts := strings.Fields(pos)
	if len(parts) < 1 || len(parts) > 3 {
		return GameState{}, errors.Wrapf(errors.ErrInvalidPosition, "expected 1-3 fields, got %d", len(parts))
	}

	state := GameState{ActiveColour: chess.White}

	if err := parsePlacement(&state.Board, parts[0]); err != nil {
		return GameState{}, err
	}
	if err := parseSideToMove(&state, parts); err != nil {
		return GameState{}, err
	}
	if err := parseLastMove(&state, parts); err != nil {
		return GameState{}, err
	}

	return state, nil
}

// parsePlacement parses the pawn placement field.
func parsePlacement(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidPosition, "expected %d ranks, got %d", chess.BoardSize, len(ranks))
	}

	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
				continue
			case c == 'P':
				if err := placePawn(board, col, row, chess.White); err != nil {
					return err
				}
			case c == 'p':
				if err := placePawn(board, col, row, chess.Black); err != nil {
					return err
				}
			default:
				return errors.Wrapf(errors.ErrInvalidPosition, "invalid piece character: %c", c)
			}
			col++
		}
		if col != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidPosition, "rank %c has %d squares", chess.RankDigit(row), col)
		}
	}
	return nil
}

// placePawn puts a pawn of colour on (col, row). A pawn can never stand
// behind its own home row, so White on rank 1 and Black on rank 8 are
// rejected.
func placePawn(board *chess.Board, col, row int, colour chess.Colour) error {
	if row == chess.GoalRow(colour.Opposite()) {
		return errors.Wrapf(errors.ErrInvalidPosition, "%s pawn on rank %c", strings.ToLower(colour.String()), chess.RankDigit(row))
	}
	board.Set(col, row, chess.PawnOf(colour))
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(state *GameState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		state.ActiveColour = chess.White
	case "b":
		state.ActiveColour = chess.Black
	default:
		return errors.Wrapf(errors.ErrInvalidPosition, "invalid side to move: %s", parts[1])
	}
	return nil
}

// parseLastMove parses the optional last move field.
func parseLastMove(state *GameState, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	move, err := chess.ParseMove(parts[2])
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidPosition, "last move %s", parts[2])
	}
	state.LastMove = &move
	return nil
}

// FormatPosition returns the position string for state.
func FormatPosition(state GameState) string {
	var sb strings.Builder

	for row := chess.BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			s := state.Board.Get(col, row)
			if !s.IsPawn() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			if s.Colour() == chess.White {
				sb.WriteByte('P')
			} else {
				sb.WriteByte('p')
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if state.ActiveColour == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if state.LastMove != nil {
		sb.WriteString(state.LastMove.String())
	} else {
		sb.WriteByte('-')
	}

	return sb.String()
}

// MustParsePosition is like ParsePosition but panics on error.
// It is intended for fixed positions in tests and tables.
func MustParsePosition(pos string) GameState {
	state, err := ParsePosition(pos)
	if err != nil {
		panic(err)
	}
	return state
}

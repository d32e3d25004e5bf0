// Package output renders board snapshots for the player.
package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/lgbarn/pawnchess-go/internal/chess"
	"github.com/lgbarn/pawnchess-go/internal/config"
)

// BoardWriter is the interface for writing board snapshots to output.
type BoardWriter interface {
	// WriteBoard writes a single snapshot of the board.
	WriteBoard(board chess.Board) error
}

// NewBoardWriter returns the writer for the configured board format.
func NewBoardWriter(w io.Writer, cfg *config.OutputConfig) BoardWriter {
	if cfg != nil && cfg.Format == config.JSONBoard {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter draws the board as an ASCII grid, rank 8 at the top.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text board writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteBoard writes the grid followed by the file letters.
func (tw *TextWriter) WriteBoard(board chess.Board) error {
	bw := bufio.NewWriter(tw.w)

	writeBorder(bw)
	for row := chess.BoardSize - 1; row >= 0; row-- {
		bw.WriteByte(chess.RankDigit(row))
		for col := 0; col < chess.BoardSize; col++ {
			bw.WriteString(" | ")
			bw.WriteByte(board.Get(col, row).Symbol())
		}
		bw.WriteString(" |\n")
		writeBorder(bw)
	}

	bw.WriteByte(' ')
	for col := 0; col < chess.BoardSize; col++ {
		bw.WriteString("   ")
		bw.WriteByte(chess.ColLetter(col))
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

func writeBorder(bw *bufio.Writer) {
	bw.WriteString("  +")
	for i := 0; i < chess.BoardSize; i++ {
		bw.WriteString("---+")
	}
	bw.WriteByte('\n')
}

// JSONBoard represents a board snapshot in JSON format.
type JSONBoard struct {
	Rows  []string `json:"rows"` // Rank 8 first, one symbol per file
	White int      `json:"white"`
	Black int      `json:"black"`
}

// BoardToJSON converts a board to its JSON representation.
func BoardToJSON(board chess.Board) *JSONBoard {
	jb := &JSONBoard{
		Rows:  make([]string, 0, chess.BoardSize),
		White: board.Count(chess.White),
		Black: board.Count(chess.Black),
	}
	for row := chess.BoardSize - 1; row >= 0; row-- {
		line := make([]byte, chess.BoardSize)
		for col := range line {
			line[col] = board.Get(col, row).Symbol()
		}
		jb.Rows = append(jb.Rows, string(line))
	}
	return jb
}

// JSONWriter writes each snapshot as one JSON object per line.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON board writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

// WriteBoard encodes a snapshot immediately.
func (jw *JSONWriter) WriteBoard(board chess.Board) error {
	return jw.enc.Encode(BoardToJSON(board))
}

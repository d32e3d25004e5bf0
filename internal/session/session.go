// Package session runs an interactive two-player game over a line-oriented
// reader and writer.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/pawnchess-go/internal/chess"
	"github.com/lgbarn/pawnchess-go/internal/config"
	"github.com/lgbarn/pawnchess-go/internal/engine"
	"github.com/lgbarn/pawnchess-go/internal/errors"
	"github.com/lgbarn/pawnchess-go/internal/output"
)

// Messages printed to the players.
const (
	Banner       = "Pawns-Only Chess"
	InvalidInput = "Invalid Input"
	Goodbye      = "Bye!"
	exitCommand  = "exit"
)

// Session is one game between two named players.
type Session struct {
	id     uuid.UUID
	cfg    *config.Config
	game   *engine.Game
	board  output.BoardWriter
	logger *zap.Logger

	in  *bufio.Scanner
	out io.Writer

	names [2]string // indexed by chess.Colour
}

// New creates a session from cfg. A nil logger disables logging.
// The start position is parsed here so setup errors surface before play.
func New(cfg *config.Config, logger *zap.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	state := engine.NewGameState()
	if cfg.StartPosition != "" {
		var err error
		state, err = engine.ParsePosition(cfg.StartPosition)
		if err != nil {
			return nil, err
		}
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New()

	return &Session{
		id:     id,
		cfg:    cfg,
		game:   engine.NewGameFromState(state),
		board:  output.NewBoardWriter(cfg.OutputFile, cfg.Output),
		logger: logger.With(zap.String("session_id", id.String())),
		in:     bufio.NewScanner(cfg.InputFile),
		out:    cfg.OutputFile,
		names:  [2]string{cfg.Players.White, cfg.Players.Black},
	}, nil
}

// ID returns the session identifier attached to every log entry.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Game returns the game being played.
func (s *Session) Game() *engine.Game {
	return s.game
}

// Run plays the game until it ends, a player types exit, or input runs out.
// Rejected moves are reported to the players and never end the session.
// The returned error is an I/O failure on the underlying streams.
func (s *Session) Run() error {
	if s.cfg.Output.ShowBanner {
		s.println(Banner)
	}

	if !s.readNames() {
		return s.quit("end of input")
	}

	if err := s.board.WriteBoard(s.game.Board()); err != nil {
		return err
	}
	s.logger.Info("game started",
		zap.String("white", s.names[chess.White]),
		zap.String("black", s.names[chess.Black]),
		zap.String("position", engine.FormatPosition(s.game.State())),
	)

	for !s.game.IsOver() {
		mover := s.game.ToMove()
		fmt.Fprintf(s.out, "%s's turn:\n> ", s.names[mover])

		line, ok := s.readLine()
		if !ok {
			return s.quit("end of input")
		}
		text := strings.ToLower(strings.TrimSpace(line))
		if text == exitCommand {
			return s.quit(exitCommand)
		}

		if err := s.playTurn(mover, text); err != nil {
			return err
		}
	}

	verdict := s.game.Terminal()
	s.println(verdict.String())
	s.logger.Info("game over",
		zap.String("result", verdict.String()),
		zap.Stringer("reason", verdict.Reason),
		zap.Int("ply", s.game.Ply()),
	)
	return s.quit("game over")
}

// readNames prompts for any player name not set in the configuration.
// A blank name or one already taken by the other player is asked for again.
func (s *Session) readNames() bool {
	prompts := [2]string{"First", "Second"}
	for c := chess.White; c <= chess.Black; c++ {
		for s.names[c] == "" {
			fmt.Fprintf(s.out, "%s Player's name:\n> ", prompts[c])
			name, ok := s.readLine()
			if !ok {
				return false
			}
			name = strings.TrimSpace(name)
			if name == s.names[c.Opposite()] {
				continue
			}
			s.names[c] = name
		}
	}
	return true
}

// playTurn handles one line of move text for mover.
func (s *Session) playTurn(mover chess.Colour, text string) error {
	fields := []zap.Field{
		zap.String("player", s.names[mover]),
		zap.Stringer("colour", mover),
		zap.String("move", text),
		zap.Int("ply", s.game.Ply()+1),
	}

	move, err := chess.ParseMove(text)
	if err != nil {
		s.println(InvalidInput)
		s.logger.Info("move rejected", append(fields, zap.Error(err))...)
		return nil
	}

	outcome, err := s.game.Play(move)
	if err != nil {
		s.println(rejectionMessage(err, mover, text))
		s.logger.Info("move rejected", append(fields, zap.Error(err))...)
		return nil
	}

	if err := s.board.WriteBoard(s.game.Board()); err != nil {
		return err
	}
	s.logger.Info("move applied", append(fields, zap.Stringer("rule", outcome.Rule))...)
	s.logger.Debug("position", zap.String("position", engine.FormatPosition(s.game.State())))
	return nil
}

// rejectionMessage returns the line shown to the player for a rejected move.
func rejectionMessage(err error, mover chess.Colour, text string) string {
	if errors.Is(err, errors.ErrNoPawnAtSource) {
		return fmt.Sprintf("No %s pawn at %s", strings.ToLower(mover.String()), text[:2])
	}
	return InvalidInput
}

func (s *Session) quit(reason string) error {
	s.println(Goodbye)
	s.logger.Info("session quit", zap.String("reason", reason), zap.Int("ply", s.game.Ply()))
	return s.in.Err()
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

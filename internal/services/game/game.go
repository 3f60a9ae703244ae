package game

import (
	"io"
	"log/slog"

	"github.com/mcoot/linea/internal/dependencies/clock"
	"github.com/mcoot/linea/internal/model"
	"github.com/mcoot/linea/internal/services/rules"
)

// Config holds the construction parameters of a game
type Config struct {
	Columns int
	Rows    int
	Variant rules.Variant
}

// DefaultConfig returns the classic 7x6 board with the any-direction rule
func DefaultConfig() Config {
	return Config{
		Columns: 7,
		Rows:    6,
		Variant: rules.VariantC,
	}
}

// EventHandler receives game events as they happen
type EventHandler func(model.Event)

// Game owns a board, the turn state and the win rule of a single match.
// It is not safe for concurrent use.
type Game struct {
	board     *model.Board
	strategy  rules.Strategy
	turn      model.TurnState
	lastMover model.Color
	outcome   model.Outcome
	moves     []model.Move

	clock    clock.Clock
	logger   *slog.Logger
	handlers []EventHandler
}

// New creates a game, failing if the board size or variant code is invalid
func New(cfg Config, clk clock.Clock, logger *slog.Logger) (*Game, error) {
	strategy, err := rules.New(cfg.Variant)
	if err != nil {
		return nil, err
	}
	board, err := model.NewBoard(cfg.Columns, cfg.Rows)
	if err != nil {
		return nil, err
	}

	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return &Game{
		board:     board,
		strategy:  strategy,
		turn:      model.TurnRed,
		lastMover: model.Empty,
		outcome:   model.OutcomeOngoing,
		clock:     clk,
		logger:    logger,
	}, nil
}

// Subscribe registers a handler for future events
func (g *Game) Subscribe(h EventHandler) {
	g.handlers = append(g.handlers, h)
}

// PlayRed drops a red piece and reports whether the move was accepted
func (g *Game) PlayRed(column int) bool {
	return g.Play(model.Red, column) == nil
}

// PlayBlue drops a blue piece and reports whether the move was accepted
func (g *Game) PlayBlue(column int) bool {
	return g.Play(model.Blue, column) == nil
}

// Play drops a piece of the given color. A rejected move leaves the game untouched.
func (g *Game) Play(color model.Color, column int) error {
	if err := g.validateMove(color); err != nil {
		g.reject(color, column, err)
		return err
	}

	row, err := g.board.Drop(column, color)
	if err != nil {
		g.reject(color, column, err)
		return err
	}

	move := model.Move{
		Number:   len(g.moves) + 1,
		Color:    color,
		Column:   column,
		Row:      row,
		PlayedAt: g.clock.Now(),
	}
	g.moves = append(g.moves, move)
	g.lastMover = color
	g.turn = g.turn.Next()

	g.logger.Debug("move played",
		slog.String("color", string(color)),
		slog.Int("column", column),
		slog.Int("row", row),
		slog.Int("move", move.Number),
	)
	g.emit(model.Event{
		Type:      model.EventMovePlayed,
		Timestamp: move.PlayedAt,
		Color:     color,
		Payload:   model.MovePlayedPayload{Move: move},
	})

	return nil
}

// validateMove checks the turn state and, independently, the last mover
func (g *Game) validateMove(color model.Color) error {
	if g.turn.IsFinished() {
		return model.ErrGameFinished
	}
	if !color.IsPlayer() {
		return model.ErrInvalidColor
	}
	if !g.turn.Expects(color) {
		return model.ErrNotColorsTurn
	}
	if color == g.lastMover {
		return model.ErrNotColorsTurn
	}
	return nil
}

func (g *Game) reject(color model.Color, column int, reason error) {
	g.logger.Debug("move rejected",
		slog.String("color", string(color)),
		slog.Int("column", column),
		slog.String("reason", reason.Error()),
	)
	g.emit(model.Event{
		Type:      model.EventMoveRejected,
		Timestamp: g.clock.Now(),
		Color:     color,
		Payload:   model.MoveRejectedPayload{Column: column, Reason: reason},
	})
}

// EvaluateOutcome checks both colors and the full board, finishing the game
// when any terminal condition holds. It returns whether the game is finished.
func (g *Game) EvaluateOutcome() bool {
	if g.turn.IsFinished() {
		return true
	}

	outcome := g.classify()
	if outcome == model.OutcomeOngoing {
		return false
	}

	g.turn = model.TurnFinished
	g.outcome = outcome

	g.logger.Info("game finished",
		slog.String("outcome", string(outcome)),
		slog.String("variant", g.strategy.Variant().String()),
		slog.Int("move_count", len(g.moves)),
	)
	g.emit(model.Event{
		Type:      model.EventGameFinished,
		Timestamp: g.clock.Now(),
		Payload:   model.GameFinishedPayload{Outcome: outcome, MoveCount: len(g.moves)},
	})

	return true
}

// classify derives the outcome from the board. A win takes precedence over a
// full board, and Red is reported first if both colors hold a line.
func (g *Game) classify() model.Outcome {
	switch {
	case g.strategy.CheckWin(g.board, model.Red):
		return model.OutcomeRedWins
	case g.strategy.CheckWin(g.board, model.Blue):
		return model.OutcomeBlueWins
	case g.board.IsFull():
		return model.OutcomeDraw
	default:
		return model.OutcomeOngoing
	}
}

func (g *Game) emit(e model.Event) {
	for _, h := range g.handlers {
		h(e)
	}
}

// IsBoardFull returns true if no more pieces fit on the board
func (g *Game) IsBoardFull() bool {
	return g.board.IsFull()
}

// IsFinished returns true once the game has been evaluated as finished
func (g *Game) IsFinished() bool {
	return g.turn.IsFinished()
}

// Render returns the plain text dump of the board
func (g *Game) Render() string {
	return g.board.Render()
}

// Outcome returns the recorded outcome, Ongoing until the game is finished
func (g *Game) Outcome() model.Outcome {
	return g.outcome
}

// Turn returns the current turn state
func (g *Game) Turn() model.TurnState {
	return g.turn
}

// LastMover returns the color of the last accepted move, Empty before any move
func (g *Game) LastMover() model.Color {
	return g.lastMover
}

// Variant returns the win rule code the game was created with
func (g *Game) Variant() rules.Variant {
	return g.strategy.Variant()
}

// Columns returns the board width
func (g *Game) Columns() int {
	return g.board.Columns()
}

// Rows returns the board height
func (g *Game) Rows() int {
	return g.board.Rows()
}

// Cell returns the color at the given row and column, or Empty if out of range
func (g *Game) Cell(row, col int) model.Color {
	return g.board.Cell(row, col)
}

// Cells returns a copy of the grid, top row first
func (g *Game) Cells() [][]model.Color {
	return g.board.Cells()
}

// Moves returns a copy of the accepted moves in order
func (g *Game) Moves() []model.Move {
	result := make([]model.Move, len(g.moves))
	copy(result, g.moves)
	return result
}

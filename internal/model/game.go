package model

import "time"

// TurnState represents whose move is legal next, or that the game is over
type TurnState string

const (
	TurnRed      TurnState = "red_turn"  // Red may move
	TurnBlue     TurnState = "blue_turn" // Blue may move
	TurnFinished TurnState = "finished"  // Terminal, no more moves
)

// IsFinished returns true only for the terminal state
func (t TurnState) IsFinished() bool {
	return t == TurnFinished
}

// Next returns the state after the expected color has moved.
// It never decides termination; Finished stays Finished.
func (t TurnState) Next() TurnState {
	switch t {
	case TurnRed:
		return TurnBlue
	case TurnBlue:
		return TurnRed
	default:
		return TurnFinished
	}
}

// Color returns the color expected to move, or Empty once finished
func (t TurnState) Color() Color {
	switch t {
	case TurnRed:
		return Red
	case TurnBlue:
		return Blue
	default:
		return Empty
	}
}

// Expects returns true if the given color may move in this state
func (t TurnState) Expects(c Color) bool {
	return c.IsPlayer() && t.Color() == c
}

// Outcome classifies the result of a game
type Outcome string

const (
	OutcomeOngoing  Outcome = "ongoing"
	OutcomeRedWins  Outcome = "red_wins"
	OutcomeBlueWins Outcome = "blue_wins"
	OutcomeDraw     Outcome = "draw"
)

// Winner returns the winning color, or Empty for draws and ongoing games
func (o Outcome) Winner() Color {
	switch o {
	case OutcomeRedWins:
		return Red
	case OutcomeBlueWins:
		return Blue
	default:
		return Empty
	}
}

// Move is an accepted move in a game's history
type Move struct {
	Number   int // 1-indexed
	Color    Color
	Column   int
	Row      int // Row the piece settled on, 0 is the top
	PlayedAt time.Time
}
